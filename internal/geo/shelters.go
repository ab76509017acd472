package geo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Поисковые термины для укрытий. Теги OSM различаются от города к городу,
// поэтому поиск best-effort по нескольким формулировкам.
var shelterQueries = []string{
	"emergency shelter",
	"evacuation center",
	"community center",
	"shelter",
}

// Приближенный перевод километров в градусы: 1° ≈ 111 км.
// Для информационного (не навигационного) использования достаточно.
const degreesPerKM = 1.0 / 111.0

// FindShelters ищет названия укрытий вокруг координаты в радиусе radiusKM.
// Радиус переводится в ограничивающий viewbox, по каждому термину
// выполняется один ограниченный запрос. Результаты дедуплицируются с
// сохранением порядка и обрезаются по limit; поиск останавливается,
// как только лимит набран. Сбой отдельного запроса проглатывается,
// полный сбой дает пустой список, но никогда не ошибку.
func (c *Client) FindShelters(ctx context.Context, lat, lon, radiusKM float64, limit int) []string {
	dlat := radiusKM * degreesPerKM
	dlon := radiusKM * degreesPerKM

	left := lon - dlon
	right := lon + dlon
	top := lat + dlat
	bottom := lat - dlat

	var results []string
	seen := make(map[string]struct{})

	for _, q := range shelterQueries {
		params := url.Values{}
		params.Set("format", "json")
		params.Set("q", q)
		params.Set("limit", strconv.Itoa(limit))
		params.Set("addressdetails", "1")
		params.Set("bounded", "1")
		params.Set("viewbox", fmt.Sprintf("%f,%f,%f,%f", left, top, right, bottom))
		params.Set("email", c.email)

		for _, item := range c.search(ctx, params) {
			name := item.DisplayName
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			results = append(results, name)
			if len(results) >= limit {
				return results
			}
		}
	}

	return results
}
