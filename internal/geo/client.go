package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Place - подтвержденное провайдером местоположение
type Place struct {
	DisplayName string
	Lat         float64
	Lon         float64
}

// nominatimResult - один элемент ответа Nominatim Search API
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Client - шлюз к Nominatim (OpenStreetMap). Провайдер бесплатный и
// общий, поэтому перед каждым запросом выдерживается пауза и передаются
// контактный email с идентифицирующим User-Agent, как требует usage policy.
//
// Любой сбой провайдера (не-200 статус, сетевая ошибка, пустой список,
// нечисловые координаты) - это "не найдено", а не ошибка: вызывающий
// диалог всегда должен завершить свой ход.
type Client struct {
	baseURL    string
	email      string
	userAgent  string
	pause      time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает шлюз геокодирования
func NewClient(baseURL, email string, timeout, pause time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		email:     email,
		userAgent: fmt.Sprintf("crisis-assessment-engine/1.0 (contact: %s)", email),
		pause:     pause,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Geocode разрешает свободный текст в подтвержденное местоположение.
// Возвращает false, если провайдер недоступен или ничего не нашел.
func (c *Client) Geocode(ctx context.Context, query string) (*Place, bool) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)
	params.Set("limit", "1")
	params.Set("addressdetails", "1")
	params.Set("email", c.email)

	results := c.search(ctx, params)
	if len(results) == 0 {
		return nil, false
	}

	top := results[0]
	lat, err := strconv.ParseFloat(top.Lat, 64)
	if err != nil {
		return nil, false
	}
	lon, err := strconv.ParseFloat(top.Lon, 64)
	if err != nil {
		return nil, false
	}

	displayName := top.DisplayName
	if displayName == "" {
		displayName = query
	}

	return &Place{DisplayName: displayName, Lat: lat, Lon: lon}, true
}

// search выполняет один запрос к Search API. Любой сбой дает пустой
// список; однократная попытка, без повторов.
func (c *Client) search(ctx context.Context, params url.Values) []nominatimResult {
	// Щадящая пауза, снижает риск попадания под rate limit
	time.Sleep(c.pause)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		c.logger.WithError(err).Debug("geo: failed to build search request")
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Debug("geo: search request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Debug("geo: search returned non-OK status")
		return nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.WithError(err).Debug("geo: failed to decode search response")
		return nil
	}
	return results
}
