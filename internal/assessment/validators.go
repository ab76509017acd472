package assessment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shenikar/crisis_assessment_engine/internal/geo"
	"github.com/shenikar/crisis_assessment_engine/internal/models"
)

// Имена слотов формы оценки кризиса
const (
	SlotLocation       = "location"
	SlotPeopleCount    = "people_count"
	SlotVulnerability  = "vulnerability"
	SlotMobilityStatus = "mobility_status"
	SlotInjuryStatus   = "injury_status"
)

// Geocoder - контракт внешнего геокодера для валидации местоположения.
// Отказ провайдера - это значение (found=false), а не ошибка.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*geo.Place, bool)
}

// SlotResult - результат валидации одного слота.
// Accepted=false означает, что значение отброшено и слот остается пустым.
// Message - необязательное сообщение пользователю (уточнение или подтверждение),
// всегда отдельное от нормализованного значения.
type SlotResult struct {
	Slot     string
	Accepted bool
	Value    string
	Verified bool
	Lat      *float64
	Lon      *float64
	Message  string
}

func rejected(slot, message string) SlotResult {
	return SlotResult{Slot: slot, Accepted: false, Message: message}
}

// isFiller сообщает, является ли ввод разговорным словом-паразитом,
// ошибочно попавшим в слот
func isFiller(text string) bool {
	_, ok := fillerWords[text]
	return ok
}

// isDigits сообщает, состоит ли строка только из цифр
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateLocation валидирует слот местоположения.
// Расплывчатые, чисто числовые и слишком короткие ответы отклоняются.
// Затем текст геокодируется: при успехе сохраняется каноническое имя
// провайдера с подтвержденными координатами. Если геокодер недоступен,
// известные города принимаются без предупреждения, остальной текст
// принимается неверифицированным с просьбой уточнить ориентир.
func ValidateLocation(ctx context.Context, geocoder Geocoder, value string) SlotResult {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return rejected(SlotLocation, "")
	}

	text := strings.ToLower(raw)

	if _, ok := vagueLocations[text]; ok {
		return rejected(SlotLocation,
			fmt.Sprintf("'%s' is too vague. Please provide: City + Landmark (e.g., 'Berlin, Alexanderplatz').", raw))
	}

	if isDigits(text) || len([]rune(text)) < 4 {
		return rejected(SlotLocation,
			fmt.Sprintf("'%s' seems incomplete. Please provide full location (City + Landmark).", raw))
	}

	if place, found := geocoder.Geocode(ctx, raw); found {
		lat, lon := place.Lat, place.Lon
		return SlotResult{
			Slot:     SlotLocation,
			Accepted: true,
			Value:    place.DisplayName,
			Verified: true,
			Lat:      &lat,
			Lon:      &lon,
		}
	}

	// Известный город принимаем без предупреждения, чтобы диалог
	// не застревал из-за недоступности провайдера
	if _, ok := knownCities[text]; ok {
		return SlotResult{Slot: SlotLocation, Accepted: true, Value: titleCase(text)}
	}

	return SlotResult{
		Slot:     SlotLocation,
		Accepted: true,
		Value:    raw,
		Message:  "📍 I could not verify that location on the map. Please add a landmark/street (e.g., 'Berlin, Alexanderplatz').",
	}
}

// ValidatePeopleCount валидирует слот количества людей.
// Пустой ввод оставляет слот незаполненным без замечаний (слот необязательный).
func ValidatePeopleCount(value string) SlotResult {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return rejected(SlotPeopleCount, "")
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return rejected(SlotPeopleCount, "Please provide a number (e.g., 1, 2, 3).")
	}
	if count <= 0 {
		return rejected(SlotPeopleCount, "Please provide a number greater than 0.")
	}
	return SlotResult{Slot: SlotPeopleCount, Accepted: true, Value: strconv.Itoa(count)}
}

// ValidateVulnerability валидирует слот описания уязвимостей.
// Текст принимается как есть: реальный разбор делает экстрактор при подсчете балла.
func ValidateVulnerability(value string) SlotResult {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return rejected(SlotVulnerability, "")
	}

	if isFiller(strings.ToLower(raw)) {
		return rejected(SlotVulnerability, slotQuestions[SlotVulnerability])
	}
	return SlotResult{Slot: SlotVulnerability, Accepted: true, Value: raw}
}

// ValidateMobilityStatus валидирует слот мобильности через закрытые
// наборы синонимов. Нераспознанный текст принимается без нормализации,
// чтобы форма не застревала.
func ValidateMobilityStatus(value string) SlotResult {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return rejected(SlotMobilityStatus, "")
	}

	m := strings.ToLower(raw)
	if isFiller(m) {
		return rejected(SlotMobilityStatus, slotQuestions[SlotMobilityStatus])
	}

	switch {
	case containsExact(mobilityYes, m):
		return SlotResult{
			Slot: SlotMobilityStatus, Accepted: true, Value: string(models.AnswerYes),
			Message: "✅ Good! Move to a safer place now if possible. Then we continue.",
		}
	case containsExact(mobilityNo, m):
		return SlotResult{
			Slot: SlotMobilityStatus, Accepted: true, Value: string(models.AnswerNo),
			Message: "🛑 Stay where you are. Do NOT attempt to move if unsafe.",
		}
	case containsExact(mobilityUnsure, m):
		return SlotResult{
			Slot: SlotMobilityStatus, Accepted: true, Value: string(models.AnswerUnsure),
			Message: "⚠️ Only move if you are sure it is safer. When in doubt, stay put.",
		}
	}
	return SlotResult{Slot: SlotMobilityStatus, Accepted: true, Value: raw}
}

// ValidateInjuryStatus валидирует слот травм, та же трехвариантная схема
// синонимов, что и у мобильности, со своим словарем и подтверждениями
func ValidateInjuryStatus(value string) SlotResult {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return rejected(SlotInjuryStatus, "")
	}

	i := strings.ToLower(raw)
	if isFiller(i) {
		return rejected(SlotInjuryStatus, slotQuestions[SlotInjuryStatus])
	}

	switch {
	case containsExact(injuryYes, i):
		return SlotResult{
			Slot: SlotInjuryStatus, Accepted: true, Value: string(models.AnswerYes),
			Message: "🚑 Injuries reported. Do NOT move injured persons unless immediate danger.",
		}
	case containsExact(injuryNo, i):
		return SlotResult{
			Slot: SlotInjuryStatus, Accepted: true, Value: string(models.AnswerNo),
			Message: "✅ No injuries reported. Continuing assessment.",
		}
	case containsExact(injuryUnsure, i):
		return SlotResult{
			Slot: SlotInjuryStatus, Accepted: true, Value: string(models.AnswerUnsure),
			Message: "🔍 Check injuries carefully (bleeding, breathing, consciousness).",
		}
	}
	return SlotResult{Slot: SlotInjuryStatus, Accepted: true, Value: raw}
}

func containsExact(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// titleCase поднимает первую букву каждого слова
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
