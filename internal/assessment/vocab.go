package assessment

import "github.com/shenikar/crisis_assessment_engine/internal/models"

// Фиксированные словари формы. Только для чтения после инициализации:
// ядро не держит никакого изменяемого глобального состояния.

// vagueLocations - слишком расплывчатые ответы на вопрос о местоположении
var vagueLocations = map[string]struct{}{
	"home": {}, "house": {}, "apartment": {}, "work": {}, "office": {},
	"school": {}, "here": {}, "inside": {}, "outside": {},
	"not sure": {}, "dont know": {}, "don't know": {}, "unsure": {},
	"somewhere": {}, "around": {}, "nearby": {}, "close": {}, "far": {},
	"there": {}, "this place": {}, "my place": {}, "upstairs": {},
	"downstairs": {}, "room": {}, "building": {}, "car": {}, "vehicle": {},
}

// knownCities - города, которые принимаются без верификации,
// если геокодер временно недоступен
var knownCities = map[string]struct{}{
	"berlin": {}, "munich": {}, "muenchen": {}, "hamburg": {},
	"frankfurt": {}, "frankfurt am main": {}, "cologne": {}, "koeln": {},
	"düsseldorf": {}, "dusseldorf": {}, "stuttgart": {}, "leipzig": {},
	"bremen": {}, "dresden": {}, "hannover": {}, "nuremberg": {},
	"nürnberg": {}, "nurnberg": {},
}

// fillerWords - разговорные слова, которые диалоговый движок иногда
// ошибочно направляет в слот; такой ввод отклоняется с повтором вопроса
var fillerWords = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "restart": {}, "help": {},
	"what": {}, "when": {}, "where": {},
}

// Синонимы ответов о мобильности
var (
	mobilityYes    = []string{"yes", "yeah", "y", "can move", "able to move"}
	mobilityNo     = []string{"no", "n", "cannot move", "can't move", "unable", "stuck", "trapped"}
	mobilityUnsure = []string{"unsure", "not sure", "dont know", "don't know", "maybe", "uncertain"}
)

// Синонимы ответов о травмах
var (
	injuryYes    = []string{"yes", "y", "injured", "hurt", "bleeding", "wounded"}
	injuryNo     = []string{"no", "n", "none", "not injured", "fine", "ok", "okay"}
	injuryUnsure = []string{"unsure", "not sure", "dont know", "don't know", "maybe", "unclear"}
)

// Ключевые слова категорий уязвимости для экстрактора
var (
	childKeywords    = []string{"child", "kid", "baby", "infant", "children", "kids"}
	elderlyKeywords  = []string{"elderly", "old", "senior", "grandparent"}
	pregnantKeywords = []string{"pregnant", "expecting"}
	medicalKeywords  = []string{"medical", "disability", "disabled", "sick", "asthma"}
)

// crisisBaseWeights - базовый вес опасности по типу кризиса
var crisisBaseWeights = map[models.CrisisType]int{
	models.CrisisEarthquake:  30,
	models.CrisisFire:        30,
	models.CrisisFlood:       25,
	models.CrisisPowerOutage: 15,
}

// unknownCrisisWeight применяется, если тип кризиса не распознан
const unknownCrisisWeight = 20

// slotQuestions - вопросы формы, переиспользуются валидаторами
// и fallback-роутером при повторном запросе слота
var slotQuestions = map[string]string{
	SlotLocation:       "📍 Where are you located? Please provide: City + Landmark (e.g., 'Berlin, Alexanderplatz').",
	SlotPeopleCount:    "👥 How many people are with you (including yourself)? Please provide a number.",
	SlotVulnerability:  "Please answer: Any vulnerable people? (children / elderly / pregnant / medical needs / none)",
	SlotMobilityStatus: "Please answer: Can you move to a safer place? (yes / no / unsure)",
	SlotInjuryStatus:   "Please answer: Are you or anyone with you injured? (yes / no / unsure)",
}
