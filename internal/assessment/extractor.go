package assessment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shenikar/crisis_assessment_engine/internal/models"
)

// Паттерны вида "<число> <ключевое слово категории>".
// Компилируются один раз, словари категорий см. vocab.go.
var (
	childPattern    = regexp.MustCompile(`(\d+)\s*(?:child|kid|baby|infant|children|kids)`)
	elderlyPattern  = regexp.MustCompile(`(\d+)\s*(?:elderly|old|senior|grandparent)`)
	pregnantPattern = regexp.MustCompile(`(\d+)\s*(?:pregnant|expecting)`)
	medicalPattern  = regexp.MustCompile(`(\d+)\s*(?:medical|disability|disabled|sick|asthma)`)
)

// ExtractVulnerabilities извлекает из свободного текста количество уязвимых
// людей по категориям. Для каждой категории суммируются совпадения
// "<число> <слово>"; если числа нет, но ключевое слово встречается,
// счетчик равен 1 (упоминание без числа означает "как минимум один").
// Категории независимы друг от друга.
//
// Это эвристика, а не NLP-разбор: отрицания ("no children") не
// распознаются и будут посчитаны как положительное упоминание.
// Текст без совпадений дает нулевые счетчики, это не ошибка.
func ExtractVulnerabilities(text string) models.VulnerabilityCounts {
	t := strings.ToLower(text)
	return models.VulnerabilityCounts{
		Children:     countCategory(t, childPattern, childKeywords),
		Elderly:      countCategory(t, elderlyPattern, elderlyKeywords),
		Pregnant:     countCategory(t, pregnantPattern, pregnantKeywords),
		MedicalNeeds: countCategory(t, medicalPattern, medicalKeywords),
	}
}

func countCategory(text string, pattern *regexp.Regexp, keywords []string) int {
	matches := pattern.FindAllStringSubmatch(text, -1)
	if len(matches) > 0 {
		total := 0
		for _, m := range matches {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			total += n
		}
		return total
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return 1
		}
	}
	return 0
}

// SummarizeVulnerabilities составляет человекочитаемую сводку счетчиков
// для итогового отчета, например "2 children, 1 elderly (3 vulnerable individuals)"
func SummarizeVulnerabilities(counts models.VulnerabilityCounts) string {
	var details []string
	if counts.Children > 0 {
		details = append(details, fmt.Sprintf("%d children", counts.Children))
	}
	if counts.Elderly > 0 {
		details = append(details, fmt.Sprintf("%d elderly", counts.Elderly))
	}
	if counts.Pregnant > 0 {
		details = append(details, fmt.Sprintf("%d pregnant", counts.Pregnant))
	}
	if counts.MedicalNeeds > 0 {
		details = append(details, fmt.Sprintf("%d medical needs", counts.MedicalNeeds))
	}

	if len(details) == 0 {
		return "none"
	}

	summary := strings.Join(details, ", ")
	if total := counts.Total(); total > 0 {
		summary += fmt.Sprintf(" (%d vulnerable individuals)", total)
	}
	return summary
}
