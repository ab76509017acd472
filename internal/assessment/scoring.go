package assessment

import (
	"fmt"
	"strings"

	"github.com/shenikar/crisis_assessment_engine/internal/models"
)

// Веса слагаемых риск-балла. Пороговые значения подобраны вместе,
// менять по отдельности нельзя без повторной калибровки.
const (
	weightPerVulnerable = 15

	weightGroupLarge  = 20 // >= 5 человек
	weightGroupMedium = 10 // 3-4 человека
	weightGroupPair   = 5  // ровно 2

	weightClusterLarge = 15 // >= 3 уязвимых суммарно
	weightClusterPair  = 10 // ровно 2

	weightMobilityNo     = 20
	weightMobilityUnsure = 10

	weightInjuryYes    = 25
	weightInjuryUnsure = 10

	maxRiskScore = 100
)

// Score вычисляет риск-балл по заполненной сессии. Алгоритм аддитивный:
// базовый вес типа кризиса, вес размера группы, вес за каждого уязвимого
// человека, бонус за концентрацию уязвимых (поверх повесового слагаемого),
// штрафы за мобильность и травмы. Сумма ограничивается сверху 100.
func Score(session *models.Session, counts models.VulnerabilityCounts) (int, models.RiskLevel) {
	score := 0

	if base, ok := crisisBaseWeights[session.CrisisType]; ok {
		score += base
	} else {
		score += unknownCrisisWeight
	}

	people := session.EffectivePeopleCount()
	switch {
	case people >= 5:
		score += weightGroupLarge
	case people >= 3:
		score += weightGroupMedium
	case people == 2:
		score += weightGroupPair
	}

	score += counts.Total() * weightPerVulnerable

	switch total := counts.Total(); {
	case total >= 3:
		score += weightClusterLarge
	case total >= 2:
		score += weightClusterPair
	}

	switch strings.ToLower(strings.TrimSpace(session.MobilityStatus)) {
	case "no", "can't move", "cannot move", "stuck", "unable", "trapped":
		score += weightMobilityNo
	case "unsure", "not sure", "maybe", "uncertain":
		score += weightMobilityUnsure
	}

	switch strings.ToLower(strings.TrimSpace(session.InjuryStatus)) {
	case "yes", "injured", "hurt", "bleeding", "wounded":
		score += weightInjuryYes
	case "unsure", "not sure", "maybe", "unclear":
		score += weightInjuryUnsure
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	return score, LevelForScore(score)
}

// LevelForScore отображает балл в уровень риска.
// Границы диапазонов включительные: 0-25 LOW, 26-50 MEDIUM,
// 51-75 HIGH, 76-100 CRITICAL.
func LevelForScore(score int) models.RiskLevel {
	switch {
	case score >= 76:
		return models.RiskCritical
	case score >= 51:
		return models.RiskHigh
	case score >= 26:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// ComposeSummary составляет итоговый многострочный отчет об оценке.
// Подстроки-маркеры "RISK LEVEL: <X>" и "Risk Score: <n>/100" - часть
// контракта с рендерером, формат менять нельзя.
func ComposeSummary(session *models.Session, score int, level models.RiskLevel, vulnerabilitySummary string, shelters []string) string {
	var sheltersText string
	if len(shelters) > 0 {
		lines := make([]string, 0, len(shelters))
		for _, s := range shelters {
			lines = append(lines, "- "+s)
		}
		sheltersText = "🏠 Nearby shelter / safe places (approx):\n" + strings.Join(lines, "\n")
	} else {
		sheltersText = "🏠 Nearby shelters: Not found automatically (try adding a more specific landmark)."
	}

	crisisType := session.CrisisType
	if crisisType == "" {
		crisisType = models.CrisisUnknown
	}

	return fmt.Sprintf(
		"📋 CRISIS ASSESSMENT COMPLETE:\n"+
			"Crisis Type: %s | Location: %s | People: %d\n"+
			"Vulnerabilities: %s | Mobility: %s | Injuries: %s\n\n"+
			"🎯 RISK LEVEL: %s | 📊 Risk Score: %d/100\n"+
			"📋 Risk Levels: • 0-25: LOW • 26-50: MEDIUM • 51-75: HIGH • 76-100: CRITICAL\n\n"+
			"%s\n",
		crisisType,
		session.Location,
		session.EffectivePeopleCount(),
		vulnerabilitySummary,
		strings.ToLower(strings.TrimSpace(session.MobilityStatus)),
		strings.ToLower(strings.TrimSpace(session.InjuryStatus)),
		level,
		score,
		sheltersText,
	)
}
