package assessment

import (
	"testing"

	"github.com/shenikar/crisis_assessment_engine/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSafetyProtocol_CriticalHeaderRecommendsEmergencyServices(t *testing.T) {
	text := SafetyProtocol(models.CrisisEarthquake, "no", "yes", models.RiskCritical)

	assert.Contains(t, text, "CRITICAL RISK SITUATION")
	assert.Contains(t, text, "112/911")
	assert.Contains(t, text, "EARTHQUAKE SAFETY PROTOCOL")
}

func TestSafetyProtocol_LowHeader(t *testing.T) {
	text := SafetyProtocol(models.CrisisPowerOutage, "yes", "no", models.RiskLow)

	assert.Contains(t, text, "LOW Risk Assessment")
	assert.NotContains(t, text, "112/911")
	assert.Contains(t, text, "POWER OUTAGE SAFETY PROTOCOL")
}

func TestSafetyProtocol_PerCrisisProtocols(t *testing.T) {
	cases := []struct {
		crisisType models.CrisisType
		expected   string
	}{
		{models.CrisisEarthquake, "DROP, COVER, HOLD ON"},
		{models.CrisisFlood, "NEVER walk through moving water"},
		{models.CrisisFire, "Crawl low under smoke"},
		{models.CrisisPowerOutage, "Use flashlights only"},
		{models.CrisisUnknown, "General emergency protocol"},
	}

	for _, tc := range cases {
		text := SafetyProtocol(tc.crisisType, "", "", models.RiskMedium)
		assert.Containsf(t, text, tc.expected, "crisis=%s", tc.crisisType)
	}
}

func TestSafetyProtocol_MobilityAndInjuryAddenda(t *testing.T) {
	text := SafetyProtocol(models.CrisisFire, "no", "yes", models.RiskHigh)

	assert.Contains(t, text, "MOBILITY RESTRICTION: Stay in place")
	assert.Contains(t, text, "INJURIES REPORTED: Do not move injured persons")
}

func TestSafetyProtocol_MobileUninjuredAddenda(t *testing.T) {
	text := SafetyProtocol(models.CrisisFlood, "yes", "no", models.RiskMedium)

	assert.Contains(t, text, "MOBILITY CONFIRMED")
	assert.Contains(t, text, "NO INJURIES")
}
