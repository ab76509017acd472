package assessment

import (
	"fmt"
	"strings"

	"github.com/shenikar/crisis_assessment_engine/internal/models"
)

// Протоколы безопасности по типам кризиса. Чистая шаблонизация
// по уже вычисленному состоянию, без дополнительной логики.
var safetyProtocols = map[models.CrisisType]string{
	models.CrisisEarthquake: "🏠 EARTHQUAKE SAFETY PROTOCOL:\n" +
		"1) DROP, COVER, HOLD ON - Get under sturdy furniture\n" +
		"2) Stay away from windows and heavy objects\n" +
		"3) If outdoors, move away from buildings\n" +
		"4) After shaking stops, check for injuries and hazards\n" +
		"5) Expect aftershocks - be prepared to Drop/Cover/Hold again\n" +
		"6) Evacuate if building shows structural damage",
	models.CrisisFlood: "🌊 FLOOD SAFETY PROTOCOL:\n" +
		"1) Move to highest ground immediately\n" +
		"2) NEVER walk through moving water\n" +
		"3) Turn off electricity if safe\n" +
		"4) Avoid driving through flood water\n" +
		"5) Listen to evacuation orders\n" +
		"6) Stay away from storm drains",
	models.CrisisFire: "🔥 FIRE SAFETY PROTOCOL:\n" +
		"1) GET OUT IMMEDIATELY if you see flames or heavy smoke\n" +
		"2) Crawl low under smoke\n" +
		"3) Feel doors before opening\n" +
		"4) NEVER use elevators\n" +
		"5) Once outside, stay outside and call emergency services\n" +
		"6) If trapped, seal cracks and signal for help",
	models.CrisisPowerOutage: "⚡ POWER OUTAGE SAFETY PROTOCOL:\n" +
		"1) Use flashlights only\n" +
		"2) Keep refrigerator/freezer closed\n" +
		"3) Disconnect appliances to prevent surge damage\n" +
		"4) Stay away from downed power lines\n" +
		"5) If you rely on medical equipment, contact emergency services\n" +
		"6) Use generators outside only",
}

const genericProtocol = "📋 General emergency protocol: If life-threatening, call emergency services immediately."

// SafetyProtocol составляет текст протокола безопасности для завершенной
// оценки: заголовок по уровню риска, протокол по типу кризиса и дополнения
// по статусам мобильности и травм.
func SafetyProtocol(crisisType models.CrisisType, mobilityStatus, injuryStatus string, level models.RiskLevel) string {
	var header string
	if level == models.RiskCritical || level == models.RiskHigh {
		header = fmt.Sprintf("🚨 %s RISK SITUATION 🚨\n\n⚠️ STRONGLY RECOMMEND CALLING EMERGENCY SERVICES: 112/911\n\n", level)
	} else {
		header = fmt.Sprintf("ℹ️ %s Risk Assessment\n\n", level)
	}

	msg, ok := safetyProtocols[crisisType]
	if !ok {
		msg = genericProtocol
	}

	mobility := strings.ToLower(mobilityStatus)
	if strings.Contains(mobility, "no") || strings.Contains(mobility, "can't") {
		msg += "\n\n🛑 MOBILITY RESTRICTION: Stay in place. Help is coming to you."
	} else if strings.Contains(mobility, "yes") {
		msg += "\n\n✅ MOBILITY CONFIRMED: Follow evacuation procedures if needed."
	}

	injury := strings.ToLower(injuryStatus)
	if strings.Contains(injury, "yes") {
		msg += "\n\n🚑 INJURIES REPORTED: Do not move injured persons unless immediate danger."
	} else if strings.Contains(injury, "no") {
		msg += "\n\n✅ NO INJURIES: Continue standard protocols."
	}

	return header + msg
}
