package models

import (
	"time"
)

// CrisisType - тип кризиса, о котором сообщает пользователь
type CrisisType string

const (
	CrisisEarthquake  CrisisType = "earthquake"
	CrisisFlood       CrisisType = "flood"
	CrisisFire        CrisisType = "fire"
	CrisisPowerOutage CrisisType = "power_outage"
	CrisisUnknown     CrisisType = "unknown"
)

// AnswerStatus - нормализованный ответ на вопрос о мобильности/травмах.
// Нераспознанный текст сохраняется как есть, поэтому тип строковый.
type AnswerStatus string

const (
	AnswerYes    AnswerStatus = "yes"
	AnswerNo     AnswerStatus = "no"
	AnswerUnsure AnswerStatus = "unsure"
)

// Session - состояние одного диалога оценки кризиса.
// Все поля заполняются валидаторами слотов по мере прохождения формы
// и полностью очищаются при смене типа кризиса или рестарте.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CrisisType CrisisType `json:"crisis_type,omitempty"`

	Location            string   `json:"location,omitempty"`
	LocationVerified    bool     `json:"location_verified"`
	LocationLat         *float64 `json:"location_lat,omitempty"`
	LocationLon         *float64 `json:"location_lon,omitempty"`
	PeopleCount         int      `json:"people_count,omitempty"`
	Vulnerability       string   `json:"vulnerability,omitempty"`
	MobilityStatus      string   `json:"mobility_status,omitempty"`
	InjuryStatus        string   `json:"injury_status,omitempty"`

	// Производные поля, заполняются один раз при завершении формы
	RiskScore            *int     `json:"risk_score,omitempty"`
	RiskLevel            RiskLevel `json:"risk_level,omitempty"`
	VulnerabilitySummary string   `json:"vulnerability_summary,omitempty"`
	ShelterSuggestions   []string `json:"shelter_suggestions,omitempty"`
}

// ResetAssessment очищает все собранные и производные поля сессии.
// Вызывается при смене типа кризиса и при рестарте: устаревшие данные
// не должны пережить смену инцидента.
func (s *Session) ResetAssessment() {
	s.Location = ""
	s.LocationVerified = false
	s.LocationLat = nil
	s.LocationLon = nil
	s.PeopleCount = 0
	s.Vulnerability = ""
	s.MobilityStatus = ""
	s.InjuryStatus = ""
	s.RiskScore = nil
	s.RiskLevel = ""
	s.VulnerabilitySummary = ""
	s.ShelterSuggestions = nil
}

// EffectivePeopleCount возвращает количество людей, по умолчанию 1
func (s *Session) EffectivePeopleCount() int {
	if s.PeopleCount <= 0 {
		return 1
	}
	return s.PeopleCount
}
