package v1

import (
	"time"
)

// SetCrisisTypeRequest DTO для установки типа кризиса
// @Description DTO для установки типа кризиса
type SetCrisisTypeRequest struct {
	CrisisType string `json:"crisis_type" validate:"required,oneof=earthquake flood fire power_outage unknown"`
}

// ValidateSlotRequest DTO для валидации значения слота.
// Пустое значение допустимо: оно оставляет слот незаполненным.
type ValidateSlotRequest struct {
	Value string `json:"value"`
}

// FallbackRequest DTO для запроса fallback-реплики
// @Description DTO для запроса fallback-реплики
type FallbackRequest struct {
	ActiveForm    string `json:"active_form" validate:"omitempty,max=64"`
	RequestedSlot string `json:"requested_slot" validate:"omitempty,max=64"`
}

// SessionResponse DTO для ответа с состоянием сессии
// @Description DTO для ответа с состоянием сессии
type SessionResponse struct {
	ID                   string    `json:"id"`
	CrisisType           string    `json:"crisis_type,omitempty"`
	Location             string    `json:"location,omitempty"`
	LocationVerified     bool      `json:"location_verified"`
	LocationLat          *float64  `json:"location_lat,omitempty"`
	LocationLon          *float64  `json:"location_lon,omitempty"`
	PeopleCount          int       `json:"people_count,omitempty"`
	Vulnerability        string    `json:"vulnerability,omitempty"`
	MobilityStatus       string    `json:"mobility_status,omitempty"`
	InjuryStatus         string    `json:"injury_status,omitempty"`
	RiskScore            *int      `json:"risk_score,omitempty"`
	RiskLevel            string    `json:"risk_level,omitempty"`
	VulnerabilitySummary string    `json:"vulnerability_summary,omitempty"`
	ShelterSuggestions   []string  `json:"shelter_suggestions,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SlotResultResponse DTO для результата валидации слота
// @Description DTO для результата валидации слота
type SlotResultResponse struct {
	Slot     string `json:"slot"`
	Accepted bool   `json:"accepted"`
	Value    string `json:"value,omitempty"`
	Verified bool   `json:"verified,omitempty"`
	Message  string `json:"message,omitempty"`
}

// AssessmentResponse DTO для результата завершенной оценки
// @Description DTO для результата завершенной оценки
type AssessmentResponse struct {
	RiskScore            int            `json:"risk_score"`
	RiskLevel            string         `json:"risk_level"`
	VulnerabilityCounts  map[string]int `json:"vulnerability_counts"`
	VulnerabilitySummary string         `json:"vulnerability_summary"`
	Shelters             []string       `json:"shelters"`
	SummaryText          string         `json:"summary_text"`
	ProtocolText         string         `json:"protocol_text"`
}

// MessageResponse DTO для ответа с одним текстовым сообщением
// @Description DTO для ответа с одним текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}
