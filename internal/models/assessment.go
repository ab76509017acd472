package models

// RiskLevel - ординальный уровень риска, производный от риск-балла
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// VulnerabilityCounts - количество уязвимых людей по категориям,
// извлекается из свободного текста ответа на вопрос об уязвимостях
type VulnerabilityCounts struct {
	Children     int `json:"children"`
	Elderly      int `json:"elderly"`
	Pregnant     int `json:"pregnant"`
	MedicalNeeds int `json:"medical_needs"`
}

// Total возвращает суммарное количество уязвимых людей
func (c VulnerabilityCounts) Total() int {
	return c.Children + c.Elderly + c.Pregnant + c.MedicalNeeds
}

// Assessment - результат завершенной оценки кризиса
type Assessment struct {
	RiskScore            int                 `json:"risk_score"`
	RiskLevel            RiskLevel           `json:"risk_level"`
	Counts               VulnerabilityCounts `json:"vulnerability_counts"`
	VulnerabilitySummary string              `json:"vulnerability_summary"`
	Shelters             []string            `json:"shelters"`
	SummaryText          string              `json:"summary_text"`
	ProtocolText         string              `json:"protocol_text"`
}
