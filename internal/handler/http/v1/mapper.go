package v1

import (
	"github.com/shenikar/crisis_assessment_engine/internal/assessment"
	"github.com/shenikar/crisis_assessment_engine/internal/models"
)

// ModelToSessionResponse преобразует доменную модель сессии в DTO для ответа
func ModelToSessionResponse(model *models.Session) *SessionResponse {
	return &SessionResponse{
		ID:                   model.ID,
		CrisisType:           string(model.CrisisType),
		Location:             model.Location,
		LocationVerified:     model.LocationVerified,
		LocationLat:          model.LocationLat,
		LocationLon:          model.LocationLon,
		PeopleCount:          model.PeopleCount,
		Vulnerability:        model.Vulnerability,
		MobilityStatus:       model.MobilityStatus,
		InjuryStatus:         model.InjuryStatus,
		RiskScore:            model.RiskScore,
		RiskLevel:            string(model.RiskLevel),
		VulnerabilitySummary: model.VulnerabilitySummary,
		ShelterSuggestions:   model.ShelterSuggestions,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

// SlotResultToResponse преобразует результат валидации слота в DTO
func SlotResultToResponse(result assessment.SlotResult) *SlotResultResponse {
	return &SlotResultResponse{
		Slot:     result.Slot,
		Accepted: result.Accepted,
		Value:    result.Value,
		Verified: result.Verified,
		Message:  result.Message,
	}
}

// AssessmentToResponse преобразует результат оценки в DTO
func AssessmentToResponse(a *models.Assessment) *AssessmentResponse {
	shelters := a.Shelters
	if shelters == nil {
		shelters = []string{}
	}
	return &AssessmentResponse{
		RiskScore: a.RiskScore,
		RiskLevel: string(a.RiskLevel),
		VulnerabilityCounts: map[string]int{
			"children":      a.Counts.Children,
			"elderly":       a.Counts.Elderly,
			"pregnant":      a.Counts.Pregnant,
			"medical_needs": a.Counts.MedicalNeeds,
		},
		VulnerabilitySummary: a.VulnerabilitySummary,
		Shelters:             shelters,
		SummaryText:          a.SummaryText,
		ProtocolText:         a.ProtocolText,
	}
}
