package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crisis_assessment_engine/internal/assessment"
	"github.com/shenikar/crisis_assessment_engine/internal/config"
	"github.com/shenikar/crisis_assessment_engine/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound возвращается, когда сессия не существует или истек ее TTL
var ErrSessionNotFound = errors.New("session not found")

// greetingRestart - приветствие после рестарта диалога
const greetingRestart = "🔄 Chat restarted. Hi! I'm the Crisis Response Assistant. If this is life-threatening, call your local emergency number now. Type: emergency to begin."

// SessionRepository определяет контракт хранилища сессий диалогов
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// ShelterFinder определяет контракт поиска укрытий вокруг координаты.
// Полный сбой - это пустой список, а не ошибка.
type ShelterFinder interface {
	FindShelters(ctx context.Context, lat, lon, radiusKM float64, limit int) []string
}

// SessionService определяет контракт бизнес-логики оценки кризиса
type SessionService interface {
	CreateSession(ctx context.Context) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	RestartSession(ctx context.Context, id string) (string, error)
	SetCrisisType(ctx context.Context, id string, crisisType models.CrisisType) (*models.Session, error)
	ValidateSlot(ctx context.Context, id, slot, value string) (assessment.SlotResult, error)
	CompleteAssessment(ctx context.Context, id string) (*models.Assessment, error)
	Fallback(ctx context.Context, id, activeForm, requestedSlot string) (string, error)
}

type sessionService struct {
	repo     SessionRepository
	geocoder assessment.Geocoder
	shelters ShelterFinder
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewSessionService(repo SessionRepository, geocoder assessment.Geocoder, shelters ShelterFinder, logger *logrus.Logger, cfg *config.Config) SessionService {
	return &sessionService{
		repo:     repo,
		geocoder: geocoder,
		shelters: shelters,
		logger:   logger,
		cfg:      cfg,
	}
}

// CreateSession создает пустую сессию диалога
func (s *sessionService) CreateSession(ctx context.Context) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "CreateSession",
	})

	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save new session")
		return nil, fmt.Errorf("service: could not create session: %w", err)
	}

	log.WithField("session_id", session.ID).Info("Session created")
	return session, nil
}

// GetSession получает сессию по ID
func (s *sessionService) GetSession(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	return session, nil
}

// RestartSession очищает все поля сессии и возвращает приветствие.
// Никакие собранные или производные данные рестарт не переживают.
func (s *sessionService) RestartSession(ctx context.Context, id string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "RestartSession",
		"session_id": id,
	})

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service: could not get session for restart: %w", err)
	}

	session.CrisisType = ""
	session.ResetAssessment()
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save restarted session")
		return "", fmt.Errorf("service: could not restart session: %w", err)
	}

	log.Info("Session restarted")
	return greetingRestart, nil
}

// SetCrisisType устанавливает тип кризиса и очищает все последующие поля:
// новый инцидент начинается с чистой формы
func (s *sessionService) SetCrisisType(ctx context.Context, id string, crisisType models.CrisisType) (*models.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "session",
		"method":      "SetCrisisType",
		"session_id":  id,
		"crisis_type": crisisType,
	})

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}

	session.CrisisType = crisisType
	session.ResetAssessment()
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save session with new crisis type")
		return nil, fmt.Errorf("service: could not set crisis type: %w", err)
	}

	log.Info("Crisis type set, assessment fields cleared")
	return session, nil
}

// ValidateSlot прогоняет значение через валидатор слота и применяет
// принятый результат к сессии. Отклоненное значение оставляет слот пустым;
// это штатный случай, а не ошибка.
func (s *sessionService) ValidateSlot(ctx context.Context, id, slot, value string) (assessment.SlotResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "ValidateSlot",
		"session_id": id,
		"slot":       slot,
	})

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return assessment.SlotResult{}, fmt.Errorf("service: could not get session: %w", err)
	}

	var result assessment.SlotResult
	switch slot {
	case assessment.SlotLocation:
		result = assessment.ValidateLocation(ctx, s.geocoder, value)
	case assessment.SlotPeopleCount:
		result = assessment.ValidatePeopleCount(value)
	case assessment.SlotVulnerability:
		result = assessment.ValidateVulnerability(value)
	case assessment.SlotMobilityStatus:
		result = assessment.ValidateMobilityStatus(value)
	case assessment.SlotInjuryStatus:
		result = assessment.ValidateInjuryStatus(value)
	default:
		return assessment.SlotResult{}, fmt.Errorf("service: unknown slot %q", slot)
	}

	if result.Accepted {
		s.applySlot(session, result)
		session.UpdatedAt = time.Now().UTC()
		if err := s.repo.Save(ctx, session); err != nil {
			log.WithError(err).Error("Failed to save session after slot validation")
			return assessment.SlotResult{}, fmt.Errorf("service: could not save session: %w", err)
		}
	}

	log.WithField("accepted", result.Accepted).Info("Slot validated")
	return result, nil
}

func (s *sessionService) applySlot(session *models.Session, result assessment.SlotResult) {
	switch result.Slot {
	case assessment.SlotLocation:
		session.Location = result.Value
		session.LocationVerified = result.Verified
		session.LocationLat = result.Lat
		session.LocationLon = result.Lon
	case assessment.SlotPeopleCount:
		count, _ := strconv.Atoi(result.Value)
		session.PeopleCount = count
	case assessment.SlotVulnerability:
		session.Vulnerability = result.Value
	case assessment.SlotMobilityStatus:
		session.MobilityStatus = result.Value
	case assessment.SlotInjuryStatus:
		session.InjuryStatus = result.Value
	}
}

// CompleteAssessment вычисляет риск-балл по заполненной форме, подбирает
// укрытия при подтвержденных координатах и составляет итоговый отчет
// с протоколом безопасности. Вызывается один раз на завершенную форму.
func (s *sessionService) CompleteAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "CompleteAssessment",
		"session_id": id,
	})

	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}

	counts := assessment.ExtractVulnerabilities(session.Vulnerability)
	score, level := assessment.Score(session, counts)
	vulnerabilitySummary := assessment.SummarizeVulnerabilities(counts)

	// Укрытия ищем только при подтвержденных провайдером координатах
	var shelters []string
	if session.LocationVerified && session.LocationLat != nil && session.LocationLon != nil {
		shelters = s.shelters.FindShelters(ctx, *session.LocationLat, *session.LocationLon, s.cfg.ShelterRadiusKM, s.cfg.ShelterLimit)
	}

	result := &models.Assessment{
		RiskScore:            score,
		RiskLevel:            level,
		Counts:               counts,
		VulnerabilitySummary: vulnerabilitySummary,
		Shelters:             shelters,
		SummaryText:          assessment.ComposeSummary(session, score, level, vulnerabilitySummary, shelters),
		ProtocolText:         assessment.SafetyProtocol(session.CrisisType, session.MobilityStatus, session.InjuryStatus, level),
	}

	session.RiskScore = &score
	session.RiskLevel = level
	session.VulnerabilitySummary = vulnerabilitySummary
	session.ShelterSuggestions = shelters
	session.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save session after assessment")
		return nil, fmt.Errorf("service: could not save assessment: %w", err)
	}

	log.WithFields(logrus.Fields{
		"risk_score": score,
		"risk_level": level,
		"shelters":   len(shelters),
	}).Info("Assessment completed")
	return result, nil
}

// Fallback возвращает контекстную реплику, когда ввод пользователя не
// распознан. Состояние сессии не изменяется.
func (s *sessionService) Fallback(ctx context.Context, id, activeForm, requestedSlot string) (string, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service: could not get session: %w", err)
	}

	return assessment.FallbackPrompt(session.CrisisType != "", activeForm, requestedSlot), nil
}
