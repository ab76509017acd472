package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/crisis_assessment_engine/internal/assessment"
	assessment_mocks "github.com/shenikar/crisis_assessment_engine/internal/assessment/mocks"
	"github.com/shenikar/crisis_assessment_engine/internal/config"
	"github.com/shenikar/crisis_assessment_engine/internal/geo"
	"github.com/shenikar/crisis_assessment_engine/internal/models"
	"github.com/shenikar/crisis_assessment_engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSessionService(t *testing.T) (*sessionService, *mocks.MockSessionRepository, *assessment_mocks.MockGeocoder, *mocks.MockShelterFinder) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSessionRepository(ctrl)
	geocoderMock := assessment_mocks.NewMockGeocoder(ctrl)
	sheltersMock := mocks.NewMockShelterFinder(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ShelterRadiusKM: 5,
		ShelterLimit:    5,
	}

	service := NewSessionService(repoMock, geocoderMock, sheltersMock, logger, cfg)
	return service.(*sessionService), repoMock, geocoderMock, sheltersMock
}

func TestCreateSession_Success(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	session, err := service.CreateSession(ctx)

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Empty(t, session.CrisisType)
}

func TestSetCrisisType_ClearsCollectedFields(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	lat, lon := 52.52, 13.40
	score := 85
	existing := &models.Session{
		ID:                   "s-1",
		CrisisType:           models.CrisisFlood,
		Location:             "Berlin, Germany",
		LocationVerified:     true,
		LocationLat:          &lat,
		LocationLon:          &lon,
		PeopleCount:          4,
		Vulnerability:        "2 children",
		MobilityStatus:       "no",
		InjuryStatus:         "yes",
		RiskScore:            &score,
		RiskLevel:            models.RiskCritical,
		VulnerabilitySummary: "2 children (2 vulnerable individuals)",
		ShelterSuggestions:   []string{"Shelter A"},
	}

	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)

	var saved *models.Session
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			saved = s
			return nil
		}).Times(1)

	session, err := service.SetCrisisType(ctx, "s-1", models.CrisisEarthquake)

	require.NoError(t, err)
	require.NotNil(t, saved)

	// Новый инцидент начинается с чистой формы: устаревшие данные не выживают
	assert.Equal(t, models.CrisisEarthquake, session.CrisisType)
	assert.Empty(t, session.Location)
	assert.False(t, session.LocationVerified)
	assert.Nil(t, session.LocationLat)
	assert.Nil(t, session.LocationLon)
	assert.Zero(t, session.PeopleCount)
	assert.Empty(t, session.Vulnerability)
	assert.Empty(t, session.MobilityStatus)
	assert.Empty(t, session.InjuryStatus)
	assert.Nil(t, session.RiskScore)
	assert.Empty(t, session.RiskLevel)
	assert.Empty(t, session.VulnerabilitySummary)
	assert.Nil(t, session.ShelterSuggestions)
}

func TestRestartSession_WipesEverything(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	existing := &models.Session{ID: "s-1", CrisisType: models.CrisisFire, Location: "Berlin"}
	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)

	greeting, err := service.RestartSession(ctx, "s-1")

	require.NoError(t, err)
	assert.Contains(t, greeting, "Chat restarted")
	assert.Empty(t, existing.CrisisType)
	assert.Empty(t, existing.Location)
}

func TestValidateSlot_AcceptedLocationIsSaved(t *testing.T) {
	service, repoMock, geocoderMock, _ := newTestSessionService(t)
	ctx := context.Background()

	existing := &models.Session{ID: "s-1", CrisisType: models.CrisisEarthquake}
	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)

	geocoderMock.EXPECT().
		Geocode(gomock.Any(), "Berlin, Alexanderplatz").
		Return(&geo.Place{DisplayName: "Alexanderplatz, Berlin, Germany", Lat: 52.52, Lon: 13.41}, true).
		Times(1)

	var saved *models.Session
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			saved = s
			return nil
		}).Times(1)

	result, err := service.ValidateSlot(ctx, "s-1", assessment.SlotLocation, "Berlin, Alexanderplatz")

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	require.NotNil(t, saved)
	assert.Equal(t, "Alexanderplatz, Berlin, Germany", saved.Location)
	assert.True(t, saved.LocationVerified)
	require.NotNil(t, saved.LocationLat)
	assert.InDelta(t, 52.52, *saved.LocationLat, 0.0001)
}

func TestValidateSlot_RejectedValueIsNotSaved(t *testing.T) {
	service, repoMock, geocoderMock, _ := newTestSessionService(t)
	ctx := context.Background()

	existing := &models.Session{ID: "s-1"}
	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)
	geocoderMock.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)
	// Отклоненное значение не сохраняется
	repoMock.EXPECT().Save(ctx, gomock.Any()).Times(0)

	result, err := service.ValidateSlot(ctx, "s-1", assessment.SlotLocation, "home")

	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "too vague")
}

func TestValidateSlot_PeopleCountIsNormalized(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	existing := &models.Session{ID: "s-1"}
	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)

	var saved *models.Session
	repoMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Session) error {
			saved = s
			return nil
		}).Times(1)

	result, err := service.ValidateSlot(ctx, "s-1", assessment.SlotPeopleCount, "5")

	require.NoError(t, err)
	assert.True(t, result.Accepted)
	require.NotNil(t, saved)
	assert.Equal(t, 5, saved.PeopleCount)
}

func TestValidateSlot_UnknownSlot(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	repoMock.EXPECT().Get(ctx, "s-1").Return(&models.Session{ID: "s-1"}, nil).Times(1)

	_, err := service.ValidateSlot(ctx, "s-1", "favorite_color", "blue")

	assert.Error(t, err)
}

func TestCompleteAssessment_VerifiedLocationTriggersShelterLookup(t *testing.T) {
	service, repoMock, _, sheltersMock := newTestSessionService(t)
	ctx := context.Background()

	lat, lon := 52.52, 13.40
	existing := &models.Session{
		ID:               "s-1",
		CrisisType:       models.CrisisEarthquake,
		Location:         "Alexanderplatz, Berlin, Germany",
		LocationVerified: true,
		LocationLat:      &lat,
		LocationLon:      &lon,
		PeopleCount:      5,
		Vulnerability:    "2 children and 1 elderly",
		MobilityStatus:   "no",
		InjuryStatus:     "yes",
	}

	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)
	sheltersMock.EXPECT().
		FindShelters(ctx, lat, lon, 5.0, 5).
		Return([]string{"Shelter A", "Shelter B"}).
		Times(1)
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.CompleteAssessment(ctx, "s-1")

	require.NoError(t, err)
	assert.Equal(t, 100, result.RiskScore)
	assert.Equal(t, models.RiskCritical, result.RiskLevel)
	assert.Equal(t, models.VulnerabilityCounts{Children: 2, Elderly: 1}, result.Counts)
	assert.Equal(t, []string{"Shelter A", "Shelter B"}, result.Shelters)
	assert.Contains(t, result.SummaryText, "RISK LEVEL: CRITICAL")
	assert.Contains(t, result.SummaryText, "Risk Score: 100/100")
	assert.Contains(t, result.ProtocolText, "EARTHQUAKE SAFETY PROTOCOL")

	// Производные поля зафиксированы в сессии
	require.NotNil(t, existing.RiskScore)
	assert.Equal(t, 100, *existing.RiskScore)
	assert.Equal(t, models.RiskCritical, existing.RiskLevel)
}

func TestCompleteAssessment_UnverifiedLocationSkipsShelterLookup(t *testing.T) {
	service, repoMock, _, sheltersMock := newTestSessionService(t)
	ctx := context.Background()

	existing := &models.Session{
		ID:             "s-1",
		CrisisType:     models.CrisisPowerOutage,
		Location:       "Springfield",
		PeopleCount:    1,
		Vulnerability:  "none",
		MobilityStatus: "yes",
		InjuryStatus:   "no",
	}

	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)
	// Поиск укрытий выполняется только при подтвержденных координатах
	sheltersMock.EXPECT().FindShelters(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)

	result, err := service.CompleteAssessment(ctx, "s-1")

	require.NoError(t, err)
	assert.Equal(t, 15, result.RiskScore)
	assert.Equal(t, models.RiskLow, result.RiskLevel)
	assert.Empty(t, result.Shelters)
	assert.Contains(t, result.SummaryText, "Not found automatically")
}

func TestFallback_DoesNotMutateSession(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	existing := &models.Session{ID: "s-1", CrisisType: models.CrisisFire}
	repoMock.EXPECT().Get(ctx, "s-1").Return(existing, nil).Times(1)
	// Роутер никогда не сохраняет сессию
	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	message, err := service.Fallback(ctx, "s-1", assessment.FormCrisis, assessment.SlotLocation)

	require.NoError(t, err)
	assert.Contains(t, message, "Where are you located?")
}

func TestFallback_SessionNotFound(t *testing.T) {
	service, repoMock, _, _ := newTestSessionService(t)
	ctx := context.Background()

	repoMock.EXPECT().Get(ctx, "missing").Return(nil, ErrSessionNotFound).Times(1)

	_, err := service.Fallback(ctx, "missing", "", "")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
