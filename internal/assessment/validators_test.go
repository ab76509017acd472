package assessment

import (
	"context"
	"testing"

	"github.com/shenikar/crisis_assessment_engine/internal/assessment/mocks"
	"github.com/shenikar/crisis_assessment_engine/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGeocoder(t *testing.T) *mocks.MockGeocoder {
	ctrl := gomock.NewController(t)
	return mocks.NewMockGeocoder(ctrl)
}

func TestValidateLocation_Empty(t *testing.T) {
	geocoder := newTestGeocoder(t)
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	result := ValidateLocation(context.Background(), geocoder, "   ")

	assert.False(t, result.Accepted)
	assert.Empty(t, result.Message)
}

func TestValidateLocation_VaguePhraseIsRejected(t *testing.T) {
	geocoder := newTestGeocoder(t)
	// Расплывчатые ответы отклоняются до обращения к геокодеру
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	result := ValidateLocation(context.Background(), geocoder, "Home")

	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "too vague")
}

func TestValidateLocation_PurelyNumericIsRejected(t *testing.T) {
	geocoder := newTestGeocoder(t)
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	result := ValidateLocation(context.Background(), geocoder, "12345")

	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "seems incomplete")
}

func TestValidateLocation_TooShortIsRejected(t *testing.T) {
	geocoder := newTestGeocoder(t)
	geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)

	result := ValidateLocation(context.Background(), geocoder, "ab")

	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "seems incomplete")
}

func TestValidateLocation_VerifiedByGeocoder(t *testing.T) {
	geocoder := newTestGeocoder(t)
	geocoder.EXPECT().
		Geocode(gomock.Any(), "Berlin, Alexanderplatz").
		Return(&geo.Place{DisplayName: "Alexanderplatz, Mitte, Berlin, Germany", Lat: 52.5219, Lon: 13.4132}, true).
		Times(1)

	result := ValidateLocation(context.Background(), geocoder, "Berlin, Alexanderplatz")

	require.True(t, result.Accepted)
	assert.True(t, result.Verified)
	assert.Equal(t, "Alexanderplatz, Mitte, Berlin, Germany", result.Value)
	require.NotNil(t, result.Lat)
	require.NotNil(t, result.Lon)
	assert.InDelta(t, 52.5219, *result.Lat, 0.0001)
	assert.InDelta(t, 13.4132, *result.Lon, 0.0001)
	assert.Empty(t, result.Message)
}

func TestValidateLocation_Idempotent(t *testing.T) {
	// Повторная валидация того же текста дает тот же нормализованный результат
	geocoder := newTestGeocoder(t)
	place := &geo.Place{DisplayName: "Hamburg, Germany", Lat: 53.55, Lon: 9.99}
	geocoder.EXPECT().Geocode(gomock.Any(), "Hamburg, Hauptbahnhof").Return(place, true).Times(2)

	first := ValidateLocation(context.Background(), geocoder, "Hamburg, Hauptbahnhof")
	second := ValidateLocation(context.Background(), geocoder, "Hamburg, Hauptbahnhof")

	assert.Equal(t, first.Value, second.Value)
	assert.Equal(t, first.Verified, second.Verified)
}

func TestValidateLocation_KnownCityAcceptedOnGeocoderOutage(t *testing.T) {
	geocoder := newTestGeocoder(t)
	geocoder.EXPECT().Geocode(gomock.Any(), "berlin").Return(nil, false).Times(1)

	result := ValidateLocation(context.Background(), geocoder, "berlin")

	// Известный город принимается без предупреждения
	require.True(t, result.Accepted)
	assert.False(t, result.Verified)
	assert.Equal(t, "Berlin", result.Value)
	assert.Nil(t, result.Lat)
	assert.Nil(t, result.Lon)
	assert.Empty(t, result.Message)
}

func TestValidateLocation_UnknownTextAcceptedUnverifiedWithPrompt(t *testing.T) {
	geocoder := newTestGeocoder(t)
	geocoder.EXPECT().Geocode(gomock.Any(), "Springfield").Return(nil, false).Times(1)

	result := ValidateLocation(context.Background(), geocoder, "Springfield")

	require.True(t, result.Accepted)
	assert.False(t, result.Verified)
	assert.Equal(t, "Springfield", result.Value)
	assert.Nil(t, result.Lat)
	assert.Contains(t, result.Message, "could not verify that location")
}

func TestValidatePeopleCount(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		accepted bool
		result   string
		message  string
	}{
		{"valid", "3", true, "3", ""},
		{"valid with spaces", " 12 ", true, "12", ""},
		{"empty stays unset silently", "", false, "", ""},
		{"zero", "0", false, "", "greater than 0"},
		{"negative", "-2", false, "", "greater than 0"},
		{"not a number", "a few", false, "", "Please provide a number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidatePeopleCount(tc.value)

			assert.Equal(t, tc.accepted, result.Accepted)
			assert.Equal(t, tc.result, result.Value)
			if tc.message != "" {
				assert.Contains(t, result.Message, tc.message)
			} else {
				assert.Empty(t, result.Message)
			}
		})
	}
}

func TestValidateVulnerability_FillerIsRejectedWithReask(t *testing.T) {
	// Защита от приветствия, ошибочно направленного движком в слот
	result := ValidateVulnerability("hi")

	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "Any vulnerable people?")
}

func TestValidateVulnerability_TextAcceptedVerbatim(t *testing.T) {
	result := ValidateVulnerability("2 children and 1 elderly")

	require.True(t, result.Accepted)
	assert.Equal(t, "2 children and 1 elderly", result.Value)
	assert.Empty(t, result.Message)
}

func TestValidateMobilityStatus_Synonyms(t *testing.T) {
	cases := []struct {
		value      string
		normalized string
	}{
		{"yes", "yes"},
		{"able to move", "yes"},
		{"no", "no"},
		{"trapped", "no"},
		{"stuck", "no"},
		{"maybe", "unsure"},
		{"not sure", "unsure"},
	}

	for _, tc := range cases {
		result := ValidateMobilityStatus(tc.value)
		require.Truef(t, result.Accepted, "value=%q", tc.value)
		assert.Equalf(t, tc.normalized, result.Value, "value=%q", tc.value)
		assert.NotEmptyf(t, result.Message, "value=%q", tc.value)
	}
}

func TestValidateMobilityStatus_UnmappedTextPassesThrough(t *testing.T) {
	// Нераспознанный ответ принимается как есть, чтобы форма не застревала
	result := ValidateMobilityStatus("my leg feels weird")

	require.True(t, result.Accepted)
	assert.Equal(t, "my leg feels weird", result.Value)
	assert.Empty(t, result.Message)
}

func TestValidateMobilityStatus_FillerIsRejected(t *testing.T) {
	result := ValidateMobilityStatus("hello")

	assert.False(t, result.Accepted)
	assert.Contains(t, result.Message, "Can you move to a safer place?")
}

func TestValidateInjuryStatus_Synonyms(t *testing.T) {
	cases := []struct {
		value      string
		normalized string
	}{
		{"yes", "yes"},
		{"bleeding", "yes"},
		{"hurt", "yes"},
		{"no", "no"},
		{"fine", "no"},
		{"okay", "no"},
		{"unclear", "unsure"},
		{"dont know", "unsure"},
	}

	for _, tc := range cases {
		result := ValidateInjuryStatus(tc.value)
		require.Truef(t, result.Accepted, "value=%q", tc.value)
		assert.Equalf(t, tc.normalized, result.Value, "value=%q", tc.value)
		assert.NotEmptyf(t, result.Message, "value=%q", tc.value)
	}
}

func TestValidateInjuryStatus_Empty(t *testing.T) {
	result := ValidateInjuryStatus("")

	assert.False(t, result.Accepted)
	assert.Empty(t, result.Message)
}
