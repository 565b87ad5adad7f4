package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCityRepository(t *testing.T) {
	repo := NewCityRepository(nil)
	if repo == nil {
		t.Error("Expected repository to be created")
	}
}

func TestSearchCities_Success(t *testing.T) {
	client, transport := newMockClient(t)

	var captured *http.Request
	transport.RegisterResponder(http.MethodGet, geocodingURL,
		func(req *http.Request) (*http.Response, error) {
			captured = req
			return httpmock.NewStringResponse(http.StatusOK, geocodingBerlinResponse), nil
		})

	repo := NewCityRepository(nil, client)
	cities, err := repo.SearchCities(context.Background(), "Berlin")

	require.NoError(t, err)
	require.Len(t, cities, 2)

	berlin := cities[0]
	assert.Equal(t, "2950159", berlin.ID)
	assert.Equal(t, "Berlin", berlin.Name)
	assert.InDelta(t, 52.52437, berlin.Latitude, 0.00001)
	assert.InDelta(t, 13.41053, berlin.Longitude, 0.00001)
	assert.Equal(t, "Germany", berlin.Country)
	require.NotNil(t, berlin.CountryCode)
	assert.Equal(t, "DE", *berlin.CountryCode)
	require.NotNil(t, berlin.Timezone)
	assert.Equal(t, "Europe/Berlin", *berlin.Timezone)
	require.NotNil(t, berlin.Population)
	assert.Equal(t, 3426354, *berlin.Population)

	// Optional fields stay nil when the upstream omits them
	assert.Equal(t, "5083330", cities[1].ID)
	assert.Nil(t, cities[1].CountryCode)
	assert.Nil(t, cities[1].Timezone)
	assert.Nil(t, cities[1].Population)

	require.NotNil(t, captured)
	q := captured.URL.Query()
	assert.Equal(t, "Berlin", q.Get("name"))
	assert.Equal(t, "10", q.Get("count"))
	assert.Equal(t, "en", q.Get("language"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Empty(t, q.Get("apikey"))
	assert.Contains(t, captured.Header.Get("User-Agent"), "weather-activity-api")
}

func TestSearchCities_MissingResultsIsEmpty(t *testing.T) {
	client, transport := newMockClient(t)
	transport.RegisterResponder(http.MethodGet, geocodingURL,
		httpmock.NewStringResponder(http.StatusOK, geocodingNoResultsResponse))

	repo := NewCityRepository(nil, client)
	cities, err := repo.SearchCities(context.Background(), "Xyzzyville")

	require.NoError(t, err)
	assert.NotNil(t, cities)
	assert.Empty(t, cities)
}

func TestSearchCities_APIKeyForwarded(t *testing.T) {
	t.Setenv("OPEN_METEO_API_KEY", "secret-key")

	client, transport := newMockClient(t)
	var apiKey string
	transport.RegisterResponder(http.MethodGet, geocodingURL,
		func(req *http.Request) (*http.Response, error) {
			apiKey = req.URL.Query().Get("apikey")
			return httpmock.NewStringResponse(http.StatusOK, geocodingNoResultsResponse), nil
		})

	_, err := NewCityRepository(nil, client).SearchCities(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", apiKey)
}

func TestSearchCities_ErrorCases(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad_request", http.StatusBadRequest, `{"error": true, "reason": "Parameter count must be between 1 and 100."}`},
		{"internal_server_error", http.StatusInternalServerError, `internal error`},
		{"service_unavailable", http.StatusServiceUnavailable, ``},
		{"invalid_json", http.StatusOK, `{invalid json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewCityRepository(nil, NewStubClient(tt.status, tt.body))
			cities, err := repo.SearchCities(context.Background(), "Berlin")

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGeocodingUnavailable))
			assert.Nil(t, cities)
		})
	}
}

func TestSearchCities_TransportError(t *testing.T) {
	client, transport := newMockClient(t)
	transport.RegisterResponder(http.MethodGet, geocodingURL,
		httpmock.NewErrorResponder(errors.New("connection refused")))

	cities, err := NewCityRepository(nil, client).SearchCities(context.Background(), "Berlin")
	assert.ErrorIs(t, err, ErrGeocodingUnavailable)
	assert.Nil(t, cities)
}
