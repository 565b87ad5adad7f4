package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/metrics"
	"github.com/fakhrymubarak/weather-activity-api/internal/middleware"
	"github.com/fakhrymubarak/weather-activity-api/internal/model"
)

// CityRepository defines the interface for city lookups
type CityRepository interface {
	SearchCities(ctx context.Context, query string) ([]model.City, error)
}

// geocodingRepository implements CityRepository on the Open-Meteo geocoding API
type geocodingRepository struct {
	client openMeteoClient
}

// NewCityRepository creates a new geocoding-backed city repository
func NewCityRepository(m *metrics.UpstreamMetrics, httpClient ...*http.Client) CityRepository {
	return &geocodingRepository{
		client: newOpenMeteoClient(m, httpClient),
	}
}

// SearchCities returns the geocoding candidates for query. A payload without
// "results" is an empty match, not an error.
func (r *geocodingRepository) SearchCities(ctx context.Context, query string) ([]model.City, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(config.GetCitySearchCount()))
	params.Set("language", config.GetLanguage())
	params.Set("format", "json")

	var data model.GeocodingResponse
	if err := r.client.getJSON(ctx, metrics.EndpointGeocoding, config.GetGeocodingApiUrl(), params, &data); err != nil {
		config.GetLogger().Errorw("Error searching cities", "request_id", middleware.RequestIDFromContext(ctx), "query", query, "error", err)
		return nil, ErrGeocodingUnavailable
	}

	cities := make([]model.City, 0, len(data.Results))
	for _, result := range data.Results {
		cities = append(cities, toCity(result))
	}
	return cities, nil
}

func toCity(result model.GeocodingResult) model.City {
	return model.City{
		ID:          strconv.FormatInt(result.ID, 10),
		Name:        result.Name,
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		CountryCode: result.CountryCode,
		Timezone:    result.Timezone,
		Country:     result.Country,
		Population:  result.Population,
	}
}
