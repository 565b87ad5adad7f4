package repository

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

const (
	geocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	forecastURL  = "https://api.open-meteo.com/v1/forecast"
)

const geocodingBerlinResponse = `{
  "results": [
    {
      "id": 2950159,
      "name": "Berlin",
      "latitude": 52.52437,
      "longitude": 13.41053,
      "elevation": 74.0,
      "country_code": "DE",
      "timezone": "Europe/Berlin",
      "population": 3426354,
      "country": "Germany",
      "admin1": "Land Berlin"
    },
    {
      "id": 5083330,
      "name": "Berlin",
      "latitude": 44.46867,
      "longitude": -71.18508,
      "country": "United States"
    }
  ],
  "generationtime_ms": 0.74
}`

const geocodingNoResultsResponse = `{"generationtime_ms": 0.31}`

const hourlyForecastResponse = `{
  "latitude": 52.52,
  "longitude": 13.419998,
  "timezone": "Europe/Berlin",
  "timezone_abbreviation": "CET",
  "current_weather": {
    "time": "2025-01-15T10:00",
    "temperature": 3.4,
    "windspeed": 12.1,
    "winddirection": 250,
    "weathercode": 3,
    "is_day": 1
  },
  "hourly": {
    "time": ["2025-01-15T00:00", "2025-01-15T01:00", "2025-01-15T02:00"],
    "temperature_2m": [1.2, 0.8, 0.5],
    "weather_code": [3, 45, 71]
  }
}`

const dailyForecastResponse = `{
  "latitude": 46.02,
  "longitude": 7.75,
  "timezone": "Europe/Zurich",
  "timezone_abbreviation": "CET",
  "current_weather": {
    "time": "2025-01-15T10:00",
    "temperature": -3.1,
    "windspeed": 8.0,
    "winddirection": 180,
    "weathercode": 73,
    "is_day": 0
  },
  "daily": {
    "time": ["2025-01-15", "2025-01-16"],
    "weather_code": [73, 0],
    "temperature_2m_max": [2, 26],
    "temperature_2m_min": [-5, 18],
    "precipitation_sum": [8, 0],
    "wind_speed_10m_max": [15, 8]
  }
}`

// newMockClient returns a client whose requests are served by a fresh httpmock transport.
func ptr[T any](v T) *T { return &v }

func newMockClient(t *testing.T) (*http.Client, *httpmock.MockTransport) {
	t.Helper()
	transport := httpmock.NewMockTransport()
	return &http.Client{Transport: transport}, transport
}
