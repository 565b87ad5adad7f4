package model

// GeocodingResponse is the raw payload of the Open-Meteo geocoding search.
// Results is absent when nothing matches.
type GeocodingResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationTimeMs float64           `json:"generationtime_ms"`
}

type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	CountryCode *string `json:"country_code"`
	Timezone    *string `json:"timezone"`
	Country     string  `json:"country"`
	Population  *int    `json:"population"`
	Admin1      string  `json:"admin1"`
}

// ForecastResponse is the raw payload of the Open-Meteo forecast endpoint.
// Hourly and Daily hold parallel arrays that must be zipped by index.
type ForecastResponse struct {
	Latitude             float64                  `json:"latitude"`
	Longitude            float64                  `json:"longitude"`
	Timezone             string                   `json:"timezone"`
	TimezoneAbbreviation string                   `json:"timezone_abbreviation"`
	CurrentWeather       *OpenMeteoCurrentWeather `json:"current_weather"`
	Hourly               *OpenMeteoHourly         `json:"hourly"`
	Daily                *OpenMeteoDaily          `json:"daily"`
}

// OpenMeteoCurrentWeather uses the legacy current_weather field names (weathercode, is_day).
type OpenMeteoCurrentWeather struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
}

// OpenMeteoHourly and OpenMeteoDaily keep nullable series as pointer slices:
// Open-Meteo emits null for a missing value and it must not read as 0.
type OpenMeteoHourly struct {
	Time          []string  `json:"time"`
	Temperature2m []float64 `json:"temperature_2m"`
	WeatherCode   []*int    `json:"weather_code"`
}

type OpenMeteoDaily struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	Temperature2mMax []float64  `json:"temperature_2m_max"`
	Temperature2mMin []float64  `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	WindSpeed10mMax  []*float64 `json:"wind_speed_10m_max"`
}
