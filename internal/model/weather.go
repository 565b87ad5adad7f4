package model

// CurrentWeather is the observation Open-Meteo reports for "now".
type CurrentWeather struct {
	Time               string  `json:"time"`
	Temperature        float64 `json:"temperature"`
	WeatherCode        int     `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
	IsDay              bool    `json:"isDay"`
}

// HourlyWeather is one hourly forecast step. WeatherCode is nil when Open-Meteo has no value.
type HourlyWeather struct {
	Time               string  `json:"time"`
	Temperature        float64 `json:"temperature"`
	WeatherCode        *int    `json:"weather_code"`
	WeatherDescription string  `json:"weather_description"`
}

// DailyWeather is one daily forecast step. It is also the sole input of activity scoring.
// Nil pointers mean the upstream reported no value.
type DailyWeather struct {
	Date               string   `json:"date"`
	TemperatureMin     float64  `json:"temperature_min"`
	TemperatureMax     float64  `json:"temperature_max"`
	WeatherCode        *int     `json:"weather_code"`
	WeatherDescription string   `json:"weather_description"`
	WindSpeedMax       *float64 `json:"wind_speed_max"`
	PrecipitationSum   *float64 `json:"precipitation_sum"`
}

type HourlyWeatherForecast struct {
	Latitude             float64         `json:"latitude"`
	Longitude            float64         `json:"longitude"`
	Timezone             string          `json:"timezone"`
	TimezoneAbbreviation string          `json:"timezone_abbreviation"`
	CurrentWeather       CurrentWeather  `json:"current_weather"`
	HourlyForecast       []HourlyWeather `json:"hourly_forecast"`
}

type DailyWeatherForecast struct {
	Latitude             float64        `json:"latitude"`
	Longitude            float64        `json:"longitude"`
	Timezone             string         `json:"timezone"`
	TimezoneAbbreviation string         `json:"timezone_abbreviation"`
	CurrentWeather       CurrentWeather `json:"current_weather"`
	DailyForecast        []DailyWeather `json:"daily_forecast"`
}
