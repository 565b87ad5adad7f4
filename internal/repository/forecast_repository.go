package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/metrics"
	"github.com/fakhrymubarak/weather-activity-api/internal/middleware"
	"github.com/fakhrymubarak/weather-activity-api/internal/model"
)

const (
	hourlyVariables = "temperature_2m,weather_code"
	dailyVariables  = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max"
)

// ForecastRepository defines the interface for forecast data access
type ForecastRepository interface {
	GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*model.HourlyWeatherForecast, error)
	GetDailyForecast(ctx context.Context, latitude, longitude float64) (*model.DailyWeatherForecast, error)
}

// forecastRepository implements ForecastRepository on the Open-Meteo forecast API
type forecastRepository struct {
	client openMeteoClient
}

// NewForecastRepository creates a new forecast repository instance
func NewForecastRepository(m *metrics.UpstreamMetrics, httpClient ...*http.Client) ForecastRepository {
	return &forecastRepository{
		client: newOpenMeteoClient(m, httpClient),
	}
}

// GetHourlyForecast fetches the hourly forecast and zips its arrays into per-hour records.
// Every failure is reported as ErrForecastUnavailable; the cause is only logged.
func (r *forecastRepository) GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*model.HourlyWeatherForecast, error) {
	data, err := r.fetch(ctx, metrics.EndpointHourlyForecast, latitude, longitude, "hourly", hourlyVariables)
	if err != nil {
		return nil, err
	}

	hourly, err := normalizeHourly(data.Hourly)
	if err != nil {
		return nil, r.shapeFailure(ctx, metrics.EndpointHourlyForecast, latitude, longitude, err)
	}
	current, err := normalizeCurrent(data.CurrentWeather)
	if err != nil {
		return nil, r.shapeFailure(ctx, metrics.EndpointHourlyForecast, latitude, longitude, err)
	}

	return &model.HourlyWeatherForecast{
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Timezone:             data.Timezone,
		TimezoneAbbreviation: data.TimezoneAbbreviation,
		CurrentWeather:       current,
		HourlyForecast:       hourly,
	}, nil
}

// GetDailyForecast fetches the daily forecast and zips its arrays into per-day records.
func (r *forecastRepository) GetDailyForecast(ctx context.Context, latitude, longitude float64) (*model.DailyWeatherForecast, error) {
	data, err := r.fetch(ctx, metrics.EndpointDailyForecast, latitude, longitude, "daily", dailyVariables)
	if err != nil {
		return nil, err
	}

	daily, err := normalizeDaily(data.Daily)
	if err != nil {
		return nil, r.shapeFailure(ctx, metrics.EndpointDailyForecast, latitude, longitude, err)
	}
	current, err := normalizeCurrent(data.CurrentWeather)
	if err != nil {
		return nil, r.shapeFailure(ctx, metrics.EndpointDailyForecast, latitude, longitude, err)
	}

	return &model.DailyWeatherForecast{
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		Timezone:             data.Timezone,
		TimezoneAbbreviation: data.TimezoneAbbreviation,
		CurrentWeather:       current,
		DailyForecast:        daily,
	}, nil
}

func (r *forecastRepository) fetch(ctx context.Context, endpoint string, latitude, longitude float64, granularity, variables string) (*model.ForecastResponse, error) {
	if !validCoordinates(latitude, longitude) {
		config.GetLogger().Errorw("Rejected forecast request", "request_id", middleware.RequestIDFromContext(ctx), "endpoint", endpoint, "latitude", latitude, "longitude", longitude)
		return nil, ErrForecastUnavailable
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set(granularity, variables)
	params.Set("current_weather", "true")
	params.Set("timezone", "auto")

	var data model.ForecastResponse
	if err := r.client.getJSON(ctx, endpoint, config.GetForecastApiUrl(), params, &data); err != nil {
		config.GetLogger().Errorw("Failed to fetch weather data", "request_id", middleware.RequestIDFromContext(ctx), "endpoint", endpoint, "latitude", latitude, "longitude", longitude, "error", err)
		return nil, ErrForecastUnavailable
	}
	return &data, nil
}

func (r *forecastRepository) shapeFailure(ctx context.Context, endpoint string, latitude, longitude float64, err error) error {
	r.client.metrics.RecordError(endpoint, metrics.ErrorTypeShape)
	config.GetLogger().Errorw("Failed to normalize weather data", "request_id", middleware.RequestIDFromContext(ctx), "endpoint", endpoint, "latitude", latitude, "longitude", longitude, "error", err)
	return ErrForecastUnavailable
}

func validCoordinates(latitude, longitude float64) bool {
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

func normalizeCurrent(current *model.OpenMeteoCurrentWeather) (model.CurrentWeather, error) {
	if current == nil {
		return model.CurrentWeather{}, fmt.Errorf("%w: missing current_weather", errMalformedPayload)
	}
	return model.CurrentWeather{
		Time:               current.Time,
		Temperature:        current.Temperature,
		WeatherCode:        current.WeatherCode,
		WeatherDescription: model.DescribeWeatherCode(current.WeatherCode),
		IsDay:              current.IsDay == 1,
	}, nil
}

func normalizeHourly(hourly *model.OpenMeteoHourly) ([]model.HourlyWeather, error) {
	if hourly == nil {
		return nil, fmt.Errorf("%w: missing hourly block", errMalformedPayload)
	}
	n := len(hourly.Time)
	if len(hourly.Temperature2m) != n || len(hourly.WeatherCode) != n {
		return nil, fmt.Errorf("%w: hourly arrays are not aligned", errMalformedPayload)
	}

	steps := make([]model.HourlyWeather, 0, n)
	for i, t := range hourly.Time {
		steps = append(steps, model.HourlyWeather{
			Time:               t,
			Temperature:        hourly.Temperature2m[i],
			WeatherCode:        hourly.WeatherCode[i],
			WeatherDescription: model.DescribeOptionalWeatherCode(hourly.WeatherCode[i]),
		})
	}
	return steps, nil
}

func normalizeDaily(daily *model.OpenMeteoDaily) ([]model.DailyWeather, error) {
	if daily == nil {
		return nil, fmt.Errorf("%w: missing daily block", errMalformedPayload)
	}
	n := len(daily.Time)
	for _, length := range []int{
		len(daily.WeatherCode),
		len(daily.Temperature2mMax),
		len(daily.Temperature2mMin),
		len(daily.PrecipitationSum),
		len(daily.WindSpeed10mMax),
	} {
		if length != n {
			return nil, fmt.Errorf("%w: daily arrays are not aligned", errMalformedPayload)
		}
	}

	days := make([]model.DailyWeather, 0, n)
	for i, date := range daily.Time {
		days = append(days, model.DailyWeather{
			Date:               date,
			TemperatureMin:     daily.Temperature2mMin[i],
			TemperatureMax:     daily.Temperature2mMax[i],
			WeatherCode:        daily.WeatherCode[i],
			WeatherDescription: model.DescribeOptionalWeatherCode(daily.WeatherCode[i]),
			WindSpeedMax:       daily.WindSpeed10mMax[i],
			PrecipitationSum:   daily.PrecipitationSum[i],
		})
	}
	return days, nil
}
