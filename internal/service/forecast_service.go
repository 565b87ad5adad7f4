package service

import (
	"context"

	"github.com/fakhrymubarak/weather-activity-api/internal/model"
	"github.com/fakhrymubarak/weather-activity-api/internal/repository"
)

// ForecastServiceInterface provides hourly and daily forecasts for a coordinate pair.
type ForecastServiceInterface interface {
	GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*model.HourlyWeatherForecast, error)
	GetDailyForecast(ctx context.Context, latitude, longitude float64) (*model.DailyWeatherForecast, error)
}

type ForecastService struct {
	ForecastRepo repository.ForecastRepository
}

func NewForecastService(repo ...repository.ForecastRepository) *ForecastService {
	var forecastRepo repository.ForecastRepository
	if len(repo) > 0 && repo[0] != nil {
		forecastRepo = repo[0]
	} else {
		forecastRepo = repository.NewForecastRepository(nil)
	}
	return &ForecastService{
		ForecastRepo: forecastRepo,
	}
}

func (s *ForecastService) GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*model.HourlyWeatherForecast, error) {
	return s.ForecastRepo.GetHourlyForecast(ctx, latitude, longitude)
}

func (s *ForecastService) GetDailyForecast(ctx context.Context, latitude, longitude float64) (*model.DailyWeatherForecast, error) {
	return s.ForecastRepo.GetDailyForecast(ctx, latitude, longitude)
}
