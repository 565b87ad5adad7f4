package service

import (
	"context"
	"errors"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/middleware"
	"github.com/fakhrymubarak/weather-activity-api/internal/model"
	"github.com/fakhrymubarak/weather-activity-api/internal/ranking"
)

var ErrActivityRankings = errors.New("Failed to get activity rankings")

// ActivityRankingServiceInterface ranks activities for the first forecast day at a location.
type ActivityRankingServiceInterface interface {
	GetActivityRankings(ctx context.Context, latitude, longitude float64) (*model.ActivityRankings, error)
}

type ActivityRankingService struct {
	ForecastService ForecastServiceInterface
}

func NewActivityRankingService(svc ...ForecastServiceInterface) *ActivityRankingService {
	var forecastService ForecastServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		forecastService = svc[0]
	} else {
		forecastService = NewForecastService()
	}
	return &ActivityRankingService{
		ForecastService: forecastService,
	}
}

// GetActivityRankings scores today's forecast. Any failure, including a forecast
// without days, is reported as ErrActivityRankings and no partial result is returned.
func (s *ActivityRankingService) GetActivityRankings(ctx context.Context, latitude, longitude float64) (*model.ActivityRankings, error) {
	forecast, err := s.ForecastService.GetDailyForecast(ctx, latitude, longitude)
	if err != nil {
		config.GetLogger().Errorw("Error getting activity rankings", "request_id", middleware.RequestIDFromContext(ctx), "latitude", latitude, "longitude", longitude, "error", err)
		return nil, ErrActivityRankings
	}
	if forecast == nil || len(forecast.DailyForecast) == 0 {
		config.GetLogger().Errorw("Error getting activity rankings", "request_id", middleware.RequestIDFromContext(ctx), "latitude", latitude, "longitude", longitude, "error", "empty daily forecast")
		return nil, ErrActivityRankings
	}

	rankings := ranking.Rank(forecast.DailyForecast[0])
	return &rankings, nil
}
