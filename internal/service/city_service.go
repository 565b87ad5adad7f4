package service

import (
	"context"
	"strings"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/middleware"
	"github.com/fakhrymubarak/weather-activity-api/internal/model"
	"github.com/fakhrymubarak/weather-activity-api/internal/repository"
)

// CityServiceInterface looks up cities by free-text name.
type CityServiceInterface interface {
	SearchCities(ctx context.Context, query string) []model.City
}

type CityService struct {
	CityRepo repository.CityRepository
}

func NewCityService(repo ...repository.CityRepository) *CityService {
	var cityRepo repository.CityRepository
	if len(repo) > 0 && repo[0] != nil {
		cityRepo = repo[0]
	} else {
		cityRepo = repository.NewCityRepository(nil)
	}
	return &CityService{
		CityRepo: cityRepo,
	}
}

// SearchCities never fails: blank queries and upstream errors both yield an empty list.
func (s *CityService) SearchCities(ctx context.Context, query string) []model.City {
	if strings.TrimSpace(query) == "" {
		return []model.City{}
	}

	cities, err := s.CityRepo.SearchCities(ctx, query)
	if err != nil {
		config.GetLogger().Warnw("City search degraded to empty result", "request_id", middleware.RequestIDFromContext(ctx), "query", query, "error", err)
		return []model.City{}
	}
	if cities == nil {
		return []model.City{}
	}
	return cities
}
