// Package graph exposes the city, forecast and activity ranking services as a
// read-only GraphQL query surface.
//
// None of the query fields ever surface a resolver error: failures degrade to an
// empty list (citySuggestions) or null (everything else) and are only logged.
package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/fakhrymubarak/weather-activity-api/internal/config"
	"github.com/fakhrymubarak/weather-activity-api/internal/middleware"
	"github.com/fakhrymubarak/weather-activity-api/internal/service"
)

// Resolver holds the services backing the Query fields.
type Resolver struct {
	Cities    service.CityServiceInterface
	Forecasts service.ForecastServiceInterface
	Rankings  service.ActivityRankingServiceInterface
}

// NewResolver wires the default services when none are given.
func NewResolver(cities service.CityServiceInterface, forecasts service.ForecastServiceInterface, rankings service.ActivityRankingServiceInterface) *Resolver {
	if cities == nil {
		cities = service.NewCityService()
	}
	if forecasts == nil {
		forecasts = service.NewForecastService()
	}
	if rankings == nil {
		rankings = service.NewActivityRankingService(forecasts)
	}
	return &Resolver{
		Cities:    cities,
		Forecasts: forecasts,
		Rankings:  rankings,
	}
}

var coordinateArgs = graphql.FieldConfigArgument{
	"latitude":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
	"longitude": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
}

// NewSchema builds the executable schema around r.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"citySuggestions": &graphql.Field{
				Description: "Get city suggestions based on partial or complete user input",
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(cityType))),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.citySuggestions,
			},
			"hourlyWeatherForecast": &graphql.Field{
				Description: "Get hourly weather forecast for a selected city",
				Type:        hourlyWeatherForecastType,
				Args:        coordinateArgs,
				Resolve:     r.hourlyWeatherForecast,
			},
			"dailyWeatherForecast": &graphql.Field{
				Description: "Get daily weather forecast for a selected city",
				Type:        dailyWeatherForecastType,
				Args:        coordinateArgs,
				Resolve:     r.dailyWeatherForecast,
			},
			"activityRankings": &graphql.Field{
				Description: "Get activity rankings based on weather forecast for a location",
				Type:        activityRankingsType,
				Args:        coordinateArgs,
				Resolve:     r.activityRankings,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

func (r *Resolver) citySuggestions(p graphql.ResolveParams) (any, error) {
	query, _ := p.Args["query"].(string)
	return r.Cities.SearchCities(p.Context, query), nil
}

func (r *Resolver) hourlyWeatherForecast(p graphql.ResolveParams) (any, error) {
	lat, lon := coordinates(p)
	forecast, err := r.Forecasts.GetHourlyForecast(p.Context, lat, lon)
	if err != nil || forecast == nil {
		config.GetLogger().Errorw("Failed to fetch weather data", "request_id", middleware.RequestIDFromContext(p.Context), "query", "hourlyWeatherForecast", "latitude", lat, "longitude", lon, "error", err)
		return nil, nil
	}
	return forecast, nil
}

func (r *Resolver) dailyWeatherForecast(p graphql.ResolveParams) (any, error) {
	lat, lon := coordinates(p)
	forecast, err := r.Forecasts.GetDailyForecast(p.Context, lat, lon)
	if err != nil || forecast == nil {
		config.GetLogger().Errorw("Failed to fetch weather data", "request_id", middleware.RequestIDFromContext(p.Context), "query", "dailyWeatherForecast", "latitude", lat, "longitude", lon, "error", err)
		return nil, nil
	}
	return forecast, nil
}

func (r *Resolver) activityRankings(p graphql.ResolveParams) (any, error) {
	lat, lon := coordinates(p)
	rankings, err := r.Rankings.GetActivityRankings(p.Context, lat, lon)
	if err != nil || rankings == nil {
		config.GetLogger().Errorw("Failed to get activity rankings", "request_id", middleware.RequestIDFromContext(p.Context), "latitude", lat, "longitude", lon, "error", err)
		return nil, nil
	}
	return rankings, nil
}

func coordinates(p graphql.ResolveParams) (float64, float64) {
	lat, _ := p.Args["latitude"].(float64)
	lon, _ := p.Args["longitude"].(float64)
	return lat, lon
}
