package graph

import "github.com/graphql-go/graphql"

// Object types resolve through graphql-go's default resolver, which matches
// GraphQL field names against struct field names and json tags in internal/model.

var cityType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "City",
	Description: "A geocoding match for a free-text city query",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"latitude":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"longitude":    &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"country_code": &graphql.Field{Type: graphql.String},
		"timezone":     &graphql.Field{Type: graphql.String},
		"country":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"population":   &graphql.Field{Type: graphql.Int},
	},
})

var currentWeatherType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CurrentWeather",
	Fields: graphql.Fields{
		"time":                &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"temperature":         &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"weather_code":        &graphql.Field{Type: graphql.Int},
		"weather_description": &graphql.Field{Type: graphql.String},
		"isDay":               &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var hourlyWeatherType = graphql.NewObject(graphql.ObjectConfig{
	Name: "HourlyWeather",
	Fields: graphql.Fields{
		"time":                &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"temperature":         &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"weather_code":        &graphql.Field{Type: graphql.Int},
		"weather_description": &graphql.Field{Type: graphql.String},
	},
})

var dailyWeatherType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DailyWeather",
	Fields: graphql.Fields{
		"date":                &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"temperature_min":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"temperature_max":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"weather_code":        &graphql.Field{Type: graphql.Int},
		"weather_description": &graphql.Field{Type: graphql.String},
		"wind_speed_max":      &graphql.Field{Type: graphql.Float},
		"precipitation_sum":   &graphql.Field{Type: graphql.Float},
	},
})

var hourlyWeatherForecastType = graphql.NewObject(graphql.ObjectConfig{
	Name: "HourlyWeatherForecast",
	Fields: graphql.Fields{
		"latitude":              &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"longitude":             &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"timezone":              &graphql.Field{Type: graphql.String},
		"timezone_abbreviation": &graphql.Field{Type: graphql.String},
		"current_weather":       &graphql.Field{Type: graphql.NewNonNull(currentWeatherType)},
		"hourly_forecast":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(hourlyWeatherType)))},
	},
})

var dailyWeatherForecastType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DailyWeatherForecast",
	Fields: graphql.Fields{
		"latitude":              &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"longitude":             &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"timezone":              &graphql.Field{Type: graphql.String},
		"timezone_abbreviation": &graphql.Field{Type: graphql.String},
		"current_weather":       &graphql.Field{Type: graphql.NewNonNull(currentWeatherType)},
		"daily_forecast":        &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(dailyWeatherType)))},
	},
})

var rankingScoreType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RankingScore",
	Fields: graphql.Fields{
		"explanation": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"score":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var activityRankingsType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "ActivityRankings",
	Description: "Suitability of today's weather for a set of activities, each scored 1-10",
	Fields: graphql.Fields{
		"date":               &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"skiing":             &graphql.Field{Type: graphql.NewNonNull(rankingScoreType)},
		"surfing":            &graphql.Field{Type: graphql.NewNonNull(rankingScoreType)},
		"indoorSightseeing":  &graphql.Field{Type: graphql.NewNonNull(rankingScoreType)},
		"outdoorSightseeing": &graphql.Field{Type: graphql.NewNonNull(rankingScoreType)},
		"weatherSummary":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})
