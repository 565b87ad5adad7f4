// Package ranking scores how suitable a day's weather is for a handful of activities.
//
// Every scorer is a pure function of a single model.DailyWeather: it starts from a
// baseline, applies its rules in a fixed order, and clamps the result to [MinScore, MaxScore].
// Each rule that fires contributes one sentence to the explanation. Rules keyed on a
// value the upstream did not report (nil code, wind or precipitation) never fire.
package ranking

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/fakhrymubarak/weather-activity-api/internal/model"
)

const (
	MinScore = 1
	MaxScore = 10
)

const defaultIndoorExplanation = "Standard conditions for indoor activities."

// WMO weather code groups the scorers react to.
var (
	snowCodes       = []int{71, 73, 75, 77, 85, 86}
	clearCodes      = []int{0, 1, 2}
	badWeatherCodes = []int{45, 48, 51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 71, 73, 75, 77, 80, 81, 82, 85, 86, 95, 96, 99}
)

// explainer accumulates a score and the sentences justifying it.
type explainer struct {
	score float64
	parts []string
}

func (e *explainer) add(delta float64, reason string) {
	e.score += delta
	e.parts = append(e.parts, reason)
}

func (e *explainer) note(reason string) {
	e.parts = append(e.parts, reason)
}

func (e *explainer) result() model.RankingScore {
	return model.RankingScore{
		Score:       clamp(e.score),
		Explanation: strings.TrimSpace(strings.Join(e.parts, " ")),
	}
}

func hasCode(codes []int, code *int) bool {
	return code != nil && slices.Contains(codes, *code)
}

func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return MinScore
	}
	return math.Max(MinScore, math.Min(MaxScore, score))
}

// Skiing favours cold, snowy, calm days.
func Skiing(day model.DailyWeather) model.RankingScore {
	e := &explainer{}

	switch {
	case day.TemperatureMax < 5:
		e.add(3, "Cold temperatures are good for skiing.")
	case day.TemperatureMax < 10:
		e.add(1, "Cool temperatures are acceptable for skiing.")
	default:
		e.note("Temperatures too warm for skiing.")
	}

	if hasCode(snowCodes, day.WeatherCode) {
		e.add(5, "Snowy conditions are excellent for skiing.")
	}
	if day.TemperatureMax < 0 {
		e.add(2, "Below freezing temperatures may preserve snow.")
	}

	if wind := day.WindSpeedMax; wind != nil && *wind > 30 {
		e.add(-2, "High winds can make skiing dangerous.")
	}

	return e.result()
}

// Surfing favours warm days with moderate wind and little rain.
func Surfing(day model.DailyWeather) model.RankingScore {
	e := &explainer{score: 5}

	switch {
	case day.TemperatureMax > 25:
		e.add(2, "Warm temperatures are great for surfing.")
	case day.TemperatureMax > 15:
		e.add(1, "Mild temperatures are good for surfing.")
	default:
		e.add(-1, "Cool temperatures are less ideal for surfing.")
	}

	if wind := day.WindSpeedMax; wind != nil {
		switch {
		case *wind > 10 && *wind < 25:
			e.add(2, "Moderate winds can create good waves.")
		case *wind >= 25:
			e.add(-1, "Strong winds may create choppy conditions.")
		}
	}

	if precip := day.PrecipitationSum; precip != nil {
		switch {
		case *precip > 0 && *precip < 5:
			e.add(-1, "Light rain may affect visibility.")
		case *precip >= 5:
			e.add(-2, "Heavy rain can make surfing conditions poor.")
		}
	}

	return e.result()
}

// IndoorSightseeing rises as the weather outside gets worse.
func IndoorSightseeing(day model.DailyWeather) model.RankingScore {
	e := &explainer{score: 5}

	if precip := day.PrecipitationSum; precip != nil {
		switch {
		case *precip > 5:
			e.add(3, "Heavy precipitation makes indoor activities ideal.")
		case *precip > 0:
			e.add(2, "Some precipitation makes indoor activities a good choice.")
		}
	}

	if day.TemperatureMax > 30 || day.TemperatureMin < 0 {
		e.add(2, "Extreme temperatures make indoor activities more comfortable.")
	}

	if hasCode(badWeatherCodes, day.WeatherCode) {
		e.add(2, "Poor weather conditions favor indoor activities.")
	}

	score := e.result()
	if score.Explanation == "" {
		score.Explanation = defaultIndoorExplanation
	}
	return score
}

// OutdoorSightseeing favours mild, dry, clear and calm days.
func OutdoorSightseeing(day model.DailyWeather) model.RankingScore {
	e := &explainer{score: 5}

	switch {
	case day.TemperatureMax > 15 && day.TemperatureMax < 30:
		e.add(2, "Pleasant temperatures for outdoor activities.")
	case day.TemperatureMax >= 30:
		e.add(-1, "High temperatures may be uncomfortable for outdoor activities.")
	case day.TemperatureMax < 5:
		e.add(-2, "Cold temperatures may limit outdoor enjoyment.")
	}

	if precip := day.PrecipitationSum; precip != nil {
		switch {
		case *precip == 0:
			e.add(3, "No precipitation is ideal for outdoor sightseeing.")
		case *precip < 2:
			e.add(-1, "Light precipitation may affect outdoor activities.")
		default:
			e.add(-3, "Significant precipitation makes outdoor activities difficult.")
		}
	}

	if hasCode(clearCodes, day.WeatherCode) {
		e.add(2, "Clear or partly cloudy skies are perfect for sightseeing.")
	}

	if wind := day.WindSpeedMax; wind != nil && *wind > 30 {
		e.add(-2, "Strong winds can make outdoor activities uncomfortable.")
	}

	return e.result()
}

// WeatherSummary renders a one-paragraph description of the day.
func WeatherSummary(day model.DailyWeather) string {
	var precipitation string
	switch {
	case day.PrecipitationSum == nil:
		precipitation = "Precipitation data unavailable."
	case *day.PrecipitationSum > 0:
		precipitation = fmt.Sprintf("Expected precipitation: %smm.", formatNumber(*day.PrecipitationSum))
	default:
		precipitation = "No precipitation expected."
	}

	wind := "Wind speed unavailable."
	if day.WindSpeedMax != nil {
		wind = fmt.Sprintf("Wind speed: %skm/h.", formatNumber(*day.WindSpeedMax))
	}

	return fmt.Sprintf("%s with temperatures between %s°C and %s°C. %s %s",
		day.WeatherDescription,
		formatNumber(day.TemperatureMin),
		formatNumber(day.TemperatureMax),
		precipitation,
		wind,
	)
}

// Rank scores all activities for one day.
func Rank(day model.DailyWeather) model.ActivityRankings {
	return model.ActivityRankings{
		Date:               day.Date,
		Skiing:             Skiing(day),
		Surfing:            Surfing(day),
		IndoorSightseeing:  IndoorSightseeing(day),
		OutdoorSightseeing: OutdoorSightseeing(day),
		WeatherSummary:     WeatherSummary(day),
	}
}

// formatNumber prints the shortest decimal form: 2, -5, 2.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
