package model

// RankingScore is a 1-10 suitability rating with the reasons behind it.
type RankingScore struct {
	Explanation string  `json:"explanation"`
	Score       float64 `json:"score"`
}

type ActivityRankings struct {
	Date               string       `json:"date"`
	Skiing             RankingScore `json:"skiing"`
	Surfing            RankingScore `json:"surfing"`
	IndoorSightseeing  RankingScore `json:"indoorSightseeing"`
	OutdoorSightseeing RankingScore `json:"outdoorSightseeing"`
	WeatherSummary     string       `json:"weatherSummary"`
}
