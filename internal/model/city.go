package model

// City is a normalized geocoding match.
type City struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode *string `json:"country_code"`
	Timezone    *string `json:"timezone"`
	Country     string  `json:"country"`
	Population  *int    `json:"population"`
}
