package response_models

import "encoding/json"

// PlaceInfo is what the place-details lookup yields for one location.
// The zero value means nothing could be fetched.
type PlaceInfo struct {
	OpeningHours json.RawMessage `json:"opening_hours,omitempty"`
	PopularTimes []DayPopularity `json:"popular_times,omitempty"`
	LiveBusyness *float64        `json:"live,omitempty"`
}

type DayPopularity struct {
	Day  int              `json:"day"`
	Data []HourPopularity `json:"data"`
}

type HourPopularity struct {
	Time       int     `json:"time"`
	Popularity float64 `json:"popularity"`
}
