package request_models

type ItineraryRequest struct {
	Itinerary string `form:"itinerary"`
}
