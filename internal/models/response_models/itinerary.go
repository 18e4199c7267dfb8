package response_models

type RouteStop struct {
	Location        string `json:"location"`
	Duration        string `json:"duration"`
	Distance        string `json:"distance"`
	Arrival         string `json:"arrival"`
	BestTimeToVisit string `json:"best_time_to_visit"`
	IsDestination   bool   `json:"is_destination"`
}

type RouteSummary struct {
	TotalDuration string `json:"total_duration"`
	TotalDistance string `json:"total_distance"`
	MapsEmbedURL  string `json:"maps_embed_url"`
}

type Itinerary struct {
	Stops   []RouteStop   `json:"route"`
	Summary *RouteSummary `json:"total"`
}

type VisitResponse struct {
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
}
