package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"urbanflow/internal/config"
	"urbanflow/internal/models/response_models"
	"urbanflow/pkg/utils"
)

// DirectionsStatusError carries a non-OK status from the Directions API.
type DirectionsStatusError struct {
	Status string
}

func (e *DirectionsStatusError) Error() string {
	return e.Status
}

type RouteServiceInterface interface {
	CalculateRoute(ctx context.Context, locations []string) (*response_models.Itinerary, error)
}

type RouteService struct {
	maps       MapsClientInterface
	places     PlaceServiceInterface
	popularity PopularityServiceInterface
	visits     VisitServiceInterface
	apiKey     string
	embedURL   string
	loc        *time.Location
	now        func() time.Time
}

func NewRouteService(
	cfg config.Config,
	maps MapsClientInterface,
	places PlaceServiceInterface,
	popularity PopularityServiceInterface,
	visits VisitServiceInterface,
) RouteServiceInterface {
	return &RouteService{
		maps:       maps,
		places:     places,
		popularity: popularity,
		visits:     visits,
		apiKey:     cfg.GoogleAPIKey,
		embedURL:   cfg.MapsEmbedURL,
		loc:        cfg.Location(),
		now:        time.Now,
	}
}

// CalculateRoute builds a driving itinerary through locations in order.
// Any failure aborts the whole calculation; only per-location place lookups
// degrade on their own.
func (r *RouteService) CalculateRoute(ctx context.Context, locations []string) (*response_models.Itinerary, error) {
	if len(locations) < 2 {
		return nil, utils.ErrTooFewLocations
	}

	origin, destination := locations[0], locations[len(locations)-1]
	waypoints := locations[1 : len(locations)-1]

	directions, err := r.maps.Directions(ctx, origin, destination, waypoints)
	if err != nil {
		return nil, err
	}
	if directions.Status != statusOK {
		return nil, &DirectionsStatusError{Status: directions.Status}
	}
	if len(directions.Routes) == 0 {
		return nil, utils.ErrNoRoute
	}
	legs := directions.Routes[0].Legs

	start := r.now()
	placeInfo := r.places.FetchPlaceInfo(ctx, locations)

	// Leg i starts at locations[i], so the destination never gets its own stop.
	stops := make([]response_models.RouteStop, 0, len(legs))
	totalDuration, totalDistance := 0, 0
	for i, leg := range legs {
		if i >= len(locations) || i >= len(placeInfo) {
			return nil, fmt.Errorf("%w: leg %d of %d", utils.ErrLegMismatch, i, len(legs))
		}

		totalDuration += leg.Duration.Value
		totalDistance += leg.Distance.Value
		arrival := start.Add(time.Duration(totalDuration) * time.Second)

		bestTime := r.popularity.Analyze(placeInfo[i])
		if err := r.visits.RecordVisit(ctx, locations[i]); err != nil {
			return nil, err
		}

		stops = append(stops, response_models.RouteStop{
			Location:        locations[i],
			Duration:        leg.Duration.Text,
			Distance:        leg.Distance.Text,
			Arrival:         utils.FormatClock(arrival, r.loc),
			BestTimeToVisit: bestTime,
			IsDestination:   i == len(legs)-1,
		})
	}

	return &response_models.Itinerary{
		Stops: stops,
		Summary: &response_models.RouteSummary{
			TotalDuration: utils.FormatDuration(totalDuration),
			TotalDistance: utils.FormatKilometers(totalDistance),
			MapsEmbedURL:  r.buildEmbedURL(origin, destination, waypoints),
		},
	}, nil
}

func (r *RouteService) buildEmbedURL(origin, destination string, waypoints []string) string {
	q := url.Values{}
	q.Set("key", r.apiKey)
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", travelMode)
	if len(waypoints) > 0 {
		q.Set("waypoints", strings.Join(waypoints, waypointJoiner))
	}
	return r.embedURL + "?" + q.Encode()
}
