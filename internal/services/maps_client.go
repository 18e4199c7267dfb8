package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"urbanflow/internal/config"
	"urbanflow/internal/models/response_models"
)

const (
	statusOK       = "OK"
	travelMode     = "driving"
	detailsFields  = "opening_hours,popular_times,current_opening_hours"
	waypointJoiner = "|"
)

type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type DirectionsLeg struct {
	Duration TextValue `json:"duration"`
	Distance TextValue `json:"distance"`
}

type DirectionsRoute struct {
	Legs []DirectionsLeg `json:"legs"`
}

type DirectionsResponse struct {
	Status string            `json:"status"`
	Routes []DirectionsRoute `json:"routes"`
}

// -------------- Google Maps web services client ---------------

type MapsClientInterface interface {
	// TextSearch returns the first matching place id, or "" when the search
	// status is not OK or nothing matched.
	TextSearch(ctx context.Context, query string) (string, error)
	PlaceDetails(ctx context.Context, placeID string) (response_models.PlaceInfo, error)
	Directions(ctx context.Context, origin, destination string, waypoints []string) (*DirectionsResponse, error)
}

type GoogleMapsClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string // e.g. https://maps.googleapis.com/maps/api
}

func NewGoogleMapsClient(cfg config.Config, httpClient *http.Client) *GoogleMapsClient {
	return &GoogleMapsClient{
		HTTP:    httpClient,
		APIKey:  cfg.GoogleAPIKey,
		BaseURL: strings.TrimSuffix(cfg.MapsBaseURL, "/"),
	}
}

func (c *GoogleMapsClient) TextSearch(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("query", query)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			PlaceID string `json:"place_id"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, "/place/textsearch/json", q, &payload); err != nil {
		return "", fmt.Errorf("text search: %w", err)
	}
	if payload.Status != statusOK || len(payload.Results) == 0 {
		return "", nil
	}
	return payload.Results[0].PlaceID, nil
}

func (c *GoogleMapsClient) PlaceDetails(ctx context.Context, placeID string) (response_models.PlaceInfo, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)

	var payload struct {
		Result struct {
			OpeningHours        json.RawMessage                 `json:"opening_hours"`
			PopularTimes        []response_models.DayPopularity `json:"popular_times"`
			CurrentOpeningHours struct {
				Live *float64 `json:"live"`
			} `json:"current_opening_hours"`
		} `json:"result"`
	}
	if err := c.getJSON(ctx, "/place/details/json", q, &payload); err != nil {
		return response_models.PlaceInfo{}, fmt.Errorf("place details: %w", err)
	}

	return response_models.PlaceInfo{
		OpeningHours: payload.Result.OpeningHours,
		PopularTimes: payload.Result.PopularTimes,
		LiveBusyness: payload.Result.CurrentOpeningHours.Live,
	}, nil
}

func (c *GoogleMapsClient) Directions(ctx context.Context, origin, destination string, waypoints []string) (*DirectionsResponse, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	if len(waypoints) > 0 {
		q.Set("waypoints", strings.Join(waypoints, waypointJoiner))
	}
	q.Set("mode", travelMode)

	var payload DirectionsResponse
	if err := c.getJSON(ctx, "/directions/json", q, &payload); err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}
	return &payload, nil
}

func (c *GoogleMapsClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("key", c.APIKey)
	endpoint := c.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which carries the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("google maps http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("google maps bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("google maps decode: %w", err)
	}
	return nil
}
