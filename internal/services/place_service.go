package services

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
	"urbanflow/internal/models/response_models"
)

type PlaceServiceInterface interface {
	// FetchPlaceInfo returns one PlaceInfo per location, in input order.
	FetchPlaceInfo(ctx context.Context, locations []string) []response_models.PlaceInfo
}

type PlaceService struct {
	maps MapsClientInterface
}

func NewPlaceService(maps MapsClientInterface) PlaceServiceInterface {
	return &PlaceService{maps: maps}
}

func (p *PlaceService) FetchPlaceInfo(ctx context.Context, locations []string) []response_models.PlaceInfo {
	results := make([]response_models.PlaceInfo, len(locations))

	// Tasks never return an error and recover their own panics: one failed
	// lookup must not cancel or crash the others.
	var g errgroup.Group
	for i, location := range locations {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Error fetching data for %s: panic: %v", location, r)
					results[i] = response_models.PlaceInfo{}
				}
			}()
			info, err := p.fetchOne(ctx, location)
			if err != nil {
				log.Printf("Error fetching data for %s: %v", location, err)
				return nil
			}
			results[i] = info
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (p *PlaceService) fetchOne(ctx context.Context, location string) (response_models.PlaceInfo, error) {
	placeID, err := p.maps.TextSearch(ctx, location)
	if err != nil {
		return response_models.PlaceInfo{}, err
	}
	if placeID == "" {
		return response_models.PlaceInfo{}, nil
	}
	return p.maps.PlaceDetails(ctx, placeID)
}
