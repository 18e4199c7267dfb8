package services

import (
	"context"
	"fmt"
	"time"

	"urbanflow/internal/models/db_models"
	"urbanflow/internal/models/response_models"
	"urbanflow/internal/repositories"
	"urbanflow/pkg/utils"
)

const DefaultVisitHistoryLimit = 15

type VisitServiceInterface interface {
	RecordVisit(ctx context.Context, location string) error
	GetRecentVisits(ctx context.Context, limit int) ([]response_models.VisitResponse, error)
}

type VisitService struct {
	visitRepo repositories.VisitRepository
	loc       *time.Location
	now       func() time.Time
}

func NewVisitService(visitRepo repositories.VisitRepository, loc *time.Location) VisitServiceInterface {
	return &VisitService{
		visitRepo: visitRepo,
		loc:       loc,
		now:       time.Now,
	}
}

func (v *VisitService) RecordVisit(ctx context.Context, location string) error {
	visit := db_models.Visit{
		Location:  location,
		Timestamp: utils.FormatTimestamp(v.now(), v.loc),
	}
	if err := v.visitRepo.CreateVisit(ctx, visit); err != nil {
		return fmt.Errorf("%w: record visit: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (v *VisitService) GetRecentVisits(ctx context.Context, limit int) ([]response_models.VisitResponse, error) {
	if limit < 1 {
		limit = DefaultVisitHistoryLimit
	}

	visits, err := v.visitRepo.GetRecentVisits(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: recent visits: %v", utils.ErrDatabaseError, err)
	}

	if len(visits) > limit {
		visits = visits[:limit]
	}

	out := make([]response_models.VisitResponse, 0, len(visits))
	for _, visit := range visits {
		out = append(out, response_models.VisitResponse{
			Location:  visit.Location,
			Timestamp: visit.Timestamp,
		})
	}
	return out, nil
}
