package repositories

import (
	"context"

	"gorm.io/gorm"
	"urbanflow/internal/models/db_models"
)

type VisitRepository interface {
	CreateVisit(ctx context.Context, visit db_models.Visit) error
	GetRecentVisits(ctx context.Context, limit int) ([]db_models.Visit, error)
}

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) CreateVisit(ctx context.Context, visit db_models.Visit) error {
	return r.db.WithContext(ctx).Create(&visit).Error
}

func (r *visitRepository) GetRecentVisits(ctx context.Context, limit int) ([]db_models.Visit, error) {
	var visits []db_models.Visit
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
