package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"urbanflow/internal/models/db_models"
	"urbanflow/pkg/utils"
)

type memVisitRepo struct {
	visits   []db_models.Visit
	err      error
	gotLimit int
}

func (m *memVisitRepo) CreateVisit(ctx context.Context, visit db_models.Visit) error {
	if m.err != nil {
		return m.err
	}
	m.visits = append(m.visits, visit)
	return nil
}

func (m *memVisitRepo) GetRecentVisits(ctx context.Context, limit int) ([]db_models.Visit, error) {
	m.gotLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	out := append([]db_models.Visit(nil), m.visits...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func newTestVisitService(repo *memVisitRepo, now time.Time) *VisitService {
	return &VisitService{visitRepo: repo, loc: testLoc, now: func() time.Time { return now }}
}

func TestRecordVisitUsesLocalTimestamp(t *testing.T) {
	repo := &memVisitRepo{}
	svc := newTestVisitService(repo, time.Date(2025, 6, 4, 21, 30, 5, 0, time.UTC))

	if err := svc.RecordVisit(context.Background(), "Hanul Vechi, Baia Mare"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.visits) != 1 {
		t.Fatalf("expected one stored visit, got %d", len(repo.visits))
	}
	if got := repo.visits[0].Timestamp; got != "2025-06-04 23:30:05" {
		t.Fatalf("expected Bucharest timestamp, got %q", got)
	}
}

func TestRecordVisitStorageError(t *testing.T) {
	svc := newTestVisitService(&memVisitRepo{err: errors.New("locked")}, time.Now())
	if err := svc.RecordVisit(context.Background(), "x"); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
}

func TestGetRecentVisitsNewestFirstAndBounded(t *testing.T) {
	repo := &memVisitRepo{}
	base := time.Date(2025, 6, 4, 8, 0, 0, 0, testLoc)
	for i := 0; i < 20; i++ {
		svc := newTestVisitService(repo, base.Add(time.Duration(i)*time.Minute))
		if err := svc.RecordVisit(context.Background(), "stop"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	svc := newTestVisitService(repo, base)
	for _, limit := range []int{1, 5, 15, 50} {
		got, err := svc.GetRecentVisits(context.Background(), limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) > limit {
			t.Fatalf("limit %d: got %d visits", limit, len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].Timestamp < got[i].Timestamp {
				t.Fatalf("limit %d: visits not newest-first at %d", limit, i)
			}
		}
	}
}

func TestGetRecentVisitsDefaultLimit(t *testing.T) {
	repo := &memVisitRepo{}
	svc := newTestVisitService(repo, time.Now())
	if _, err := svc.GetRecentVisits(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.gotLimit != DefaultVisitHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultVisitHistoryLimit, repo.gotLimit)
	}
}

func TestGetRecentVisitsStorageError(t *testing.T) {
	svc := newTestVisitService(&memVisitRepo{err: errors.New("gone")}, time.Now())
	if _, err := svc.GetRecentVisits(context.Background(), 15); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("expected ErrDatabaseError, got %v", err)
	}
}
