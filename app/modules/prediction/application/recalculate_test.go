package predictionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	predictiondb "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/repositories"
)

func sweepRow(id uuid.UUID, predHome, predAway, actualHome, actualAway, storedPoints int) predictiondb.SweepRow {
	row := predictiondb.SweepRow{
		ActualHome: actualHome,
		ActualAway: actualAway,
	}
	row.ID = id
	row.MatchID = uuid.New()
	row.HomeGoals = predHome
	row.AwayGoals = predAway
	row.Points = storedPoints
	return row
}

func TestRecalculate(t *testing.T) {
	exactID := uuid.New()
	diffID := uuid.New()
	winnerID := uuid.New()
	wrongID := uuid.New()
	settledID := uuid.New()

	rows := []predictiondb.SweepRow{
		sweepRow(exactID, 2, 1, 2, 1, 0),   // exact score -> 3
		sweepRow(diffID, 1, 0, 2, 1, 0),    // right difference -> 2
		sweepRow(winnerID, 3, 1, 2, 1, 0),  // right winner -> 1
		sweepRow(wrongID, 0, 1, 2, 1, 0),   // wrong outcome -> stays 0
		sweepRow(settledID, 2, 1, 2, 1, 3), // already settled, no write
	}

	repo := &fakePredictionRepo{
		ListForFinishedMatchesFunc: func(ctx context.Context) ([]predictiondb.SweepRow, error) {
			return rows, nil
		},
	}
	s := newTestService(repo, &fakeMatchRepo{}, testKickoff.Add(3*time.Hour))

	updated, err := s.Recalculate(context.Background())
	if err != nil {
		t.Fatalf("Recalculate() unexpected error: %v", err)
	}
	if updated != 3 {
		t.Fatalf("Recalculate() updated = %d, want 3", updated)
	}

	want := map[uuid.UUID]int{exactID: 3, diffID: 2, winnerID: 1}
	for id, points := range want {
		if got := repo.updatePointsCalls[id]; got != points {
			t.Errorf("prediction %s written with %d points, want %d", id, got, points)
		}
	}
	if _, ok := repo.updatePointsCalls[wrongID]; ok {
		t.Errorf("wrong prediction already at 0 must not be rewritten")
	}
	if _, ok := repo.updatePointsCalls[settledID]; ok {
		t.Errorf("settled prediction must not be rewritten")
	}
}

func TestRecalculateIdempotent(t *testing.T) {
	id := uuid.New()
	stored := 0
	repo := &fakePredictionRepo{}
	repo.ListForFinishedMatchesFunc = func(ctx context.Context) ([]predictiondb.SweepRow, error) {
		return []predictiondb.SweepRow{sweepRow(id, 2, 1, 2, 1, stored)}, nil
	}
	repo.UpdatePointsFunc = func(ctx context.Context, _ uuid.UUID, points int) error {
		stored = points
		return nil
	}
	s := newTestService(repo, &fakeMatchRepo{}, testKickoff.Add(3*time.Hour))

	first, err := s.Recalculate(context.Background())
	if err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	if first != 1 {
		t.Fatalf("first sweep updated = %d, want 1", first)
	}

	second, err := s.Recalculate(context.Background())
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if second != 0 {
		t.Fatalf("second sweep updated = %d, want 0", second)
	}
}

func TestRecalculateSkipsFailedRecords(t *testing.T) {
	badID := uuid.New()
	goodID := uuid.New()
	repo := &fakePredictionRepo{
		ListForFinishedMatchesFunc: func(ctx context.Context) ([]predictiondb.SweepRow, error) {
			return []predictiondb.SweepRow{
				sweepRow(badID, 2, 1, 2, 1, 0),
				sweepRow(goodID, 1, 0, 2, 1, 0),
			}, nil
		},
		UpdatePointsFunc: func(ctx context.Context, id uuid.UUID, points int) error {
			if id == badID {
				return errors.New("deadlock detected")
			}
			return nil
		},
	}
	s := newTestService(repo, &fakeMatchRepo{}, testKickoff.Add(3*time.Hour))

	updated, err := s.Recalculate(context.Background())
	if err != nil {
		t.Fatalf("Recalculate() must not fail on a single bad record: %v", err)
	}
	if updated != 1 {
		t.Fatalf("updated = %d, want 1 (bad record skipped)", updated)
	}
}

func TestRecalculateListFailure(t *testing.T) {
	listErr := errors.New("relation does not exist")
	repo := &fakePredictionRepo{
		ListForFinishedMatchesFunc: func(ctx context.Context) ([]predictiondb.SweepRow, error) {
			return nil, listErr
		},
	}
	s := newTestService(repo, &fakeMatchRepo{}, testKickoff)

	if _, err := s.Recalculate(context.Background()); !errors.Is(err, listErr) {
		t.Fatalf("error = %v, want wrapped %v", err, listErr)
	}
}
