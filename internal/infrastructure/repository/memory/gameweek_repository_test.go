package memory

import (
	"context"
	"testing"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
)

func TestGameweekRepository_GuardedTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewGameweekRepository(SeedGameweeks())

	if err := repo.GoLive(ctx, 3); err != nil {
		t.Fatalf("go live week 3: %v", err)
	}

	live, err := repo.ListByStatus(ctx, gameweek.StatusLive)
	if err != nil {
		t.Fatalf("list live weeks: %v", err)
	}
	if len(live) != 2 {
		t.Fatalf("expected 2 live weeks, got %d", len(live))
	}

	// Repeat call is a no-op: week 3 already left upcoming.
	if err := repo.GoLive(ctx, 3); err != nil {
		t.Fatalf("repeat go live week 3: %v", err)
	}
	live, err = repo.ListByStatus(ctx, gameweek.StatusLive)
	if err != nil {
		t.Fatalf("list live weeks: %v", err)
	}
	if len(live) != 2 {
		t.Fatalf("expected repeat transition to change nothing, got %d live weeks", len(live))
	}

	// A complete week never comes back.
	if err := repo.GoLive(ctx, 1); err != nil {
		t.Fatalf("go live week 1: %v", err)
	}
	complete, err := repo.ListByStatus(ctx, gameweek.StatusComplete)
	if err != nil {
		t.Fatalf("list complete weeks: %v", err)
	}
	if len(complete) != 1 || complete[0].Week != 1 {
		t.Fatalf("expected week 1 to stay complete, got %+v", complete)
	}

	if err := repo.CloseWeek(ctx, 2); err != nil {
		t.Fatalf("close week 2: %v", err)
	}
	complete, err = repo.ListByStatus(ctx, gameweek.StatusComplete)
	if err != nil {
		t.Fatalf("list complete weeks: %v", err)
	}
	if len(complete) != 2 {
		t.Fatalf("expected 2 complete weeks, got %d", len(complete))
	}
}

func TestGameweekRepository_CloseSkipsUpcomingWeek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewGameweekRepository(SeedGameweeks())

	if err := repo.CloseWeek(ctx, 3); err != nil {
		t.Fatalf("close week 3: %v", err)
	}

	upcoming, err := repo.ListByStatus(ctx, gameweek.StatusUpcoming)
	if err != nil {
		t.Fatalf("list upcoming weeks: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Week != 3 {
		t.Fatalf("expected week 3 to stay upcoming, got %+v", upcoming)
	}
}
