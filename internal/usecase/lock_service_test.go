package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/fixture"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
)

func TestLockService_LocksOnlyStartedClubs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)
	provider := &stubProvider{
		fixtures: map[int][]fixture.Fixture{
			3: {
				{ExternalID: 19000, HomeClubRefID: 3319, AwayClubRefID: 3321, KickoffAt: now.Add(-30 * time.Minute), Status: "1H"},
				{ExternalID: 19001, HomeClubRefID: 3320, AwayClubRefID: 3468, KickoffAt: now.Add(3 * time.Hour), Status: "NS"},
			},
		},
	}
	players := &stubPlayerRepository{
		players: []player.Player{
			{ID: "p-1", PlayerRefID: 537, ClubRefID: 3319, Position: player.PositionGoalkeeper},
			{ID: "p-2", PlayerRefID: 540, ClubRefID: 3321, Position: player.PositionDefender},
			{ID: "p-3", PlayerRefID: 551, ClubRefID: 3468, Position: player.PositionAttacker},
		},
	}
	rosters := &stubRosterRepository{
		assignments: []roster.Assignment{
			{TeamID: "team-a", PlayerID: "p-1", Week: 3},
			{TeamID: "team-a", PlayerID: "p-3", Week: 3},
			{TeamID: "team-b", PlayerID: "p-2", Week: 3},
		},
	}

	service := NewLockService(provider, players, rosters, logging.NewNop())
	service.now = func() time.Time { return now }

	locked, err := service.LockStartedPlayers(context.Background(), 3)
	if err != nil {
		t.Fatalf("LockStartedPlayers error: %v", err)
	}
	if locked != 2 {
		t.Fatalf("expected 2 rows locked, got %d", locked)
	}

	for _, item := range rosters.assignments {
		wantLocked := item.PlayerID == "p-1" || item.PlayerID == "p-2"
		if item.Locked != wantLocked {
			t.Fatalf("assignment %s locked=%v, want %v", item.PlayerID, item.Locked, wantLocked)
		}
	}
}

func TestLockService_SecondPassFlipsNothing(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC)
	provider := &stubProvider{
		fixtures: map[int][]fixture.Fixture{
			3: {
				{ExternalID: 19000, HomeClubRefID: 3319, AwayClubRefID: 3321, KickoffAt: now.Add(-time.Hour), Status: "2H"},
			},
		},
	}
	players := &stubPlayerRepository{
		players: []player.Player{
			{ID: "p-1", PlayerRefID: 537, ClubRefID: 3319, Position: player.PositionMidfielder},
		},
	}
	rosters := &stubRosterRepository{
		assignments: []roster.Assignment{
			{TeamID: "team-a", PlayerID: "p-1", Week: 3},
		},
	}

	service := NewLockService(provider, players, rosters, logging.NewNop())
	service.now = func() time.Time { return now }

	locked, err := service.LockStartedPlayers(context.Background(), 3)
	if err != nil {
		t.Fatalf("first pass error: %v", err)
	}
	if locked != 1 {
		t.Fatalf("expected 1 row locked on first pass, got %d", locked)
	}

	locked, err = service.LockStartedPlayers(context.Background(), 3)
	if err != nil {
		t.Fatalf("second pass error: %v", err)
	}
	if locked != 0 {
		t.Fatalf("expected 0 rows locked on second pass, got %d", locked)
	}
}

func TestLockService_NoStartedFixturesSkipsRepos(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	provider := &stubProvider{
		fixtures: map[int][]fixture.Fixture{
			3: {
				{ExternalID: 19000, HomeClubRefID: 3319, AwayClubRefID: 3321, KickoffAt: now.Add(4 * time.Hour), Status: "NS"},
			},
		},
	}
	rosters := &stubRosterRepository{}

	service := NewLockService(provider, &stubPlayerRepository{}, rosters, logging.NewNop())
	service.now = func() time.Time { return now }

	locked, err := service.LockStartedPlayers(context.Background(), 3)
	if err != nil {
		t.Fatalf("LockStartedPlayers error: %v", err)
	}
	if locked != 0 {
		t.Fatalf("expected 0 rows locked, got %d", locked)
	}
	if rosters.lockCalls != 0 {
		t.Fatalf("expected no lock write, got %d calls", rosters.lockCalls)
	}
}
