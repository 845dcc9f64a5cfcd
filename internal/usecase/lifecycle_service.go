package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/fixture"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
)

// LifecycleService advances gameweeks through upcoming, live, and complete.
// The transitions are one-way and delegated to the repository, which makes
// them idempotent, so a repeated pass over the same wall-clock state writes
// nothing.
type LifecycleService struct {
	provider     FixtureProvider
	gameweekRepo gameweek.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewLifecycleService(
	provider FixtureProvider,
	gameweekRepo gameweek.Repository,
	logger *logging.Logger,
) *LifecycleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LifecycleService{
		provider:     provider,
		gameweekRepo: gameweekRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Tick inspects every gameweek once. A week whose transition check fails is
// logged and skipped; the other weeks still advance.
func (s *LifecycleService) Tick(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LifecycleService.Tick")
	defer span.End()

	weeks, err := s.gameweekRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list gameweeks: %w", err)
	}

	now := s.now().UTC()
	failed := 0
	for _, gw := range weeks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.advanceWeek(ctx, gw, now); err != nil {
			s.logger.WarnContext(ctx, "advance gameweek failed",
				"week", gw.Week,
				"status", gw.Status,
				"error", err,
			)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("advance gameweeks: %d of %d failed", failed, len(weeks))
	}
	return nil
}

func (s *LifecycleService) advanceWeek(ctx context.Context, gw gameweek.Gameweek, now time.Time) error {
	switch {
	case gw.IsUpcoming():
		if !gw.LockDue(now) {
			return nil
		}
		if err := s.gameweekRepo.GoLive(ctx, gw.Week); err != nil {
			return fmt.Errorf("go live: %w", err)
		}
		s.logger.InfoContext(ctx, "gameweek went live", "week", gw.Week, "lock_at", gw.LockAt)
		return nil

	case gw.IsLive():
		done, err := s.allFixturesFinished(ctx, gw.Week)
		if err != nil {
			return fmt.Errorf("check fixtures finished: %w", err)
		}
		if !done {
			return nil
		}
		if err := s.gameweekRepo.CloseWeek(ctx, gw.Week); err != nil {
			return fmt.Errorf("close week: %w", err)
		}
		s.logger.InfoContext(ctx, "gameweek completed", "week", gw.Week)
		return nil

	default:
		return nil
	}
}

// allFixturesFinished reports whether every fixture of the round has reached
// a terminal status. A round with no fixtures reports false so a week never
// completes off an empty or not-yet-published schedule.
func (s *LifecycleService) allFixturesFinished(ctx context.Context, week int) (bool, error) {
	fixtures, err := s.provider.ListFixtures(ctx, week)
	if err != nil {
		return false, err
	}
	return fixture.AllTerminal(fixtures), nil
}
