package scoring

import "context"

// Repository persists per-player live point totals.
type Repository interface {
	// UpsertBatch writes one row per entry keyed by (team, player, week),
	// replacing any existing value for the same key.
	UpsertBatch(ctx context.Context, rows []PlayerLivePoints) error
	ListByTeamAndWeek(ctx context.Context, teamID string, week int) ([]PlayerLivePoints, error)
}
