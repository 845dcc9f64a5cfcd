package matchup

import "context"

// Repository exposes matchup reads and the paired score write.
type Repository interface {
	ListActiveByWeek(ctx context.Context, week int) ([]Matchup, error)
	// UpdateScores writes both team scores in a single atomic update so a
	// reader never observes one side refreshed and the other stale.
	UpdateScores(ctx context.Context, id string, team1Score, team2Score float64) error
}
