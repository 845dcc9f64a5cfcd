package gameweek

import "context"

// Repository exposes gameweek reads and the two lifecycle transitions.
// GoLive and CloseWeek must be idempotent: invoking them on a week that has
// already advanced leaves the row untouched.
type Repository interface {
	List(ctx context.Context) ([]Gameweek, error)
	ListByStatus(ctx context.Context, status string) ([]Gameweek, error)
	GoLive(ctx context.Context, week int) error
	CloseWeek(ctx context.Context, week int) error
}
