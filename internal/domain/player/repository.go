package player

import "context"

// Repository describes the read-only player lookups the engine performs.
type Repository interface {
	GetByIDs(ctx context.Context, ids []string) ([]Player, error)
	ListByClubRefIDs(ctx context.Context, clubRefIDs []int64) ([]Player, error)
}
