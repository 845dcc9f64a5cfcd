package roster

import "context"

// Repository exposes roster reads plus the one-way lock write.
type Repository interface {
	ListByTeamAndWeek(ctx context.Context, teamID string, week int) ([]Assignment, error)
	// LockPlayers sets locked=true for the given players' assignments in the
	// week, skipping rows already locked, and returns the number of rows it
	// actually flipped. Re-running with the same inputs writes nothing.
	LockPlayers(ctx context.Context, week int, playerIDs []string) (int, error)
}
