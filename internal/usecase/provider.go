package usecase

import (
	"context"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/fixture"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
)

// FixtureProvider is the sport data feed. Rounds map one-to-one onto
// gameweeks.
type FixtureProvider interface {
	ListFixtures(ctx context.Context, round int) ([]fixture.Fixture, error)
	ListFixtureIDs(ctx context.Context, round int) ([]int64, error)
	// FetchPlayerStats reports found=false when the provider has no stat
	// line for the pair. That is not an error.
	FetchPlayerStats(ctx context.Context, fixtureID, playerRefID int64) (scoring.MatchStats, bool, error)
}
