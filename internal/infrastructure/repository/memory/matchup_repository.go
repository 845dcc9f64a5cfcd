package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/matchup"
)

type MatchupRepository struct {
	mu       sync.RWMutex
	matchups map[string]matchup.Matchup
}

func NewMatchupRepository(matchups []matchup.Matchup) *MatchupRepository {
	byID := make(map[string]matchup.Matchup, len(matchups))
	for _, item := range matchups {
		byID[item.ID] = item
	}
	return &MatchupRepository{matchups: byID}
}

func (r *MatchupRepository) ListActiveByWeek(_ context.Context, week int) ([]matchup.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchup.Matchup, 0, len(r.matchups))
	for _, item := range r.matchups {
		if item.Week == week && !item.IsComplete() {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MatchupRepository) UpdateScores(_ context.Context, id string, team1Score, team2Score float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.matchups[id]
	if !ok {
		return nil
	}
	item.Team1Score = team1Score
	item.Team2Score = team2Score
	r.matchups[id] = item
	return nil
}
