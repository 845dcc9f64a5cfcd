package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
)

type LivePointsRepository struct {
	mu   sync.RWMutex
	rows map[string]scoring.PlayerLivePoints
}

func NewLivePointsRepository() *LivePointsRepository {
	return &LivePointsRepository{rows: make(map[string]scoring.PlayerLivePoints)}
}

func livePointsKey(teamID, playerID string, week int) string {
	return fmt.Sprintf("%s:%s:%d", teamID, playerID, week)
}

func (r *LivePointsRepository) UpsertBatch(_ context.Context, rows []scoring.PlayerLivePoints) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range rows {
		r.rows[livePointsKey(row.TeamID, row.PlayerID, row.Week)] = row
	}
	return nil
}

func (r *LivePointsRepository) ListByTeamAndWeek(_ context.Context, teamID string, week int) ([]scoring.PlayerLivePoints, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.PlayerLivePoints, 0, len(r.rows))
	for _, row := range r.rows {
		if row.TeamID == teamID && row.Week == week {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}
