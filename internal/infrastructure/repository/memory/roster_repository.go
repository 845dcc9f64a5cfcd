package memory

import (
	"context"
	"sync"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
)

type RosterRepository struct {
	mu          sync.RWMutex
	assignments []roster.Assignment
}

func NewRosterRepository(assignments []roster.Assignment) *RosterRepository {
	return &RosterRepository{assignments: append([]roster.Assignment(nil), assignments...)}
}

func (r *RosterRepository) ListByTeamAndWeek(_ context.Context, teamID string, week int) ([]roster.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Assignment, 0, len(r.assignments))
	for _, item := range r.assignments {
		if item.TeamID == teamID && item.Week == week {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *RosterRepository) LockPlayers(_ context.Context, week int, playerIDs []string) (int, error) {
	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	flipped := 0
	for i, item := range r.assignments {
		if item.Week != week || item.Locked {
			continue
		}
		if _, ok := wanted[item.PlayerID]; ok {
			r.assignments[i].Locked = true
			flipped++
		}
	}
	return flipped, nil
}
