package memory

import (
	"context"
	"sync"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
)

type GameweekRepository struct {
	mu    sync.RWMutex
	weeks []gameweek.Gameweek
}

func NewGameweekRepository(weeks []gameweek.Gameweek) *GameweekRepository {
	out := make([]gameweek.Gameweek, 0, len(weeks))
	for _, gw := range weeks {
		gw.Status = gameweek.NormalizeStatus(gw.Status)
		out = append(out, gw)
	}
	return &GameweekRepository{weeks: out}
}

func (r *GameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]gameweek.Gameweek(nil), r.weeks...), nil
}

func (r *GameweekRepository) ListByStatus(_ context.Context, status string) ([]gameweek.Gameweek, error) {
	wanted := gameweek.NormalizeStatus(status)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]gameweek.Gameweek, 0, len(r.weeks))
	for _, gw := range r.weeks {
		if gw.Status == wanted {
			out = append(out, gw)
		}
	}
	return out, nil
}

func (r *GameweekRepository) GoLive(_ context.Context, week int) error {
	r.advance(week, gameweek.StatusUpcoming, gameweek.StatusLive)
	return nil
}

func (r *GameweekRepository) CloseWeek(_ context.Context, week int) error {
	r.advance(week, gameweek.StatusLive, gameweek.StatusComplete)
	return nil
}

// advance applies the transition only when the week sits in the expected
// state, mirroring the guarded server-side functions.
func (r *GameweekRepository) advance(week int, from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, gw := range r.weeks {
		if gw.Week == week && gw.Status == from {
			r.weeks[i].Status = to
		}
	}
}
