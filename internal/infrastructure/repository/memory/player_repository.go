package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[string]player.Player, len(players))
	for _, item := range players {
		byID[item.ID] = item
	}
	return &PlayerRepository{players: byID}
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ids []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.players[id]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) ListByClubRefIDs(_ context.Context, clubRefIDs []int64) ([]player.Player, error) {
	wanted := make(map[int64]struct{}, len(clubRefIDs))
	for _, id := range clubRefIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]player.Player, 0, len(r.players))
	for _, item := range r.players {
		if _, ok := wanted[item.ClubRefID]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
