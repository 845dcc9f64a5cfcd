package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	qb "github.com/matchdaylabs/fantasy-engine/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []string) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("*").
		From("players").
		Where(qb.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}
	return playersToDomain(rows), nil
}

func (r *PlayerRepository) ListByClubRefIDs(ctx context.Context, clubRefIDs []int64) ([]player.Player, error) {
	if len(clubRefIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("*").
		From("players").
		Where(qb.Expr("club_ref_id = ANY(?)", pq.Array(clubRefIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by club query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by club ref ids: %w", err)
	}
	return playersToDomain(rows), nil
}

func playersToDomain(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:          row.ID,
			PlayerRefID: row.PlayerRefID,
			ClubRefID:   row.ClubRefID,
			Name:        row.Name,
			Position:    player.Position(row.Position),
		})
	}
	return out
}
