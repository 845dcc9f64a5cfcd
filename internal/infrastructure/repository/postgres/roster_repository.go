package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
	qb "github.com/matchdaylabs/fantasy-engine/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListByTeamAndWeek(ctx context.Context, teamID string, week int) ([]roster.Assignment, error) {
	query, args, err := qb.Select("*").
		From("team_players").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("week", week),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster query: %w", err)
	}

	var rows []rosterTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list roster team=%s week=%d: %w", teamID, week, err)
	}

	out := make([]roster.Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Assignment{
			TeamID:   row.TeamID,
			PlayerID: row.PlayerID,
			Week:     row.Week,
			Locked:   row.Locked,
		})
	}
	return out, nil
}

// LockPlayers flips locked to true for the given players' rows in the week.
// The locked = FALSE guard makes the write idempotent and keeps the returned
// count at the rows actually flipped by this call.
func (r *RosterRepository) LockPlayers(ctx context.Context, week int, playerIDs []string) (int, error) {
	if len(playerIDs) == 0 {
		return 0, nil
	}

	query, args, err := qb.Update("team_players").
		Set("locked", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("week", week),
			qb.Eq("locked", false),
			qb.Expr("player_id = ANY(?)", pq.Array(playerIDs)),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build lock players query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("lock players week=%d: %w", week, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("lock players rows affected: %w", err)
	}
	return int(affected), nil
}
