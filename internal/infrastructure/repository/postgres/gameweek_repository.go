package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
	qb "github.com/matchdaylabs/fantasy-engine/internal/platform/querybuilder"
)

type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

func (r *GameweekRepository) List(ctx context.Context) ([]gameweek.Gameweek, error) {
	query, args, err := qb.Select("*").
		From("gameweeks").
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list gameweeks query: %w", err)
	}

	var rows []gameweekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list gameweeks: %w", err)
	}
	return gameweeksToDomain(rows), nil
}

func (r *GameweekRepository) ListByStatus(ctx context.Context, status string) ([]gameweek.Gameweek, error) {
	query, args, err := qb.Select("*").
		From("gameweeks").
		Where(qb.Eq("status", gameweek.NormalizeStatus(status))).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list gameweeks by status query: %w", err)
	}

	var rows []gameweekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list gameweeks by status: %w", err)
	}
	return gameweeksToDomain(rows), nil
}

// GoLive invokes the server-side transition function. The function guards on
// the current status, so calling it on a week that already advanced is a
// no-op rather than an error.
func (r *GameweekRepository) GoLive(ctx context.Context, week int) error {
	if _, err := r.db.ExecContext(ctx, "SELECT go_live($1)", week); err != nil {
		return fmt.Errorf("go_live week=%d: %w", week, err)
	}
	return nil
}

func (r *GameweekRepository) CloseWeek(ctx context.Context, week int) error {
	if _, err := r.db.ExecContext(ctx, "SELECT close_week($1)", week); err != nil {
		return fmt.Errorf("close_week week=%d: %w", week, err)
	}
	return nil
}

func gameweeksToDomain(rows []gameweekTableModel) []gameweek.Gameweek {
	out := make([]gameweek.Gameweek, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweek.Gameweek{
			Week:   row.Week,
			Status: gameweek.NormalizeStatus(row.Status),
			LockAt: row.LockAt.UTC(),
		})
	}
	return out
}
