package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
	qb "github.com/matchdaylabs/fantasy-engine/internal/platform/querybuilder"
)

type LivePointsRepository struct {
	db *sqlx.DB
}

func NewLivePointsRepository(db *sqlx.DB) *LivePointsRepository {
	return &LivePointsRepository{db: db}
}

func (r *LivePointsRepository) UpsertBatch(ctx context.Context, rows []scoring.PlayerLivePoints) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert live points: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, row := range rows {
		insertModel := livePointsInsertModel{
			TeamID:       row.TeamID,
			PlayerID:     row.PlayerID,
			Week:         row.Week,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		}
		query, args, err := qb.InsertModel("player_live_points", insertModel, `ON CONFLICT (team_id, player_id, week)
DO UPDATE SET
    points = EXCLUDED.points,
    calculated_at = EXCLUDED.calculated_at,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert live points query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert live points team=%s player=%s week=%d: %w", row.TeamID, row.PlayerID, row.Week, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert live points tx: %w", err)
	}
	return nil
}

func (r *LivePointsRepository) ListByTeamAndWeek(ctx context.Context, teamID string, week int) ([]scoring.PlayerLivePoints, error) {
	query, args, err := qb.Select("*").
		From("player_live_points").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("week", week),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list live points query: %w", err)
	}

	var rows []livePointsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list live points team=%s week=%d: %w", teamID, week, err)
	}

	out := make([]scoring.PlayerLivePoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.PlayerLivePoints{
			TeamID:       row.TeamID,
			PlayerID:     row.PlayerID,
			Week:         row.Week,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt.UTC(),
		})
	}
	return out, nil
}
