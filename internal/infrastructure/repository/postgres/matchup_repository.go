package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/matchup"
	qb "github.com/matchdaylabs/fantasy-engine/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) ListActiveByWeek(ctx context.Context, week int) ([]matchup.Matchup, error) {
	query, args, err := qb.Select("*").
		From("matchups").
		Where(
			qb.Eq("week", week),
			qb.Expr("status <> ?", matchup.StatusComplete),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active matchups query: %w", err)
	}

	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active matchups week=%d: %w", week, err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchup.Matchup{
			ID:         row.ID,
			LeagueID:   row.LeagueID,
			Week:       row.Week,
			Team1ID:    row.Team1ID,
			Team2ID:    row.Team2ID,
			Team1Score: row.Team1Score,
			Team2Score: row.Team2Score,
			Status:     row.Status,
		})
	}
	return out, nil
}

// UpdateScores writes both sides in one statement so a concurrent reader
// never sees a half-refreshed pair.
func (r *MatchupRepository) UpdateScores(ctx context.Context, id string, team1Score, team2Score float64) error {
	query, args, err := qb.Update("matchups").
		Set("team1_score", team1Score).
		Set("team2_score", team2Score).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update matchup scores query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update matchup scores id=%s: %w", id, err)
	}
	return nil
}
