package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	ants "github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/matchup"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/cache"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
)

const defaultScoringMaxWorkers = 8

// RosterLocker runs the lock pass for one week before its scores refresh.
type RosterLocker interface {
	LockStartedPlayers(ctx context.Context, week int) (int, error)
}

// ScoringService recomputes live scores for every active matchup of the live
// weeks. Each pass recomputes per-player totals from scratch off provider
// stats, so a pass is safe to repeat and never accumulates.
type ScoringService struct {
	provider     FixtureProvider
	gameweekRepo gameweek.Repository
	playerRepo   player.Repository
	rosterRepo   roster.Repository
	pointsRepo   scoring.Repository
	matchupRepo  matchup.Repository
	locker       RosterLocker
	fixtureIDs   *cache.Store
	maxWorkers   int
	logger       *logging.Logger
	now          func() time.Time
}

func NewScoringService(
	provider FixtureProvider,
	gameweekRepo gameweek.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	pointsRepo scoring.Repository,
	matchupRepo matchup.Repository,
	locker RosterLocker,
	maxWorkers int,
	logger *logging.Logger,
) *ScoringService {
	if maxWorkers <= 0 {
		maxWorkers = defaultScoringMaxWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringService{
		provider:     provider,
		gameweekRepo: gameweekRepo,
		playerRepo:   playerRepo,
		rosterRepo:   rosterRepo,
		pointsRepo:   pointsRepo,
		matchupRepo:  matchupRepo,
		locker:       locker,
		fixtureIDs:   cache.NewStore(0),
		maxWorkers:   maxWorkers,
		logger:       logger,
		now:          time.Now,
	}
}

// Tick runs one scoring pass over every live week: lock pass first, then
// score refresh. A failing week is logged and skipped so the rest of the
// weeks still refresh.
func (s *ScoringService) Tick(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.Tick")
	defer span.End()

	weeks, err := s.gameweekRepo.ListByStatus(ctx, gameweek.StatusLive)
	if err != nil {
		return fmt.Errorf("list live gameweeks: %w", err)
	}
	if len(weeks) == 0 {
		return nil
	}

	failed := 0
	for _, gw := range weeks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.locker != nil {
			if _, err := s.locker.LockStartedPlayers(ctx, gw.Week); err != nil {
				// Scoring still runs; locks catch up on the next pass.
				s.logger.WarnContext(ctx, "lock pass failed", "week", gw.Week, "error", err)
			}
		}

		if err := s.ScoreWeek(ctx, gw.Week); err != nil {
			s.logger.ErrorContext(ctx, "score week failed", "week", gw.Week, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("score live weeks: %d of %d failed", failed, len(weeks))
	}
	return nil
}

// ScoreWeek refreshes every active matchup of one week.
func (s *ScoringService) ScoreWeek(ctx context.Context, week int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreWeek")
	defer span.End()

	if week <= 0 {
		return fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	fixtureIDs, err := s.weekFixtureIDs(ctx, week)
	if err != nil {
		return fmt.Errorf("resolve fixture ids week=%d: %w", week, err)
	}

	matchups, err := s.matchupRepo.ListActiveByWeek(ctx, week)
	if err != nil {
		return fmt.Errorf("list active matchups week=%d: %w", week, err)
	}
	if len(matchups) == 0 {
		return nil
	}

	failed := 0
	for _, m := range matchups {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.scoreMatchup(ctx, m, week, fixtureIDs); err != nil {
			s.logger.WarnContext(ctx, "score matchup failed",
				"matchup_id", m.ID,
				"week", week,
				"error", err,
			)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d matchups failed", failed, len(matchups))
	}
	return nil
}

func (s *ScoringService) scoreMatchup(ctx context.Context, m matchup.Matchup, week int, fixtureIDs []int64) error {
	var (
		wg                     conc.WaitGroup
		team1Total, team2Total float64
		team1Rows, team2Rows   []scoring.PlayerLivePoints
		team1Err, team2Err     error
	)
	wg.Go(func() {
		team1Total, team1Rows, team1Err = s.scoreTeam(ctx, m.Team1ID, week, fixtureIDs)
	})
	wg.Go(func() {
		team2Total, team2Rows, team2Err = s.scoreTeam(ctx, m.Team2ID, week, fixtureIDs)
	})
	wg.Wait()

	if team1Err != nil {
		return fmt.Errorf("score team %s: %w", m.Team1ID, team1Err)
	}
	if team2Err != nil {
		return fmt.Errorf("score team %s: %w", m.Team2ID, team2Err)
	}

	rows := append(team1Rows, team2Rows...)
	if len(rows) > 0 {
		if err := s.pointsRepo.UpsertBatch(ctx, rows); err != nil {
			return fmt.Errorf("upsert live points: %w", err)
		}
	}

	if err := s.matchupRepo.UpdateScores(ctx, m.ID, team1Total, team2Total); err != nil {
		return fmt.Errorf("update matchup scores: %w", err)
	}
	return nil
}

// scoreTeam recomputes every rostered player of the team for the week. A
// player the provider has no stat line for scores zero; a roster row whose
// player record is missing also scores zero rather than failing the team.
func (s *ScoringService) scoreTeam(ctx context.Context, teamID string, week int, fixtureIDs []int64) (float64, []scoring.PlayerLivePoints, error) {
	assignments, err := s.rosterRepo.ListByTeamAndWeek(ctx, teamID, week)
	if err != nil {
		return 0, nil, fmt.Errorf("list roster: %w", err)
	}
	if len(assignments) == 0 {
		return 0, nil, nil
	}

	playerIDs := make([]string, 0, len(assignments))
	for _, item := range assignments {
		playerIDs = append(playerIDs, item.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return 0, nil, fmt.Errorf("load players: %w", err)
	}
	playersByID := make(map[string]player.Player, len(players))
	for _, item := range players {
		playersByID[item.ID] = item
	}

	calculatedAt := s.now().UTC()
	rows := make([]scoring.PlayerLivePoints, len(assignments))

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return 0, nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, assignment := range assignments {
		i, assignment := i, assignment
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows[i] = scoring.PlayerLivePoints{
				TeamID:       teamID,
				PlayerID:     assignment.PlayerID,
				Week:         week,
				Points:       s.playerWeekPoints(ctx, playersByID[assignment.PlayerID], fixtureIDs),
				CalculatedAt: calculatedAt,
			}
		}); err != nil {
			workers.Done()
			return 0, nil, fmt.Errorf("submit scoring task: %w", err)
		}
	}
	workers.Wait()

	total := 0.0
	for _, row := range rows {
		total += row.Points
	}
	return scoring.Round2(total), rows, nil
}

func (s *ScoringService) playerWeekPoints(ctx context.Context, p player.Player, fixtureIDs []int64) float64 {
	if p.PlayerRefID <= 0 {
		return 0
	}

	sum := 0.0
	for _, fixtureID := range fixtureIDs {
		stats, found, err := s.provider.FetchPlayerStats(ctx, fixtureID, p.PlayerRefID)
		if err != nil {
			// A missing stat line costs zero; the next pass retries.
			s.logger.WarnContext(ctx, "fetch player stats failed",
				"player_ref_id", p.PlayerRefID,
				"fixture_id", fixtureID,
				"error", err,
			)
			continue
		}
		if !found {
			continue
		}
		sum += scoring.Calculate(stats, p.Position)
	}
	return scoring.Round2(sum)
}

// weekFixtureIDs memoizes the round's fixture-id set. The id set of a round
// is stable once published, so the cache never expires.
func (s *ScoringService) weekFixtureIDs(ctx context.Context, week int) ([]int64, error) {
	key := fmt.Sprintf("fixtures:week:%d", week)
	value, err := s.fixtureIDs.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.provider.ListFixtureIDs(ctx, week)
	})
	if err != nil {
		return nil, err
	}
	ids, ok := value.([]int64)
	if !ok {
		return nil, fmt.Errorf("unexpected cached fixture id type %T", value)
	}
	return ids, nil
}
