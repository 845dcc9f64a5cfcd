package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
)

// LockService flips roster rows to locked once a player's club has kicked
// off. The flip is one-way; unlocking never happens here.
type LockService struct {
	provider   FixtureProvider
	playerRepo player.Repository
	rosterRepo roster.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewLockService(
	provider FixtureProvider,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	logger *logging.Logger,
) *LockService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LockService{
		provider:   provider,
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// LockStartedPlayers locks every roster row of the week whose player belongs
// to a club with a started fixture. Returns how many rows were flipped this
// call; rows already locked are not counted, so a steady state returns zero.
func (s *LockService) LockStartedPlayers(ctx context.Context, week int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LockService.LockStartedPlayers")
	defer span.End()

	if week <= 0 {
		return 0, fmt.Errorf("%w: week must be greater than zero", ErrInvalidInput)
	}

	fixtures, err := s.provider.ListFixtures(ctx, week)
	if err != nil {
		return 0, fmt.Errorf("list fixtures for lock pass week=%d: %w", week, err)
	}

	now := s.now().UTC()
	startedClubs := make(map[int64]struct{}, len(fixtures)*2)
	for _, item := range fixtures {
		if !item.Started(now) {
			continue
		}
		if item.HomeClubRefID > 0 {
			startedClubs[item.HomeClubRefID] = struct{}{}
		}
		if item.AwayClubRefID > 0 {
			startedClubs[item.AwayClubRefID] = struct{}{}
		}
	}
	if len(startedClubs) == 0 {
		return 0, nil
	}

	clubRefIDs := make([]int64, 0, len(startedClubs))
	for id := range startedClubs {
		clubRefIDs = append(clubRefIDs, id)
	}
	sort.Slice(clubRefIDs, func(i, j int) bool { return clubRefIDs[i] < clubRefIDs[j] })

	players, err := s.playerRepo.ListByClubRefIDs(ctx, clubRefIDs)
	if err != nil {
		return 0, fmt.Errorf("list players by started clubs week=%d: %w", week, err)
	}
	if len(players) == 0 {
		return 0, nil
	}

	playerIDs := make([]string, 0, len(players))
	for _, item := range players {
		playerIDs = append(playerIDs, item.ID)
	}

	locked, err := s.rosterRepo.LockPlayers(ctx, week, playerIDs)
	if err != nil {
		return 0, fmt.Errorf("lock roster rows week=%d: %w", week, err)
	}
	if locked > 0 {
		s.logger.InfoContext(ctx, "locked roster rows for started fixtures",
			"week", week,
			"started_clubs", len(startedClubs),
			"rows_locked", locked,
		)
	}
	return locked, nil
}
