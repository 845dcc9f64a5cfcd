package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/matchdaylabs/fantasy-engine/external/sportmonks"
	"github.com/matchdaylabs/fantasy-engine/internal/config"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/matchup"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
	"github.com/matchdaylabs/fantasy-engine/internal/infrastructure/repository/memory"
	"github.com/matchdaylabs/fantasy-engine/internal/infrastructure/repository/postgres"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/resilience"
	"github.com/matchdaylabs/fantasy-engine/internal/poller"
	"github.com/matchdaylabs/fantasy-engine/internal/usecase"
)

type repositories struct {
	gameweeks gameweek.Repository
	players   player.Repository
	rosters   roster.Repository
	points    scoring.Repository
	matchups  matchup.Repository
}

// Engine owns the two polling lanes: the lifecycle lane advancing gameweek
// status and the scoring lane refreshing live matchup scores.
type Engine struct {
	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB

	lifecyclePoller *poller.Poller
	scoringPoller   *poller.Poller
}

func NewEngine(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		db    *sqlx.DB
		repos repositories
		err   error
	)
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Info("store driver", "driver", config.StoreDriverMemory)
		repos = repositories{
			gameweeks: memory.NewGameweekRepository(memory.SeedGameweeks()),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			rosters:   memory.NewRosterRepository(memory.SeedRosters()),
			points:    memory.NewLivePointsRepository(),
			matchups:  memory.NewMatchupRepository(memory.SeedMatchups()),
		}
	default:
		db, err = openDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		repos = repositories{
			gameweeks: postgres.NewGameweekRepository(db),
			players:   postgres.NewPlayerRepository(db),
			rosters:   postgres.NewRosterRepository(db),
			points:    postgres.NewLivePointsRepository(db),
			matchups:  postgres.NewMatchupRepository(db),
		}
	}

	provider := sportmonks.NewClient(sportmonks.ClientConfig{
		HTTPClient: &http.Client{
			Timeout:   cfg.SportMonksTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL:    cfg.SportMonksBaseURL,
		Token:      cfg.SportMonksToken,
		Timeout:    cfg.SportMonksTimeout,
		MaxRetries: cfg.SportMonksMaxRetries,
		LeagueID:   cfg.SportMonksLeagueID,
		Season:     cfg.SportMonksSeason,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportMonksCircuitEnabled,
			FailureThreshold: cfg.SportMonksCircuitFailureCount,
			OpenTimeout:      cfg.SportMonksCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportMonksCircuitHalfOpenMaxReq,
		},
	})

	lockSvc := usecase.NewLockService(provider, repos.players, repos.rosters, logger)
	scoringSvc := usecase.NewScoringService(
		provider,
		repos.gameweeks,
		repos.players,
		repos.rosters,
		repos.points,
		repos.matchups,
		lockSvc,
		cfg.ScoringMaxWorkers,
		logger,
	)
	lifecycleSvc := usecase.NewLifecycleService(provider, repos.gameweeks, logger)

	return &Engine{
		cfg:             cfg,
		logger:          logger,
		db:              db,
		lifecyclePoller: poller.New("lifecycle", lifecycleSvc.Tick, cfg.LifecycleTickInterval, logger),
		scoringPoller:   poller.New("scoring", scoringSvc.Tick, cfg.ScoringTickInterval, logger),
	}, nil
}

// Run starts both polling lanes and blocks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) {
	e.logger.Info("engine starting",
		"lifecycle_interval", e.cfg.LifecycleTickInterval.String(),
		"scoring_interval", e.cfg.ScoringTickInterval.String(),
	)

	e.lifecyclePoller.Start(ctx)
	e.scoringPoller.Start(ctx)

	<-ctx.Done()
}

func (e *Engine) Close() error {
	e.lifecyclePoller.Stop()
	e.scoringPoller.Stop()

	if e.db != nil {
		if err := e.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}

	e.logger.Info("engine stopped")

	return nil
}
