package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
)

const defaultInterval = 60 * time.Second

// TickFunc is one pass of whatever work the poller drives.
type TickFunc func(ctx context.Context) error

// Poller runs a named tick on a fixed interval. A tick still in flight when
// the next interval fires makes the new cycle a skip, never an overlap, so a
// slow pass can never race itself.
type Poller struct {
	name     string
	tick     TickFunc
	logger   *logging.Logger
	interval time.Duration

	running  atomic.Bool
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of one poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	SkippedCycles       int
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

func New(name string, tick TickFunc, interval time.Duration, logger *logging.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Poller{
		name:     name,
		tick:     tick,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
// The first tick runs immediately rather than waiting one interval.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logger.Info("poller started", "poller", p.name, "interval_ms", p.interval.Milliseconds())
		p.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logger.Info("poller stopped", "poller", p.name)
				return
			case <-p.done:
				p.stopTicker()
				p.logger.Info("poller stopped", "poller", p.name)
				return
			case <-p.ticker.C:
				p.RunOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop. Safe to call more than once.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

// RunOnce executes a single cycle synchronously. It reports false when the
// cycle was skipped because a previous one is still in flight.
func (p *Poller) RunOnce(ctx context.Context) bool {
	if !p.running.CompareAndSwap(false, true) {
		p.recordSkip()
		p.logger.Warn("poller cycle skipped, previous still running", "poller", p.name)
		return false
	}
	defer p.running.Store(false)

	start := time.Now()
	p.recordAttempt(start)

	err := p.tick(ctx)
	if err != nil {
		p.recordFailure(err, start)
		p.logger.ErrorContext(ctx, "poller cycle failed",
			"poller", p.name,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return true
	}

	p.recordSuccess(start)
	p.logger.DebugContext(ctx, "poller cycle complete",
		"poller", p.name,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return true
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

func (p *Poller) recordSkip() {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.SkippedCycles++
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
