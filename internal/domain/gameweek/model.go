package gameweek

import (
	"strings"
	"time"
)

const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusComplete = "complete"
)

// Gameweek is one scored round of the competition. Rows are created once per
// season at schedule-generation time; the engine only advances status.
type Gameweek struct {
	Week   int
	Status string
	LockAt time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

// statusRank orders the lifecycle so transitions can be checked for
// monotonicity: upcoming < live < complete.
func statusRank(status string) int {
	switch NormalizeStatus(status) {
	case StatusLive:
		return 1
	case StatusComplete:
		return 2
	default:
		return 0
	}
}

// CanAdvance reports whether moving from to next is a forward transition.
// Same-state moves are allowed so redundant transition calls stay no-ops.
func CanAdvance(from, next string) bool {
	return statusRank(next) >= statusRank(from)
}

func (g Gameweek) IsUpcoming() bool {
	return NormalizeStatus(g.Status) == StatusUpcoming
}

func (g Gameweek) IsLive() bool {
	return NormalizeStatus(g.Status) == StatusLive
}

func (g Gameweek) IsComplete() bool {
	return NormalizeStatus(g.Status) == StatusComplete
}

// LockDue reports whether the week's roster deadline has passed.
func (g Gameweek) LockDue(now time.Time) bool {
	return !g.LockAt.IsZero() && !g.LockAt.After(now)
}
