package fixture

import (
	"strings"
	"time"
)

const (
	StatusNotStarted = "NS"
	StatusLive       = "LIVE"
	StatusFinished   = "FT"
	StatusCancelled  = "CANCELLED"
	StatusPostponed  = "POSTPONED"
)

// Fixture is one real-world match as reported by the data provider. Fixtures
// are never persisted by the engine; they are fetched per tick and cached per
// week by identifier only, because status changes without identity change.
type Fixture struct {
	ExternalID    int64
	HomeClubRefID int64
	AwayClubRefID int64
	KickoffAt     time.Time
	Status        string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "INPLAY", "IN_PLAY", "HT", "1H", "2H", "ET", "BREAK":
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "AET", "PEN", "FT_PEN", "ENDED", "FINISHED":
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, StatusPostponed, "ABANDONED", "AWARDED", "WALKOVER":
		return true
	default:
		return false
	}
}

// IsTerminalStatus reports whether the match can no longer produce stat
// changes: finished in any variant, cancelled, or postponed.
func IsTerminalStatus(status string) bool {
	return IsFinishedStatus(status) || IsCancelledLikeStatus(status)
}

// Started reports whether the match has kicked off by now. Kickoff time is
// the canonical signal for roster locking; status is a fallback for fixtures
// whose kickoff shifted after the schedule was published.
func (f Fixture) Started(now time.Time) bool {
	if !f.KickoffAt.IsZero() && !f.KickoffAt.After(now) {
		return true
	}
	return IsLiveStatus(f.Status) || IsFinishedStatus(f.Status)
}

// AllTerminal reports whether every fixture in the set is terminal. An empty
// set is not terminal: "no data" from the provider must never read as "all
// finished".
func AllTerminal(fixtures []Fixture) bool {
	if len(fixtures) == 0 {
		return false
	}
	for _, f := range fixtures {
		if !IsTerminalStatus(f.Status) {
			return false
		}
	}
	return true
}
