package matchup

const (
	StatusPending  = "pending"
	StatusLive     = "live"
	StatusComplete = "complete"
)

// Matchup pairs two fantasy teams head-to-head for one gameweek. Scores are
// replaced wholesale each scoring cycle with the freshly summed totals;
// status advances in lockstep with the owning gameweek.
type Matchup struct {
	ID         string
	LeagueID   string
	Week       int
	Team1ID    string
	Team2ID    string
	Team1Score float64
	Team2Score float64
	Status     string
}

func (m Matchup) IsComplete() bool {
	return m.Status == StatusComplete
}
