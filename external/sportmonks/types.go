package sportmonks

import (
	"strings"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
)

type fixturesEnvelope struct {
	Data []fixtureItem `json:"data"`
}

type fixtureItem struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	StartingAt   string               `json:"starting_at"`
	Status       string               `json:"status"`
	State        *fixtureState        `json:"state"`
	Participants []fixtureParticipant `json:"participants"`

	// Older payload revisions carry flat club ids instead of participants.
	LocalTeamID   int64 `json:"localteam_id"`
	VisitorTeamID int64 `json:"visitorteam_id"`
}

type fixtureState struct {
	ID        int64  `json:"id"`
	ShortName string `json:"short_name"`
	State     string `json:"state"`
}

type fixtureParticipant struct {
	ID   int64           `json:"id"`
	Name string          `json:"name"`
	Meta participantMeta `json:"meta"`
}

type participantMeta struct {
	Location string `json:"location"`
}

func (f fixtureItem) status() string {
	if f.State != nil {
		if short := strings.TrimSpace(f.State.ShortName); short != "" {
			return short
		}
		if state := strings.TrimSpace(f.State.State); state != "" {
			return state
		}
	}
	return f.Status
}

func (f fixtureItem) clubRefIDs() (int64, int64) {
	var home, away int64
	for _, item := range f.Participants {
		switch strings.ToLower(strings.TrimSpace(item.Meta.Location)) {
		case "home":
			home = item.ID
		case "away":
			away = item.ID
		}
	}
	if home == 0 {
		home = f.LocalTeamID
	}
	if away == 0 {
		away = f.VisitorTeamID
	}
	return home, away
}

type playerStatsEnvelope struct {
	Data *scoring.MatchStats `json:"data"`
}
