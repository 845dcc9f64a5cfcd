package memory

import (
	"time"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/gameweek"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/matchup"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/roster"
)

const SeedLeagueID = "idn-liga-1-2026"

const (
	seedClubPersija   int64 = 3475
	seedClubPersib    int64 = 3468
	seedClubPersebaya int64 = 3477
	seedClubBaliUtd   int64 = 3484
)

// SeedGameweeks returns a short schedule straddling the season's current
// point: one finished round, one in play, one still open for edits.
func SeedGameweeks() []gameweek.Gameweek {
	return []gameweek.Gameweek{
		{Week: 1, Status: gameweek.StatusComplete, LockAt: time.Date(2026, time.August, 14, 12, 0, 0, 0, time.UTC)},
		{Week: 2, Status: gameweek.StatusLive, LockAt: time.Date(2026, time.August, 21, 12, 0, 0, 0, time.UTC)},
		{Week: 3, Status: gameweek.StatusUpcoming, LockAt: time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "idn-gk-01", PlayerRefID: 84566, ClubRefID: seedClubPersija, Name: "Andritany Ardhiyasa", Position: player.PositionGoalkeeper},
		{ID: "idn-gk-02", PlayerRefID: 84571, ClubRefID: seedClubPersib, Name: "Teja Paku Alam", Position: player.PositionGoalkeeper},
		{ID: "idn-def-01", PlayerRefID: 84612, ClubRefID: seedClubPersija, Name: "Hansamu Yama", Position: player.PositionDefender},
		{ID: "idn-def-02", PlayerRefID: 84630, ClubRefID: seedClubPersib, Name: "Nick Kuipers", Position: player.PositionDefender},
		{ID: "idn-def-03", PlayerRefID: 84655, ClubRefID: seedClubPersebaya, Name: "Dusan Stevanovic", Position: player.PositionDefender},
		{ID: "idn-mid-01", PlayerRefID: 84701, ClubRefID: seedClubPersija, Name: "Maciej Gajos", Position: player.PositionMidfielder},
		{ID: "idn-mid-02", PlayerRefID: 84718, ClubRefID: seedClubPersib, Name: "Marc Klok", Position: player.PositionMidfielder},
		{ID: "idn-mid-03", PlayerRefID: 84733, ClubRefID: seedClubBaliUtd, Name: "Eber Bessa", Position: player.PositionMidfielder},
		{ID: "idn-fwd-01", PlayerRefID: 84801, ClubRefID: seedClubPersija, Name: "Gustavo Almeida", Position: player.PositionAttacker},
		{ID: "idn-fwd-02", PlayerRefID: 84812, ClubRefID: seedClubPersib, Name: "David da Silva", Position: player.PositionAttacker},
	}
}

func SeedRosters() []roster.Assignment {
	return []roster.Assignment{
		{TeamID: "team-garuda", PlayerID: "idn-gk-01", Week: 2},
		{TeamID: "team-garuda", PlayerID: "idn-def-01", Week: 2},
		{TeamID: "team-garuda", PlayerID: "idn-mid-01", Week: 2},
		{TeamID: "team-garuda", PlayerID: "idn-fwd-01", Week: 2},
		{TeamID: "team-maung", PlayerID: "idn-gk-02", Week: 2},
		{TeamID: "team-maung", PlayerID: "idn-def-02", Week: 2},
		{TeamID: "team-maung", PlayerID: "idn-mid-02", Week: 2},
		{TeamID: "team-maung", PlayerID: "idn-fwd-02", Week: 2},
	}
}

func SeedMatchups() []matchup.Matchup {
	return []matchup.Matchup{
		{ID: "mu-w2-01", LeagueID: SeedLeagueID, Week: 2, Team1ID: "team-garuda", Team2ID: "team-maung", Status: matchup.StatusLive},
	}
}
