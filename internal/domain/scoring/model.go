package scoring

import "time"

// MatchStats is the flat per-player counting-stat record one fixture yields.
// Absent fields stay at their zero value and simply contribute no points.
// The json tags follow the provider's field names so the record can be
// decoded directly from the stats endpoint payload.
type MatchStats struct {
	Goals                 float64 `json:"goal"`
	Shots                 float64 `json:"shot"`
	Assists               float64 `json:"assist"`
	PassesLeadingToShot   float64 `json:"pass_leading_to_shot"`
	MileageKM             float64 `json:"mileage_km"`
	SuccessfulPasses      float64 `json:"successful_pass"`
	MissedPasses          float64 `json:"missed_pass"`
	Handballs             float64 `json:"foul_handball"`
	WasFouled             float64 `json:"was_fouled"`
	Offsides              float64 `json:"offside"`
	PenaltiesWon          float64 `json:"penalty_won"`
	PenaltiesMissed       float64 `json:"penalty_missed"`
	OwnGoals              float64 `json:"own_goal"`
	FoulsLeadingToPen     float64 `json:"foul_leading_to_penalty"`
	Played                bool    `json:"played"`
	YellowCards           float64 `json:"yellow_card"`
	SecondYellows         float64 `json:"second_yellow"`
	RedCards              float64 `json:"red_card"`
	GoalsConceded         float64 `json:"goal_conceded"`
	PenaltiesSaved        float64 `json:"penalty_saved"`
	ShotsSaved            float64 `json:"shot_saved"`
	CleanSheet            bool    `json:"no_goal_conceded"`
	Interceptions         float64 `json:"interception"`
	DuelsWon              float64 `json:"duel_won"`
	DuelsLost             float64 `json:"duel_lost"`
	OpponentsDribbledPast float64 `json:"dribbled_past"`
}

// PlayerLivePoints is the per-player running total for one week. The unique
// key is (team, player, week); recomputation overwrites, never accumulates.
type PlayerLivePoints struct {
	TeamID       string
	PlayerID     string
	Week         int
	Points       float64
	CalculatedAt time.Time
}
