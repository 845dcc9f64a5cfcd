package scoring

import (
	"math"

	"github.com/matchdaylabs/fantasy-engine/internal/domain/player"
)

// Per-stat weights of the fixed linear scoring formula. Position enters in
// exactly two places: the distance multiplier, and the goalkeeper block
// (goals conceded at full weight plus the keeper bonuses).
const (
	weightGoal              = 8.0
	weightShot              = 0.8
	weightAssist            = 4.0
	weightPassLeadingToShot = 0.4
	weightMileageGK         = 0.4
	weightMileageOutfield   = 0.2
	weightSuccessfulPass    = 0.125
	weightMissedPass        = -0.2
	weightHandball          = -0.5
	weightWasFouled         = 0.75
	weightOffside           = -0.75
	weightPenaltyWon        = 4.0
	weightPenaltyMissed     = -4.0
	weightOwnGoal           = -4.0
	weightFoulLeadingToPen  = -4.0
	weightPlayed            = 2.0
	weightYellowCard        = -1.0
	weightSecondYellow      = -2.0
	weightRedCard           = -4.0
	weightConcededGK        = -1.0
	weightConcededOutfield  = -0.5
	weightPenaltySaved      = 10.0
	weightShotSaved         = 2.5
	weightCleanSheet        = 5.0
	weightInterception      = 1.0
	weightDuelWon           = 0.8
	weightDuelLost          = -0.5
	weightDribbledPast      = 1.0
)

// Calculate maps one match's raw stats to fantasy points for a player of the
// given position. Pure and deterministic; the result is rounded to two
// decimal places half away from zero (math.Round semantics).
func Calculate(stats MatchStats, position player.Position) float64 {
	pts := 0.0
	pts += stats.Goals * weightGoal
	pts += stats.Shots * weightShot
	pts += stats.Assists * weightAssist
	pts += stats.PassesLeadingToShot * weightPassLeadingToShot
	if position == player.PositionGoalkeeper {
		pts += stats.MileageKM * weightMileageGK
	} else {
		pts += stats.MileageKM * weightMileageOutfield
	}
	pts += stats.SuccessfulPasses * weightSuccessfulPass
	pts += stats.MissedPasses * weightMissedPass
	pts += stats.Handballs * weightHandball
	pts += stats.WasFouled * weightWasFouled
	pts += stats.Offsides * weightOffside
	pts += stats.PenaltiesWon * weightPenaltyWon
	pts += stats.PenaltiesMissed * weightPenaltyMissed
	pts += stats.OwnGoals * weightOwnGoal
	pts += stats.FoulsLeadingToPen * weightFoulLeadingToPen
	if stats.Played {
		pts += weightPlayed
	}
	pts += stats.YellowCards * weightYellowCard
	pts += stats.SecondYellows * weightSecondYellow
	pts += stats.RedCards * weightRedCard

	if position == player.PositionGoalkeeper {
		pts += stats.GoalsConceded * weightConcededGK
		pts += stats.PenaltiesSaved * weightPenaltySaved
		pts += stats.ShotsSaved * weightShotSaved
		if stats.CleanSheet {
			pts += weightCleanSheet
		}
	} else {
		pts += stats.GoalsConceded * weightConcededOutfield
	}

	pts += stats.Interceptions * weightInterception
	pts += stats.DuelsWon * weightDuelWon
	pts += stats.DuelsLost * weightDuelLost
	pts += stats.OpponentsDribbledPast * weightDribbledPast

	return Round2(pts)
}

// Round2 rounds half away from zero to two decimal places. Every persisted
// point value goes through this so repeated computation is bit-stable.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
