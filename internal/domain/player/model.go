package player

import "fmt"

// Position represents the roster slot categories used by the point formula.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionAttacker   Position = "Attacker"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionDefender:   {},
	PositionMidfielder: {},
	PositionAttacker:   {},
}

// Player is one athlete in the draft pool. PlayerRefID and ClubRefID are the
// provider's identifiers; a player without a PlayerRefID cannot be matched to
// match statistics and scores zero.
type Player struct {
	ID          string
	PlayerRefID int64
	ClubRefID   int64
	Name        string
	Position    Position
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	return nil
}
