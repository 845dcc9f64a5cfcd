package roster

// Assignment binds one drafted player to a fantasy team for one week.
// Locked flips false to true exactly once, when the player's club's match
// kicks off; it is never unset. Rejecting edits to locked assignments is a
// collaborator responsibility — the engine is only the writer of the flag.
type Assignment struct {
	TeamID   string
	PlayerID string
	Week     int
	Locked   bool
}
