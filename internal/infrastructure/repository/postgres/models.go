package postgres

import "time"

type gameweekTableModel struct {
	Week      int       `db:"week"`
	Status    string    `db:"status"`
	LockAt    time.Time `db:"lock_at"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playerTableModel struct {
	ID          string    `db:"id"`
	PlayerRefID int64     `db:"player_ref_id"`
	ClubRefID   int64     `db:"club_ref_id"`
	Name        string    `db:"name"`
	Position    string    `db:"position"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type rosterTableModel struct {
	ID        int64     `db:"id"`
	TeamID    string    `db:"team_id"`
	PlayerID  string    `db:"player_id"`
	Week      int       `db:"week"`
	Locked    bool      `db:"locked"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type livePointsTableModel struct {
	TeamID       string    `db:"team_id"`
	PlayerID     string    `db:"player_id"`
	Week         int       `db:"week"`
	Points       float64   `db:"points"`
	CalculatedAt time.Time `db:"calculated_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type livePointsInsertModel struct {
	TeamID       string    `db:"team_id"`
	PlayerID     string    `db:"player_id"`
	Week         int       `db:"week"`
	Points       float64   `db:"points"`
	CalculatedAt time.Time `db:"calculated_at"`
}

type matchupTableModel struct {
	ID         string    `db:"id"`
	LeagueID   string    `db:"league_id"`
	Week       int       `db:"week"`
	Team1ID    string    `db:"team1_id"`
	Team2ID    string    `db:"team2_id"`
	Team1Score float64   `db:"team1_score"`
	Team2Score float64   `db:"team2_score"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
