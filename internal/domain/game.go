package domain

import "github.com/google/uuid"

// GameScore is one recorded game result. CumulativeTotal is the running sum
// of the user's scores up to and including this one.
type GameScore struct {
	Base
	UserID          uuid.UUID `db:"user_id"          json:"user_id"`
	GameName        string    `db:"game_name"        json:"game_name"`
	Score           int       `db:"score"            json:"score"`
	CumulativeTotal int       `db:"cumulative_total" json:"cumulative_total"`
}

// LeaderboardEntry is one user's aggregated standing.
type LeaderboardEntry struct {
	UserID      uuid.UUID `db:"user_id"      json:"user_id"`
	FirstName   string    `db:"first_name"   json:"first_name"`
	TotalScore  int       `db:"total_score"  json:"total_score"`
	GamesPlayed int       `db:"games_played" json:"games_played"`
}

// GameTotal is a single user's aggregated score.
type GameTotal struct {
	TotalScore  int `db:"total_score"  json:"total_score"`
	GamesPlayed int `db:"games_played" json:"games_played"`
}
