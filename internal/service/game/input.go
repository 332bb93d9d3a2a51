package game

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/fairplay-backend/internal/service/validation"
)

type RecordInput struct {
	UserID   uuid.UUID `json:"user_id"   validate:"required"`
	GameName string    `json:"game_name" validate:"required,notblank,max=100"`
	Score    int       `json:"score"     validate:"min=0"`
}

func (i RecordInput) Validate() error {
	return validation.Struct(i)
}

// LeaderboardInput bounds the leaderboard size. Zero means everyone.
type LeaderboardInput struct {
	Limit uint64 `json:"limit" validate:"max=1000"`
}

func (i LeaderboardInput) Validate() error {
	return validation.Struct(i)
}
