package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerDB represents a roster membership of a user in a game.
// At most one row exists per (user_id, game_id).
type PlayerDB struct {
	PlayerID uuid.UUID `json:"id" db:"player_id"`       // Primary key
	UserID   uuid.UUID `json:"userId" db:"user_id"`     // Member user
	GameID   uuid.UUID `json:"gameId" db:"game_id"`     // Game the user belongs to
	Score    int       `json:"score" db:"score"`        // Accumulated score, never decremented
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"` // When the membership was created
}
