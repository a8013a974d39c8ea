package models

import (
	"time"

	"github.com/google/uuid"
)

// GameStatus is the lifecycle status of a game. Transitions are monotonic:
// WAITING -> STARTED -> COMPLETED.
type GameStatus string

// Game statuses, stored and serialized exactly as written.
const (
	GameStatusWaiting   GameStatus = "WAITING"
	GameStatusStarted   GameStatus = "STARTED"
	GameStatusCompleted GameStatus = "COMPLETED"
)

// Valid reports whether s is one of the known game statuses.
func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusWaiting, GameStatusStarted, GameStatusCompleted:
		return true
	}
	return false
}

// GameDB represents a game row in the database
type GameDB struct {
	GameID     uuid.UUID  `json:"id" db:"game_id"`              // Primary key
	Title      string     `json:"title" db:"title"`             // Display title
	HostUserID uuid.UUID  `json:"hostUserId" db:"host_user_id"` // User who created the game
	Status     GameStatus `json:"status" db:"status"`           // WAITING / STARTED / COMPLETED
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`    // Creation timestamp
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`    // Last status/title change
}
