package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestionDB represents a quiz question belonging to a game.
// Questions are immutable once the game leaves WAITING.
type QuestionDB struct {
	QuestionID  uuid.UUID `json:"id" db:"question_id"`         // Primary key
	GameID      uuid.UUID `json:"gameId" db:"game_id"`         // Owning game
	Text        string    `json:"text" db:"text"`              // Question text
	Explanation string    `json:"explanation" db:"explanation"` // Shown after the game completes
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`   // Creation timestamp
}

// OptionDB represents one answer option of a question. Each question keeps
// at least two options and exactly one with is_correct = true.
type OptionDB struct {
	OptionID   uuid.UUID `json:"id" db:"option_id"`         // Primary key
	QuestionID uuid.UUID `json:"questionId" db:"question_id"` // Owning question
	Text       string    `json:"text" db:"text"`            // Option text
	IsCorrect  bool      `json:"isCorrect" db:"is_correct"` // Whether this is the correct option
	CreatedAt  time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}
