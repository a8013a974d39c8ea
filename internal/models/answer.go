package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAnswerDB represents one submitted answer. A user answers a question at
// most once; the row is immutable after insertion.
type UserAnswerDB struct {
	AnswerID   uuid.UUID `json:"id" db:"answer_id"`           // Primary key
	UserID     uuid.UUID `json:"userId" db:"user_id"`         // Answering user
	GameID     uuid.UUID `json:"gameId" db:"game_id"`         // Game the answer belongs to
	QuestionID uuid.UUID `json:"questionId" db:"question_id"` // Answered question
	OptionID   uuid.UUID `json:"optionId" db:"option_id"`     // Chosen option
	IsCorrect  bool      `json:"isCorrect" db:"is_correct"`   // Correctness at submission time
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`   // Submission timestamp
}
