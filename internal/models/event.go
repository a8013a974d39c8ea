package models

// Game event types published to Kafka.
const (
	EventGameCreated     = "game_created"
	EventGameStarted     = "game_started"
	EventGameCompleted   = "game_completed"
	EventAnswerSubmitted = "answer_submitted"
)

// GameEvent is the message published for every significant game transition.
type GameEvent struct {
	EventID   string `json:"event_id"`            // Unique event identifier
	Type      string `json:"type"`                // One of the Event* constants
	Timestamp int64  `json:"timestamp"`           // Unix timestamp (seconds)
	GameID    string `json:"game_id"`             // Game the event belongs to
	UserID    string `json:"user_id,omitempty"`   // Acting user, when applicable
	Correct   *bool  `json:"correct,omitempty"`   // Set for answer_submitted
	Score     *int   `json:"score,omitempty"`     // Player score after the event, when applicable
}

// LeaderboardEntry is one row of the per-game score leaderboard projection.
type LeaderboardEntry struct {
	UserID string `json:"userId"` // Player user id
	Score  int    `json:"score"`  // Cached score
	Rank   int    `json:"rank"`   // 1-based rank
}
