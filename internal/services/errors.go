package services

import "errors"

// Validation errors
var (
	ErrTooFewOptions  = errors.New("question must have at least two options")
	ErrCorrectCount   = errors.New("question must have exactly one correct option")
	ErrAnswerMismatch = errors.New("option does not belong to the question in this game")
)

// Authorization errors
var (
	ErrNotHost   = errors.New("caller is not the game host")
	ErrNotPlayer = errors.New("caller is not an approved player of this game")
)

// Invalid state errors
var (
	ErrGameNotWaiting = errors.New("game is no longer accepting changes")
	ErrGameNotStarted = errors.New("game not active")
)

// Conflict errors
var (
	ErrAlreadyJoined   = errors.New("already joined")
	ErrAlreadyAnswered = errors.New("already answered")
)

// Not found errors
var (
	ErrGameNotFound       = errors.New("game not found")
	ErrRequestNotFound    = errors.New("join request not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrOptionNotFound     = errors.New("option not found")
	ErrMembershipNotFound = errors.New("no membership or pending request for this game")
)

// Precondition errors
var (
	ErrNoPlayers   = errors.New("game has no approved players")
	ErrNoQuestions = errors.New("game has no questions")
)
