package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle status of a join request.
type RequestStatus string

// Join request statuses, stored and serialized exactly as written.
const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusApproved  RequestStatus = "APPROVED"
	RequestStatusRejected  RequestStatus = "REJECTED"
	RequestStatusCancelled RequestStatus = "CANCELLED"
)

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled:
		return true
	}
	return false
}

// PlayerRequestDB represents a user's request to join a game's roster.
// At most one row exists per (game_id, user_id); re-requesting after a
// REJECTED/CANCELLED decision resets the same row back to PENDING.
type PlayerRequestDB struct {
	RequestID uuid.UUID     `json:"id" db:"request_id"`        // Primary key
	GameID    uuid.UUID     `json:"gameId" db:"game_id"`       // Target game
	UserID    uuid.UUID     `json:"userId" db:"user_id"`       // Requesting user
	Status    RequestStatus `json:"status" db:"status"`        // PENDING / APPROVED / REJECTED / CANCELLED
	CreatedAt time.Time     `json:"createdAt" db:"created_at"` // First request timestamp
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"` // Last transition timestamp
}
