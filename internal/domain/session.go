package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionStatus type for the session lifecycle
type SessionStatus string

const (
	SessionUpcoming  SessionStatus = "upcoming"
	SessionLive      SessionStatus = "live"
	SessionCompleted SessionStatus = "completed"
)

// DefaultMaxCapacity is the hard cap on a session batch when none is set.
const DefaultMaxCapacity = 10

// Session is a scheduled live group training slot. The roster
// (AssignedClientIDs) preserves assignment order and never holds duplicates;
// both invariants are enforced by the assignment service, which is the only
// writer of the roster.
type Session struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	TrainerID       primitive.ObjectID   `bson:"trainerId" json:"trainerId"` // Who scheduled the session
	Title           string               `bson:"title" json:"title"`
	ScheduledAt     time.Time            `bson:"scheduledAt" json:"scheduledAt"`
	DurationMinutes int                  `bson:"durationMinutes" json:"durationMinutes"`
	PlanTag         string               `bson:"planTag,omitempty" json:"planTag,omitempty"` // Intended package tier, e.g. "fitplus", "pro", "elite"
	MaxCapacity     int                  `bson:"maxCapacity" json:"maxCapacity"`
	AssignedClients []primitive.ObjectID `bson:"assignedClientIds" json:"assignedClientIds"`
	Status          SessionStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsOpen reports whether the session still counts against a client's
// availability (completed sessions release their members).
func (s *Session) IsOpen() bool {
	return s.Status == SessionUpcoming || s.Status == SessionLive
}

// Capacity returns the effective batch cap for the session.
func (s *Session) Capacity() int {
	if s.MaxCapacity <= 0 {
		return DefaultMaxCapacity
	}
	return s.MaxCapacity
}
