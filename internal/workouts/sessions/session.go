package sessions

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrSessionExists   = errors.New("workout session already exists for that day and date")
)

// Session is a dated instantiation of a workout day template. At most one
// exists per (user, workout day, date), enforced by a unique constraint.
// WorkoutDayID is empty once the day template has been deleted; the session
// and its logs stay queryable regardless.
type Session struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	WorkoutDayID string     `json:"workoutDayId,omitempty"`
	Date         time.Time  `json:"date"`
	Notes        string     `json:"notes,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}

type Outcome string

const (
	// OutcomeFound means a session for the target date already existed.
	OutcomeFound Outcome = "found"
	// OutcomeCreated means a session was auto-created for the target date.
	OutcomeCreated Outcome = "created"
	// OutcomeEmptyPast means no session exists and the target date lies in
	// a past week, so nothing gets created.
	OutcomeEmptyPast Outcome = "empty_past"
	// OutcomeEmptyFuture means no session exists and the target date lies
	// in a future week, so nothing gets created.
	OutcomeEmptyFuture Outcome = "empty_future"
)

// Resolution is the result of resolving a workout day against a calendar
// anchor. Session is nil for the two empty outcomes.
type Resolution struct {
	Outcome    Outcome   `json:"outcome"`
	TargetDate time.Time `json:"targetDate"`
	Session    *Session  `json:"session,omitempty"`
}
