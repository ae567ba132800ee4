package days

import (
	"errors"
	"time"
)

var (
	ErrDayNotFound      = errors.New("workout day not found")
	ErrDayExists        = errors.New("workout day already exists for that weekday")
	ErrExerciseNotFound = errors.New("exercise not found")
)

// WorkoutDay is a reusable day-of-week template, one per (user, weekday),
// created during onboarding. Sessions are dated instantiations of it.
type WorkoutDay struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	DayNumber int       `json:"dayNumber"` // 1 = Monday ... 7 = Sunday
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Exercise is an exercise template owned by a workout day. Its name and
// muscle group get denormalized onto set logs at write time, so logs stay
// valid after the template is deleted.
type Exercise struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	WorkoutDayID string    `json:"workoutDayId"`
	Name         string    `json:"name"`
	MuscleGroup  string    `json:"muscleGroup,omitempty"`
	SortOrder    int       `json:"sortOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}
