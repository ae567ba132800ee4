package logs

import (
	"errors"
	"fmt"
	"time"
)

var ErrSetLogNotFound = errors.New("set log not found")

// SetLog is one logged set. Exercise name and muscle group are denormalized
// from the exercise template at write time, so history survives template
// edits and deletions.
type SetLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	SessionID    string    `json:"sessionId"`
	ExerciseID   string    `json:"exerciseId,omitempty"`
	ExerciseName string    `json:"exerciseName"`
	MuscleGroup  string    `json:"muscleGroup,omitempty"`
	SetNumber    int       `json:"setNumber"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	IsPR         bool      `json:"isPr"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Volume is weight times reps, the unit all aggregate tonnage is summed in.
func (l SetLog) Volume() float64 {
	return l.Weight * float64(l.Reps)
}

func ValidateSet(reps int, weight float64) error {
	if reps <= 0 {
		return fmt.Errorf("reps must be positive, got %d", reps)
	}
	if weight < 0 {
		return fmt.Errorf("weight must not be negative, got %.2f", weight)
	}
	return nil
}
