package profiles

import "time"

// Profile holds per-user training settings. TrainingDaysPerWeek is the
// user's own target frequency, the denominator of the consistency score.
type Profile struct {
	UserID              string    `json:"userId"`
	TrainingDaysPerWeek int       `json:"trainingDaysPerWeek"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
