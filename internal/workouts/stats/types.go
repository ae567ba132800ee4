package stats

import "time"

// Snapshot is the full dashboard aggregate for one date range. A nil
// snapshot means "no data in range", which callers must branch on instead
// of rendering zeroes.
type Snapshot struct {
	TotalVolume         float64            `json:"totalVolume"`
	TotalSets           int                `json:"totalSets"`
	TotalReps           int                `json:"totalReps"`
	TotalWorkouts       int                `json:"totalWorkouts"`
	AvgSetsPerWorkout   int                `json:"avgSetsPerWorkout"`
	AvgVolumePerWorkout float64            `json:"avgVolumePerWorkout"`
	PersonalBests       []PersonalBest     `json:"personalBests"`
	MuscleGroups        []MuscleGroupStats `json:"muscleGroups"`
	WeeklyVolumeChange  float64            `json:"weeklyVolumeChangePct"`
	WeeklySetsChange    float64            `json:"weeklySetsChangePct"`
	ConsistencyScore    int                `json:"consistencyScore"`
	RepRanges           []RepRangeBucket   `json:"repRanges"`
	DailySeries         []TimePoint        `json:"dailySeries"`
	WeeklySeries        []TimePoint        `json:"weeklySeries"`
}

// PersonalBest is the heaviest set logged for one exercise. It doubles as
// the PR baseline for a session's exercise card.
type PersonalBest struct {
	ExerciseName string  `json:"exerciseName"`
	Weight       float64 `json:"weight"`
	Reps         int     `json:"reps"`
	TotalVolume  float64 `json:"totalVolume"`
}

type MuscleGroupStats struct {
	MuscleGroup string  `json:"muscleGroup"`
	Sets        int     `json:"sets"`
	Volume      float64 `json:"volume"`
}

// RepRangeBucket is one bin of the rep-range histogram. MaxReps 0 means
// unbounded.
type RepRangeBucket struct {
	Label   string `json:"label"`
	MinReps int    `json:"minReps"`
	MaxReps int    `json:"maxReps,omitempty"`
	Sets    int    `json:"sets"`
}

// TimePoint is one calendar unit (day or ISO week) of the charting series.
type TimePoint struct {
	Date   time.Time `json:"date"`
	Volume float64   `json:"volume"`
	Sets   int       `json:"sets"`
}
