package stats

import (
	"math"
	"sort"
	"time"

	"github.com/liftlogapp/liftlog/internal/workouts/logs"
	"github.com/liftlogapp/liftlog/internal/workouts/sessions"
)

// OtherMuscleGroup buckets logs whose exercise carries no muscle group.
const OtherMuscleGroup = "Other"

var repRangeBins = []RepRangeBucket{
	{Label: "Strength", MinReps: 1, MaxReps: 5},
	{Label: "Power", MinReps: 6, MaxReps: 8},
	{Label: "Hypertrophy", MinReps: 9, MaxReps: 12},
	{Label: "Endurance", MinReps: 13, MaxReps: 15},
	{Label: "High-Rep", MinReps: 16},
}

type AnalyzeInput struct {
	Logs     []logs.SetLog
	Sessions []sessions.Session
	From     time.Time
	To       time.Time
	// Today anchors the week-over-week comparison.
	Today               time.Time
	TemplateDaysPerWeek int
}

// Analyze reduces the logs and sessions of a date range into a dashboard
// snapshot. It is pure: no side effects, deterministic for identical input.
// Returns nil when there are no logs, so "no data" stays distinguishable
// from an all-zero training range.
func Analyze(in AnalyzeInput) *Snapshot {
	if len(in.Logs) == 0 {
		return nil
	}

	snapshot := &Snapshot{
		TotalWorkouts: len(in.Sessions),
	}
	for _, l := range in.Logs {
		snapshot.TotalVolume += l.Volume()
		snapshot.TotalSets++
		snapshot.TotalReps += l.Reps
	}
	if snapshot.TotalWorkouts > 0 {
		workouts := float64(snapshot.TotalWorkouts)
		snapshot.AvgSetsPerWorkout = int(math.Round(float64(snapshot.TotalSets) / workouts))
		snapshot.AvgVolumePerWorkout = math.Round(snapshot.TotalVolume / workouts)
	}

	snapshot.PersonalBests = personalBests(in.Logs)
	snapshot.MuscleGroups = muscleGroupDistribution(in.Logs)
	snapshot.RepRanges = repRangeHistogram(in.Logs)

	logDates := logDateIndex(in.Logs, in.Sessions)
	snapshot.WeeklyVolumeChange, snapshot.WeeklySetsChange = weeklyChange(in.Logs, logDates, in.Today)
	snapshot.ConsistencyScore = consistencyScore(
		snapshot.TotalWorkouts, in.From, in.To, in.TemplateDaysPerWeek,
	)
	snapshot.DailySeries = dailySeries(in.Logs, logDates, in.From, in.To)
	snapshot.WeeklySeries = weeklySeries(in.Logs, logDates, in.From, in.To)

	return snapshot
}

// IsPersonalRecord says whether a set strictly improves on the baseline:
// heavier, or equally heavy for more reps. Equal weight and equal-or-fewer
// reps is never a PR. A nil baseline means the exercise was never logged
// before, so any valid set is a PR.
func IsPersonalRecord(baseline *PersonalBest, weight float64, reps int) bool {
	if baseline == nil {
		return true
	}
	if weight > baseline.Weight {
		return true
	}
	return weight == baseline.Weight && reps > baseline.Reps
}

// BaselineForExercise reduces the exercise's logs to its personal best,
// skipping the given session so a set is never compared against its own
// session's entries. Returns nil when nothing remains.
func BaselineForExercise(setLogs []logs.SetLog, excludeSessionID string) *PersonalBest {
	var best *PersonalBest
	for _, l := range setLogs {
		if l.SessionID == excludeSessionID {
			continue
		}
		if best == nil {
			best = &PersonalBest{
				ExerciseName: l.ExerciseName,
				Weight:       l.Weight,
				Reps:         l.Reps,
			}
		} else if l.Weight > best.Weight {
			best.Weight = l.Weight
			best.Reps = l.Reps
		}
		best.TotalVolume += l.Volume()
	}
	return best
}

// personalBests keeps, per exercise, the first set whose weight no later
// set strictly exceeds. Ties on weight keep the earlier occurrence.
func personalBests(setLogs []logs.SetLog) []PersonalBest {
	bestByExercise := make(map[string]*PersonalBest)
	var order []string
	for _, l := range setLogs {
		best, ok := bestByExercise[l.ExerciseName]
		if !ok {
			bestByExercise[l.ExerciseName] = &PersonalBest{
				ExerciseName: l.ExerciseName,
				Weight:       l.Weight,
				Reps:         l.Reps,
				TotalVolume:  l.Volume(),
			}
			order = append(order, l.ExerciseName)
			continue
		}
		if l.Weight > best.Weight {
			best.Weight = l.Weight
			best.Reps = l.Reps
		}
		best.TotalVolume += l.Volume()
	}

	personalBests := make([]PersonalBest, 0, len(order))
	for _, name := range order {
		personalBests = append(personalBests, *bestByExercise[name])
	}
	sort.SliceStable(personalBests, func(i, j int) bool {
		return personalBests[i].Weight > personalBests[j].Weight
	})
	return personalBests
}

func muscleGroupDistribution(setLogs []logs.SetLog) []MuscleGroupStats {
	statsByGroup := make(map[string]*MuscleGroupStats)
	var order []string
	for _, l := range setLogs {
		group := l.MuscleGroup
		if group == "" {
			group = OtherMuscleGroup
		}
		groupStats, ok := statsByGroup[group]
		if !ok {
			groupStats = &MuscleGroupStats{MuscleGroup: group}
			statsByGroup[group] = groupStats
			order = append(order, group)
		}
		groupStats.Sets++
		groupStats.Volume += l.Volume()
	}

	distribution := make([]MuscleGroupStats, 0, len(order))
	for _, group := range order {
		distribution = append(distribution, *statsByGroup[group])
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Sets > distribution[j].Sets
	})
	return distribution
}

func repRangeHistogram(setLogs []logs.SetLog) []RepRangeBucket {
	histogram := make([]RepRangeBucket, len(repRangeBins))
	copy(histogram, repRangeBins)
	for _, l := range setLogs {
		for i := range histogram {
			if l.Reps < histogram[i].MinReps {
				continue
			}
			if histogram[i].MaxReps > 0 && l.Reps > histogram[i].MaxReps {
				continue
			}
			histogram[i].Sets++
			break
		}
	}
	return histogram
}

// logDateIndex attributes each log to a calendar date: its session's date
// when the session is known, the log's own creation day otherwise.
func logDateIndex(setLogs []logs.SetLog, sessionList []sessions.Session) map[string]time.Time {
	dateBySession := make(map[string]time.Time, len(sessionList))
	for _, s := range sessionList {
		dateBySession[s.ID] = dateOnly(s.Date)
	}
	dates := make(map[string]time.Time, len(setLogs))
	for _, l := range setLogs {
		if d, ok := dateBySession[l.SessionID]; ok {
			dates[l.ID] = d
		} else {
			dates[l.ID] = dateOnly(l.CreatedAt)
		}
	}
	return dates
}

func weeklyChange(setLogs []logs.SetLog, logDates map[string]time.Time, today time.Time) (volumeChange, setsChange float64) {
	thisWeekStart := sessions.WeekStart(today)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	nextWeekStart := thisWeekStart.AddDate(0, 0, 7)

	var thisWeekVolume, lastWeekVolume float64
	var thisWeekSets, lastWeekSets int
	for _, l := range setLogs {
		d := logDates[l.ID]
		switch {
		case !d.Before(thisWeekStart) && d.Before(nextWeekStart):
			thisWeekVolume += l.Volume()
			thisWeekSets++
		case !d.Before(lastWeekStart) && d.Before(thisWeekStart):
			lastWeekVolume += l.Volume()
			lastWeekSets++
		}
	}

	return percentChange(thisWeekVolume, lastWeekVolume),
		percentChange(float64(thisWeekSets), float64(lastWeekSets))
}

// percentChange treats a zero baseline as "no change", never as infinite
// improvement.
func percentChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}

func consistencyScore(totalWorkouts int, from, to time.Time, templateDaysPerWeek int) int {
	if templateDaysPerWeek <= 0 {
		return 0
	}
	daysInRange := dateOnly(to).Sub(dateOnly(from)).Hours()/24 + 1
	if daysInRange <= 0 {
		return 0
	}
	workoutsPerWeek := float64(totalWorkouts) / (daysInRange / 7)
	score := int(math.Round(workoutsPerWeek / float64(templateDaysPerWeek) * 100))
	if score > 100 {
		return 100
	}
	return score
}

func dailySeries(setLogs []logs.SetLog, logDates map[string]time.Time, from, to time.Time) []TimePoint {
	pointByDate := make(map[time.Time]*TimePoint)
	var series []TimePoint
	for d := dateOnly(from); !d.After(dateOnly(to)); d = d.AddDate(0, 0, 1) {
		series = append(series, TimePoint{Date: d})
	}
	for i := range series {
		pointByDate[series[i].Date] = &series[i]
	}
	for _, l := range setLogs {
		if point, ok := pointByDate[logDates[l.ID]]; ok {
			point.Volume += l.Volume()
			point.Sets++
		}
	}
	return series
}

func weeklySeries(setLogs []logs.SetLog, logDates map[string]time.Time, from, to time.Time) []TimePoint {
	pointByWeek := make(map[time.Time]*TimePoint)
	var series []TimePoint
	for w := sessions.WeekStart(from); !w.After(sessions.WeekStart(to)); w = w.AddDate(0, 0, 7) {
		series = append(series, TimePoint{Date: w})
	}
	for i := range series {
		pointByWeek[series[i].Date] = &series[i]
	}
	for _, l := range setLogs {
		if point, ok := pointByWeek[sessions.WeekStart(logDates[l.ID])]; ok {
			point.Volume += l.Volume()
			point.Sets++
		}
	}
	return series
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
