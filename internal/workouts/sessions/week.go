package sessions

import "time"

// WeekStart returns Monday 00:00 UTC of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// TargetDate maps a workout day number (1 = Monday ... 7 = Sunday) onto the
// ISO week containing the anchor.
func TargetDate(anchor time.Time, dayNumber int) time.Time {
	return WeekStart(anchor).AddDate(0, 0, dayNumber-1)
}

func SameISOWeek(a, b time.Time) bool {
	aYear, aWeek := a.UTC().ISOWeek()
	bYear, bWeek := b.UTC().ISOWeek()
	return aYear == bYear && aWeek == bWeek
}
