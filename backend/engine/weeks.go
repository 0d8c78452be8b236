package engine

import "time"

// WeekBounds describes the complete Monday-to-Sunday weeks fully contained in a
// program's date range. Days falling in a partial first or last week are not
// part of any complete week.
type WeekBounds struct {
	FirstMonday   time.Time
	LastSunday    time.Time
	CompleteWeeks int
}

// ComputeWeekBounds finds the first fully-contained Monday-start week and the
// last fully-contained Sunday-end week of the inclusive range [start, end].
// It is computed once per program-level calculation and passed down.
func ComputeWeekBounds(start, end time.Time) WeekBounds {
	firstMonday := start
	if wd := start.Weekday(); wd != time.Monday {
		// Days until next Monday; Sunday is weekday 0 in Go, 6 in ISO terms.
		offset := (8 - int(wd)) % 7
		firstMonday = start.AddDate(0, 0, offset)
	}

	lastSunday := end
	if wd := end.Weekday(); wd != time.Sunday {
		lastSunday = end.AddDate(0, 0, -int(wd))
	}

	weeks := 0
	if !lastSunday.Before(firstMonday) {
		weeks = (daysBetween(firstMonday, lastSunday) + 1) / 7
	}

	return WeekBounds{FirstMonday: firstMonday, LastSunday: lastSunday, CompleteWeeks: weeks}
}

// weekIndex places a date in its 0-based complete-week slot.
func (w WeekBounds) weekIndex(date time.Time) int {
	return daysBetween(w.FirstMonday, date) / 7
}

// contains reports whether the date falls inside a complete week.
func (w WeekBounds) contains(date time.Time) bool {
	return !date.Before(w.FirstMonday) && !date.After(w.LastSunday)
}

// elapsedCompleteWeeks counts the complete weeks fully behind the given day.
func (w WeekBounds) elapsedCompleteWeeks(today time.Time) int {
	if w.CompleteWeeks == 0 || today.Before(w.FirstMonday) {
		return 0
	}
	if today.After(w.LastSunday) {
		return w.CompleteWeeks
	}
	elapsed := (daysBetween(w.FirstMonday, today) + 1) / 7
	if elapsed > w.CompleteWeeks {
		elapsed = w.CompleteWeeks
	}
	return elapsed
}
