package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestComputeWeekBounds(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		firstMonday string
		lastSunday  string
		weeks       int
	}{
		{
			name:  "monday to sunday is one exact week",
			start: "2026-01-05", end: "2026-01-11",
			firstMonday: "2026-01-05", lastSunday: "2026-01-11", weeks: 1,
		},
		{
			name:  "midweek bounds shrink to contained weeks",
			start: "2026-01-07", end: "2026-02-10",
			firstMonday: "2026-01-12", lastSunday: "2026-02-08", weeks: 4,
		},
		{
			name:  "range shorter than a week has no complete weeks",
			start: "2026-01-07", end: "2026-01-09",
			firstMonday: "2026-01-12", lastSunday: "2026-01-04", weeks: 0,
		},
		{
			name:  "sunday start waits for next monday",
			start: "2026-01-04", end: "2026-01-18",
			firstMonday: "2026-01-05", lastSunday: "2026-01-18", weeks: 2,
		},
		{
			name:  "saturday end drops the partial week",
			start: "2026-01-05", end: "2026-01-17",
			firstMonday: "2026-01-05", lastSunday: "2026-01-11", weeks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := ComputeWeekBounds(date(t, tt.start), date(t, tt.end))
			assert.Equal(t, date(t, tt.firstMonday), wb.FirstMonday)
			assert.Equal(t, date(t, tt.lastSunday), wb.LastSunday)
			assert.Equal(t, tt.weeks, wb.CompleteWeeks)
		})
	}
}

func TestWeekBoundsElapsedCompleteWeeks(t *testing.T) {
	wb := ComputeWeekBounds(date(t, "2026-01-05"), date(t, "2026-01-18")) // 2 weeks

	assert.Equal(t, 0, wb.elapsedCompleteWeeks(date(t, "2026-01-04")), "before first monday")
	assert.Equal(t, 0, wb.elapsedCompleteWeeks(date(t, "2026-01-10")), "saturday of week 1")
	assert.Equal(t, 1, wb.elapsedCompleteWeeks(date(t, "2026-01-11")), "sunday closes week 1")
	assert.Equal(t, 1, wb.elapsedCompleteWeeks(date(t, "2026-01-14")), "midweek of week 2")
	assert.Equal(t, 2, wb.elapsedCompleteWeeks(date(t, "2026-01-18")), "last sunday")
	assert.Equal(t, 2, wb.elapsedCompleteWeeks(date(t, "2026-03-01")), "after program end")
}

func TestWeekBoundsWeekIndex(t *testing.T) {
	wb := ComputeWeekBounds(date(t, "2026-01-05"), date(t, "2026-01-18"))

	assert.Equal(t, 0, wb.weekIndex(date(t, "2026-01-05")))
	assert.Equal(t, 0, wb.weekIndex(date(t, "2026-01-11")))
	assert.Equal(t, 1, wb.weekIndex(date(t, "2026-01-12")))
	assert.True(t, wb.contains(date(t, "2026-01-18")))
	assert.False(t, wb.contains(date(t, "2026-01-19")))
}
