package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progtrack/backend/models"
)

func TestWeeklyProgressSeries(t *testing.T) {
	daily := models.Objective{
		ID: "check", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 5,
	}
	weekly := models.Objective{
		ID: "report", Type: models.TypeCheckbox, Frequency: models.FrequencyWeekly,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 30,
	}
	program := &models.Program{
		Name:       "Test",
		StartDate:  "2026-01-05",
		EndDate:    "2026-01-18",
		Objectives: []models.Objective{daily, weekly},
	}
	cal := fixedCalculator(program, "2026-01-18")

	// Week 1: all dailies done plus the report; week 2: nothing.
	data := models.UserData{}
	for _, day := range []string{
		"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08",
		"2026-01-09", "2026-01-10", "2026-01-11",
	} {
		data.Set(day, "check", models.ItemObjective, int64(1))
	}
	data.Set("2026-01-11", "report", models.ItemObjective, int64(1))

	series := cal.WeeklyProgress(data)
	require.Len(t, series, 2)
	assert.Equal(t, "Week 1", series[0].Week)
	assert.Equal(t, 100.0, series[0].Progress)
	assert.Equal(t, "Week 2", series[1].Week)
	assert.Equal(t, 0.0, series[1].Progress)
}

func TestWeeklyProgressClampsOverachievingWeek(t *testing.T) {
	weekly := models.Objective{
		ID: "reading", Type: models.TypeCumulative, Frequency: models.FrequencyWeekly,
		Scoring: models.ScoringProportional, TargetValue: 100, Weight: 10,
	}
	cal := fixedCalculator(oneWeekProgram(weekly), "2026-01-11")

	data := entries([4]any{"2026-01-06", "reading", models.ItemObjective, int64(500)})
	series := cal.WeeklyProgress(data)
	require.Len(t, series, 1)
	assert.Equal(t, 100.0, series[0].Progress, "the chart never shows above 100%")
}

func TestWeeklyProgressShortProgram(t *testing.T) {
	program := &models.Program{
		Name:      "Short",
		StartDate: "2026-01-07",
		EndDate:   "2026-01-09",
	}
	cal := fixedCalculator(program, "2026-01-08")

	series := cal.WeeklyProgress(models.UserData{})
	require.Len(t, series, 1)
	assert.Equal(t, "Week 1", series[0].Week)
	assert.Equal(t, 0.0, series[0].Progress)
}

func TestWeeklyProgressNoProgram(t *testing.T) {
	cal := fixedCalculator(nil, "2026-01-08")
	assert.Empty(t, cal.WeeklyProgress(models.UserData{}))
}

func TestDailyStatus(t *testing.T) {
	a := models.Objective{
		ID: "a", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 1,
	}
	b := models.Objective{
		ID: "b", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 1,
	}
	cal := fixedCalculator(oneWeekProgram(a, b), "2026-01-07")

	data := entries(
		[4]any{"2026-01-05", "a", models.ItemObjective, int64(1)},
		[4]any{"2026-01-05", "b", models.ItemObjective, int64(1)},
		[4]any{"2026-01-06", "a", models.ItemObjective, int64(1)},
	)

	status := cal.DailyStatus(data)
	// Only elapsed days are labeled.
	require.Len(t, status, 3)
	assert.Equal(t, models.DayDone, status["2026-01-05"])
	assert.Equal(t, models.DayPartial, status["2026-01-06"])
	assert.Equal(t, models.DayMissed, status["2026-01-07"])
}

func TestDailyStatusWithoutDailyObjectives(t *testing.T) {
	weekly := models.Objective{
		ID: "report", Type: models.TypeCheckbox, Frequency: models.FrequencyWeekly,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 30,
	}
	cal := fixedCalculator(oneWeekProgram(weekly), "2026-01-07")
	assert.Empty(t, cal.DailyStatus(models.UserData{}))
}
