package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progtrack/backend/models"
)

func TestProgressNoProgram(t *testing.T) {
	cal := fixedCalculator(nil, "2026-01-05")
	result, _, err := cal.Progress(models.UserData{})
	assert.ErrorIs(t, err, ErrNoProgram)
	assert.Nil(t, result)
}

func TestProgressInvalidDates(t *testing.T) {
	for _, program := range []*models.Program{
		{Name: "no dates"},
		{Name: "bad start", StartDate: "soon", EndDate: "2026-01-11"},
		{Name: "bad end", StartDate: "2026-01-05", EndDate: "later"},
	} {
		cal := fixedCalculator(program, "2026-01-05")
		_, _, err := cal.Progress(models.UserData{})
		assert.ErrorIs(t, err, ErrInvalidDates, program.Name)
	}
}

func TestProgressZeroTotalPoints(t *testing.T) {
	cal := fixedCalculator(oneWeekProgram(), "2026-01-07")
	result, diags, err := cal.Progress(nil)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, 0.0, result.TotalPoints)
	assert.Equal(t, 0.0, result.CurrentProgress)
	assert.Equal(t, 0.0, result.ExpectedProgress)
	assert.True(t, result.IsOnTrack)
}

func TestProgressSingleDailyObjectiveFirstDay(t *testing.T) {
	// Weight 5 over 7 days, completed on day 1 only.
	obj := models.Objective{
		ID: "check", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 5,
	}
	cal := fixedCalculator(oneWeekProgram(obj), "2026-01-05")

	data := entries([4]any{"2026-01-05", "check", models.ItemObjective, int64(1)})
	result, diags, err := cal.Progress(data)
	require.NoError(t, err)
	assert.Empty(t, diags)

	assert.Equal(t, 5.0, result.CurrentPoints)
	assert.Equal(t, 35.0, result.TotalPoints)
	assert.Equal(t, 1, result.ElapsedDays)
	assert.Equal(t, 7, result.TotalDays)
	assert.InDelta(t, 14.3, result.CurrentProgress, 1e-9)
	assert.InDelta(t, 14.3, result.ExpectedProgress, 1e-9)
	assert.True(t, result.IsOnTrack)
}

func TestProgressImportanceMultipliersCompose(t *testing.T) {
	// Three weight-1 daily objectives of different importance over 7 days,
	// all completed on day 1: current 3+2+1=6, total 7*(3+2+1)=42.
	objective := func(id, importance string) models.Objective {
		return models.Objective{
			ID: id, Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
			Scoring: models.ScoringBinary, TargetValue: 1, Weight: 1,
			Importance: importance,
		}
	}
	cal := fixedCalculator(oneWeekProgram(
		objective("a", models.ImportanceIndispensable),
		objective("b", models.ImportanceImportant),
		objective("c", models.ImportanceBien),
	), "2026-01-05")

	data := entries(
		[4]any{"2026-01-05", "a", models.ItemObjective, int64(1)},
		[4]any{"2026-01-05", "b", models.ItemObjective, int64(1)},
		[4]any{"2026-01-05", "c", models.ItemObjective, int64(1)},
	)
	result, _, err := cal.Progress(data)
	require.NoError(t, err)

	assert.Equal(t, 6.0, result.CurrentPoints)
	assert.Equal(t, 42.0, result.TotalPoints)
}

func TestProgressTaskOnFirstDay(t *testing.T) {
	// One 100-point task completed on day 1 of a 49-day program: 100% current,
	// ~2% expected.
	program := &models.Program{
		Name:      "Test",
		StartDate: "2026-01-05",
		EndDate:   "2026-02-22",
		Tasks:     []models.Task{{ID: "task_1", Name: "Do the thing", Weight: 100}},
	}
	cal := fixedCalculator(program, "2026-01-05")

	data := entries([4]any{"2026-01-05", "task_1", models.ItemTask, int64(1)})
	result, _, err := cal.Progress(data)
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.CurrentPoints)
	assert.Equal(t, 100.0, result.TotalPoints)
	assert.Equal(t, 100.0, result.CurrentProgress)
	assert.Equal(t, 2.0, result.ExpectedProgress)
	assert.Equal(t, 1, result.ElapsedDays)
	assert.Equal(t, 49, result.TotalDays)
	assert.True(t, result.IsOnTrack)
}

func TestProgressTaskNotCompleted(t *testing.T) {
	program := &models.Program{
		Name:      "Test",
		StartDate: "2026-01-05",
		EndDate:   "2026-02-22",
		Tasks:     []models.Task{{ID: "task_1", Name: "Do the thing", Weight: 100}},
	}
	cal := fixedCalculator(program, "2026-01-05")

	result, _, err := cal.Progress(models.UserData{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.CurrentProgress)
	assert.Equal(t, 2.0, result.ExpectedProgress)
	assert.False(t, result.IsOnTrack)
}

func TestProgressElapsedDaysClamping(t *testing.T) {
	obj := models.Objective{
		ID: "check", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 1,
	}
	program := oneWeekProgram(obj)

	before := fixedCalculator(program, "2025-12-30")
	result, _, err := before.Progress(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.ElapsedDays)
	assert.Equal(t, 0.0, result.ExpectedProgress)

	after := fixedCalculator(program, "2026-02-01")
	result, _, err = after.Progress(nil)
	require.NoError(t, err)
	assert.Equal(t, 7, result.ElapsedDays)
	assert.Equal(t, 100.0, result.ExpectedProgress)
}

func TestProgressWeeklyExpectedCountsElapsedCompleteWeeks(t *testing.T) {
	obj := models.Objective{
		ID: "report", Type: models.TypeCheckbox, Frequency: models.FrequencyWeekly,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 10,
	}
	program := &models.Program{
		Name:      "Test",
		StartDate: "2026-01-05",
		EndDate:   "2026-01-18", // two complete weeks
		Objectives: []models.Objective{
			obj,
		},
	}

	saturday := fixedCalculator(program, "2026-01-10")
	result, _, err := saturday.Progress(nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, result.TotalPoints)
	assert.Equal(t, 0.0, result.ExpectedProgress, "no week is complete before its sunday")

	sunday := fixedCalculator(program, "2026-01-11")
	result, _, err = sunday.Progress(nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, result.ExpectedProgress, "week one closes on sunday")
}

func TestProgressMisconfiguredObjectiveDoesNotAbort(t *testing.T) {
	good := models.Objective{
		ID: "check", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 5,
	}
	bad := models.Objective{
		ID: "odd", Type: models.TypeCheckbox, Frequency: "fortnightly",
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 5,
	}
	cal := fixedCalculator(oneWeekProgram(good, bad), "2026-01-05")

	data := entries([4]any{"2026-01-05", "check", models.ItemObjective, int64(1)})
	result, diags, err := cal.Progress(data)
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, "odd", diags[0].ItemID)
	assert.Contains(t, diags[0].Issue, "fortnightly")

	// The bad objective contributes zero to both sides.
	assert.Equal(t, 5.0, result.CurrentPoints)
	assert.Equal(t, 35.0, result.TotalPoints)
}

func TestProgressRoundsToOneDecimal(t *testing.T) {
	obj := models.Objective{
		ID: "check", Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
		Scoring: models.ScoringBinary, TargetValue: 1, Weight: 1,
	}
	// 3-day program, day 1: expected 1/3 = 33.333... -> 33.3
	program := &models.Program{
		Name:       "Test",
		StartDate:  "2026-01-05",
		EndDate:    "2026-01-07",
		Objectives: []models.Objective{obj},
	}
	cal := fixedCalculator(program, "2026-01-05")

	result, _, err := cal.Progress(nil)
	require.NoError(t, err)
	assert.Equal(t, 33.3, result.ExpectedProgress)
}
