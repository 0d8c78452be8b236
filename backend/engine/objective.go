package engine

import (
	"time"

	"progtrack/backend/models"
)

// maxPoints returns the total attainable points for one objective over the
// whole program. Unknown frequencies score 0 without a diagnostic here; the
// earned-points dispatch reports the issue once.
func (c *Calculator) maxPoints(obj models.Objective, totalDays int, wb WeekBounds) float64 {
	mult := float64(obj.Multiplier())
	switch obj.Frequency {
	case models.FrequencyDaily:
		return float64(obj.Weight) * float64(totalDays) * mult
	case models.FrequencyWeekly:
		return float64(obj.Weight) * float64(wb.CompleteWeeks) * mult
	case models.FrequencyProgram:
		return float64(obj.Weight) * mult
	default:
		return 0
	}
}

// expectedPoints returns the points a perfectly-paced user would have earned
// for one objective by today, under a linear-in-time expectation.
func (c *Calculator) expectedPoints(obj models.Objective, elapsedDays, totalDays int, wb WeekBounds, today time.Time) float64 {
	mult := float64(obj.Multiplier())
	switch obj.Frequency {
	case models.FrequencyDaily:
		return float64(obj.Weight) * float64(elapsedDays) * mult
	case models.FrequencyWeekly:
		return float64(obj.Weight) * float64(wb.elapsedCompleteWeeks(today)) * mult
	case models.FrequencyProgram:
		return float64(obj.Weight) * (float64(elapsedDays) / float64(totalDays)) * mult
	default:
		return 0
	}
}

// objectivePoints dispatches earned-points computation per frequency.
func (c *Calculator) objectivePoints(obj models.Objective, data models.UserData, wb WeekBounds, diags *[]Diagnostic) float64 {
	switch obj.Frequency {
	case models.FrequencyDaily:
		return c.dailyPoints(obj, data, diags)
	case models.FrequencyWeekly:
		return c.weeklyPoints(obj, data, wb, diags)
	case models.FrequencyProgram:
		return c.programPoints(obj, data, diags)
	default:
		c.diag(diags, obj.ID, "unknown frequency %q", obj.Frequency)
		return 0
	}
}

// dailyPoints awards the objective's weight for every day with a truthy value.
// Only checkbox objectives support the daily cadence.
func (c *Calculator) dailyPoints(obj models.Objective, data models.UserData, diags *[]Diagnostic) float64 {
	if obj.Type != models.TypeCheckbox {
		c.diag(diags, obj.ID, "daily objectives only support the checkbox type, got %q", obj.Type)
		return 0
	}
	total := 0.0
	for _, date := range sortedDates(data) {
		if models.Truthy(data.Get(date, obj.ID)) {
			total += float64(obj.Weight)
		}
	}
	return total * float64(obj.Multiplier())
}

// weeklyPoints scores each complete week independently and sums the result.
// Entries outside the complete-week window never contribute.
func (c *Calculator) weeklyPoints(obj models.Objective, data models.UserData, wb WeekBounds, diags *[]Diagnostic) float64 {
	if wb.CompleteWeeks == 0 {
		return 0
	}
	if obj.Type != models.TypeCheckbox && obj.Type != models.TypeCumulative {
		c.diag(diags, obj.ID, "weekly objectives only support checkbox and cumulative types, got %q", obj.Type)
		return 0
	}

	weekValues := make([]float64, wb.CompleteWeeks)
	for _, date := range sortedDates(data) {
		v := data.Get(date, obj.ID)
		if v == nil {
			continue
		}
		d, err := time.Parse(dateLayout, date)
		if err != nil || !wb.contains(d) {
			continue
		}
		switch obj.Type {
		case models.TypeCheckbox:
			if models.Truthy(v) {
				weekValues[wb.weekIndex(d)]++
			}
		case models.TypeCumulative:
			weekValues[wb.weekIndex(d)] += models.Numeric(v)
		}
	}

	total := 0.0
	for _, weekValue := range weekValues {
		switch obj.Scoring {
		case models.ScoringBinary:
			if weekValue >= obj.TargetValue {
				total += float64(obj.Weight)
			}
		case models.ScoringProportional:
			if obj.TargetValue == 0 {
				c.diag(diags, obj.ID, "proportional scoring requires a non-zero target value")
				return 0
			}
			ratio := weekValue / obj.TargetValue
			if c.opts.ClampWeeklyRatio && ratio > 1 {
				ratio = 1
			}
			total += float64(obj.Weight) * ratio
		default:
			c.diag(diags, obj.ID, "unknown scoring method %q", obj.Scoring)
			return 0
		}
	}
	return total * float64(obj.Multiplier())
}

// programPoints folds the whole entry log into a single value and scores it.
func (c *Calculator) programPoints(obj models.Objective, data models.UserData, diags *[]Diagnostic) float64 {
	// Entry values in chronological order; the explicit sort keeps "latest"
	// deterministic regardless of map iteration order.
	var values []any
	for _, date := range sortedDates(data) {
		if v := data.Get(date, obj.ID); v != nil {
			values = append(values, v)
		}
	}

	var value float64
	switch obj.Type {
	case models.TypeCheckbox:
		value = float64(len(values))
	case models.TypeCumulative:
		for _, v := range values {
			value += models.Numeric(v)
		}
	case models.TypeLatest:
		if len(values) > 0 {
			value = models.Numeric(values[len(values)-1])
		}
	default:
		c.diag(diags, obj.ID, "unknown objective type %q", obj.Type)
		return 0
	}

	var points float64
	switch obj.Scoring {
	case models.ScoringBinary:
		if value >= obj.TargetValue {
			points = float64(obj.Weight)
		}
	case models.ScoringProportional:
		if obj.StartValue == obj.TargetValue {
			c.diag(diags, obj.ID, "proportional scoring requires start_value != target_value")
			return 0
		}
		if obj.StartValue > obj.TargetValue {
			// Decreasing-is-better goal, e.g. weight loss: progress is how far
			// the value has moved down from the start.
			fraction := (obj.StartValue - value) / (obj.StartValue - obj.TargetValue)
			points = float64(obj.Weight) * fraction
		} else {
			if obj.TargetValue == 0 {
				c.diag(diags, obj.ID, "proportional scoring requires a non-zero target value")
				return 0
			}
			points = float64(obj.Weight) * value / obj.TargetValue
		}
	default:
		c.diag(diags, obj.ID, "unknown scoring method %q", obj.Scoring)
		return 0
	}

	return points * float64(obj.Multiplier())
}

// taskPoints is binary weight-or-nothing: any truthy entry for the task id
// completes it. No importance multiplier applies to tasks.
func (c *Calculator) taskPoints(task models.Task, data models.UserData) float64 {
	for _, date := range sortedDates(data) {
		if models.Truthy(data.Get(date, task.ID)) {
			return float64(task.Weight)
		}
	}
	return 0
}
