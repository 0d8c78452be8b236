package engine

import (
	"progtrack/backend/models"
)

// Breakdown produces the per-objective, per-task, per-day decomposition used by
// the explanation view. It returns an empty shell instead of failing when the
// program has no usable date range.
//
// The earnable figures ignore importance multipliers, use the display week
// count (total_days / 7) for weekly objectives and the plain weight for
// program-frequency ones; the earned side inlines a plain count for daily
// objectives and delegates weekly and program scoring to the calculators.
func (c *Calculator) Breakdown(data models.UserData) (*models.Breakdown, []Diagnostic) {
	breakdown := &models.Breakdown{
		Objectives: []models.ObjectiveBreakdown{},
		Tasks:      []models.TaskBreakdown{},
	}

	start, end, err := c.programDates()
	if err != nil {
		return breakdown, nil
	}
	if data == nil {
		data = models.UserData{}
	}

	totalDays := daysBetween(start, end) + 1
	wb := ComputeWeekBounds(start, end)

	var diags []Diagnostic
	for _, obj := range c.program.Objectives {
		ob := models.ObjectiveBreakdown{
			Objective:      obj,
			DailyBreakdown: make(map[string]models.DayPoints, totalDays),
		}

		switch obj.Frequency {
		case models.FrequencyDaily:
			ob.TotalPoints = float64(obj.Weight * totalDays)
		case models.FrequencyWeekly:
			ob.TotalPoints = float64(obj.Weight * (totalDays / 7))
		case models.FrequencyProgram:
			ob.TotalPoints = float64(obj.Weight)
		}

		ob.CurrentPoints = c.objectivePointsDetailed(obj, data, wb, &diags)

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			dateStr := d.Format(dateLayout)
			cell := models.DayPoints{Value: int64(0)}
			if v := data.Get(dateStr, obj.ID); v != nil {
				cell.Value = v
				if obj.Frequency == models.FrequencyDaily && models.Truthy(v) {
					cell.Points = float64(obj.Weight)
				}
			}
			ob.DailyBreakdown[dateStr] = cell
		}

		breakdown.Objectives = append(breakdown.Objectives, ob)
		breakdown.Totals.CurrentPoints += ob.CurrentPoints
		breakdown.Totals.TotalPoints += ob.TotalPoints
	}

	for _, task := range c.program.Tasks {
		tb := models.TaskBreakdown{Task: task, TotalPoints: float64(task.Weight)}
		for _, date := range sortedDates(data) {
			if models.Truthy(data.Get(date, task.ID)) {
				tb.CurrentPoints = float64(task.Weight)
				tb.Completed = true
				tb.CompletionDate = date
				break
			}
		}
		breakdown.Tasks = append(breakdown.Tasks, tb)
		breakdown.Totals.CurrentPoints += tb.CurrentPoints
		breakdown.Totals.TotalPoints += tb.TotalPoints
	}

	return breakdown, diags
}

// objectivePointsDetailed is the breakdown's earned-points path: a simplified
// truthy-day count for daily objectives, the real calculators otherwise.
func (c *Calculator) objectivePointsDetailed(obj models.Objective, data models.UserData, wb WeekBounds, diags *[]Diagnostic) float64 {
	switch obj.Frequency {
	case models.FrequencyDaily:
		total := 0.0
		for _, date := range sortedDates(data) {
			if models.Truthy(data.Get(date, obj.ID)) {
				total += float64(obj.Weight)
			}
		}
		return total
	case models.FrequencyWeekly:
		return c.weeklyPoints(obj, data, wb, diags)
	case models.FrequencyProgram:
		return c.programPoints(obj, data, diags)
	default:
		return 0
	}
}
