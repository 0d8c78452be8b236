package engine

import (
	"fmt"
	"time"

	"progtrack/backend/models"
)

// WeeklyProgress computes the dashboard's per-week percentage series over the
// program's complete weeks. Programs without a usable date range yield an
// empty series; programs shorter than one complete week yield a single zero
// entry so the chart still renders.
func (c *Calculator) WeeklyProgress(data models.UserData) []models.WeekProgress {
	start, end, err := c.programDates()
	if err != nil {
		return []models.WeekProgress{}
	}
	if data == nil {
		data = models.UserData{}
	}

	wb := ComputeWeekBounds(start, end)
	if wb.CompleteWeeks == 0 {
		return []models.WeekProgress{{Week: "Week 1", Progress: 0}}
	}

	series := make([]models.WeekProgress, 0, wb.CompleteWeeks)
	for week := 0; week < wb.CompleteWeeks; week++ {
		weekStart := wb.FirstMonday.AddDate(0, 0, week*7)
		series = append(series, models.WeekProgress{
			Week:     fmt.Sprintf("Week %d", week+1),
			Progress: round1(c.weekProgress(data, weekStart)),
		})
	}
	return series
}

// weekProgress scores one Monday-to-Sunday span as a percentage of the points
// available that week from daily and weekly objectives. The proportional ratio
// is clamped here: a single overachieving week never shows above 100%.
func (c *Calculator) weekProgress(data models.UserData, weekStart time.Time) float64 {
	var totalPoints, earnedPoints float64

	for _, obj := range c.program.Objectives {
		if obj.Frequency != models.FrequencyDaily {
			continue
		}
		for offset := 0; offset < 7; offset++ {
			dateStr := weekStart.AddDate(0, 0, offset).Format(dateLayout)
			totalPoints += float64(obj.Weight)
			if models.Truthy(data.Get(dateStr, obj.ID)) {
				earnedPoints += float64(obj.Weight)
			}
		}
	}

	for _, obj := range c.program.Objectives {
		if obj.Frequency != models.FrequencyWeekly {
			continue
		}
		totalPoints += float64(obj.Weight)

		var achieved float64
		for offset := 0; offset < 7; offset++ {
			dateStr := weekStart.AddDate(0, 0, offset).Format(dateLayout)
			v := data.Get(dateStr, obj.ID)
			if v == nil {
				continue
			}
			switch obj.Type {
			case models.TypeCheckbox:
				if models.Truthy(v) {
					achieved++
				}
			case models.TypeCumulative:
				achieved += models.Numeric(v)
			}
		}

		switch obj.Scoring {
		case models.ScoringBinary:
			if achieved >= obj.TargetValue {
				earnedPoints += float64(obj.Weight)
			}
		case models.ScoringProportional:
			if obj.TargetValue > 0 {
				ratio := achieved / obj.TargetValue
				if ratio > 1 {
					ratio = 1
				}
				earnedPoints += float64(obj.Weight) * ratio
			}
		}
	}

	if totalPoints == 0 {
		return 0
	}
	return earnedPoints / totalPoints * 100
}

// DailyStatus labels each elapsed program day by how many daily objectives
// were completed: all of them, some, or none. Programs without daily
// objectives (or without a usable date range) yield an empty map.
func (c *Calculator) DailyStatus(data models.UserData) map[string]string {
	status := map[string]string{}

	start, end, err := c.programDates()
	if err != nil {
		return status
	}
	if data == nil {
		data = models.UserData{}
	}

	var daily []models.Objective
	for _, obj := range c.program.Objectives {
		if obj.Frequency == models.FrequencyDaily {
			daily = append(daily, obj)
		}
	}
	if len(daily) == 0 {
		return status
	}

	last := end
	if today := c.today(); today.Before(end) {
		last = today
	}

	for d := start; !d.After(last); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateLayout)
		completed := 0
		for _, obj := range daily {
			if models.Truthy(data.Get(dateStr, obj.ID)) {
				completed++
			}
		}
		switch {
		case completed == len(daily):
			status[dateStr] = models.DayDone
		case completed > 0:
			status[dateStr] = models.DayPartial
		default:
			status[dateStr] = models.DayMissed
		}
	}
	return status
}
