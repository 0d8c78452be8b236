package engine

import (
	"progtrack/backend/models"
)

// Progress computes the program's current and expected progress over the given
// entry-log snapshot. A misconfigured objective contributes zero points and a
// diagnostic; only a missing program or an unusable date range is an error.
func (c *Calculator) Progress(data models.UserData) (*models.ProgressResult, []Diagnostic, error) {
	start, end, err := c.programDates()
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		data = models.UserData{}
	}

	today := c.today()
	totalDays := daysBetween(start, end) + 1

	var elapsedDays int
	switch {
	case today.Before(start):
		elapsedDays = 0
	case today.After(end):
		elapsedDays = totalDays
	default:
		elapsedDays = daysBetween(start, today) + 1
	}

	// Week boundaries are shared by every weekly objective.
	wb := ComputeWeekBounds(start, end)

	var diags []Diagnostic
	var currentPoints, totalPoints, expectedPoints float64

	for _, obj := range c.program.Objectives {
		totalPoints += c.maxPoints(obj, totalDays, wb)
		expectedPoints += c.expectedPoints(obj, elapsedDays, totalDays, wb, today)
		currentPoints += c.objectivePoints(obj, data, wb, &diags)
	}

	for _, task := range c.program.Tasks {
		totalPoints += float64(task.Weight)
		expectedPoints += float64(task.Weight) * float64(elapsedDays) / float64(totalDays)
		currentPoints += c.taskPoints(task, data)
	}

	var currentProgress, expectedProgress float64
	if totalPoints > 0 {
		currentProgress = currentPoints / totalPoints * 100
		expectedProgress = expectedPoints / totalPoints * 100
	}

	return &models.ProgressResult{
		CurrentPoints:    currentPoints,
		TotalPoints:      totalPoints,
		CurrentProgress:  round1(currentProgress),
		ExpectedProgress: round1(expectedProgress),
		ElapsedDays:      elapsedDays,
		TotalDays:        totalDays,
		// Compared before rounding.
		IsOnTrack: currentProgress >= expectedProgress,
	}, diags, nil
}
