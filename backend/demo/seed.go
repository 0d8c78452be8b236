// Package demo seeds a sample program with a few weeks of generated history,
// paced so the demo user sits roughly 70% through the program and slightly
// ahead of schedule.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"progtrack/backend/models"
	"progtrack/backend/storage"
)

const (
	ProgramID   = "demo_program"
	programName = "Demo Program"
	programDays = 28
)

// Seed creates (or resets) the demo program in the given store and fills its
// entry log. It returns the seeded program id.
func Seed(store storage.Store) (string, error) {
	today := time.Now().Truncate(24 * time.Hour)
	elapsed := (programDays - 1) * 7 / 10
	start := today.AddDate(0, 0, -elapsed)
	end := start.AddDate(0, 0, programDays-1)

	if _, err := store.CreateProgram(ProgramID, programName); err != nil {
		// Re-seeding an existing demo program is fine; anything else is not.
		if !demoExists(store) {
			return "", fmt.Errorf("create demo program: %w", err)
		}
	}
	if err := store.SelectProgram(ProgramID); err != nil {
		return "", err
	}

	program := demoProgram(start, end)
	if err := store.SaveProgram(program); err != nil {
		return "", err
	}
	if err := seedEntries(store, start, today); err != nil {
		return "", err
	}
	return ProgramID, nil
}

func demoExists(store storage.Store) bool {
	programs, err := store.ListPrograms()
	if err != nil {
		return false
	}
	for _, p := range programs {
		if p.ID == ProgramID {
			return true
		}
	}
	return false
}

func demoProgram(start, end time.Time) *models.Program {
	return &models.Program{
		Name:      programName,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Objectives: []models.Objective{
			{
				ID: "daily_check", Name: "Daily Check-in",
				Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
				Scoring: models.ScoringBinary, TargetValue: 1, Weight: 5,
				Importance: models.ImportanceBien,
			},
			{
				ID: "daily_exercise", Name: "30 min exercise",
				Type: models.TypeCheckbox, Frequency: models.FrequencyDaily,
				Scoring: models.ScoringBinary, TargetValue: 1, Weight: 5,
				Importance: models.ImportanceImportant,
			},
			{
				ID: "weekly_report", Name: "Weekly Report",
				Type: models.TypeCheckbox, Frequency: models.FrequencyWeekly,
				Scoring: models.ScoringBinary, TargetValue: 1, Weight: 30,
				Importance: models.ImportanceImportant,
			},
			{
				ID: "project_milestone", Name: "Project Milestone",
				Type: models.TypeCumulative, Frequency: models.FrequencyProgram,
				Scoring: models.ScoringProportional, TargetValue: 5, Weight: 100,
				Importance: models.ImportanceIndispensable,
			},
		},
		Tasks: []models.Task{
			{ID: "task1", Name: "Initial Setup", Weight: 20},
			{ID: "task2", Name: "Mid-term Review", Weight: 40},
		},
	}
}

func seedEntries(store storage.Store, start, today time.Time) error {
	daysSoFar := int(today.Sub(start).Hours()/24) + 1

	// Mostly good days, a handful of partial ones, a couple of misses.
	failDays := 2 + rand.Intn(2)
	sosoDays := 5 + rand.Intn(2)
	dayTypes := make([]string, 0, daysSoFar)
	for i := 0; i < daysSoFar; i++ {
		switch {
		case i < failDays:
			dayTypes = append(dayTypes, "fail")
		case i < failDays+sosoDays:
			dayTypes = append(dayTypes, "soso")
		default:
			dayTypes = append(dayTypes, "good")
		}
	}
	rand.Shuffle(len(dayTypes), func(i, j int) {
		dayTypes[i], dayTypes[j] = dayTypes[j], dayTypes[i]
	})

	for offset := 0; offset < daysSoFar; offset++ {
		day := start.AddDate(0, 0, offset)
		date := day.Format("2006-01-02")

		switch dayTypes[offset] {
		case "good":
			if err := store.SaveEntry(date, "daily_check", models.ItemObjective, 1); err != nil {
				return err
			}
			if err := store.SaveEntry(date, "daily_exercise", models.ItemObjective, 1); err != nil {
				return err
			}
		case "soso":
			id := "daily_check"
			if rand.Intn(2) == 0 {
				id = "daily_exercise"
			}
			if err := store.SaveEntry(date, id, models.ItemObjective, 1); err != nil {
				return err
			}
		}

		// Weekly report lands on Sundays.
		if day.Weekday() == time.Sunday {
			if err := store.SaveEntry(date, "weekly_report", models.ItemObjective, 1); err != nil {
				return err
			}
		}
	}

	// Milestone progress, generous enough to be ahead of schedule.
	startDate := start.Format("2006-01-02")
	if err := store.SaveEntry(startDate, "project_milestone", models.ItemObjective, 4); err != nil {
		return err
	}
	weekTwo := start.AddDate(0, 0, 7).Format("2006-01-02")
	if err := store.SaveEntry(weekTwo, "project_milestone", models.ItemObjective, 4); err != nil {
		return err
	}

	if err := store.SaveEntry(startDate, "task1", models.ItemTask, 1); err != nil {
		return err
	}
	if today.After(start.AddDate(0, 0, 14)) {
		weekThree := start.AddDate(0, 0, 14).Format("2006-01-02")
		if err := store.SaveEntry(weekThree, "task2", models.ItemTask, 1); err != nil {
			return err
		}
	}
	return nil
}
