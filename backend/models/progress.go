package models

// ProgressResult is the engine's primary output. Percentages are pre-rounded to
// one decimal; the on-track decision is made on unrounded values.
type ProgressResult struct {
	CurrentPoints    float64 `json:"current_points"`
	TotalPoints      float64 `json:"total_points"`
	CurrentProgress  float64 `json:"current_progress"`
	ExpectedProgress float64 `json:"expected_progress"`
	ElapsedDays      int     `json:"elapsed_days"`
	TotalDays        int     `json:"total_days"`
	IsOnTrack        bool    `json:"is_on_track"`
}

// WeekProgress is one point of the dashboard's per-week series.
type WeekProgress struct {
	Week     string  `json:"week"`
	Progress float64 `json:"progress"`
}

// Day statuses for the dashboard calendar.
const (
	DayDone    = "done"
	DayPartial = "partial"
	DayMissed  = "missed"
)

// DayPoints is one cell of an objective's per-date breakdown.
type DayPoints struct {
	Points float64 `json:"points"`
	Value  any     `json:"value"`
}

type ObjectiveBreakdown struct {
	Objective      Objective            `json:"objective"`
	CurrentPoints  float64              `json:"current_points"`
	TotalPoints    float64              `json:"total_points"`
	DailyBreakdown map[string]DayPoints `json:"daily_breakdown"`
}

type TaskBreakdown struct {
	Task           Task    `json:"task"`
	CurrentPoints  float64 `json:"current_points"`
	TotalPoints    float64 `json:"total_points"`
	Completed      bool    `json:"completed"`
	CompletionDate string  `json:"completion_date,omitempty"`
}

type BreakdownTotals struct {
	CurrentPoints float64 `json:"current_points"`
	TotalPoints   float64 `json:"total_points"`
}

// Breakdown is the per-item decomposition used by the explanation view.
type Breakdown struct {
	Objectives []ObjectiveBreakdown `json:"objectives"`
	Tasks      []TaskBreakdown      `json:"tasks"`
	Totals     BreakdownTotals      `json:"totals"`
}
