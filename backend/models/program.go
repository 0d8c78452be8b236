package models

// Objective types.
const (
	TypeCheckbox   = "checkbox"
	TypeCumulative = "cumulative"
	TypeLatest     = "latest"
)

// Objective frequencies.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyProgram = "program"
)

// Scoring methods.
const (
	ScoringBinary       = "binary"
	ScoringProportional = "proportional"
)

// Importance levels.
const (
	ImportanceIndispensable = "indispensable"
	ImportanceImportant     = "important"
	ImportanceBien          = "bien"
)

type Objective struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`      // checkbox, cumulative, latest
	Frequency   string  `json:"frequency"` // daily, weekly, program
	Scoring     string  `json:"scoring"`   // binary, proportional
	StartValue  float64 `json:"start_value"`
	TargetValue float64 `json:"target_value"`
	Unit        string  `json:"unit"`
	Weight      int     `json:"weight"`
	Importance  string  `json:"importance"` // indispensable, important, bien
}

// Multiplier resolves the importance level to its point multiplier.
// Unrecognized or missing values fall back to 1.
func (o Objective) Multiplier() int {
	switch o.Importance {
	case ImportanceIndispensable:
		return 3
	case ImportanceImportant:
		return 2
	default:
		return 1
	}
}

type Task struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type Program struct {
	Name       string      `json:"name"`
	StartDate  string      `json:"start_date"` // YYYY-MM-DD
	EndDate    string      `json:"end_date"`   // YYYY-MM-DD
	Objectives []Objective `json:"objectives"`
	Tasks      []Task      `json:"tasks"`
}

type ProgramInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	FolderPath string `json:"folder_path"`
	HasData    bool   `json:"has_data"`
}
