package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"progtrack/backend/models"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramExists   = errors.New("program already exists")
	ErrReservedID      = errors.New("cannot create program with ID 'default'")
	ErrReservedConfig  = errors.New("cannot overwrite main program file")
	ErrConfigNotFound  = errors.New("config not found")
)

// Store is the persistence boundary: program definitions, the entry log and
// named configuration documents for a directory of programs, of which exactly
// one is selected at a time.
//
// SaveEntry implements the undo contract: writing a falsy value for an item of
// type "task" deletes every stored entry for that item id instead of storing a
// zero row.
type Store interface {
	ListPrograms() ([]models.ProgramInfo, error)
	CurrentProgramID() string
	SelectProgram(id string) error
	CreateProgram(id, name string) (string, error)

	LoadProgram() (*models.Program, error)
	SaveProgram(program *models.Program) error

	UserData() (models.UserData, error)
	SaveEntry(date, itemID, itemType string, value any) error

	ListConfigs() ([]string, error)
	SaveConfig(name string, doc json.RawMessage) error
	LoadConfig(name string) (json.RawMessage, error)
}

// formatValue renders a value the way it is stored: integral floats without a
// decimal point, everything else in its natural string form.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// isTaskUndo reports whether a save request is a task undo: a task entry whose
// value coerces to "not done".
func isTaskUndo(itemType string, value any) bool {
	if itemType != models.ItemTask {
		return false
	}
	return !models.Truthy(models.CoerceValue(formatValue(value)))
}
