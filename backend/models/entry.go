package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Item types carried in the entry log. The type tag is stored as-is and is not
// validated against the referenced item, except for the task undo contract.
const (
	ItemObjective = "objective"
	ItemTask      = "task"
)

// EntryValue is one folded log cell: the stored type tag plus the coerced value.
type EntryValue struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// UserData is the entry log folded by date, then by item id. At most one live
// value exists per (date, item_id) pair.
type UserData map[string]map[string]EntryValue

// Get returns the coerced value for (date, itemID), or nil when absent.
func (u UserData) Get(date, itemID string) any {
	if day, ok := u[date]; ok {
		if ev, ok := day[itemID]; ok {
			return ev.Value
		}
	}
	return nil
}

// Set folds one entry into the map, overwriting any previous value for the pair.
func (u UserData) Set(date, itemID, itemType string, value any) {
	if _, ok := u[date]; !ok {
		u[date] = make(map[string]EntryValue)
	}
	u[date][itemID] = EntryValue{Type: itemType, Value: value}
}

// ProgramRecord persists a program definition in the database backend.
// Objectives and tasks are stored as JSON documents.
type ProgramRecord struct {
	gorm.Model
	ProgramID  string `gorm:"uniqueIndex"`
	Name       string
	StartDate  string
	EndDate    string
	Objectives datatypes.JSON
	Tasks      datatypes.JSON
}

// EntryRecord persists one log row. Values are kept as raw strings and coerced
// on load, matching the CSV backend.
type EntryRecord struct {
	gorm.Model
	ProgramID string `gorm:"index:idx_entry_key,unique"`
	Date      string `gorm:"index:idx_entry_key,unique"`
	ItemID    string `gorm:"index:idx_entry_key,unique"`
	ItemType  string
	Value     string
}

// ConfigRecord persists a named program configuration document.
type ConfigRecord struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex"`
	Document datatypes.JSON
}

// AppState holds key/value application state, e.g. the current program selection.
type AppState struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex"`
	Value string
}
