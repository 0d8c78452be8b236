package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"progtrack/backend/models"
)

const selectionKey = "current_program"

// GormStore is the database-backed Store. Definitions, entries, configs and
// the current selection all live in tables; objective and task lists are JSON
// documents inside the program record.
type GormStore struct {
	db        *gorm.DB
	currentID string
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	err := db.AutoMigrate(
		&models.ProgramRecord{},
		&models.EntryRecord{},
		&models.ConfigRecord{},
		&models.AppState{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &GormStore{db: db}
	var state models.AppState
	if err := db.Where("key = ?", selectionKey).First(&state).Error; err == nil {
		s.currentID = state.Value
	} else {
		// No marker: fall back to the default program if one exists.
		var count int64
		db.Model(&models.ProgramRecord{}).Where("program_id = ?", defaultProgramID).Count(&count)
		if count > 0 {
			s.currentID = defaultProgramID
		}
	}
	return s, nil
}

func (s *GormStore) CurrentProgramID() string {
	return s.currentID
}

func (s *GormStore) ListPrograms() ([]models.ProgramInfo, error) {
	var records []models.ProgramRecord
	if err := s.db.Order("program_id").Find(&records).Error; err != nil {
		return nil, err
	}
	infos := make([]models.ProgramInfo, 0, len(records))
	for _, rec := range records {
		var entries int64
		s.db.Model(&models.EntryRecord{}).Where("program_id = ?", rec.ProgramID).Count(&entries)
		infos = append(infos, models.ProgramInfo{
			ID:      rec.ProgramID,
			Name:    rec.Name,
			HasData: entries > 0,
		})
	}
	return infos, nil
}

func (s *GormStore) SelectProgram(id string) error {
	var count int64
	if err := s.db.Model(&models.ProgramRecord{}).Where("program_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %q", ErrProgramNotFound, id)
	}
	s.currentID = id
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.AppState{Key: selectionKey, Value: id}).Error
}

func (s *GormStore) CreateProgram(id, name string) (string, error) {
	if id == defaultProgramID {
		return "", ErrReservedID
	}
	var count int64
	if err := s.db.Model(&models.ProgramRecord{}).Where("program_id = ?", id).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", fmt.Errorf("%w: %q", ErrProgramExists, id)
	}
	record := models.ProgramRecord{
		ProgramID:  id,
		Name:       name,
		Objectives: datatypes.JSON("[]"),
		Tasks:      datatypes.JSON("[]"),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return "", err
	}
	return id, nil
}

func (s *GormStore) LoadProgram() (*models.Program, error) {
	rec, err := s.currentRecord()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	program := models.Program{
		Name:       rec.Name,
		StartDate:  rec.StartDate,
		EndDate:    rec.EndDate,
		Objectives: []models.Objective{},
		Tasks:      []models.Task{},
	}
	if len(rec.Objectives) > 0 {
		if err := json.Unmarshal(rec.Objectives, &program.Objectives); err != nil {
			return nil, fmt.Errorf("parse objectives: %w", err)
		}
	}
	if len(rec.Tasks) > 0 {
		if err := json.Unmarshal(rec.Tasks, &program.Tasks); err != nil {
			return nil, fmt.Errorf("parse tasks: %w", err)
		}
	}
	return &program, nil
}

func (s *GormStore) SaveProgram(program *models.Program) error {
	objectives, err := json.Marshal(program.Objectives)
	if err != nil {
		return err
	}
	tasks, err := json.Marshal(program.Tasks)
	if err != nil {
		return err
	}

	record := models.ProgramRecord{
		ProgramID:  s.programID(),
		Name:       program.Name,
		StartDate:  program.StartDate,
		EndDate:    program.EndDate,
		Objectives: datatypes.JSON(objectives),
		Tasks:      datatypes.JSON(tasks),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "program_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "start_date", "end_date", "objectives", "tasks"}),
	}).Create(&record).Error
}

func (s *GormStore) UserData() (models.UserData, error) {
	var records []models.EntryRecord
	if err := s.db.Where("program_id = ?", s.programID()).Order("date").Find(&records).Error; err != nil {
		return nil, err
	}
	data := models.UserData{}
	for _, rec := range records {
		data.Set(rec.Date, rec.ItemID, rec.ItemType, models.CoerceValue(rec.Value))
	}
	return data, nil
}

func (s *GormStore) SaveEntry(date, itemID, itemType string, value any) error {
	if isTaskUndo(itemType, value) {
		return s.db.Unscoped().
			Where("program_id = ? AND item_id = ?", s.programID(), itemID).
			Delete(&models.EntryRecord{}).Error
	}

	record := models.EntryRecord{
		ProgramID: s.programID(),
		Date:      date,
		ItemID:    itemID,
		ItemType:  itemType,
		Value:     formatValue(value),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "program_id"}, {Name: "date"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"item_type", "value"}),
	}).Create(&record).Error
}

func (s *GormStore) ListConfigs() ([]string, error) {
	var names []string
	err := s.db.Model(&models.ConfigRecord{}).Order("name").Pluck("name", &names).Error
	if names == nil {
		names = []string{}
	}
	return names, err
}

func (s *GormStore) SaveConfig(name string, doc json.RawMessage) error {
	name = configFileName(name)
	if name == programFileName {
		return ErrReservedConfig
	}
	record := models.ConfigRecord{Name: name, Document: datatypes.JSON(doc)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document"}),
	}).Create(&record).Error
}

func (s *GormStore) LoadConfig(name string) (json.RawMessage, error) {
	var record models.ConfigRecord
	err := s.db.Where("name = ?", configFileName(name)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(record.Document), nil
}

func (s *GormStore) currentRecord() (*models.ProgramRecord, error) {
	var rec models.ProgramRecord
	err := s.db.Where("program_id = ?", s.programID()).First(&rec).Error
	return &rec, err
}

func (s *GormStore) programID() string {
	if s.currentID == "" {
		return defaultProgramID
	}
	return s.currentID
}
