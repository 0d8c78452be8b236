package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"progtrack/backend/models"
)

const (
	programFileName  = "program.json"
	userDataFileName = "user_data.csv"
	selectionMarker  = "current_program.txt"
	defaultProgramID = "default"
)

var csvHeader = []string{"date", "item_id", "type", "value"}

// FileStore keeps each program in its own folder under a data directory:
// program.json for the definition, user_data.csv for the entry log. The
// "default" program lives directly in the data directory root, and the current
// selection is a marker file next to it.
type FileStore struct {
	dataDir   string
	currentID string
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{dataDir: dataDir}
	s.loadSelection()
	return s, nil
}

func (s *FileStore) loadSelection() {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, selectionMarker))
	if err == nil {
		s.currentID = strings.TrimSpace(string(raw))
		return
	}
	// No marker: fall back to the default program if one exists.
	if fileExists(filepath.Join(s.dataDir, programFileName)) {
		s.currentID = defaultProgramID
	}
}

func (s *FileStore) saveSelection() error {
	return os.WriteFile(filepath.Join(s.dataDir, selectionMarker), []byte(s.currentID), 0o644)
}

func (s *FileStore) programFolder() string {
	if s.currentID == "" || s.currentID == defaultProgramID {
		return s.dataDir
	}
	return filepath.Join(s.dataDir, s.currentID)
}

func (s *FileStore) CurrentProgramID() string {
	return s.currentID
}

func (s *FileStore) ListPrograms() ([]models.ProgramInfo, error) {
	var programs []models.ProgramInfo

	// The default program lives at the data directory root.
	if rootProgram := filepath.Join(s.dataDir, programFileName); fileExists(rootProgram) {
		programs = append(programs, models.ProgramInfo{
			ID:         defaultProgramID,
			Name:       programName(rootProgram, "Default Program"),
			FolderPath: s.dataDir,
			HasData:    fileExists(filepath.Join(s.dataDir, userDataFileName)),
		})
	}

	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := filepath.Join(s.dataDir, entry.Name())
		programFile := filepath.Join(folder, programFileName)
		if !fileExists(programFile) {
			continue
		}
		programs = append(programs, models.ProgramInfo{
			ID:         entry.Name(),
			Name:       programName(programFile, entry.Name()),
			FolderPath: folder,
			HasData:    fileExists(filepath.Join(folder, userDataFileName)),
		})
	}
	return programs, nil
}

func (s *FileStore) SelectProgram(id string) error {
	programs, err := s.ListPrograms()
	if err != nil {
		return err
	}
	for _, p := range programs {
		if p.ID == id {
			s.currentID = id
			return s.saveSelection()
		}
	}
	return fmt.Errorf("%w: %q", ErrProgramNotFound, id)
}

func (s *FileStore) CreateProgram(id, name string) (string, error) {
	if id == defaultProgramID {
		return "", ErrReservedID
	}
	folder := filepath.Join(s.dataDir, id)
	if fileExists(filepath.Join(folder, programFileName)) {
		return "", fmt.Errorf("%w: %q", ErrProgramExists, id)
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", err
	}

	program := models.Program{
		Name:       name,
		Objectives: []models.Objective{},
		Tasks:      []models.Task{},
	}
	raw, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(folder, programFileName), raw, 0o644); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(folder, userDataFileName), nil); err != nil {
		return "", err
	}
	return id, nil
}

// LoadProgram returns nil without error when no definition file exists yet.
func (s *FileStore) LoadProgram() (*models.Program, error) {
	raw, err := os.ReadFile(filepath.Join(s.programFolder(), programFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var program models.Program
	if err := json.Unmarshal(raw, &program); err != nil {
		return nil, fmt.Errorf("parse %s: %w", programFileName, err)
	}
	return &program, nil
}

func (s *FileStore) SaveProgram(program *models.Program) error {
	if err := os.MkdirAll(s.programFolder(), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.programFolder(), programFileName), raw, 0o644)
}

func (s *FileStore) UserData() (models.UserData, error) {
	data := models.UserData{}
	rows, err := s.readRows()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		data.Set(row[0], row[1], row[2], models.CoerceValue(row[3]))
	}
	return data, nil
}

func (s *FileStore) SaveEntry(date, itemID, itemType string, value any) error {
	if err := os.MkdirAll(s.programFolder(), 0o755); err != nil {
		return err
	}
	rows, err := s.readRows()
	if err != nil {
		return err
	}

	if isTaskUndo(itemType, value) {
		kept := rows[:0]
		for _, row := range rows {
			if row[1] != itemID {
				kept = append(kept, row)
			}
		}
		return writeCSV(filepath.Join(s.programFolder(), userDataFileName), kept)
	}

	stored := formatValue(value)
	found := false
	for _, row := range rows {
		if row[0] == date && row[1] == itemID {
			row[3] = stored
			found = true
			break
		}
	}
	if !found {
		rows = append(rows, []string{date, itemID, itemType, stored})
	}
	return writeCSV(filepath.Join(s.programFolder(), userDataFileName), rows)
}

// readRows returns the raw log rows without the header. A missing file is an
// empty log.
func (s *FileStore) readRows() ([][]string, error) {
	f, err := os.Open(filepath.Join(s.programFolder(), userDataFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", userDataFileName, err)
	}
	if len(records) > 0 {
		records = records[1:]
	}
	return records, nil
}

func (s *FileStore) ListConfigs() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dataDir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, m := range matches {
		if base := filepath.Base(m); base != programFileName {
			names = append(names, base)
		}
	}
	return names, nil
}

func (s *FileStore) SaveConfig(name string, doc json.RawMessage) error {
	name = configFileName(name)
	if name == programFileName {
		return ErrReservedConfig
	}
	var pretty any
	if err := json.Unmarshal(doc, &pretty); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	raw, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dataDir, name), raw, 0o644)
}

func (s *FileStore) LoadConfig(name string) (json.RawMessage, error) {
	raw, err := os.ReadFile(filepath.Join(s.dataDir, configFileName(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func configFileName(name string) string {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return name
}

func programName(programFile, fallback string) string {
	raw, err := os.ReadFile(programFile)
	if err != nil {
		return fallback
	}
	var program models.Program
	if err := json.Unmarshal(raw, &program); err != nil || program.Name == "" {
		return fallback
	}
	return program.Name
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
