package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"progtrack/backend/config"
	"progtrack/backend/models"
	"progtrack/backend/storage"
	"progtrack/backend/utils"
)

type ProgramController struct {
	Store  storage.Store
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProgramController(store storage.Store, cfg *config.Config, logger *log.Logger) *ProgramController {
	return &ProgramController{Store: store, Cfg: cfg, Logger: logger}
}

type objectivePayload struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Frequency   string   `json:"frequency"`
	Scoring     string   `json:"scoring"`
	StartValue  *float64 `json:"start_value"`
	TargetValue *float64 `json:"target_value"`
	Unit        string   `json:"unit"`
	Weight      *int     `json:"weight"`
	Importance  string   `json:"importance"`
}

type taskPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Weight *int   `json:"weight"`
}

type programPayload struct {
	Name       string             `json:"name"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Objectives []objectivePayload `json:"objectives"`
	Tasks      []taskPayload      `json:"tasks"`
}

// SaveProgram godoc
// @Summary Save program definition
// @Description Stores the program with per-frequency default weights applied
// @Tags programs
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /program [post]
func (pc *ProgramController) SaveProgram(c *fiber.Ctx) error {
	var payload programPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if payload.Name == "" {
		return utils.BadRequest(c, "Program name is required")
	}

	program := models.Program{
		Name:       payload.Name,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Objectives: make([]models.Objective, 0, len(payload.Objectives)),
		Tasks:      make([]models.Task, 0, len(payload.Tasks)),
	}

	for _, obj := range payload.Objectives {
		program.Objectives = append(program.Objectives, models.Objective{
			ID:          obj.ID,
			Name:        obj.Name,
			Type:        obj.Type,
			Frequency:   obj.Frequency,
			Scoring:     stringOr(obj.Scoring, models.ScoringProportional),
			StartValue:  floatOr(obj.StartValue, 0),
			TargetValue: floatOr(obj.TargetValue, 1),
			Unit:        obj.Unit,
			Weight:      intOr(obj.Weight, defaultObjectiveWeight(obj.Frequency)),
			Importance:  stringOr(obj.Importance, models.ImportanceBien),
		})
	}

	for _, task := range payload.Tasks {
		program.Tasks = append(program.Tasks, models.Task{
			ID:     task.ID,
			Name:   task.Name,
			Weight: intOr(task.Weight, 5),
		})
	}

	if err := pc.Store.SaveProgram(&program); err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, nil)
}

// defaultObjectiveWeight scales the base weight with the accrual cadence so
// rarer objectives are worth more by default.
func defaultObjectiveWeight(frequency string) int {
	switch frequency {
	case models.FrequencyDaily:
		return 1
	case models.FrequencyWeekly:
		return 5
	default:
		return 15
	}
}

// ListPrograms godoc
// @Summary List available programs
// @Tags programs
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /programs [get]
func (pc *ProgramController) ListPrograms(c *fiber.Ctx) error {
	programs, err := pc.Store.ListPrograms()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	currentID := pc.Store.CurrentProgramID()
	out := make([]fiber.Map, 0, len(programs))
	for _, p := range programs {
		out = append(out, fiber.Map{
			"id":          p.ID,
			"name":        p.Name,
			"folder_path": p.FolderPath,
			"has_data":    p.HasData,
			"is_current":  p.ID == currentID,
		})
	}
	return c.JSON(out)
}

// GetCurrentProgram godoc
// @Summary Get the currently selected program
// @Tags programs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /programs/current [get]
func (pc *ProgramController) GetCurrentProgram(c *fiber.Ctx) error {
	programs, err := pc.Store.ListPrograms()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	currentID := pc.Store.CurrentProgramID()
	var current *models.ProgramInfo
	for i := range programs {
		if programs[i].ID == currentID {
			current = &programs[i]
			break
		}
	}
	return c.JSON(fiber.Map{
		"current_program":    current,
		"current_program_id": currentID,
	})
}

// SelectProgram godoc
// @Summary Select a program to work with
// @Tags programs
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /programs/select [post]
func (pc *ProgramController) SelectProgram(c *fiber.Ctx) error {
	var payload struct {
		ProgramID string `json:"program_id"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.ProgramID == "" {
		return utils.BadRequest(c, "Program ID is required")
	}

	if err := pc.Store.SelectProgram(payload.ProgramID); err != nil {
		if errors.Is(err, storage.ErrProgramNotFound) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, nil)
}

// CreateProgram godoc
// @Summary Create a new program
// @Tags programs
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /programs [post]
func (pc *ProgramController) CreateProgram(c *fiber.Ctx) error {
	var payload struct {
		ProgramID   string `json:"program_id"`
		ProgramName string `json:"program_name"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.ProgramName == "" {
		return utils.BadRequest(c, "Program ID and name are required")
	}

	id := utils.SanitizeProgramID(payload.ProgramID)
	if id == "" {
		id = uuid.NewString()
	}

	createdID, err := pc.Store.CreateProgram(id, payload.ProgramName)
	if err != nil {
		if errors.Is(err, storage.ErrReservedID) || errors.Is(err, storage.ErrProgramExists) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"program_id": createdID,
	})
}

// ListConfigs godoc
// @Summary List saved program configurations
// @Tags configs
// @Produce json
// @Success 200 {array} string
// @Router /configs [get]
func (pc *ProgramController) ListConfigs(c *fiber.Ctx) error {
	configs, err := pc.Store.ListConfigs()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(configs)
}

// SaveConfig godoc
// @Summary Save a named program configuration
// @Tags configs
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /configs [post]
func (pc *ProgramController) SaveConfig(c *fiber.Ctx) error {
	var payload struct {
		Name   string          `json:"name"`
		Config json.RawMessage `json:"config"`
	}
	if err := c.BodyParser(&payload); err != nil || payload.Name == "" || len(payload.Config) == 0 {
		return utils.BadRequest(c, "Missing name or config data")
	}

	name := utils.SanitizeFilename(payload.Name)
	if err := pc.Store.SaveConfig(name, payload.Config); err != nil {
		if errors.Is(err, storage.ErrReservedConfig) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, nil)
}

// LoadConfig godoc
// @Summary Load a named program configuration
// @Tags configs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /configs/{name} [get]
func (pc *ProgramController) LoadConfig(c *fiber.Ctx) error {
	name := utils.SanitizeFilename(c.Params("name"))
	if name == "" {
		return utils.BadRequest(c, "Missing filename")
	}

	doc, err := pc.Store.LoadConfig(name)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			return utils.NotFound(c, "File not found")
		}
		return utils.InternalServerError(c, err.Error())
	}
	c.Set("Content-Type", "application/json")
	return c.Send(doc)
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func floatOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
