package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"progtrack/backend/config"
	"progtrack/backend/engine"
	"progtrack/backend/storage"
	"progtrack/backend/utils"
)

type ProgressController struct {
	Store  storage.Store
	Cfg    *config.Config
	Logger *log.Logger
}

func NewProgressController(store storage.Store, cfg *config.Config, logger *log.Logger) *ProgressController {
	return &ProgressController{Store: store, Cfg: cfg, Logger: logger}
}

// calculator loads the current program and builds its calculator. The program
// may be nil when nothing is configured yet; the engine reports that case.
func (pc *ProgressController) calculator() (*engine.Calculator, error) {
	program, err := pc.Store.LoadProgram()
	if err != nil {
		return nil, err
	}
	return engine.NewCalculator(program, engine.Options{
		ClampWeeklyRatio: pc.Cfg.ClampWeeklyRatio,
		Logger:           pc.Logger,
	}), nil
}

// GetProgress godoc
// @Summary Get current progress
// @Description Returns points, percentages and the on-track flag for the current program
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressResult
// @Failure 400 {object} utils.ErrorResponse
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	cal, err := pc.calculator()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	data, err := pc.Store.UserData()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	result, _, err := cal.Progress(data)
	if errors.Is(err, engine.ErrNoProgram) || errors.Is(err, engine.ErrInvalidDates) {
		return utils.BadRequest(c, err.Error())
	}
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(result)
}

// GetDashboard godoc
// @Summary Get dashboard data
// @Description Returns global progress plus weekly and daily series for charting
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /dashboard [get]
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	program, err := pc.Store.LoadProgram()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	if program == nil {
		return utils.BadRequest(c, "No program configured")
	}

	cal := engine.NewCalculator(program, engine.Options{
		ClampWeeklyRatio: pc.Cfg.ClampWeeklyRatio,
		Logger:           pc.Logger,
	})
	data, err := pc.Store.UserData()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	var globalProgress, expectedProgress float64
	if result, _, err := cal.Progress(data); err == nil {
		globalProgress = result.CurrentProgress
		expectedProgress = result.ExpectedProgress
	}

	return c.JSON(fiber.Map{
		"global_progress":   globalProgress,
		"expected_progress": expectedProgress,
		"weekly_progress":   cal.WeeklyProgress(data),
		"daily_status":      cal.DailyStatus(data),
		"program_start":     program.StartDate,
		"program_end":       program.EndDate,
	})
}

// GetBreakdown godoc
// @Summary Get detailed point breakdown
// @Description Returns per-objective, per-task and per-day point decomposition
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /breakdown [get]
func (pc *ProgressController) GetBreakdown(c *fiber.Ctx) error {
	cal, err := pc.calculator()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	data, err := pc.Store.UserData()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	breakdown, diags := cal.Breakdown(data)
	if diags == nil {
		diags = []engine.Diagnostic{}
	}
	return c.JSON(fiber.Map{
		"breakdown":   breakdown,
		"diagnostics": diags,
	})
}
