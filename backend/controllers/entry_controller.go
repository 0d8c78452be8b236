package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"progtrack/backend/config"
	"progtrack/backend/storage"
	"progtrack/backend/utils"
)

type EntryController struct {
	Store  storage.Store
	Cfg    *config.Config
	Logger *log.Logger
}

func NewEntryController(store storage.Store, cfg *config.Config, logger *log.Logger) *EntryController {
	return &EntryController{Store: store, Cfg: cfg, Logger: logger}
}

// SaveEntry godoc
// @Summary Save a progress entry
// @Description Upserts one (date, item) value; a falsy value for a task undoes the task
// @Tags entries
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /data [post]
func (ec *EntryController) SaveEntry(c *fiber.Ctx) error {
	var payload struct {
		Date   string `json:"date"`
		ItemID string `json:"item_id"`
		Type   string `json:"type"`
		Value  any    `json:"value"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if payload.Date == "" || payload.ItemID == "" {
		return utils.BadRequest(c, "date and item_id are required")
	}

	if err := ec.Store.SaveEntry(payload.Date, payload.ItemID, payload.Type, payload.Value); err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return utils.Success(c, fiber.StatusOK, nil)
}
