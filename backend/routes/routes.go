package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"progtrack/backend/config"
	"progtrack/backend/controllers"
	"progtrack/backend/storage"
)

func SetupRoutes(app *fiber.App, store storage.Store, cfg *config.Config, logger *log.Logger) {
	api := app.Group("/api")

	// Program definition and selection
	programController := controllers.NewProgramController(store, cfg, logger)
	api.Post("/program", programController.SaveProgram)
	api.Get("/programs", programController.ListPrograms)
	api.Post("/programs", programController.CreateProgram)
	api.Get("/programs/current", programController.GetCurrentProgram)
	api.Post("/programs/select", programController.SelectProgram)

	// Named configurations
	api.Get("/configs", programController.ListConfigs)
	api.Post("/configs", programController.SaveConfig)
	api.Get("/configs/:name", programController.LoadConfig)

	// Entry log
	entryController := controllers.NewEntryController(store, cfg, logger)
	api.Post("/data", entryController.SaveEntry)

	// Progress
	progressController := controllers.NewProgressController(store, cfg, logger)
	api.Get("/progress", progressController.GetProgress)
	api.Get("/dashboard", progressController.GetDashboard)
	api.Get("/breakdown", progressController.GetBreakdown)
}
