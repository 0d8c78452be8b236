package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"

	"progtrack/backend/config"
	"progtrack/backend/demo"
	"progtrack/backend/middleware"
	"progtrack/backend/routes"
	"progtrack/backend/storage"
	"progtrack/backend/utils"
)

func main() {
	root := &cobra.Command{
		Use:   "progtrack",
		Short: "Personal program progress tracker",
	}
	root.AddCommand(serveCmd(), demoCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, logger, err := setup()
			if err != nil {
				return err
			}

			app := fiber.New()
			app.Use(cors.New(cors.Config{
				AllowOrigins: "*",
				AllowHeaders: "Origin, Content-Type, Accept, Authorization",
			}))
			app.Use(middleware.LoggingMiddleware(logger))

			routes.SetupRoutes(app, store, cfg, logger)

			logger.Printf("listening on :%s (storage: %s)", cfg.ServerPort, cfg.StorageBackend)
			return app.Listen(":" + cfg.ServerPort)
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed the demo program with generated history",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, logger, err := setup()
			if err != nil {
				return err
			}

			id, err := demo.Seed(store)
			if err != nil {
				return err
			}
			logger.Printf("demo program created with ID: %s", id)
			return nil
		},
	}
}

func setup() (*config.Config, storage.Store, *log.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, utils.InitLogger(), nil
}
