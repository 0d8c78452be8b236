package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"progtrack/backend/config"
)

// OpenDB connects to the configured Postgres database.
func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Open builds the Store selected by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "postgres":
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	default:
		return NewFileStore(cfg.DataDir)
	}
}
