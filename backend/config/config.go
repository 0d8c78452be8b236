package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DataDir    string
	// StorageBackend selects persistence: "file" (default) or "postgres".
	StorageBackend string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	// ClampWeeklyRatio caps weekly proportional scoring at 100% of a week's
	// weight in the main progress figure. Off by default.
	ClampWeeklyRatio bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		DataDir:          getEnv("DATA_DIR", "data"),
		StorageBackend:   getEnv("STORAGE_BACKEND", "file"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "progtrack"),
		ClampWeeklyRatio: getEnv("CLAMP_WEEKLY_RATIO", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
