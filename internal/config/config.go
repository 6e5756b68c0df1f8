package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	SpreadsheetID     string
	GoogleCredentials string // path to a service-account JSON file, or the JSON itself
	LogLevel          string
	Port              string
	AuthDisabled      bool
}

func New() *Config {
	// Local runs keep credentials in .env; absence is fine in deployment.
	_ = godotenv.Load()

	return &Config{
		SpreadsheetID:     os.Getenv("SPREADSHEETID"),
		GoogleCredentials: os.Getenv("GOOGLECREDENTIALS"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		Port:              portOrDefault(os.Getenv("PORT")),
		AuthDisabled:      os.Getenv("AUTHDISABLED") == "true",
	}
}

func portOrDefault(port string) string {
	if port == "" {
		return "8080"
	}
	return port
}
