package configs

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	AppEnv  string
	LogRoot string
)

/* =========================================================
   ENV LOADER
========================================================= */

// LoadEnv loads .env when present; on managed platforms the process env
// is used as-is.
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			zap.S().Info("no .env file, using system environment")
		}
	}

	AppEnv = GetEnv("APP_ENV", "development")
	LogRoot = GetEnv("LOG_ROOT", ".")
}

// GetEnv reads a key with an optional default.
func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
