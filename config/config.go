// Package config reads application configuration from the environment.
// File: config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"

	"street-scan/logger"
)

// Config holds every setting the application reads at startup. The
// administrator identity lives here rather than in the user collection: it is
// configuration, never seeded through the signup flow.
type Config struct {
	Port           string
	ApplicationURL string
	DataDir        string
	SessionSecret  string
	AdminEmail     string
	AdminPassword  string
	InferURL       string
	GeolocationURL string
	Env            string
}

// Load reads a .env file if one exists, then resolves each setting from the
// environment with sensible local-testing defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("No .env file found, relying on environment")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		ApplicationURL: getEnv("APPLICATION_URL", "http://localhost:8080"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		SessionSecret:  getEnv("SESSION_SECRET", "street-scan-dev-secret"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@streetscan.local"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		InferURL:       getEnv("INFER_URL", "http://localhost:5000/api/infer"),
		GeolocationURL: os.Getenv("GEOLOCATION_URL"),
		Env:            getEnv("ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
