package config

import (
	"os"
	"strconv"
)

// CatalogConfig holds the per-session catalog registry settings.
type CatalogConfig struct {
	SessionTTLSec    int
	SweepIntervalSec int
	MaxSessions      int
}

// NotifyConfig holds the announcement fan-out settings.
type NotifyConfig struct {
	Enabled    bool
	SendBuffer int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	TimeZone    string
	CORSOrigins string
	BodyLimitMB int
	Catalog     CatalogConfig
	Notify      NotifyConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"), // default only for non-sensitive value
		TimeZone:    getEnv("TZ", "UTC"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 25),
		Catalog: CatalogConfig{
			SessionTTLSec:    getEnvInt("CATALOG_SESSION_TTL_SEC", 1800),
			SweepIntervalSec: getEnvInt("CATALOG_SWEEP_INTERVAL_SEC", 60),
			MaxSessions:      getEnvInt("CATALOG_MAX_SESSIONS", 1000),
		},
		Notify: NotifyConfig{
			Enabled:    getEnvBool("NOTIFY_ENABLED", true),
			SendBuffer: getEnvInt("NOTIFY_SEND_BUFFER", 16),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
