package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the process configuration.
type Config struct {
	Port        string
	DBDriver    string
	DBDSN       string
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for local development.
func Load() *Config {
	ttlMinutes := 30
	if raw := getEnv("TOKEN_TTL_MINUTES", ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			ttlMinutes = parsed
		}
	}

	origins := []string{"*"}
	if raw := getEnv("CORS_ORIGINS", ""); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:       getEnv("DB_DSN", "microblog.db"),
		JWTSecret:   getEnv("JWT_SECRET", "default-secret-key-please-change-in-production"),
		TokenTTL:    time.Duration(ttlMinutes) * time.Minute,
		CORSOrigins: origins,
	}
}

// getEnv gets an environment variable or returns the default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
