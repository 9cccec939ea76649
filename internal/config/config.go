package config

import (
	"fmt"
	"os"
	"strings"
)

// Config keeps runtime settings for the server.
type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	SessionSecret  string
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sane defaults.
// The session signing key has no default: running with a forgeable session
// is worse than not running at all.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:       strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SessionSecret:  strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		AllowedOrigins: parseOrigins(strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "task_manager.db"
	}
	if cfg.SessionSecret == "" {
		return cfg, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func parseOrigins(raw string) []string {
	if raw == "" {
		return []string{
			"http://localhost",
			"http://localhost:8000",
			"http://app.task-manager.orb.local",
		}
	}
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
