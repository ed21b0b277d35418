// Package config loads server settings from the environment and tax tables
// and filer profiles from YAML files.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Server holds the HTTP server settings.
type Server struct {
	Addr           string
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
	MaxUploadBytes int64
}

// ServerFromEnv builds the server configuration from environment variables,
// falling back to development defaults.
func ServerFromEnv() Server {
	cfg := Server{
		Addr:           ":8080",
		CORSOrigins:    []string{"*"},
		LogLevel:       "info",
		LogFormat:      "console",
		MaxUploadBytes: 5 << 20,
	}

	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.CORSOrigins = parts
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}

	return cfg
}
