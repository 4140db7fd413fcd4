package config

import (
	"os"
)

// Config carries the portal's runtime settings, all sourced from the
// environment (a .env file is loaded by main before this runs).
type Config struct {
	Port            string
	UpstreamBaseURL string
	GinMode         string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the portal configuration with development defaults.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		UpstreamBaseURL: getEnv("UPSTREAM_API_URL", "http://127.0.0.1:9090"),
		GinMode:         getEnv("GIN_MODE", ""),
	}
}
