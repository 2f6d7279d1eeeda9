// Package config loads runtime configuration from environment variables.
package config

import "os"

type Config struct {
	Port         string // HTTP port to listen on
	GeminiAPIKey string // upstream credential; may be empty, checked per request
	GeminiModel  string // model name override
}

// Load reads the environment. GEMINI_API_KEY is deliberately not required
// here: a missing key surfaces as a 500 on each match request instead of
// preventing startup.
func Load() Config {
	return Config{
		Port:         getenv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"), // empty means the client default
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
