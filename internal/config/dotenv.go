package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads local env files before the YAML config is read. Lookup
// order is .env.local, .env.<APP_ENV> when APP_ENV is set, then .env.
// godotenv never overwrites variables that are already set, so deployment
// env vars always win and the more specific file beats the generic one.
// Returns the files it found, for the startup log.
func LoadDotEnv() []string {
	candidates := []string{".env.local"}
	if env := os.Getenv("APP_ENV"); env != "" {
		candidates = append(candidates, ".env."+env)
	}
	candidates = append(candidates, ".env")

	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
