package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// apiKeyVars are checked in order; the first non-empty one wins.
var apiKeyVars = []string{"API_KEY", "GEMINI_API_KEY"}

// parseEnv loads envFile into the process environment (variables already
// set are kept) and reads the analyzer credential. A missing file is fine.
func parseEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	for _, name := range apiKeyVars {
		if v := os.Getenv(name); v != "" {
			cfg.AnalyzerAPIKey = v
			break
		}
	}
	return nil
}
