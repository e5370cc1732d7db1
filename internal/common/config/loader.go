package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL    = "http://localhost:11434/api/generate"
	DefaultModel     = "llama3"
	DefaultTimeoutMS = 15000
)

// Load builds the configuration from environment variables, with an optional
// .env file for Guardian deployments. All keys have working defaults.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Env names are kept as Guardian has always exported them.
	bindings := map[string]string{
		"ollama.api_url":    "OLLAMA_API_URL",
		"ollama.model":      "OLLAMA_MODEL",
		"ollama.timeout_ms": "OLLAMA_TIMEOUT_MS",
		"logging.level":     "GUARDIAN_LOG_LEVEL",
		"logging.format":    "GUARDIAN_LOG_FORMAT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("ollama.api_url", DefaultAPIURL)
	v.SetDefault("ollama.model", DefaultModel)
	v.SetDefault("ollama.timeout_ms", DefaultTimeoutMS)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "json")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults backstops values an explicit empty env var may have cleared.
func applyDefaults(cfg *Config) {
	if cfg.Ollama.APIURL == "" {
		cfg.Ollama.APIURL = DefaultAPIURL
	}
	if cfg.Ollama.Model == "" {
		cfg.Ollama.Model = DefaultModel
	}
	if cfg.Ollama.TimeoutMS <= 0 {
		cfg.Ollama.TimeoutMS = DefaultTimeoutMS
	}
}

// loadEnvFile loads .env from the working directory or the project root.
// Missing files are fine; a Guardian host usually configures through the
// service unit environment instead.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
