package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OllamaConfig holds the inference endpoint settings. The defaults match a
// stock local Ollama install so Guardian needs no configuration at all.
type OllamaConfig struct {
	APIURL    string `mapstructure:"api_url"`
	Model     string `mapstructure:"model"`
	TimeoutMS int    `mapstructure:"timeout_ms"` // whole round trip, milliseconds
}

// Timeout returns the generate round-trip bound as a duration.
func (o OllamaConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutMS) * time.Millisecond
}

// LoggingConfig controls the opt-in stderr diagnostics. An empty level keeps
// the process fully silent, which is the contract Guardian relies on.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
