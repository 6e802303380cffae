package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskAnalyze extracts summary, tasks and decisions from meeting content.
	TaskAnalyze TaskType = "analyze"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generative subsystem.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// Enabled reports whether analysis calls can be made at all.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

// DefaultConfig returns a Config with sensible defaults. Without an API key
// the analyzer stays disabled.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-1.5-flash",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskAnalyze: {Temperature: 0.2, MaxTokens: 4096, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CLIPPY_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CLIPPY_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CLIPPY_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CLIPPY_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CLIPPY_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
