package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskSuggest  TaskType = "suggest"
	TaskResearch TaskType = "research"
	TaskValidate TaskType = "validate"
	TaskFeedback TaskType = "feedback"
	TaskPlan     TaskType = "plan"
	TaskTrends   TaskType = "trends"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// Enabled reports whether the LLM subsystem has enough configuration to run.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != "" && c.BaseURL != ""
}

// DefaultConfig returns an LLMConfig with sensible defaults. The API key and
// base URL have no defaults; without them the subsystem stays disabled.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Model:      "deepseek-chat",
		TimeoutMs:  30000,
		MaxRetries: 3,
		Tasks: map[TaskType]TaskConfig{
			TaskSuggest:  {Temperature: 0.7},
			TaskResearch: {Temperature: 0.7, TimeoutMs: 60000},
			TaskValidate: {Temperature: 0.7},
			TaskFeedback: {Temperature: 0.7},
			TaskPlan:     {Temperature: 0.7, TimeoutMs: 60000},
			TaskTrends:   {Temperature: 0.7, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("LICHENG_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LICHENG_LLM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LICHENG_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LICHENG_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LICHENG_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// TaskTemperature returns the effective temperature for a given task type.
func (c LLMConfig) TaskTemperature(task TaskType) float64 {
	if tc, ok := c.Tasks[task]; ok && tc.Temperature > 0 {
		return tc.Temperature
	}
	return 0.7
}
