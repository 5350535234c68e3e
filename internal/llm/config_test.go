package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "deepseek-chat", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LICHENG_LLM_API_KEY", "sk-test")
	t.Setenv("LICHENG_LLM_BASE_URL", "https://api.example.com/v1")
	t.Setenv("LICHENG_LLM_MODEL", "kimi-k2")
	t.Setenv("LICHENG_LLM_TIMEOUT_MS", "5000")
	t.Setenv("LICHENG_LLM_MAX_RETRIES", "0")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled())
	assert.Equal(t, "kimi-k2", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestTaskTimeout_TaskOverride(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskResearch))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskSuggest))
}

func TestEnabled_RequiresBothKeyAndURL(t *testing.T) {
	assert.False(t, LLMConfig{APIKey: "k"}.Enabled())
	assert.False(t, LLMConfig{BaseURL: "u"}.Enabled())
	assert.True(t, LLMConfig{APIKey: "k", BaseURL: "u"}.Enabled())
}
