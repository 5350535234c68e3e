package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DisabledWithoutKey(t *testing.T) {
	client := NewClient(LLMConfig{}, nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSuggest})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpenAIClient_Generate(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "deepseek-chat",
			"choices": [{"message": {"role": "assistant", "content": "你好，这是回复。"}}]
		}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	client := NewClient(cfg, NoopObserver{})

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskSuggest,
		SystemPrompt: "你是一位职业发展导师。",
		UserPrompt:   "请给出建议。",
	})
	require.NoError(t, err)
	assert.Equal(t, "你好，这是回复。", resp.Text)
	assert.Equal(t, "deepseek-chat", resp.Model)

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
}

func TestOpenAIClient_RetriesThenFails(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 2
	client := NewClient(cfg, NoopObserver{})

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSuggest})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, 3, calls, "one initial attempt plus two retries")
}

func TestOpenAIClient_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0

	var events []LLMCallEvent
	client := NewClient(cfg, observerFunc(func(e LLMCallEvent) { events = append(events, e) }))

	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskResearch})
	require.Error(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, TaskResearch, events[0].Task)
}

type observerFunc func(LLMCallEvent)

func (f observerFunc) OnCallComplete(e LLMCallEvent) { f(e) }
