package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DisabledWithoutKey(t *testing.T) {
	p := NewProvider(Config{})
	_, err := p.Query(context.Background(), "产品经理 发展趋势")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSerpProvider_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "google", r.URL.Query().Get("engine"))
		require.Equal(t, `"产品经理" 薪酬范围`, r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"organic_results": [
				{"snippet": "产品经理平均月薪15k-30k", "link": "https://example.com/a"},
				{"snippet": "", "link": "https://example.com/skip"},
				{"snippet": "一线城市高级产品经理可达50k", "link": "https://example.com/b"}
			]
		}`))
	}))
	defer srv.Close()

	p := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL, TimeoutMs: 5000})
	got, err := p.Query(context.Background(), `"产品经理" 薪酬范围`)
	require.NoError(t, err)
	require.Len(t, got, 2, "empty snippets are dropped")
	assert.Equal(t, "产品经理平均月薪15k-30k", got[0].Text)
	assert.Equal(t, "https://example.com/b", got[1].Link)
}

func TestSerpProvider_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewProvider(Config{APIKey: "test-key", BaseURL: srv.URL, TimeoutMs: 5000})
	_, err := p.Query(context.Background(), "任意查询")
	assert.Error(t, err)
}
