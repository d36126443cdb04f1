package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewsEnricherWithoutKeyMakesNoCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	got := NewNewsEnricher(srv.URL).Fetch(context.Background(), "golang", "")

	assert.Equal(t, NewsNotConfigured, got)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestNewsEnricherFormatsArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/v2/everything", r.URL.Path)
		assert.Equal(t, "Eiffel", q.Get("q"))
		assert.Equal(t, "secret", q.Get("apiKey"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "3", q.Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","articles":[
			{"title":"Tower repainted","source":{"name":"Le Monde"},"publishedAt":"2024-06-15T12:00:00Z","description":"Fresh coat."},
			{"title":"Queues grow","source":{"name":"BBC"},"publishedAt":"garbage","description":""}
		]}`))
	}))
	defer srv.Close()

	got := NewNewsEnricher(srv.URL).Fetch(context.Background(), "Eiffel", "secret")

	parts := strings.Split(got, "\n\n")
	assert.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], `• "Tower repainted" (Le Monde) - `))
	assert.Contains(t, parts[0], "\n  Fresh coat.")
	assert.Contains(t, parts[1], `• "Queues grow" (BBC) - garbage`)
}

func TestNewsEnricherNoArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[]}`))
	}))
	defer srv.Close()

	got := NewNewsEnricher(srv.URL).Fetch(context.Background(), "Eiffel", "secret")
	assert.Equal(t, `No recent news found about "Eiffel"`, got)
}

func TestNewsEnricherFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":"error","code":"apiKeyInvalid"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	got := NewNewsEnricher(srv.URL).Fetch(context.Background(), "Eiffel", "bad")
	assert.Equal(t, NewsFetchFailed, got)
}
