package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGeneratorReturnsFirstChoice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Messages  []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Equal(t, 1000, req.MaxTokens)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "hello", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[
			{"index":0,"message":{"role":"assistant","content":"first"}},
			{"index":1,"message":{"role":"assistant","content":"second"}}]}`))
	}))
	defer srv.Close()

	gen := NewOpenAIGenerator("sk-test", srv.URL+"/v1", "test-model", 0)
	got, err := gen.Generate(context.Background(), "hello", 1000)

	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestOpenAIGeneratorNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[]}`))
	}))
	defer srv.Close()

	got, err := NewOpenAIGenerator("sk-test", srv.URL+"/v1", "", 0).Generate(context.Background(), "hi", 10)

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestOpenAIGeneratorAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIGenerator("sk-bad", srv.URL+"/v1", "", 0).Generate(context.Background(), "hi", 10)
	assert.Error(t, err)
}

func TestOllamaGenerator(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "mistral", payload["model"])
		assert.Equal(t, false, payload["stream"])
		options := payload["options"].(map[string]interface{})
		assert.Equal(t, float64(10), options["num_predict"])

		_, _ = w.Write([]byte(`{"response":"  pong \n","done":true}`))
	}))
	defer srv.Close()

	got, err := NewOllamaGenerator(srv.URL+"/", "mistral", 0).Generate(context.Background(), "ping", 10)

	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}

func TestOllamaGeneratorHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewOllamaGenerator(srv.URL, "", 0).Generate(context.Background(), "ping", 10)
	assert.ErrorContains(t, err, "ollama API error (404)")
}

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("openai requires key", func(t *testing.T) {
		_, err := NewGenerator(ctx, Config{Provider: ProviderOpenAI})
		assert.Error(t, err)
	})

	t.Run("gemini requires key", func(t *testing.T) {
		_, err := NewGenerator(ctx, Config{Provider: ProviderGemini})
		assert.Error(t, err)
	})

	t.Run("ollama", func(t *testing.T) {
		gen, err := NewGenerator(ctx, Config{Provider: ProviderOllama})
		require.NoError(t, err)
		assert.IsType(t, &OllamaGenerator{}, gen)
	})

	t.Run("auto prefers openai key", func(t *testing.T) {
		gen, err := NewGenerator(ctx, Config{Provider: ProviderAuto, OpenAIAPIKey: "sk", GeminiAPIKey: "g"})
		require.NoError(t, err)
		assert.IsType(t, &OpenAIGenerator{}, gen)
	})

	t.Run("auto without keys falls back to ollama", func(t *testing.T) {
		gen, err := NewGenerator(ctx, Config{})
		require.NoError(t, err)
		assert.IsType(t, &OllamaGenerator{}, gen)
	})
}
