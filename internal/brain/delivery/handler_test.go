package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"brainly-backend/internal/brain/dto"
	"brainly-backend/internal/brain/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBrain struct {
	askErr      error
	ready       bool
	semanticErr error
	lastQuery   string
	lastLimit   int
}

func (f *fakeBrain) Ask(ctx context.Context, userID, question string) (*usecase.Answer, error) {
	if question == "" {
		return nil, usecase.ErrEmptyQuestion
	}
	if f.askErr != nil {
		return nil, f.askErr
	}
	return &usecase.Answer{
		Text:    "answer for " + userID,
		Sources: dto.Sources{NotesCount: 2, ContentCount: 3},
	}, nil
}

func (f *fakeBrain) HealthCheck(ctx context.Context) bool { return f.ready }

func (f *fakeBrain) Search(userID, query string, limit int) ([]*dto.SearchResult, error) {
	f.lastQuery, f.lastLimit = query, limit
	return []*dto.SearchResult{{ID: "n1", Kind: "note", Title: "Trip", Score: 300}}, nil
}

func (f *fakeBrain) SemanticSearch(ctx context.Context, userID, query string, limit int) ([]*dto.SearchResult, error) {
	if f.semanticErr != nil {
		return nil, f.semanticErr
	}
	return []*dto.SearchResult{}, nil
}

func setupRouter(brain usecase.BrainUsecase, perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBrainHandler(brain)
	limiter := NewUserRateLimiter(perMinute)

	r := gin.New()
	r.GET("/ai/health", h.Health)
	authed := r.Group("/", func(c *gin.Context) {
		c.Set("userID", c.GetHeader("X-User"))
	})
	authed.POST("/ai/ask", limiter.Middleware(), h.Ask)
	authed.GET("/search", h.Search)
	authed.POST("/search/semantic", h.SemanticSearch)
	return r
}

func post(r http.Handler, path, user string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User", user)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAsk(t *testing.T) {
	r := setupRouter(&fakeBrain{}, 10)

	w := post(r, "/ai/ask", "u1", map[string]string{"question": "What did I save about Paris?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer":"answer for u1","sources":{"notesCount":2,"contentCount":3}}`, w.Body.String())
}

func TestAskErrors(t *testing.T) {
	tests := []struct {
		name    string
		brain   *fakeBrain
		body    interface{}
		code    int
		message string
	}{
		{"missing question", &fakeBrain{}, map[string]string{}, http.StatusBadRequest, "Question is required"},
		{"generation failure", &fakeBrain{askErr: fmt.Errorf("%w: 401", usecase.ErrGenerationFailed)},
			map[string]string{"question": "hi"}, http.StatusInternalServerError, "Failed to process question"},
		{"storage failure", &fakeBrain{askErr: errors.New("db down")},
			map[string]string{"question": "hi"}, http.StatusInternalServerError, "Failed to process question"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(setupRouter(tt.brain, 10), "/ai/ask", "u1", tt.body)
			assert.Equal(t, tt.code, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestAskRateLimitedPerUser(t *testing.T) {
	r := setupRouter(&fakeBrain{}, 2)
	q := map[string]string{"question": "hi"}

	assert.Equal(t, http.StatusOK, post(r, "/ai/ask", "u1", q).Code)
	assert.Equal(t, http.StatusOK, post(r, "/ai/ask", "u1", q).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "/ai/ask", "u1", q).Code)
	assert.Equal(t, http.StatusOK, post(r, "/ai/ask", "u2", q).Code)
}

func TestHealth(t *testing.T) {
	for _, ready := range []bool{true, false} {
		r := setupRouter(&fakeBrain{ready: ready}, 10)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"ready":%t}`, ready), w.Body.String())
	}
}

func TestSearch(t *testing.T) {
	brain := &fakeBrain{}
	r := setupRouter(brain, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?q=paris&limit=5", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "paris", brain.lastQuery)
	assert.Equal(t, 5, brain.lastLimit)
	assert.JSONEq(t, `{"results":[{"_id":"n1","kind":"note","title":"Trip","score":300}],"count":1}`, w.Body.String())
}

func TestSemanticSearch(t *testing.T) {
	w := post(setupRouter(&fakeBrain{semanticErr: usecase.ErrSemanticSearchUnavailable}, 10), "/search/semantic", "u1", map[string]string{"query": "paris"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = post(setupRouter(&fakeBrain{}, 10), "/search/semantic", "u1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(setupRouter(&fakeBrain{}, 10), "/search/semantic", "u1", map[string]string{"query": "paris"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[],"count":0}`, w.Body.String())
}
