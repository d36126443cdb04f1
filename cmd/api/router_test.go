package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "brainly-backend/internal/auth/domain"
	authRepo "brainly-backend/internal/auth/repository"
	authUsecase "brainly-backend/internal/auth/usecase"
	brainUsecase "brainly-backend/internal/brain/usecase"
	contentdomain "brainly-backend/internal/content/domain"
	contentRepo "brainly-backend/internal/content/repository"
	contentUsecase "brainly-backend/internal/content/usecase"
	notedomain "brainly-backend/internal/note/domain"
	noteRepo "brainly-backend/internal/note/repository"
	noteUsecase "brainly-backend/internal/note/usecase"
	"brainly-backend/pkg/config"
	"brainly-backend/pkg/database"
	"brainly-backend/pkg/enrich"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoGenerator struct {
	lastPrompt string
}

func (e *echoGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	e.lastPrompt = prompt
	return "You saved a Paris trip.", nil
}

func newTestServer(t *testing.T) (http.Handler, *echoGenerator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &contentdomain.Content{}, &contentdomain.ShareLink{}, &notedomain.Note{}))

	cfg := &config.Config{JWTSecret: "test", JWTAccessExpiry: time.Hour, AskRatePerMinute: 5}
	users := authRepo.NewUserRepository(db)
	contents := contentRepo.NewContentRepository(db)
	notes := noteRepo.NewGormNoteRepository(db)

	gen := &echoGenerator{}
	brain := brainUsecase.NewBrainUsecase(
		notes,
		contents,
		brainUsecase.NewPromptBuilder(brainUsecase.PromptBuilderConfig{
			YouTube: enrich.NewYouTubeEnricher(""),
			News:    enrich.NewNewsEnricher(""),
		}),
		brainUsecase.NewAnswerGenerator(gen),
		nil,
	)

	h := NewHandler(cfg,
		authUsecase.NewAuthUsecase(users, cfg),
		contentUsecase.NewContentUsecase(contents, contentRepo.NewShareLinkRepository(db), users),
		noteUsecase.NewNoteUsecase(notes),
		brain,
	)
	return h.Router(), gen
}

func call(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	r, _ := newTestServer(t)

	w := call(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = call(t, r, http.MethodGet, "/api/v1/ai/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ready":true}`, w.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/content"},
		{http.MethodGet, "/api/v1/notes"},
		{http.MethodPost, "/api/v1/ai/ask"},
		{http.MethodGet, "/api/v1/search?q=x"},
	} {
		w := call(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusForbidden, w.Code, route.path)
	}
}

func TestAskEndToEnd(t *testing.T) {
	r, gen := newTestServer(t)
	creds := map[string]string{"username": "alice", "password": "secret1"}

	require.Equal(t, http.StatusOK, call(t, r, http.MethodPost, "/api/v1/signup", "", creds).Code)
	w := call(t, r, http.MethodPost, "/api/v1/signin", "", creds)
	require.Equal(t, http.StatusOK, w.Code)
	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))

	w = call(t, r, http.MethodPost, "/api/v1/note", tok.Token, map[string]string{"title": "Trip", "content": "Paris in June"})
	require.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, http.MethodPost, "/api/v1/content", tok.Token, map[string]string{
		"type": "youtube", "title": "Eiffel", "link": "https://youtu.be/dQw4w9WgXcQ", "description": "favorite",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodPost, "/api/v1/ai/ask", tok.Token, map[string]string{"question": "What did I save about Paris?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer":"You saved a Paris trip.","sources":{"notesCount":1,"contentCount":1}}`, w.Body.String())

	for _, want := range []string{"Note: Trip", "Content: Paris in June", "YOUTUBE: Eiffel", "User Notes: favorite", "What did I save about Paris?"} {
		assert.True(t, strings.Contains(gen.lastPrompt, want), want)
	}

	w = call(t, r, http.MethodPost, "/api/v1/ai/ask", tok.Token, map[string]string{"question": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/search?q=paris", tok.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Trip"`)

	w = call(t, r, http.MethodPost, "/api/v1/search/semantic", tok.Token, map[string]string{"query": "paris"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
