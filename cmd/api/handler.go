package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	authDelivery "brainly-backend/internal/auth/delivery"
	authUsecase "brainly-backend/internal/auth/usecase"
	brainDelivery "brainly-backend/internal/brain/delivery"
	brainUsecase "brainly-backend/internal/brain/usecase"
	contentDelivery "brainly-backend/internal/content/delivery"
	contentUsecase "brainly-backend/internal/content/usecase"
	noteDelivery "brainly-backend/internal/note/delivery"
	noteUsecase "brainly-backend/internal/note/usecase"
	"brainly-backend/pkg/config"
	"brainly-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	config         *config.Config
	authHandler    *authDelivery.AuthHandler
	contentHandler *contentDelivery.ContentHandler
	noteHandler    *noteDelivery.NoteHandler
	brainHandler   *brainDelivery.BrainHandler
	askLimiter     *brainDelivery.UserRateLimiter

	mu     sync.Mutex
	server *http.Server
}

func NewHandler(
	cfg *config.Config,
	authUc authUsecase.AuthUsecase,
	contentUc contentUsecase.ContentUsecase,
	noteUc noteUsecase.NoteUsecase,
	brainUc brainUsecase.BrainUsecase,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		config:         cfg,
		authHandler:    authDelivery.NewAuthHandler(authUc),
		contentHandler: contentDelivery.NewContentHandler(contentUc),
		noteHandler:    noteDelivery.NewNoteHandler(noteUc),
		brainHandler:   brainDelivery.NewBrainHandler(brainUc),
		askLimiter:     brainDelivery.NewUserRateLimiter(cfg.AskRatePerMinute),
	}
}

// Router builds the gin engine with middleware and every route mounted
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), cors.New(h.corsConfig()))

	SetupRoutes(r, h.authUsecase, h.authHandler, h.contentHandler, h.noteHandler, h.brainHandler, h.askLimiter)
	return r
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(h.config.CORSOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.config.CORSOrigins
		cfg.AllowCredentials = true
	}
	return cfg
}

// Start serves until Shutdown is called
func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)

	server := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	h.mu.Lock()
	h.server = server
	h.mu.Unlock()

	logger.Infof(context.Background(), "Server starting on %s", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *Handler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	server := h.server
	h.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
