package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "brainly-backend/cmd/api"
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
	"brainly-backend/pkg/ai"
	"brainly-backend/pkg/chroma"
	"brainly-backend/pkg/config"
	"brainly-backend/pkg/database"
	"brainly-backend/pkg/enrich"
	"brainly-backend/pkg/logger"
)

const (
	indexWorkers    = 3
	indexQueueSize  = 500
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFile)
	log := logger.GetLogger(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &contentdomain.Content{}, &contentdomain.ShareLink{}, &notedomain.Note{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	contentRepository := contentRepo.NewContentRepository(db)
	shareLinkRepository := contentRepo.NewShareLinkRepository(db)
	noteRepository := noteRepo.NewGormNoteRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	contentUsecaseInstance := contentUsecase.NewContentUsecase(contentRepository, shareLinkRepository, userRepo)
	noteUsecaseInstance := noteUsecase.NewNoteUsecase(noteRepository)

	// Initialize AI generator
	generator, err := ai.NewGenerator(ctx, ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		Model:         cfg.AIModel,
		Timeout:       cfg.AITimeout,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		log.Warnf("Failed to initialize AI generator, questions will fail: %v", err)
	} else {
		log.Infof("AI generator initialized with provider: %s", cfg.AIProvider)
	}

	// Initialize Chroma index for semantic search
	var vectorStore brainUsecase.VectorStore
	var indexWorker *brainUsecase.IndexWorker
	if cfg.ChromaAPIKey != "" {
		chromaClient, err := chroma.NewChromaClient(ctx, cfg)
		if err != nil {
			log.Warnf("Failed to initialize Chroma client: %v. Semantic search will not be available.", err)
		} else {
			vectorStore = chromaClient
			indexWorker = brainUsecase.NewIndexWorker(chromaClient, indexWorkers, indexQueueSize)
			contentUsecaseInstance.SetIndexer(indexWorker)
			noteUsecaseInstance.SetIndexer(indexWorker)
			indexWorker.Start()
		}
	} else {
		log.Warn("CHROMA_API_KEY not set. Semantic search will not be available.")
	}

	prompts := brainUsecase.NewPromptBuilder(brainUsecase.PromptBuilderConfig{
		YouTube:       enrich.NewYouTubeEnricher(""),
		Twitter:       enrich.NewTwitterEnricher(),
		News:          enrich.NewNewsEnricher(cfg.NewsAPIBaseURL),
		YouTubeAPIKey: cfg.YouTubeAPIKey,
		NewsAPIKey:    cfg.NewsAPIKey,
		Concurrency:   cfg.EnrichConcurrency,
	})
	brainUsecaseInstance := brainUsecase.NewBrainUsecase(
		noteRepository,
		contentRepository,
		prompts,
		brainUsecase.NewAnswerGenerator(generator),
		vectorStore,
	)

	// Initialize HTTP handler
	handler := api.NewHandler(cfg, authUsecaseInstance, contentUsecaseInstance, noteUsecaseInstance, brainUsecaseInstance)

	// Start server
	errCh := make(chan error, 1)
	go func() {
		errCh <- handler.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := handler.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
	}
	if indexWorker != nil {
		indexWorker.Stop()
	}
}
