package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	JWTSecret       string
	JWTAccessExpiry time.Duration

	DBDriver    string // "postgres" or "sqlite"
	DatabaseURL string

	// AI provider: "openai", "gemini" or "ollama"
	AIProvider    string
	AIModel       string
	AITimeout     time.Duration
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiApiKey  string
	OllamaBaseURL string
	OllamaModel   string

	YouTubeAPIKey     string
	NewsAPIKey        string
	NewsAPIBaseURL    string
	EnrichConcurrency int
	AskRatePerMinute  int

	ChromaAPIKey   string
	ChromaTenant   string
	ChromaDatabase string

	LogLevel    string
	LogFile     string
	CORSOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "3000"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry: getDuration("JWT_ACCESS_EXPIRY", 168*time.Hour),

		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=brainly port=5432 sslmode=disable"),

		AIProvider:    getEnv("AI_PROVIDER", "openai"),
		AIModel:       getEnv("AI_MODEL", ""),
		AITimeout:     getDuration("AI_TIMEOUT", 30*time.Second),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		GeminiApiKey:  getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3"),

		YouTubeAPIKey:     getEnv("YOUTUBE_API_KEY", ""),
		NewsAPIKey:        getEnv("NEWS_API_KEY", ""),
		NewsAPIBaseURL:    getEnv("NEWS_API_BASE_URL", "https://newsapi.org"),
		EnrichConcurrency: getInt("ENRICH_CONCURRENCY", 1),
		AskRatePerMinute:  getInt("ASK_RATE_PER_MINUTE", 10),

		ChromaAPIKey:   getEnv("CHROMA_API_KEY", ""),
		ChromaTenant:   getEnv("CHROMA_TENANT", ""),
		ChromaDatabase: getEnv("CHROMA_DATABASE", ""),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		CORSOrigins: getList("CORS_ORIGINS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

// getList splits a comma separated variable, dropping empty entries.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
