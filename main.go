package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fashion-advisor/backend/internal/config"
	imagingapp "fashion-advisor/backend/internal/features/imaging/application"
	imaginginfra "fashion-advisor/backend/internal/features/imaging/infrastructure"
	imaging_http "fashion-advisor/backend/internal/features/imaging/presentation/http"
	settingsapp "fashion-advisor/backend/internal/features/settings/application"
	settingsinfra "fashion-advisor/backend/internal/features/settings/infrastructure"
	settings_http "fashion-advisor/backend/internal/features/settings/presentation/http"
	suggestionapp "fashion-advisor/backend/internal/features/suggestion/application"
	suggestioninfra "fashion-advisor/backend/internal/features/suggestion/infrastructure"
	suggestion_http "fashion-advisor/backend/internal/features/suggestion/presentation/http"
	"fashion-advisor/backend/internal/logger"
	"fashion-advisor/backend/internal/server"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zapLogger.Sync() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cleanup, err := newSettingsStore(cfg)
	if err != nil {
		zapLogger.Fatal("failed to open settings store", zap.String("store", cfg.Settings.Store), zap.Error(err))
	}
	defer cleanup()

	// Initialize services
	settingsService := settingsapp.NewSettingsService(ctx, store, cfg.OpenAI.APIKey, zapLogger)

	imageCache, err := imaginginfra.NewImageCache()
	if err != nil {
		zapLogger.Fatal("failed to create image cache", zap.Error(err))
	}
	imageResolver := imagingapp.NewImageResolver(
		imageCache,
		imaginginfra.NewHTTPPageFetcher(cfg.Images.FetchTimeout, cfg.Images.MaxBodyBytes, cfg.Images.AllowPrivateHosts),
		imaginginfra.NewExtractor(cfg.Images.Extractor),
		zapLogger,
	)

	aiClient := suggestioninfra.NewOpenAIClient(cfg.OpenAI.BaseURL, cfg.OpenAI.Timeout, zapLogger)
	suggestionService := suggestionapp.NewSuggestionService(settingsService, aiClient, imageResolver, suggestionapp.ModelParams{
		Model:                  cfg.OpenAI.Model,
		MaxTokens:              cfg.OpenAI.MaxTokens,
		Temperature:            cfg.OpenAI.Temperature,
		ImageModel:             cfg.OpenAI.ImageModel,
		ImageSize:              cfg.OpenAI.ImageSize,
		ImageQuality:           cfg.OpenAI.ImageQuality,
		ImageGenerationEnabled: cfg.OpenAI.ImageGenerationEnabled,
	}, zapLogger)

	router := server.NewRouter(server.Handlers{
		Suggestion: suggestion_http.NewSuggestionHandler(suggestionService, zapLogger),
		Image:      imaging_http.NewImageHandler(imageResolver),
		Settings:   settings_http.NewSettingsHandler(settingsService, zapLogger),
	}, zapLogger)

	if err := server.Run(ctx, cfg.Server.Address, router, zapLogger); err != nil {
		zapLogger.Fatal("http server failed", zap.Error(err))
	}
}

// newSettingsStore opens the store selected by settings.store. The returned
// cleanup releases any connection it holds.
func newSettingsStore(cfg *config.Config) (settingsinfra.Store, func(), error) {
	switch cfg.Settings.Store {
	case "file":
		store, err := settingsinfra.NewFileStore(cfg.Settings.FilePath)
		return store, func() {}, err
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return settingsinfra.NewRedisStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	case "memory":
		return settingsinfra.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown settings store %q", cfg.Settings.Store)
	}
}
