package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	imaging_http "fashion-advisor/backend/internal/features/imaging/presentation/http"
	settings_http "fashion-advisor/backend/internal/features/settings/presentation/http"
	suggestion_http "fashion-advisor/backend/internal/features/suggestion/presentation/http"
)

const shutdownTimeout = 10 * time.Second

// Handlers bundles the feature handlers mounted under /api.
type Handlers struct {
	Suggestion *suggestion_http.SuggestionHandler
	Image      *imaging_http.ImageHandler
	Settings   *settings_http.SettingsHandler
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/suggestions", h.Suggestion.SuggestionsHandler)
		api.POST("/outfits", h.Suggestion.OutfitsHandler)
		api.POST("/outfits/image", h.Suggestion.OutfitImageHandler)
	}

	imagesGroup := api.Group("/images")
	{
		imagesGroup.POST("/resolve", h.Image.ResolveHandler)
		imagesGroup.DELETE("/cache", h.Image.ClearCacheHandler)
	}

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", h.Settings.GetSettingsHandler)
		settingsGroup.PUT("", h.Settings.UpdateSettingsHandler)
		settingsGroup.POST("/reset", h.Settings.ResetSettingsHandler)
		settingsGroup.GET("/credential", h.Settings.GetCredentialHandler)
		settingsGroup.PUT("/credential", h.Settings.SetCredentialHandler)
		settingsGroup.POST("/prompt", h.Suggestion.PromptHandler)
	}

	return r
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
