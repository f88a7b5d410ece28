package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-advisor/backend/internal/features/imaging/application"
	"fashion-advisor/backend/internal/features/imaging/domain"
)

// ImageHandler exposes batch resolution and cache management.
type ImageHandler struct {
	resolver application.ImageResolver
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(resolver application.ImageResolver) *ImageHandler {
	return &ImageHandler{resolver: resolver}
}

type resolveRequest struct {
	URLs []string `json:"urls" binding:"required,min=1,dive,required,url"`
}

type resolveResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source,omitempty"`
	Error   string `json:"error,omitempty"`
}

func toResolveResult(r domain.Result) resolveResult {
	out := resolveResult{Success: r.Success, URL: r.URL, Source: string(r.Source)}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

// ResolveHandler resolves a batch of product URLs.
func (h *ImageHandler) ResolveHandler(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.resolver.ResolveAll(c.Request.Context(), req.URLs)
	body := make(map[string]resolveResult, len(results))
	for productURL, r := range results {
		body[productURL] = toResolveResult(r)
	}
	c.JSON(http.StatusOK, body)
}

// ClearCacheHandler evicts the entry named by the url query parameter, or
// the whole cache when it is absent.
func (h *ImageHandler) ClearCacheHandler(c *gin.Context) {
	ctx := c.Request.Context()

	if productURL := c.Query("url"); productURL != "" {
		if err := h.resolver.Evict(ctx, productURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evict cache entry: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cache entry evicted"})
		return
	}

	if err := h.resolver.ClearCache(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}
