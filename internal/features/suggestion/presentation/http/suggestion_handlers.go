package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion-advisor/backend/internal/features/suggestion/application"
	"fashion-advisor/backend/internal/features/suggestion/domain"
)

// SuggestionHandler exposes the suggestion pipeline.
type SuggestionHandler struct {
	suggestionService application.SuggestionService
	logger            *zap.Logger
}

// NewSuggestionHandler creates a new SuggestionHandler.
func NewSuggestionHandler(suggestionService application.SuggestionService, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService, logger: logger}
}

type preferencesRequest struct {
	Style    string `json:"style"`
	Color    string `json:"color"`
	Occasion string `json:"occasion"`
	Season   string `json:"season"`
	BodyType string `json:"bodyType" binding:"omitempty,oneof=slim average plus"`
	Height   string `json:"height" binding:"omitempty,oneof=short medium tall"`
}

func (r preferencesRequest) toDomain() domain.Preferences {
	return domain.Preferences{
		Style:    r.Style,
		Color:    r.Color,
		Occasion: r.Occasion,
		Season:   r.Season,
		BodyType: r.BodyType,
		Height:   r.Height,
	}
}

type outfitImageRequest struct {
	Preferences preferencesRequest       `json:"preferences"`
	Outfit      domain.OutfitCombination `json:"outfit"`
}

// respondError maps pipeline errors to status codes.
func (h *SuggestionHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrMissingCredential) {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("suggestion request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// SuggestionsHandler returns clothing suggestions for the posted preferences.
func (h *SuggestionHandler) SuggestionsHandler(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := h.suggestionService.GetSuggestions(c.Request.Context(), req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// OutfitsHandler returns outfit combinations built from fresh suggestions.
func (h *SuggestionHandler) OutfitsHandler(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outfits, err := h.suggestionService.GetOutfits(c.Request.Context(), req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outfits)
}

// OutfitImageHandler renders a picture of one outfit.
func (h *SuggestionHandler) OutfitImageHandler(c *gin.Context) {
	var req outfitImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := h.suggestionService.GenerateOutfitImage(c.Request.Context(), req.Preferences.toDomain(), req.Outfit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

// PromptHandler previews the prompt the current settings produce.
func (h *SuggestionHandler) PromptHandler(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": h.suggestionService.BuildPrompt(req.toDomain())})
}
