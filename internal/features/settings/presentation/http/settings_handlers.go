package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fashion-advisor/backend/internal/features/settings/application"
	"fashion-advisor/backend/internal/features/settings/domain"
)

// SettingsHandler exposes the prompt settings and credential operations.
type SettingsHandler struct {
	settingsService application.SettingsService
	logger          *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService application.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

type credentialRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// GetSettingsHandler returns the current settings.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.Settings())
}

// UpdateSettingsHandler merges the supplied sections into the settings.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var patch domain.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), patch)
	if err != nil {
		h.logger.Error("failed to persist settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// ResetSettingsHandler restores the default settings.
func (h *SettingsHandler) ResetSettingsHandler(c *gin.Context) {
	settings, err := h.settingsService.ResetSettings(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to persist settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetCredentialHandler reports whether a credential is configured, never the
// credential itself.
func (h *SettingsHandler) GetCredentialHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configured": h.settingsService.Credential() != ""})
}

// SetCredentialHandler stores a new credential.
func (h *SettingsHandler) SetCredentialHandler(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsService.SetCredential(c.Request.Context(), req.APIKey); err != nil {
		h.logger.Error("failed to persist credential", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save credential: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"configured": true})
}
