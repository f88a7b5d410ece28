package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fashion-advisor/backend/internal/features/settings/domain"
	"fashion-advisor/backend/internal/features/settings/infrastructure"
)

// SettingsService owns the prompt settings and the upstream credential for
// the process. State is loaded once at construction and written back to the
// store after every mutation.
type SettingsService interface {
	Settings() domain.PromptSettings
	UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.PromptSettings, error)
	ResetSettings(ctx context.Context) (domain.PromptSettings, error)
	Credential() string
	SetCredential(ctx context.Context, apiKey string) error
}

type settingsService struct {
	store  infrastructure.Store
	logger *zap.Logger

	// writeMu is held across a mutation and its store write.
	writeMu sync.Mutex

	mu         sync.RWMutex
	settings   domain.PromptSettings
	credential string
}

// NewSettingsService loads settings and credential from store. envCredential,
// when non-empty, wins over a stored credential. Unreadable entries are logged
// and replaced by defaults.
func NewSettingsService(ctx context.Context, store infrastructure.Store, envCredential string, logger *zap.Logger) SettingsService {
	s := &settingsService{
		store:      store,
		logger:     logger,
		settings:   domain.DefaultPromptSettings(),
		credential: envCredential,
	}
	s.loadSettings(ctx)
	if s.credential == "" {
		s.loadCredential(ctx)
	}
	return s
}

func (s *settingsService) loadSettings(ctx context.Context) {
	raw, err := s.store.Get(ctx, domain.PromptSettingsKey)
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to load prompt settings, using defaults", zap.Error(err))
		return
	}

	// Unmarshal over the defaults so fields missing from the stored copy keep
	// their default value.
	loaded := domain.DefaultPromptSettings()
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Warn("stored prompt settings are malformed, using defaults", zap.Error(err))
		return
	}
	s.settings = loaded.Normalized()
}

func (s *settingsService) loadCredential(ctx context.Context) {
	raw, err := s.store.Get(ctx, domain.CredentialKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("failed to load credential", zap.Error(err))
		}
		return
	}
	s.credential = raw
}

// Settings returns a copy of the current, normalized settings.
func (s *settingsService) Settings() domain.PromptSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings merges patch into the current settings and persists them.
// The in-memory state is updated even when persisting fails.
func (s *settingsService) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.PromptSettings, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.settings = s.settings.Apply(patch).Normalized()
	current := s.settings
	s.mu.Unlock()

	return current, s.persist(ctx, current)
}

// ResetSettings restores the defaults and persists them.
func (s *settingsService) ResetSettings(ctx context.Context) (domain.PromptSettings, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.settings = domain.DefaultPromptSettings()
	current := s.settings
	s.mu.Unlock()

	return current, s.persist(ctx, current)
}

func (s *settingsService) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func (s *settingsService) SetCredential(ctx context.Context, apiKey string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.credential = apiKey
	s.mu.Unlock()

	if err := s.store.Set(ctx, domain.CredentialKey, apiKey); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (s *settingsService) persist(ctx context.Context, settings domain.PromptSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal prompt settings: %w", err)
	}
	if err := s.store.Set(ctx, domain.PromptSettingsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save prompt settings: %w", err)
	}
	return nil
}
