package application

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	imaging "fashion-advisor/backend/internal/features/imaging/application"
	imagingdomain "fashion-advisor/backend/internal/features/imaging/domain"
	settingsdomain "fashion-advisor/backend/internal/features/settings/domain"
	"fashion-advisor/backend/internal/features/suggestion/domain"
	"fashion-advisor/backend/internal/features/suggestion/infrastructure"
)

var tracer = otel.Tracer("fashion-advisor/suggestion")

// SettingsProvider is the part of the settings feature the suggestion
// pipeline reads.
type SettingsProvider interface {
	Settings() settingsdomain.PromptSettings
	Credential() string
}

// ModelParams are the upstream model parameters.
type ModelParams struct {
	Model                  string
	MaxTokens              int
	Temperature            float32
	ImageModel             string
	ImageSize              string
	ImageQuality           string
	ImageGenerationEnabled bool
}

// SuggestionService runs the suggestion pipeline.
type SuggestionService interface {
	// GetSuggestions returns suggestions with images resolved. Only
	// domain.ErrMissingCredential is ever returned; every other failure is
	// replaced by a fallback.
	GetSuggestions(ctx context.Context, prefs domain.Preferences) ([]domain.Suggestion, error)
	GetOutfits(ctx context.Context, prefs domain.Preferences) ([]domain.OutfitCombination, error)
	GenerateOutfitImage(ctx context.Context, prefs domain.Preferences, outfit domain.OutfitCombination) (domain.GeneratedOutfitImage, error)
	// BuildPrompt previews the user message for prefs with the current settings.
	BuildPrompt(prefs domain.Preferences) string
}

type suggestionService struct {
	settings   SettingsProvider
	client     infrastructure.AIClient
	normalizer *Normalizer
	resolver   imaging.ImageResolver
	params     ModelParams
	logger     *zap.Logger
}

// NewSuggestionService creates a new instance of suggestionService.
func NewSuggestionService(settings SettingsProvider, client infrastructure.AIClient, resolver imaging.ImageResolver, params ModelParams, logger *zap.Logger) SuggestionService {
	return &suggestionService{
		settings:   settings,
		client:     client,
		normalizer: NewNormalizer(logger),
		resolver:   resolver,
		params:     params,
		logger:     logger,
	}
}

func (s *suggestionService) BuildPrompt(prefs domain.Preferences) string {
	return BuildPrompt(s.settings.Settings(), prefs)
}

func (s *suggestionService) GetSuggestions(ctx context.Context, prefs domain.Preferences) ([]domain.Suggestion, error) {
	ctx, span := tracer.Start(ctx, "suggestion.GetSuggestions")
	defer span.End()

	apiKey := s.settings.Credential()
	if apiKey == "" {
		return nil, domain.ErrMissingCredential
	}

	reply, err := s.client.Complete(ctx, infrastructure.ChatRequest{
		APIKey:      apiKey,
		Model:       s.params.Model,
		System:      systemInstruction,
		User:        s.BuildPrompt(prefs),
		MaxTokens:   s.params.MaxTokens,
		Temperature: s.params.Temperature,
	})
	if err != nil {
		s.logger.Warn("suggestion call failed, serving fallback catalog", zap.Error(err))
		span.SetAttributes(attribute.String("tier", string(domain.TierCatalog)))
		return FallbackCatalog(), nil
	}

	suggestions, tier := s.normalizer.Normalize(reply, prefs)
	span.SetAttributes(attribute.String("tier", string(tier)), attribute.Int("suggestions", len(suggestions)))
	s.logger.Info("normalized model reply", zap.String("tier", string(tier)), zap.Int("suggestions", len(suggestions)))

	s.attachImages(ctx, suggestions)
	return suggestions, nil
}

// attachImages fills ImageURL on every suggestion that lacks one, resolving
// product pages concurrently and using placeholders for the rest.
func (s *suggestionService) attachImages(ctx context.Context, suggestions []domain.Suggestion) {
	var productURLs []string
	for _, sg := range suggestions {
		if sg.ImageURL == "" && sg.HasProductURL() {
			productURLs = append(productURLs, sg.ProductURL)
		}
	}

	var results map[string]imagingdomain.Result
	if len(productURLs) > 0 {
		results = s.resolver.ResolveAll(ctx, productURLs)
	}

	for i := range suggestions {
		sg := &suggestions[i]
		if sg.ImageURL != "" {
			continue
		}
		if r, ok := results[sg.ProductURL]; ok && r.Success && r.URL != "" {
			sg.ImageURL = r.URL
			continue
		}
		sg.ImageURL = PlaceholderImage(sg.Name, sg.Category)
	}
}

func (s *suggestionService) GetOutfits(ctx context.Context, prefs domain.Preferences) ([]domain.OutfitCombination, error) {
	suggestions, err := s.GetSuggestions(ctx, prefs)
	if err != nil {
		return nil, err
	}
	return OutfitCombinations(suggestions), nil
}

func (s *suggestionService) GenerateOutfitImage(ctx context.Context, prefs domain.Preferences, outfit domain.OutfitCombination) (domain.GeneratedOutfitImage, error) {
	ctx, span := tracer.Start(ctx, "suggestion.GenerateOutfitImage")
	defer span.End()

	apiKey := s.settings.Credential()
	if apiKey == "" {
		return domain.GeneratedOutfitImage{}, domain.ErrMissingCredential
	}
	if !s.params.ImageGenerationEnabled {
		return mockOutfitImage(prefs, outfit), nil
	}

	prompt := OutfitPrompt(prefs, outfit)
	imageURL, err := s.client.GenerateImage(ctx, infrastructure.ImageRequest{
		APIKey:  apiKey,
		Model:   s.params.ImageModel,
		Prompt:  prompt,
		Size:    s.params.ImageSize,
		Quality: s.params.ImageQuality,
	})
	if err != nil {
		s.logger.Warn("outfit image generation failed, serving mock image", zap.String("outfit", outfit.ID), zap.Error(err))
		return mockOutfitImage(prefs, outfit), nil
	}

	return domain.GeneratedOutfitImage{
		ID:       "outfit-" + newID(),
		ImageURL: imageURL,
		Prompt:   prompt,
		Metadata: outfitMetadata(prefs),
	}, nil
}
