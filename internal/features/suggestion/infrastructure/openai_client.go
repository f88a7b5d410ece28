package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"fashion-advisor/backend/internal/features/suggestion/domain"
	"fashion-advisor/backend/internal/metrics"
)

// openAIClient is the go-openai implementation of AIClient.
type openAIClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewOpenAIClient creates an AIClient talking to baseURL (empty means the
// public OpenAI API). Every call is bounded by timeout.
func NewOpenAIClient(baseURL string, timeout time.Duration, logger *zap.Logger) AIClient {
	return &openAIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *openAIClient) client(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	cfg.HTTPClient = c.httpClient
	return openai.NewClientWithConfig(cfg)
}

// Complete sends one system and one user message.
func (c *openAIClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	start := time.Now()
	resp, err := c.client(req.APIKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	metrics.UpstreamDuration.WithLabelValues("chat").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues("chat", "error").Inc()
		c.logger.Warn("chat completion failed", zap.String("model", req.Model), zap.Error(err))
		return "", fmt.Errorf("%w: chat completion: %v", domain.ErrUpstreamCall, err)
	}
	if len(resp.Choices) == 0 {
		metrics.UpstreamCalls.WithLabelValues("chat", "empty").Inc()
		return "", fmt.Errorf("%w: chat completion returned no choices", domain.ErrUpstreamCall)
	}

	metrics.UpstreamCalls.WithLabelValues("chat", "ok").Inc()
	c.logger.Debug("chat completion succeeded",
		zap.String("model", resp.Model),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests a single image as a URL.
func (c *openAIClient) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	start := time.Now()
	resp, err := c.client(req.APIKey).CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          req.Model,
		N:              1,
		Size:           req.Size,
		Quality:        req.Quality,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	metrics.UpstreamDuration.WithLabelValues("image").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues("image", "error").Inc()
		c.logger.Warn("image generation failed", zap.String("model", req.Model), zap.Error(err))
		return "", fmt.Errorf("%w: image generation: %v", domain.ErrUpstreamCall, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		metrics.UpstreamCalls.WithLabelValues("image", "empty").Inc()
		return "", fmt.Errorf("%w: image generation returned no image", domain.ErrUpstreamCall)
	}

	metrics.UpstreamCalls.WithLabelValues("image", "ok").Inc()
	return resp.Data[0].URL, nil
}
