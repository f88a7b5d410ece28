package infrastructure

import "context"

// ChatRequest is a single-turn chat completion request.
type ChatRequest struct {
	APIKey      string
	Model       string
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// ImageRequest asks for one generated image.
type ImageRequest struct {
	APIKey  string
	Model   string
	Prompt  string
	Size    string
	Quality string
}

// AIClient defines the language model operations the suggestion feature
// needs. The credential travels with each request because it can change at
// runtime.
type AIClient interface {
	// Complete returns the text of the first choice.
	Complete(ctx context.Context, req ChatRequest) (string, error)

	// GenerateImage returns the URL of the generated image.
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}
