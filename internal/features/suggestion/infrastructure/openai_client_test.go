package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"fashion-advisor/backend/internal/features/suggestion/domain"
)

func TestOpenAIClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body struct {
			Model       string  `json:"model"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float32 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4", body.Model)
		assert.Equal(t, 1000, body.MaxTokens)
		assert.InDelta(t, 0.7, body.Temperature, 0.001)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "rules", body.Messages[0].Content)
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, "prompt", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-4",
			"choices":[{"index":0,"message":{"role":"assistant","content":"[{\"name\":\"Tシャツ\"}]"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL+"/v1", time.Second, zaptest.NewLogger(t))
	got, err := client.Complete(context.Background(), ChatRequest{
		APIKey: "sk-test", Model: "gpt-4", System: "rules", User: "prompt", MaxTokens: 1000, Temperature: 0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Tシャツ"}]`, got)
}

func TestOpenAIClient_CompleteFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewOpenAIClient(srv.URL+"/v1", time.Second, zaptest.NewLogger(t))
			_, err := client.Complete(context.Background(), ChatRequest{APIKey: "sk", Model: "gpt-4"})
			assert.ErrorIs(t, err, domain.ErrUpstreamCall)
		})
	}
}

func TestOpenAIClient_CompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewOpenAIClient(srv.URL+"/v1", time.Second, zaptest.NewLogger(t))
	_, err := client.Complete(context.Background(), ChatRequest{APIKey: "sk", Model: "gpt-4"})

	assert.ErrorIs(t, err, domain.ErrUpstreamCall)
}

func TestOpenAIClient_GenerateImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "dall-e-3", body["model"])
		assert.Equal(t, "1024x1024", body["size"])
		assert.Equal(t, "standard", body["quality"])
		assert.Equal(t, "url", body["response_format"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://images.example.com/outfit.png"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(srv.URL+"/v1", time.Second, zaptest.NewLogger(t))
	got, err := client.GenerateImage(context.Background(), ImageRequest{
		APIKey: "sk", Model: "dall-e-3", Prompt: "outfit", Size: "1024x1024", Quality: "standard",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/outfit.png", got)
}
