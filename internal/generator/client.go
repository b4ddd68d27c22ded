// Package generator talks to the hosted text-generation model that drafts
// comparison posts. The model is treated as untrusted: its output may be
// malformed JSON or use a deprecated field layout, which the normalizer
// absorbs downstream.
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"blogwriter/internal/config"
)

// APIKeyEnv is the environment variable holding the generation API key.
const APIKeyEnv = "GEMINI_API_KEY"

// Client errors.
var (
	ErrMissingAPIKey = errors.New("generation API key not found: set " + APIKeyEnv + " or add it to a .env file")
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Client wraps the generation API for comparison blog drafts.
type Client struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// NewClient creates a generation client from configuration. The API key is
// read from the environment, falling back to a .env file in the working
// directory; a missing key is a configuration error and fatal at startup.
func NewClient(ctx context.Context, cfg config.GenerationConfig) (*Client, error) {
	apiKey := os.Getenv(APIKeyEnv)
	if apiKey == "" {
		// Best effort: .env may not exist.
		_ = godotenv.Load()
		apiKey = os.Getenv(APIKeyEnv)
	}

	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	return &Client{
		client:          client,
		model:           cfg.Model,
		temperature:     cfg.Temperature,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

// GenerateComparison requests a comparison blog draft for the prompt and
// returns the model's raw text, expected (but not guaranteed) to be a JSON
// document matching the response schema.
func (c *Client) GenerateComparison(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(c.temperature),
			MaxOutputTokens:  c.maxOutputTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   comparisonSchema(),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
