package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"tailor-backend/internal/llm"
)

// Client implements llm.Client using the Gemini API.
type Client struct {
	model  string
	client *genai.Client
}

// NewClient constructs a Gemini client. An empty API key is accepted here;
// calls will then fail with the provider's authentication error.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}
	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{model: model, client: inner}, nil
}

// Complete sends the prompt and returns the model's full text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
