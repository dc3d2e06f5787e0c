// Package imagegen is a thin client for the optional decorative-image
// collaborator, an OpenAI-compatible images endpoint. The passage text is
// passed through a fixed template; anything smarter belongs to the caller.
package imagegen

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Config holds image generation configuration; the feature is disabled
// unless a model is configured
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	Size     string
}

// Generator creates decorative images for meditation passages
type Generator struct {
	client *openai.Client
	config Config
}

// NewGenerator creates an image generator. Returns nil when no model is
// configured, callers treat a nil generator as feature-off.
func NewGenerator(cfg Config) *Generator {
	if cfg.Model == "" {
		return nil
	}
	if cfg.Size == "" {
		cfg.Size = openai.CreateImageSize1024x1024
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Generator{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// Generate produces one image for the passage and returns its URL
func (g *Generator) Generate(ctx context.Context, text string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         fmt.Sprintf("A serene, minimalist illustration evoking this passage: %s", text),
		Model:          g.config.Model,
		Size:           g.config.Size,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("no image in response")
	}
	return resp.Data[0].URL, nil
}
