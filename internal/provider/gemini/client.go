package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

// ModelInfo contains metadata about a Gemini model from the SDK
type ModelInfo struct {
	Name             string
	InputTokenLimit  int
	OutputTokenLimit int
}

// GeminiClient is the slice of the Gemini API the provider uses.
type GeminiClient interface {
	// GenerateContent sends a request to the Gemini API and returns the response
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

	// ListModels returns the text-generation models the key can use
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// RealGeminiClient wraps the official SDK client to satisfy GeminiClient.
type RealGeminiClient struct {
	client *genai.Client
}

// NewRealGeminiClient creates a new RealGeminiClient from an SDK client.
func NewRealGeminiClient(client *genai.Client) *RealGeminiClient {
	return &RealGeminiClient{client: client}
}

// NewClientFromAPIKey builds the SDK client for the Gemini Developer API.
func NewClientFromAPIKey(ctx context.Context, apiKey string) (*RealGeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, mapGeminiError(err)
	}
	return NewRealGeminiClient(client), nil
}

// GenerateContent calls the SDK's GenerateContent method.
func (c *RealGeminiClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, config)
}

// ListModels returns gemini-* text models, skipping embedding, image, audio,
// live and robotics variants.
func (c *RealGeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	for model, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, mapGeminiError(err)
		}
		if !isTextModel(model.Name) {
			continue
		}
		models = append(models, ModelInfo{
			Name:             strings.TrimPrefix(model.Name, "models/"),
			InputTokenLimit:  int(model.InputTokenLimit),
			OutputTokenLimit: int(model.OutputTokenLimit),
		})
	}
	return models, nil
}

func isTextModel(name string) bool {
	if !strings.HasPrefix(name, "models/gemini-") {
		return false
	}
	for _, skip := range []string{"embedding", "image", "audio", "live", "robotic"} {
		if strings.Contains(name, skip) {
			return false
		}
	}
	return true
}
