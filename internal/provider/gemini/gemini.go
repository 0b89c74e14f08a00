// Package gemini implements provider.Provider on the Google Gemini API.
package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/Cyclone1070/renban/internal/provider"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiProvider names and orders files with a Gemini model.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
}

var _ provider.Provider = (*GeminiProvider)(nil)

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	if client == nil {
		panic("client is required")
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiProvider{client: client, modelName: modelName}
}

// Model returns the model name requests are sent to.
func (p *GeminiProvider) Model() string {
	return p.modelName
}

// Summarize asks for a 3 to 5 word English phrase describing text.
func (p *GeminiProvider) Summarize(ctx context.Context, text string) (string, error) {
	answer, err := p.generate(ctx, summaryInstruction, summaryPrompt(text))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Order asks for a logical ordering of labels, returned as indices.
func (p *GeminiProvider) Order(ctx context.Context, labels []string) ([]int, error) {
	answer, err := p.generate(ctx, orderInstruction, orderPrompt(labels))
	if err != nil {
		return nil, err
	}
	return ParseIndexList(answer)
}

func (p *GeminiProvider) generate(ctx context.Context, instruction, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	}
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, config)
	if err != nil {
		return "", mapGeminiError(err)
	}
	return responseText(resp)
}

// responseText extracts the text of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", &provider.ProviderError{
				Code:    provider.ErrorCodeContentBlocked,
				Message: "prompt blocked: " + string(resp.PromptFeedback.BlockReason),
			}
		}
		return "", &provider.ProviderError{
			Code:    provider.ErrorCodeEmptyResponse,
			Message: "no candidates in response",
		}
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", &provider.ProviderError{
			Code:    provider.ErrorCodeContentBlocked,
			Message: "content blocked by safety filters",
		}
	}
	if candidate.Content == nil {
		return "", &provider.ProviderError{
			Code:    provider.ErrorCodeEmptyResponse,
			Message: "candidate has no content",
		}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", &provider.ProviderError{
			Code:    provider.ErrorCodeEmptyResponse,
			Message: "response has no text",
		}
	}
	return text, nil
}
