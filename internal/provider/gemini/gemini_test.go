package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Cyclone1070/renban/internal/provider"
)

// --- HAPPY PATH TESTS ---

func TestSummarize_HappyPath_ReturnsTrimmedText(t *testing.T) {
	var gotModel, gotPrompt string
	mockClient := &MockGeminiClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotModel = model
			gotPrompt = contents[0].Parts[0].Text
			require.NotNil(t, config.SystemInstruction)
			return textResponse("  Quarterly Budget Report \n"), nil
		},
	}

	p := New(mockClient, "gemini-test")
	summary, err := p.Summarize(context.Background(), "revenue grew by 4%")

	require.NoError(t, err)
	assert.Equal(t, "Quarterly Budget Report", summary)
	assert.Equal(t, "gemini-test", gotModel)
	assert.Contains(t, gotPrompt, "revenue grew by 4%")
}

func TestOrder_HappyPath_ParsesIndices(t *testing.T) {
	var gotPrompt string
	mockClient := &MockGeminiClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotPrompt = contents[0].Parts[0].Text
			return textResponse("2, 0,1"), nil
		},
	}

	indices, err := New(mockClient, "").Order(context.Background(), []string{"[0] b.txt", "[1] c.txt", "[2] a.txt"})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, indices)
	assert.Contains(t, gotPrompt, "[0] b.txt\n[1] c.txt\n[2] a.txt")
}

func TestOrder_DuplicateIndices_ReturnedUnvalidated(t *testing.T) {
	indices, err := New(replying("2,2,0"), "").Order(context.Background(), []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 0}, indices)
}

func TestNew_EmptyModel_UsesDefault(t *testing.T) {
	assert.Equal(t, DefaultModel, New(replying("x"), "").Model())
}

func TestNew_NilClient_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "client is required", func() { New(nil, "") })
}

// --- ERROR TESTS ---

func TestSummarize_APIErrors_MapToProviderErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		sentinel  error
		retryable bool
	}{
		{"unauthorized", genai.APIError{Code: 401, Message: "bad key"}, provider.ErrAuthentication, false},
		{"rate limited", genai.APIError{Code: 429, Message: "slow down"}, provider.ErrRateLimit, true},
		{"bad request pointer", &genai.APIError{Code: 400, Message: "bad"}, provider.ErrInvalidRequest, false},
		{"unavailable", genai.APIError{Code: 503, Message: "down"}, provider.ErrServiceUnavailable, true},
		{"transport", errors.New("dial tcp: connection refused"), provider.ErrNetwork, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockGeminiClient{
				GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return nil, tt.err
				},
			}

			_, err := New(mockClient, "").Summarize(context.Background(), "text")

			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.retryable, provider.IsRetryable(err))
		})
	}
}

func TestSummarize_NoCandidates_EmptyResponse(t *testing.T) {
	mockClient := &MockGeminiClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		},
	}

	_, err := New(mockClient, "").Summarize(context.Background(), "text")

	assert.ErrorIs(t, err, provider.ErrEmptyResponse)
}

func TestSummarize_SafetyBlocked_ContentBlocked(t *testing.T) {
	mockClient := &MockGeminiClient{
		GenerateContentFunc: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			}, nil
		},
	}

	_, err := New(mockClient, "").Summarize(context.Background(), "text")

	assert.ErrorIs(t, err, provider.ErrContentBlocked)
}

func TestSummarize_WhitespaceOnly_EmptyResponse(t *testing.T) {
	_, err := New(replying("  \n "), "").Summarize(context.Background(), "text")

	assert.ErrorIs(t, err, provider.ErrEmptyResponse)
}

func TestOrder_ProseAnswer_Malformed(t *testing.T) {
	_, err := New(replying("I would put a first"), "").Order(context.Background(), []string{"a", "b"})

	assert.ErrorIs(t, err, provider.ErrMalformedResponse)
}
