package provider

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/negspace-ai/negspace/internal/inference"
)

// geminiProvider implements Provider on top of the Google GenAI SDK.
type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini provider. The model defaults to a small, fast
// generation model when unset.
func NewGemini(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) ChatCompletion(ctx context.Context, req *inference.Request) (*inference.Response, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	result, err := p.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini response had no text candidates")
	}

	resp := &inference.Response{
		Message: inference.Message{
			Role:    "assistant",
			Content: text,
		},
	}
	if um := result.UsageMetadata; um != nil {
		resp.Usage = inference.Usage{
			PromptTokens:     int(um.PromptTokenCount),
			CompletionTokens: int(um.CandidatesTokenCount),
			TotalTokens:      int(um.TotalTokenCount),
		}
	}
	return resp, nil
}
