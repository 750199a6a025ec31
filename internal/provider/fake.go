package provider

import (
	"context"

	"github.com/negspace-ai/negspace/internal/inference"
)

// FakeProvider returns a canned response or error. Test use only.
type FakeProvider struct {
	ResponseText string
	Error        error

	// LastRequest records the most recent request for assertions.
	LastRequest *inference.Request
}

func (f *FakeProvider) ChatCompletion(ctx context.Context, req *inference.Request) (*inference.Response, error) {
	f.LastRequest = req
	if f.Error != nil {
		return nil, f.Error
	}
	return &inference.Response{
		Message: inference.Message{
			Role:    "assistant",
			Content: f.ResponseText,
		},
		Usage: inference.Usage{
			PromptTokens:     2,
			CompletionTokens: 3,
			TotalTokens:      5,
		},
	}, nil
}

func NewFake(response string) *FakeProvider {
	return &FakeProvider{ResponseText: response}
}
