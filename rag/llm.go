package rag

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewLLM builds the chat model behind the summarize chains. Gemini is the
// default provider; OpenAI stays available as a drop-in swap.
func NewLLM(ctx context.Context, provider, model, googleKey, openaiKey string) (llms.Model, error) {
	switch provider {
	case "googleai":
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(googleKey),
			googleai.WithDefaultModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("init googleai llm: %w", err)
		}
		return llm, nil
	case "openai":
		llm, err := openai.New(
			openai.WithToken(openaiKey),
			openai.WithModel(model),
		)
		if err != nil {
			return nil, fmt.Errorf("init openai llm: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
