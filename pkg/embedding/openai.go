package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/openai"
)

// OpenAI is the alternate embedding provider, selected via config.
type OpenAI struct {
	llm *openai.LLM
}

func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init openai embedding client: %w", err)
	}
	return &OpenAI{llm: llm}, nil
}

func (c *OpenAI) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := c.llm.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("openai embedding: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("openai embedding: got %d vectors for %d texts", len(vecs), len(texts))
	}
	return vecs, nil
}
