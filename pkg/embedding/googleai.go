package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/googleai"
)

// GoogleAI embeds text with Gemini's embedding-001 family (768 dimensions).
type GoogleAI struct {
	llm *googleai.GoogleAI
}

func NewGoogleAI(ctx context.Context, apiKey, model string) (*GoogleAI, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultEmbeddingModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init googleai embedding client: %w", err)
	}
	return &GoogleAI{llm: llm}, nil
}

func (c *GoogleAI) GetEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := c.llm.CreateEmbedding(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("googleai embedding: %w", err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("googleai embedding: got %d vectors for %d texts", len(vecs), len(texts))
	}
	return vecs, nil
}
