package relevance

import (
	"context"
	"fmt"

	"hyperlocal/pkg/embedding"
)

// SemanticFilter scores content by cosine similarity between its embedding
// and the embedding of a reference query.
type SemanticFilter struct {
	embeddingClient embedding.Client
	queryEmbedding  []float32
	threshold       float32
}

// NewSemanticFilter embeds the reference query once up front.
func NewSemanticFilter(ctx context.Context, embeddingClient embedding.Client, query string, threshold float32) (*SemanticFilter, error) {
	embeddings, err := embeddingClient.GetEmbeddings(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed reference query: %w", err)
	}

	return &SemanticFilter{
		embeddingClient: embeddingClient,
		queryEmbedding:  embeddings[0],
		threshold:       threshold,
	}, nil
}

func (s *SemanticFilter) IsContentRelevant(ctx context.Context, content string) (bool, float32, error) {
	if content == "" {
		return false, 0.0, nil
	}

	tc := truncateText(content, 200)
	embeddings, err := s.embeddingClient.GetEmbeddings(ctx, []string{tc})
	if err != nil {
		return false, 0.0, fmt.Errorf("failed to get content embedding: %w", err)
	}

	similarity := embedding.CosineSimilarity(s.queryEmbedding, embeddings[0])
	return similarity >= s.threshold, similarity, nil
}

// truncateText approximates token length by character count, ~4 chars per
// token for English text.
func truncateText(text string, maxTokens int) string {
	maxChars := maxTokens * 4
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
