package rag

import (
	"context"
	"fmt"
	"strings"

	"hyperlocal/pkg/embedding"
	"hyperlocal/repository"
)

// Retriever embeds a query and pulls the closest chunks for one locality
// from the vector store.
type Retriever struct {
	embedder embedding.Client
	vectors  repository.NewsVectorRepo
	topK     uint64
}

func NewRetriever(embedder embedding.Client, vectors repository.NewsVectorRepo, topK uint64) *Retriever {
	if topK == 0 {
		topK = 12
	}
	return &Retriever{
		embedder: embedder,
		vectors:  vectors,
		topK:     topK,
	}
}

// Retrieve returns the matched chunks plus their contents joined into a
// single context block, most similar first.
func (r *Retriever) Retrieve(ctx context.Context, locality, query string) (string, []*repository.ChunkDoc, error) {
	embeddings, err := r.embedder.GetEmbeddings(ctx, []string{query})
	if err != nil {
		return "", nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return "", nil, fmt.Errorf("embedding provider returned no vector for query")
	}

	docs, err := r.vectors.Search(ctx, locality, embeddings[0], r.topK)
	if err != nil {
		return "", nil, fmt.Errorf("failed to search locality %s: %w", locality, err)
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, "\n\n"), docs, nil
}
