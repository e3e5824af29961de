package repository

import (
	"context"
)

// ChunkDoc is one embedded slice of newspaper text as stored per locality.
type ChunkDoc struct {
	Content    string    `json:"content"`
	Source     string    `json:"source"`
	Locality   string    `json:"locality"`
	ChunkIndex int       `json:"chunk_index"`
	Vector     []float32 `json:"-"`
	Score      float32   `json:"-"`
}

type NewsVectorRepo interface {
	EnsureCollection(ctx context.Context, locality string, dim uint64) error
	Upsert(ctx context.Context, locality string, docs []*ChunkDoc) error
	Search(ctx context.Context, locality string, vector []float32, topK uint64) ([]*ChunkDoc, error)
	Count(ctx context.Context, locality string) (uint64, error)
}
