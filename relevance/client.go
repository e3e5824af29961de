package relevance

import "context"

// Filter decides whether a piece of extracted text belongs in the local
// news corpus. The score meaning depends on the implementation: fraction
// of keywords found, or cosine similarity against the reference query.
type Filter interface {
	IsContentRelevant(ctx context.Context, content string) (bool, float32, error)
}
