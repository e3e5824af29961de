package repository

import (
	"context"
	"time"
)

// Summary is one generated article: a locality/category pair with the
// parsed headline and the full model output.
type Summary struct {
	Locality        string    `json:"locality"`
	Category        string    `json:"category"`
	Headline        string    `json:"headline"`
	ShortSummary    string    `json:"short_summary"`
	DetailedContent string    `json:"detailed_content"`
	GeneratedAt     time.Time `json:"generated_at"`
	QueryUsed       string    `json:"query_used"`
	Error           string    `json:"error,omitempty"`
}

// IsError reports whether this record is a failure placeholder rather than
// publishable content.
func (s Summary) IsError() bool {
	return s.Error != ""
}

type SummaryRepo interface {
	Save(ctx context.Context, summaries []Summary) error
	Load(ctx context.Context) ([]Summary, error)
}
