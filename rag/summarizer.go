package rag

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"go.uber.org/zap"

	"hyperlocal/repository"
)

// Summarizer runs every catalog category against every locality and turns
// the model output into summary records. A failed category produces an
// error record instead of aborting the run.
type Summarizer struct {
	retriever *Retriever
	llm       llms.Model
	logger    *zap.Logger
}

func NewSummarizer(retriever *Retriever, llm llms.Model, logger *zap.Logger) *Summarizer {
	return &Summarizer{
		retriever: retriever,
		llm:       llm,
		logger:    logger,
	}
}

// Run returns one record per locality per category, in catalog order.
// It stops early only when ctx is canceled.
func (s *Summarizer) Run(ctx context.Context, localities []string) ([]repository.Summary, error) {
	catalog := Catalog()
	records := make([]repository.Summary, 0, len(localities)*len(catalog))
	for _, locality := range localities {
		for _, cat := range catalog {
			if err := ctx.Err(); err != nil {
				return records, err
			}
			records = append(records, s.summarizeCategory(ctx, locality, cat))
		}
	}
	return records, nil
}

func (s *Summarizer) summarizeCategory(ctx context.Context, locality string, cat Category) repository.Summary {
	contextText, docs, err := s.retriever.Retrieve(ctx, locality, cat.Query)
	if err != nil {
		return s.errorRecord(locality, cat, err)
	}

	prompt := prompts.NewPromptTemplate(cat.Template, []string{"context", "question"})
	chain := chains.NewLLMChain(s.llm, prompt)
	output, err := chains.Predict(ctx, chain, map[string]any{
		"context":  contextText,
		"question": cat.Query,
	})
	if err != nil {
		return s.errorRecord(locality, cat, fmt.Errorf("failed to run summary chain: %w", err))
	}

	parsed := parseSummary(output, cat.Key)
	s.logger.Info("generated summary",
		zap.String("locality", locality),
		zap.String("category", cat.Key),
		zap.Int("context_chunks", len(docs)),
		zap.Int("output_chars", len(output)),
	)
	return repository.Summary{
		Locality:        locality,
		Category:        cat.Key,
		Headline:        parsed.Headline,
		ShortSummary:    parsed.ShortSummary,
		DetailedContent: output,
		GeneratedAt:     time.Now(),
		QueryUsed:       cat.Query,
	}
}

func (s *Summarizer) errorRecord(locality string, cat Category, err error) repository.Summary {
	s.logger.Warn("summary generation failed",
		zap.String("locality", locality),
		zap.String("category", cat.Key),
		zap.Error(err),
	)
	return repository.Summary{
		Locality:     locality,
		Category:     cat.Key,
		Headline:     "Content Not Available",
		ShortSummary: fmt.Sprintf("Unable to generate summary: %v", err),
		GeneratedAt:  time.Now(),
		QueryUsed:    cat.Query,
		Error:        err.Error(),
	}
}
