package chunking

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

// RecursiveCharacter splits on paragraph, line, then word boundaries. The
// corpus files carry "\n\n" paragraph breaks from normalization, so most
// chunks land on paragraph edges.
type RecursiveCharacter struct {
	splitter  textsplitter.RecursiveCharacter
	tokens    TokenCounter
	minTokens int
}

func NewRecursiveCharacter(chunkSize, chunkOverlap, minTokens int, tokens TokenCounter) *RecursiveCharacter {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(chunkSize),
		textsplitter.WithChunkOverlap(chunkOverlap),
		textsplitter.WithSeparators([]string{"\n\n", "\n", " ", ""}),
	)
	return &RecursiveCharacter{
		splitter:  splitter,
		tokens:    tokens,
		minTokens: minTokens,
	}
}

func (c *RecursiveCharacter) ChunkText(text string) ([]Chunk, error) {
	parts, err := c.splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to split text: %w", err)
	}

	var chunks []Chunk
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if c.minTokens > 0 && c.tokens.Count(trimmed) < c.minTokens {
			continue
		}
		chunks = append(chunks, Chunk{Text: trimmed, Index: len(chunks)})
	}
	return chunks, nil
}
