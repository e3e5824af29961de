package chunking

import (
	"strings"

	"github.com/neurosnap/sentences"
)

// SentenceChunker packs whole sentences into token-bounded chunks, never
// cutting mid-sentence. Alternate strategy selected via config.
type SentenceChunker struct {
	sentenceTokenizer *sentences.DefaultSentenceTokenizer
	tokens            TokenCounter
	maxTokens         int
	minTokens         int
}

func NewSentenceChunker(maxTokens, minTokens int, tokens TokenCounter) *SentenceChunker {
	return &SentenceChunker{
		sentenceTokenizer: sentences.NewSentenceTokenizer(nil),
		tokens:            tokens,
		maxTokens:         maxTokens,
		minTokens:         minTokens,
	}
}

func (sc *SentenceChunker) ChunkText(text string) ([]Chunk, error) {
	sentenceObjs := sc.sentenceTokenizer.Tokenize(text)
	if len(sentenceObjs) == 0 {
		return nil, nil
	}

	var parts []string
	var currentChunk string
	var currentTokens int

	for _, sentenceObj := range sentenceObjs {
		sentence := sentenceObj.Text
		sentenceTokenCount := sc.tokens.Count(sentence)

		// If adding this sentence would exceed max tokens, save current chunk
		if currentTokens+sentenceTokenCount > sc.maxTokens && currentChunk != "" {
			parts = append(parts, currentChunk)
			currentChunk = sentence
			currentTokens = sentenceTokenCount
		} else {
			currentChunk += sentence
			currentTokens += sentenceTokenCount
		}
	}
	if currentChunk != "" {
		parts = append(parts, currentChunk)
	}

	var chunks []Chunk
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if sc.minTokens > 0 && sc.tokens.Count(trimmed) < sc.minTokens {
			continue
		}
		chunks = append(chunks, Chunk{Text: trimmed, Index: len(chunks)})
	}
	return chunks, nil
}
