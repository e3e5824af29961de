package chunking

// Chunk is one splitter output, indexed in document order.
type Chunk struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

type Client interface {
	ChunkText(text string) ([]Chunk, error)
}

// TokenCounter reports the model token length of a text. Chunkers use it to
// bound chunk sizes and to drop fragments too short to embed usefully.
type TokenCounter interface {
	Count(text string) int
}
