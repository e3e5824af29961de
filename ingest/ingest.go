package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"go.uber.org/zap"

	"hyperlocal/pkg/chunking"
	"hyperlocal/pkg/embedding"
	"hyperlocal/repository"
)

// Stats summarises one locality ingestion run.
type Stats struct {
	Locality string
	Files    int
	Chunks   int
	Upserted int
	Dim      int
}

// Ingestor loads extracted text files, chunks them, embeds the chunks in
// batches and upserts the vectors into the locality collection.
type Ingestor struct {
	chunker   chunking.Client
	embedder  embedding.Client
	vectors   repository.NewsVectorRepo
	batchSize int
	logger    *zap.Logger
}

func NewIngestor(chunker chunking.Client, embedder embedding.Client, vectors repository.NewsVectorRepo, batchSize int, logger *zap.Logger) *Ingestor {
	if batchSize <= 0 {
		batchSize = 32
	}
	return &Ingestor{
		chunker:   chunker,
		embedder:  embedder,
		vectors:   vectors,
		batchSize: batchSize,
		logger:    logger,
	}
}

// IngestLocality processes every .txt file under dir into the collection
// for the locality. The embedding dimension is taken from the first batch
// and every later batch must agree with it.
func (in *Ingestor) IngestLocality(ctx context.Context, locality, dir string) (*Stats, error) {
	files, err := listTextFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		in.logger.Warn("no text files to ingest",
			zap.String("locality", locality),
			zap.String("dir", dir))
		return &Stats{Locality: locality}, nil
	}

	var docs []*repository.ChunkDoc
	for _, path := range files {
		chunks, err := in.loadAndChunk(ctx, path)
		if err != nil {
			return nil, err
		}
		source := filepath.Join(filepath.Base(dir), filepath.Base(path))
		for _, c := range chunks {
			docs = append(docs, &repository.ChunkDoc{
				Content:    c.Text,
				Source:     source,
				Locality:   locality,
				ChunkIndex: c.Index,
			})
		}
	}

	stats := &Stats{Locality: locality, Files: len(files), Chunks: len(docs)}
	if len(docs) == 0 {
		in.logger.Warn("no chunks produced", zap.String("locality", locality))
		return stats, nil
	}

	for start := 0; start < len(docs); start += in.batchSize {
		end := start + in.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		texts := make([]string, len(batch))
		for i, d := range batch {
			texts[i] = d.Content
		}

		vectors, err := in.embedder.GetEmbeddings(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch at %d: %w", start, err)
		}

		if stats.Dim == 0 {
			stats.Dim = len(vectors[0])
			if err := in.vectors.EnsureCollection(ctx, locality, uint64(stats.Dim)); err != nil {
				return nil, fmt.Errorf("failed to ensure collection for %s: %w", locality, err)
			}
		}

		for i, v := range vectors {
			if len(v) != stats.Dim {
				return nil, fmt.Errorf("embedding dimension changed mid-run: got %d, want %d", len(v), stats.Dim)
			}
			batch[i].Vector = v
		}

		if err := in.vectors.Upsert(ctx, locality, batch); err != nil {
			return nil, fmt.Errorf("failed to upsert batch at %d: %w", start, err)
		}
		stats.Upserted += len(batch)

		in.logger.Info("upserted batch",
			zap.String("locality", locality),
			zap.Int("batch_start", start),
			zap.Int("batch_size", len(batch)))
	}

	in.logger.Info("locality ingested",
		zap.String("locality", locality),
		zap.Int("files", stats.Files),
		zap.Int("chunks", stats.Chunks),
		zap.Int("upserted", stats.Upserted),
		zap.Int("dim", stats.Dim))

	return stats, nil
}

func (in *Ingestor) loadAndChunk(ctx context.Context, path string) ([]chunking.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	loaded, err := documentloaders.NewText(f).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	var text string
	for _, doc := range loaded {
		text += doc.PageContent
	}
	if strings.TrimSpace(text) == "" {
		in.logger.Warn("empty text file skipped", zap.String("path", path))
		return nil, nil
	}

	chunks, err := in.chunker.ChunkText(text)
	if err != nil {
		return nil, fmt.Errorf("failed to chunk %s: %w", path, err)
	}

	in.logger.Info("chunked file",
		zap.String("path", path),
		zap.Int("chunks", len(chunks)))
	return chunks, nil
}

func listTextFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
