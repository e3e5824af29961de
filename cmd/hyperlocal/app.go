package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"hyperlocal/config"
	"hyperlocal/crawler"
	"hyperlocal/ingest"
	"hyperlocal/logging"
	"hyperlocal/pipeline"
	"hyperlocal/pkg/chunking"
	"hyperlocal/pkg/embedding"
	"hyperlocal/pkg/filestore"
	"hyperlocal/pkg/postgres"
	"hyperlocal/pkg/qdrantdb"
	"hyperlocal/rag"
	"hyperlocal/relevance"
	"hyperlocal/repository"
)

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// startPprof exposes profiling handlers on a side port when configured.
func startPprof(addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Warn("pprof listener stopped", zap.Error(err))
		}
	}()
}

func newEmbedder(ctx context.Context, cfg *config.Config) (embedding.Client, error) {
	switch cfg.Embedding.Provider {
	case "googleai":
		if err := cfg.RequireGoogleKey(); err != nil {
			return nil, err
		}
		client, err := embedding.NewGoogleAI(ctx, cfg.GoogleAPIKey, cfg.Embedding.Model)
		if err != nil {
			return nil, err
		}
		return embedding.WithRetry(client), nil
	case "openai":
		client, err := embedding.NewOpenAI(cfg.OpenAIAPIKey, cfg.Embedding.Model)
		if err != nil {
			return nil, err
		}
		return embedding.WithRetry(client), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
}

func newChunker(cfg *config.Config) (chunking.Client, error) {
	counter, err := chunking.NewTiktokenCounter()
	if err != nil {
		return nil, err
	}
	switch cfg.Chunking.Strategy {
	case "sentence":
		return chunking.NewSentenceChunker(cfg.Chunking.Size, cfg.Chunking.MinTokens, counter), nil
	default:
		return chunking.NewRecursiveCharacter(cfg.Chunking.Size, cfg.Chunking.Overlap, cfg.Chunking.MinTokens, counter), nil
	}
}

func newSummaryRepo(ctx context.Context, cfg *config.Config) (repository.SummaryRepo, func(), error) {
	if cfg.Summaries.DatabaseURL != "" {
		store, err := postgres.NewSummaryStore(ctx, cfg.Summaries.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	return filestore.NewSummaryStore(cfg.Summaries.Path), func() {}, nil
}

func newScraper(cfg *config.Config, logger *zap.Logger) (*pipeline.Scraper, func(), error) {
	var filter relevance.Filter
	if cfg.Keywords != "" {
		f, err := relevance.NewKeywordFilter(cfg.Keywords)
		if err != nil {
			return nil, nil, err
		}
		filter = f
	}

	var state *crawler.BoltStorage
	cleanup := func() {}
	if cfg.Crawler.StatePath != "" {
		state = &crawler.BoltStorage{DBPath: cfg.Crawler.StatePath}
		if err := state.Init(); err != nil {
			return nil, nil, err
		}
		cleanup = func() { _ = state.Close() }
	}

	return pipeline.NewScraper(cfg, filter, state, logger), cleanup, nil
}

func newIngestor(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ingest.Ingestor, error) {
	chunker, err := newChunker(cfg)
	if err != nil {
		return nil, err
	}
	embedder, err := newEmbedder(ctx, cfg)
	if err != nil {
		return nil, err
	}
	vectors, err := qdrantdb.NewClient(cfg.Qdrant.Host, cfg.Qdrant.Port)
	if err != nil {
		return nil, err
	}
	return ingest.NewIngestor(chunker, embedder, vectors, cfg.Embedding.BatchSize, logger), nil
}

func newPipeline(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pipeline.Pipeline, func(), error) {
	scraper, cleanup, err := newScraper(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	ingestor, err := newIngestor(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	summarizer, err := newSummarizer(ctx, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	summaries, closeRepo, err := newSummaryRepo(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	closeAll := func() {
		closeRepo()
		cleanup()
	}
	return pipeline.New(cfg, scraper, ingestor, summarizer, summaries, logger), closeAll, nil
}

func newSummarizer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*rag.Summarizer, error) {
	embedder, err := newEmbedder(ctx, cfg)
	if err != nil {
		return nil, err
	}
	vectors, err := qdrantdb.NewClient(cfg.Qdrant.Host, cfg.Qdrant.Port)
	if err != nil {
		return nil, err
	}
	retriever := rag.NewRetriever(embedder, vectors, uint64(cfg.RAG.TopK))

	llm, err := rag.NewLLM(ctx, cfg.LLM.Provider, cfg.LLM.Model, cfg.GoogleAPIKey, cfg.OpenAIAPIKey)
	if err != nil {
		return nil, err
	}
	return rag.NewSummarizer(retriever, llm, logger), nil
}
