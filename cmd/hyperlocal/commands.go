package main

import (
	"github.com/spf13/cobra"

	"hyperlocal/dashboard"
	"hyperlocal/pipeline"
)

func scrapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrape",
		Short: "Crawl the configured sites and extract e-paper text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signalContext()
			defer stop()

			scraper, cleanup, err := newScraper(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			return pipeline.New(cfg, scraper, nil, nil, nil, logger).Scrape(ctx)
		},
	}
}

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Chunk, embed, and index the scraped text per locality",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signalContext()
			defer stop()

			ingestor, err := newIngestor(ctx, cfg, logger)
			if err != nil {
				return err
			}

			return pipeline.New(cfg, nil, ingestor, nil, nil, logger).Ingest(ctx)
		},
	}
}

func summarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Generate category summaries per locality and persist them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signalContext()
			defer stop()

			summarizer, err := newSummarizer(ctx, cfg, logger)
			if err != nil {
				return err
			}
			summaries, closeRepo, err := newSummaryRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			return pipeline.New(cfg, nil, nil, summarizer, summaries, logger).Summarize(ctx)
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the summaries dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signalContext()
			defer stop()

			summaries, closeRepo, err := newSummaryRepo(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			server, err := dashboard.NewServer(cfg.Dashboard.Addr, cfg.Dashboard.PageSize, summaries, logger)
			if err != nil {
				return err
			}

			startPprof(cfg.Dashboard.PprofAddr, logger)
			return server.Start(ctx)
		},
	}
}

func runCmd() *cobra.Command {
	var scheduleSpec string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run scrape, ingest, and summarize in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signalContext()
			defer stop()

			p, cleanup, err := newPipeline(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			startPprof(cfg.Dashboard.PprofAddr, logger)

			spec := scheduleSpec
			if spec == "" {
				spec = cfg.Schedule
			}
			if spec == "" {
				return p.Run(ctx)
			}

			sched := pipeline.NewScheduler(logger)
			if err := sched.Start(spec, p.Run); err != nil {
				return err
			}
			defer sched.Stop()

			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&scheduleSpec, "schedule", "", `cron spec for repeated runs (e.g. "0 6 * * 1")`)
	return cmd
}
