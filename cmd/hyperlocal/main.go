package main

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "hyperlocal",
		Short: "Hyperlocal news pipeline: scrape e-papers, embed, summarize, serve",
		Long: `hyperlocal turns neighbourhood e-paper PDFs into categorized news
summaries. It crawls the configured sites for weekly PDF issues, extracts
and cleans their text, embeds the chunks into Qdrant per locality, runs
retrieval-augmented summarization for each news category, and serves the
results on a dashboard.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(ingestCmd())
	rootCmd.AddCommand(summarizeCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(runCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
