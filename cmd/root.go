package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/config"
)

var (
	dataPath string
	dbPath   string
	topN     int
)

var rootCmd = &cobra.Command{
	Use:   "iplstats",
	Short: "IPL match dataset analytics tool",
	Long:  "Explore an IPL match dataset: per-player, per-team, per-venue and per-season analyses, head-to-head comparisons, and exports.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		cfg = config.Default()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", cfg.DataPath, "path to the match dataset CSV")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to the SQLite mirror")
	rootCmd.PersistentFlags().IntVar(&topN, "top", cfg.TopN, "max entries in ranked tables")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(exportCmd)
}
