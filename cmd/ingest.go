package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/storage"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Mirror the CSV dataset into the SQLite database",
	Long: `Load the match dataset CSV and write every record into the SQLite
mirror, so it can be queried with 'iplstats sql'. Re-running ingest on the
same CSV replaces existing rows in place.`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Shared(dataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.InsertMatches(ds.Records); err != nil {
		return fmt.Errorf("insert matches: %w", err)
	}
	total, err := db.CountMatches()
	if err != nil {
		return fmt.Errorf("count matches: %w", err)
	}

	slog.Info("ingest complete", "csv", dataPath, "db", dbPath, "inserted", ds.Len(), "stored", total)
	fmt.Fprintf(os.Stdout, "Ingested %d matches into %s (%d stored).\n", ds.Len(), dbPath, total)
	return nil
}
