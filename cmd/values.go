package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/model"
	"github.com/statzone/iplstats/internal/report"
)

var valuesCmd = &cobra.Command{
	Use:   "values <category>",
	Short: "List the distinct values for a category",
	Long: `List every distinct value the dataset holds for a category
(player, team, venue or season), sorted alphabetically.`,
	Args: cobra.ExactArgs(1),
	RunE: runValues,
}

func runValues(cmd *cobra.Command, args []string) error {
	cat, err := model.ParseCategory(args[0])
	if err != nil {
		return err
	}
	ds, err := dataset.Shared(dataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	report.PrintValues(os.Stdout, cat, ds.DistinctValues(cat))
	return nil
}
