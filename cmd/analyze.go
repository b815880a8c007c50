package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/analyze"
	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/model"
	"github.com/statzone/iplstats/internal/report"
)

var (
	analyzeView string
	analyzeRows int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <category> <primary> [secondary]",
	Short: "Analyze a player, team, venue or season",
	Long: `Compute all five views (Overview, Trend, Results, Comparative, Records)
for the selected entity. Passing a second value of the same category switches
the Comparative view into head-to-head mode.

Examples:
  iplstats analyze team "Mumbai Indians"
  iplstats analyze team "Mumbai Indians" "Chennai Super Kings"
  iplstats analyze season 2016 --view trend
  iplstats analyze player "V Kohli" --records 50`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeView, "view", "", "print a single view (overview, trend, results, comparative, records)")
	analyzeCmd.Flags().IntVar(&analyzeRows, "records", 20, "max match rows shown in the Records view")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cat, err := model.ParseCategory(args[0])
	if err != nil {
		return err
	}
	ds, err := dataset.Shared(dataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	secondary := ""
	if len(args) == 3 {
		secondary = args[2]
	}

	res, err := analyze.Analyze(ds, cat, args[1], secondary, analyze.Options{TopN: topN})
	if err != nil {
		var missing *analyze.MissingSelectionError
		if errors.As(err, &missing) {
			fmt.Fprintln(os.Stderr, "warning:", missing)
			return nil
		}
		return err
	}

	if analyzeView != "" {
		v, err := model.ParseView(analyzeView)
		if err != nil {
			return err
		}
		report.PrintView(os.Stdout, v, res.View(v), analyzeRows)
		return nil
	}
	report.PrintAnalysis(os.Stdout, res, analyzeRows)
	return nil
}
