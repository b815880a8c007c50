package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/metrics"
	"github.com/statzone/iplstats/internal/model"
)

// summaryCmd shows a high-level overview of the whole dataset.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the dataset",
	Long: `Display aggregate statistics across every match in the dataset:
match and season counts, result type breakdown, and the most
decorated players.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Shared(dataPath)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	if ds.Len() == 0 {
		fmt.Fprintln(os.Stdout, "The dataset is empty.")
		return nil
	}

	seasons := ds.DistinctValues(model.CategorySeason)
	superOvers := 0
	for i := range ds.Records {
		if ds.Records[i].SuperOver {
			superOvers++
		}
	}

	fmt.Fprintf(os.Stdout, "\n=== Dataset Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Matches      : %d\n", ds.Len())
	if len(seasons) > 0 {
		fmt.Fprintf(os.Stdout, "  Seasons      : %d (%s – %s)\n", len(seasons), seasons[0], seasons[len(seasons)-1])
	}
	fmt.Fprintf(os.Stdout, "  Teams        : %d\n", len(ds.DistinctValues(model.CategoryTeam)))
	fmt.Fprintf(os.Stdout, "  Venues       : %d\n", len(ds.DistinctValues(model.CategoryVenue)))
	fmt.Fprintf(os.Stdout, "  POTM players : %d\n", len(ds.DistinctValues(model.CategoryPlayer)))
	fmt.Fprintf(os.Stdout, "  Super overs  : %d\n", superOvers)

	// Result type breakdown.
	fmt.Fprintf(os.Stdout, "\n--- Results ---\n\n")
	rt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	rt.Header("RESULT", "MATCHES", "SHARE")
	share := make(map[string]float64)
	for _, p := range metrics.ResultShare(ds.Records) {
		share[p.Label] = p.Value
	}
	for _, p := range metrics.ResultTypeCounts(ds.Records) {
		rt.Append(p.Label, fmt.Sprintf("%.0f", p.Value), fmt.Sprintf("%.1f%%", share[p.Label]))
	}
	rt.Render()

	// Most decorated players.
	leaders := metrics.AwardLeaders(ds.Records, topN)
	if len(leaders) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- Most Player-of-the-Match Awards ---\n\n")
		pt := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		pt.Header("PLAYER", "AWARDS")
		for _, p := range leaders {
			pt.Append(p.Label, fmt.Sprintf("%.0f", p.Value))
		}
		pt.Render()
	}

	return nil
}
