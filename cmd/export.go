package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/analyze"
	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/export"
	"github.com/statzone/iplstats/internal/model"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <category> <primary> [secondary]",
	Short: "Export an analysis as JSON or a spreadsheet",
	Long: `Run the same analysis as 'analyze' and write all five views to a file
instead of the terminal. JSON goes to stdout when --out is omitted; the
xlsx format always needs --out.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
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
		return err
	}

	switch exportFormat {
	case "json":
		if exportOut == "" {
			return export.WriteJSON(os.Stdout, res)
		}
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		if err := export.WriteJSON(f, res); err != nil {
			return err
		}
	case "xlsx":
		if exportOut == "" {
			return fmt.Errorf("xlsx export needs --out")
		}
		if err := export.WriteXLSX(exportOut, res); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (expected json or xlsx)", exportFormat)
	}

	slog.Info("export written", "format", exportFormat, "out", exportOut)
	fmt.Fprintf(os.Stdout, "Wrote %s export to %s\n", exportFormat, exportOut)
	return nil
}
