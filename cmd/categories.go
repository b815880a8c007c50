package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statzone/iplstats/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available analysis categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range model.Categories() {
			fmt.Fprintln(os.Stdout, c)
		}
		return nil
	},
}
