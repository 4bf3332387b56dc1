package commands

import (
	"fmt"

	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the unit tables and their rows",
	Args:  cobra.NoArgs,
	RunE:  runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, table := range units.Tables() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, table.Name)

		width := 0
		for _, row := range table.Rows {
			width = max(width, util.GetDisplayWidth(row.Label))
		}
		for _, row := range table.Rows {
			kind := string(row.Scale.Kind)
			if kind == "" {
				kind = string(units.KindCount)
			}
			fmt.Fprintf(out, "   %s  %-6s  %s\n", util.PadRight(row.Label, width), row.Variant, kind)
		}
	}
	return nil
}
