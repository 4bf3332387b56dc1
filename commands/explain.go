package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/core/scale"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

const dotsPerRow = 40

var (
	explainTable  string
	explainOutput string
)

var explainCmd = &cobra.Command{
	Use:   "explain LABEL",
	Short: "Put one reading in perspective",
	Long: `Show one reading next to familiar quantities (egg cartons, bathtubs,
football pitches...) and as a grid of dots where each dot stands for a round
step.

Examples:
  agelens explain "Hair grown (cm)"
  agelens explain heartbeats --table Biological`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)

	explainCmd.Flags().StringVar(&explainTable, "table", "",
		"Look the label up in this table only")
	explainCmd.Flags().StringVarP(&explainOutput, "output", "o", model.OutputTable,
		"Output format (table, json)")
}

func runExplain(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	row, err := findRow(args[0], explainTable)
	if err != nil {
		return userError(err)
	}

	born, err := env.requireBirth()
	if err != nil {
		return userError(err)
	}

	explanation := scale.Explain(row, row.Value(born, env.time.Now()))

	switch explainOutput {
	case model.OutputJSON:
		data, err := sonic.Marshal(explanation)
		if err != nil {
			return fmt.Errorf("failed to encode explanation: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case model.OutputTable, "":
		printExplanation(cmd.OutOrStdout(), explanation)
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s': must be table or json", explainOutput)
	}
}

// findRow looks label up in the named table, or in every table when name is empty
func findRow(label, tableName string) (units.UnitDefinition, error) {
	if tableName == "" {
		_, row, err := units.FindRow(label)
		return row, err
	}
	table, err := units.Lookup(tableName)
	if err != nil {
		return units.UnitDefinition{}, err
	}
	row, ok := table.Row(label)
	if !ok {
		return units.UnitDefinition{}, fmt.Errorf("%w: %q in table %s", model.ErrUnknownLabel, label, table.Name)
	}
	return row, nil
}

func printExplanation(w io.Writer, e scale.Explanation) {
	value := e.Display
	if e.Unit != "" {
		value += " " + e.Unit
	}
	fmt.Fprintf(w, "%s: %s\n", e.Label, value)

	if !e.Hinted && e.Kind == units.KindCount {
		fmt.Fprintln(w, "  Already a familiar size.")
	}

	if len(e.Equivalents) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "That is about:")
		for _, eq := range e.Equivalents {
			fmt.Fprintf(w, "  %s %s\n", strconv.FormatFloat(eq.Approx, 'f', -1, 64), eq.Label)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%d dots)\n", e.Grid.Legend, e.Grid.Dots)
	for remaining := e.Grid.Dots; remaining > 0; remaining -= dotsPerRow {
		fmt.Fprintln(w, "  "+strings.Repeat("●", min(remaining, dotsPerRow)))
	}
}
