package commands

import (
	"fmt"

	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

var birthTime string

var birthCmd = &cobra.Command{
	Use:   "birth",
	Short: "Show or change the saved birth date",
}

var birthSetCmd = &cobra.Command{
	Use:   "set YYYY-MM-DD",
	Short: "Save the birth date, and optionally the time",
	Long: `Save the birth date. The year must lie between 1900 and the current year.
Without --time the stored time is kept, or 00:00 is used when none is stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runBirthSet,
}

var birthShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved birth date and time",
	Args:  cobra.NoArgs,
	RunE:  runBirthShow,
}

func init() {
	rootCmd.AddCommand(birthCmd)
	birthCmd.AddCommand(birthSetCmd, birthShowCmd)

	birthSetCmd.Flags().StringVar(&birthTime, "time", "",
		"Birth time in 24h HH:MM format")
}

func runBirthSet(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	births, kv, err := env.openBirthStore()
	if err != nil {
		return err
	}

	if birthTime != "" {
		err = births.Set(args[0], birthTime)
	} else {
		err = births.SetDate(args[0])
	}
	if err != nil {
		return userError(err)
	}

	instant, _ := births.Get()
	util.LogInfof("Birth instant saved to %s", kv.Path())
	fmt.Fprintf(cmd.OutOrStdout(), "Birth date saved: %s\n", instant)
	return nil
}

func runBirthShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	births, _, err := env.openBirthStore()
	if err != nil {
		return err
	}

	instant, ok := births.Get()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No birth date set. Run 'agelens birth set YYYY-MM-DD'.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", instant, env.time.Location())
	return nil
}
