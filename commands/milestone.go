package commands

import (
	"fmt"
	"strings"

	"github.com/penwyp/agelens/internal/core/birth"
	"github.com/penwyp/agelens/internal/core/milestone"
	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

var (
	milestoneUTCOffset int
	milestoneTZCity    string
	milestonePresets   bool
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone AMOUNT [UNIT]",
	Short: "Project when you turn AMOUNT units old",
	Long: `Project the calendar instant at which you turn AMOUNT units old.

UNIT is one of years, months, weeks, days, hours, minutes, seconds (default days).
Years and months follow the calendar; the other units are fixed durations.
With --presets the round amounts 1,000 to 1,000,000,000 are projected and the
only argument is the optional UNIT.

Examples:
  agelens milestone 10000 days
  agelens milestone 1000000000 seconds --tz-city Tokyo
  agelens milestone --presets hours`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runMilestone,
}

func init() {
	rootCmd.AddCommand(milestoneCmd)

	milestoneCmd.Flags().IntVar(&milestoneUTCOffset, "utc-offset", 0,
		"UTC offset in minutes the birth time is read in (default: the timezone's current offset)")
	milestoneCmd.Flags().StringVar(&milestoneTZCity, "tz-city", "",
		"Read the birth time in the offset of this city (e.g., Rome, Tokyo)")
	milestoneCmd.Flags().BoolVar(&milestonePresets, "presets", false,
		"Project every preset amount")
}

func runMilestone(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	now := env.time.Now()
	offset := env.time.OffsetMinutes(now)
	if cmd.Flags().Changed("utc-offset") {
		offset = milestoneUTCOffset
	}
	if milestoneTZCity != "" {
		tz, ok := milestone.TimezoneByCity(milestoneTZCity)
		if !ok {
			return fmt.Errorf("unknown city %q: must be one of %s", milestoneTZCity, cityNames())
		}
		offset = tz.OffsetMinutes()
	}

	var (
		amounts []int64
		unitArg string
	)
	switch {
	case milestonePresets:
		if len(args) > 1 {
			return fmt.Errorf("--presets takes at most the UNIT argument")
		}
		if len(args) == 1 {
			unitArg = args[0]
		}
		amounts = milestone.Presets
	case len(args) == 0:
		return fmt.Errorf("AMOUNT is required unless --presets is set")
	default:
		amounts = []int64{milestone.ParseAmount(args[0])}
		if len(args) == 2 {
			unitArg = args[1]
		}
	}

	unit, err := milestone.ParseUnit(unitArg)
	if err != nil {
		return userError(err)
	}

	births, _, err := env.openBirthStore()
	if err != nil {
		return err
	}
	var instant *birth.Instant
	if current, ok := births.Get(); ok {
		instant = &current
	}

	out := cmd.OutOrStdout()
	for i, amount := range amounts {
		projection, err := milestone.Project(milestone.Request{
			Birth:            instant,
			Amount:           amount,
			Unit:             unit,
			UTCOffsetMinutes: offset,
			Now:              now,
			Formatter:        env.formatter(),
		})
		if err != nil {
			return userError(err)
		}
		if projection.Approximate {
			util.LogDebugf("Milestone %d %s is outside the calendar range: %v", amount, unit, projection.Reason)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, projection.Text)
	}
	return nil
}

func cityNames() string {
	names := make([]string, len(milestone.Timezones))
	for i, tz := range milestone.Timezones {
		names[i] = tz.City
	}
	return strings.Join(names, ", ")
}
