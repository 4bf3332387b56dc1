package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/agelens/internal/application/live"
	"github.com/penwyp/agelens/internal/core/schedule"
	"github.com/penwyp/agelens/internal/data/watcher"
	"github.com/penwyp/agelens/internal/presentation/display"
	"github.com/penwyp/agelens/internal/presentation/interaction"
	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

var (
	liveTable   string
	liveLayout  string
	liveWidth   int
	liveNoWatch bool
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Watch your age tick in a full-screen dashboard",
	Long: `Full-screen dashboard refreshed every second. Values that changed on the
last tick are highlighted. The life timeline is drawn below the readings.

Keys:
  1-6 / Tab    switch table
  s            cycle sort order
  g / Esc      expand the next timeline group / close it
  [ / ]        move the timeline focus
  p            pause or resume
  t            toggle the compact layout
  r            reload the birth date
  h            help
  q / Ctrl+C   quit

The birth date is reloaded automatically when 'agelens birth set' runs in
another terminal.`,
	Args: cobra.NoArgs,
	RunE: runLive,
}

func init() {
	rootCmd.AddCommand(liveCmd)

	liveCmd.Flags().StringVar(&liveTable, "table", "",
		"Initial table (default from config)")
	liveCmd.Flags().StringVar(&liveLayout, "layout", "full",
		"Layout (full, minimal)")
	liveCmd.Flags().IntVar(&liveWidth, "width", 0,
		"Timeline width in columns (0 = terminal width)")
	liveCmd.Flags().BoolVar(&liveNoWatch, "no-watch", false,
		"Do not reload the birth date when the state file changes")
}

func runLive(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	layoutStyle, err := parseLayout(liveLayout)
	if err != nil {
		return err
	}

	width := liveWidth
	if width <= 0 {
		width = env.config.Timeline.Width
	}
	table := liveTable
	if table == "" {
		table = env.config.Table
	}

	liveConfig := &live.LiveConfig{
		Timezone:      env.config.Timezone,
		Table:         table,
		TimelineWidth: width,
		LayoutStyle:   layoutStyle,
		Format:        env.config.FormatOptions(),
		Refresh:       env.config.Refresh,
		Highlight:     env.config.Highlight,
	}

	births, kv, err := env.openBirthStore()
	if err != nil {
		return err
	}

	deps := live.Dependencies{
		Birth:     births,
		Display:   display.NewTerminalDisplay(cmd.OutOrStdout()),
		Scheduler: schedule.NewScheduler(env.time.Clock()),
		Time:      env.time,
	}

	keyboard, err := interaction.NewKeyboardReader()
	if err != nil {
		util.LogWarnf("Keyboard input unavailable, use Ctrl+C to quit: %v", err)
	} else {
		deps.Keyboard = keyboard
	}

	if !liveNoWatch {
		stateWatcher, err := watcher.NewStateWatcher(kv.Path())
		if err != nil {
			util.LogWarnf("Not watching %s: %v", kv.Path(), err)
		} else {
			deps.Watcher = stateWatcher
		}
	}

	orchestrator, err := live.NewOrchestrator(liveConfig, deps)
	if err != nil {
		if deps.Keyboard != nil {
			_ = deps.Keyboard.Close()
		}
		if deps.Watcher != nil {
			_ = deps.Watcher.Close()
		}
		return err
	}

	// Set up signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	util.LogInfof("Starting live dashboard on table %s", table)
	return orchestrator.Run(ctx)
}

func parseLayout(name string) (int, error) {
	switch name {
	case "full", "":
		return 0, nil
	case "minimal":
		return 1, nil
	default:
		return 0, fmt.Errorf("invalid layout '%s': must be either 'full' or 'minimal'", name)
	}
}
