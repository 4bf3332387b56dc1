package commands

import (
	"fmt"
	"os"

	"github.com/penwyp/agelens/internal/core/timeline"
	"github.com/penwyp/agelens/internal/presentation/layout"
	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

var (
	timelineWidth  int
	timelineExpand int
	timelineSVG    string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Draw your life timeline",
	Long: `Draw the life timeline: birth, the midpoint between birth and today, today
and the 10,000 days, 1 billion seconds and 500 months milestones.

Events closer than a few cells are merged into groups; --expand N zooms into
the Nth group. --svg writes the timeline as an SVG image instead.`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)

	timelineCmd.Flags().IntVar(&timelineWidth, "width", 0,
		"Axis width in columns (0 = terminal width)")
	timelineCmd.Flags().IntVar(&timelineExpand, "expand", 0,
		"Expand the Nth event group (1-based)")
	timelineCmd.Flags().StringVar(&timelineSVG, "svg", "",
		"Write the timeline to this SVG file")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	born, err := env.requireBirth()
	if err != nil {
		return userError(err)
	}
	now := env.time.Now()

	width := timelineWidth
	if width <= 0 {
		width = env.config.Timeline.Width
	}
	if width <= 0 {
		width = (layout.Sizer{}).GetMaxWidth()
	}

	lt := timeline.BuildLifeTimeline(born, now)
	view := layout.NewTimelineView(lt, width, "", now)

	if timelineExpand != 0 {
		groups := timeline.Groups(view.Items)
		if timelineExpand < 1 || timelineExpand > len(groups) {
			return fmt.Errorf("no group %d: the timeline has %d group(s) at width %d", timelineExpand, len(groups), view.Cols)
		}
		view = layout.NewTimelineView(lt, width, groups[timelineExpand-1].ID, now)
	}

	if timelineSVG != "" {
		return writeTimelineSVG(cmd, view, util.ExpandPath(timelineSVG))
	}

	for _, line := range layout.RenderTimelineText(view) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func writeTimelineSVG(cmd *cobra.Command, view layout.TimelineView, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := layout.WriteSVG(file, view, layout.DefaultSVGOptions()); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write timeline SVG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write timeline SVG: %w", err)
	}

	util.LogInfof("Timeline written to %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Timeline written to %s\n", path)
	return nil
}
