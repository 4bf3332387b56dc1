package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/config"
	"github.com/penwyp/agelens/internal/core/birth"
	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/data/store"
	"github.com/penwyp/agelens/internal/presentation/formatter"
	"github.com/penwyp/agelens/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Configuration and state
	configPath string
	stateFile  string
	timezone   string

	// Output related
	tableName    string
	outputFormat string
	atTime       string

	rootCmd = &cobra.Command{
		Use:   "agelens [flags]",
		Short: "How old are you, in every unit there is",
		Long: `agelens shows the time elapsed since your birth in many units at once:
seconds, heartbeats, dog years, Earth orbits and more.

Save your birth date once, then print readings, project milestones or watch
the numbers tick in the live dashboard.

Examples:
  agelens birth set 1990-05-17 --time 08:30   # Save the birth date and time
  agelens                                     # Print the Classic table
  agelens --table cosmic --output json        # Another table as JSON
  agelens --at 2030-01-01T00:00:00Z           # Readings at another instant
  agelens milestone 1000000000 seconds        # When do I turn a billion seconds old
  agelens timeline --svg life.svg             # Export the life timeline
  agelens live                                # Full-screen live dashboard`,
		SilenceUsage: true,
		RunE:         runReadings,
	}
)

func init() {
	// Configuration
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath,
		"Configuration file path")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state", "",
		"Birth date state file (default from config, "+config.DefaultStateFile+")")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Europe/Rome, UTC; default from config)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	// Output configuration
	rootCmd.Flags().StringVarP(&tableName, "table", "t", "",
		"Unit table ("+joinNames()+")")
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", model.OutputTable,
		"Output format (table, json, csv, summary)")
	rootCmd.Flags().StringVar(&atTime, "at", "",
		"Compute readings at this RFC3339 instant instead of now")
}

// environment is what every command needs after start-up
type environment struct {
	config *config.Config
	time   *util.TimeProvider
}

// loadEnvironment reads the configuration, applies the persistent flags and
// initializes logging and the time provider.
func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if timezone != "" {
		cfg.Timezone = timezone
	}
	if stateFile != "" {
		cfg.StateFile = stateFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := util.InitLogger(cfg.LoggerOptions(debug)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := util.InitializeTimeProvider(cfg.Timezone); err != nil {
		return nil, err
	}
	util.LogDebugf("Running %s with timezone %s", cmd.CommandPath(), cfg.Timezone)

	return &environment{
		config: cfg,
		time:   util.GetTimeProvider(),
	}, nil
}

// openBirthStore opens the persisted birth state
func (env *environment) openBirthStore() (*birth.Store, *store.BoltKV, error) {
	kv, err := store.NewBoltKV(util.ExpandPath(env.config.StateFile))
	if err != nil {
		return nil, nil, err
	}
	births, err := birth.NewStore(kv, env.time.Now)
	if err != nil {
		return nil, nil, err
	}
	return births, kv, nil
}

// requireBirth returns the saved birth instant in the display location
func (env *environment) requireBirth() (time.Time, error) {
	births, _, err := env.openBirthStore()
	if err != nil {
		return time.Time{}, err
	}
	instant, err := births.Require()
	if err != nil {
		return time.Time{}, err
	}
	return instant.In(env.time.Location()), nil
}

func (env *environment) formatter() *format.Formatter {
	return format.New(env.config.FormatOptions())
}

// table resolves the --table flag, falling back to the configured table
func (env *environment) table(name string) (units.Table, error) {
	if name == "" {
		name = env.config.Table
	}
	return units.Lookup(name)
}

func runReadings(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	table, err := env.table(tableName)
	if err != nil {
		return userError(err)
	}
	out, err := formatter.New(outputFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	at := env.time.Now()
	if atTime != "" {
		parsed, err := time.Parse(time.RFC3339, atTime)
		if err != nil {
			return fmt.Errorf("invalid --at value %q: expected RFC3339, e.g. 2030-01-01T00:00:00Z", atTime)
		}
		at = parsed.In(env.time.Location())
	}

	born, err := env.requireBirth()
	if err != nil {
		return userError(err)
	}

	readings := elapsed.ComputeReadings(born, at, table, env.formatter())
	util.LogDebugf("Computed %d readings for table %s", len(readings), table.Name)

	return out.Format(formatter.Report{
		Table:    table.Name,
		Birth:    born.Format(birthLayout),
		At:       at,
		Readings: readings,
	})
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

const birthLayout = "2006-01-02 15:04 MST"

// userError replaces a sentinel error with its user-facing message while
// keeping it matchable with errors.Is.
func userError(err error) error {
	msg := model.UserMessage(err)
	if msg == err.Error() {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func joinNames() string {
	return strings.Join(units.Names(), ", ")
}
