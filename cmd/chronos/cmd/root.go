package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/chronos/foundation/core/config"
	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/foundation/utils/timex"
	"github.com/msto63/chronos/pkg/datetime"
)

const (
	defaultConfigFile = "chronos.toml"
	envPrefix         = "CHRONOS"
)

// app carries the flags and the per-invocation state shared by all commands
type app struct {
	configPath string
	zone       string
	verbose    bool
	plain      bool

	cfg    *config.Config
	logger *mdwlog.Logger
	engine *timex.Engine
	out    *printer
	clock  func() time.Time
}

// Execute runs the chronos command tree and reports a failure on stderr
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// NewRootCommand builds a fresh command tree
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{clock: time.Now})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronos",
		Short: "chronos - zoned wall-clock date and time tool",
		Long: `chronos works with minute-precision wall-clock values bound to an
explicit time zone: an IANA name, "utc" or a fixed offset such as UTC+5:30.

Values are written as "YYYY-MM-DD hh:mm", either quoted or as two arguments.

Commands:
  now       - current time in one or more zones
  convert   - same instant in other zones
  add       - shift forward by a duration or calendar days
  subtract  - shift backward by a duration or calendar days
  diff      - distance between two values
  month     - every day of the month of a value
  epoch     - value from Unix seconds or milliseconds
  check     - validate a value and zone`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ./"+defaultConfigFile+" if present)")
	root.PersistentFlags().StringVarP(&a.zone, "zone", "z", "", "Time zone of the input values (default: default_zone from config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "Plain output without styling")

	root.AddCommand(
		newNowCommand(a),
		newConvertCommand(a),
		newShiftCommand(a, "add"),
		newShiftCommand(a, "subtract"),
		newDiffCommand(a),
		newMonthCommand(a),
		newEpochCommand(a),
		newCheckCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads the configuration and builds the logger, engine and printer
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = defaultConfigFile
	}

	cfg, err := config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: envPrefix,
		Optional:  a.configPath == "",
		Defaults: map[string]interface{}{
			"default_zone":  datetime.UTC,
			"log.level":     "info",
			"log.format":    "text",
			"output.styled": true,
		},
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return invalidSetting("log.level", cfg.GetString("log.level"), err)
	}
	if a.verbose {
		level = mdwlog.LevelDebug
	}
	format, err := mdwlog.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return invalidSetting("log.format", cfg.GetString("log.format"), err)
	}

	a.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "chronos",
	}).WithCorrelationID(uuid.NewString())

	a.engine = timex.NewEngine(timex.WithLogger(a.logger))

	if strings.TrimSpace(a.zone) == "" {
		a.zone = cfg.GetString("default_zone", datetime.UTC)
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	a.out = newPrinter(cmd.OutOrStdout(), cfg.GetBool("output.styled", true) && !a.plain)

	if a.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		a.logger.Debug("configuration loaded", mdwlog.Fields{
			"config":  cfg.FilePath(),
			"zone":    a.zone,
			"command": cmd.Name(),
		})
	}
	return nil
}

// options returns the construction options every command passes to the library
func (a *app) options() []datetime.Option {
	return []datetime.Option{datetime.WithCalendar(a.engine), datetime.WithClock(a.clock)}
}

// parseValue builds a DateTime in the --zone zone from one quoted or two split arguments
func (a *app) parseValue(args []string) (*datetime.DateTime, error) {
	return datetime.New(strings.Join(args, " "), a.zone, a.options()...)
}

// run times a command body and logs its failure at a level set by severity
func (a *app) run(name string, body func() error) error {
	logger := a.logger.WithFields(mdwlog.Fields{"command": name, "zone": a.zone})
	timer := logger.StartTimer("chronos." + name)
	err := body()
	timer.Stop()
	if err == nil {
		return nil
	}
	if mdwerror.GetSeverity(err).ShouldAlert() {
		logger.ErrorWithErr("command failed", err)
	} else {
		logger.LogError(err)
	}
	return err
}

func invalidSetting(key, value string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation("setup").
		Code(mdwerror.CodeInvalidConfig).
		Cause(cause).
		Field(key, value).
		Messagef("invalid setting %s", key).
		Build()
}

func usageError(operation, field, reason string) error {
	return mdwerrors.InvalidArgument(mdwerrors.ModuleCLI, operation, field, "", reason)
}

// valueArgs accepts a value as one quoted argument or as date and time
func valueArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%s expects a value as \"YYYY-MM-DD hh:mm\" or as two arguments", cmd.Name())
	}
	return nil
}
