package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/logger"
	"github.com/oshokin/channel-inspector/internal/version"
)

// overrides holds the persistent flags that take precedence over the config file.
type overrides struct {
	// threshold overrides the configured threshold when set.
	threshold int
	// seed overrides the configured seed when set.
	seed uint64
	// logLevel overrides the configured log level when set.
	logLevel string
	// logFile overrides the configured log file when set.
	logFile string
}

// apply copies every flag that changed reports as set into settings.
// An explicit threshold must be in range; only the config file may leave it unset.
func (o *overrides) apply(settings *config.Config, changed func(name string) bool) error {
	if changed("threshold") {
		if o.threshold < channel.LowLimit || o.threshold > channel.HighLimit {
			return fmt.Errorf("--threshold %d: %w", o.threshold, channel.ErrValueOutOfRange)
		}

		settings.Threshold = o.threshold
	}

	if changed("seed") {
		seed := o.seed
		settings.Seed = &seed
	}

	if changed("log-level") {
		settings.LogLevel = o.logLevel
	}

	if changed("log-file") {
		settings.LogFile = o.logFile
	}

	return nil
}

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// flagOverrides stores the values of the override flags.
	flagOverrides overrides

	// errNotTerminal is returned when an interactive front-end has no terminal.
	errNotTerminal = errors.New("standard output is not a terminal, use the replay command")

	// rootCmd starts the front-end named in the configuration.
	rootCmd = &cobra.Command{
		Use:   "channel-inspector",
		Short: "Inspect nine simulated sensor channels.",
		Long: `Shows nine channels with random readings and flags the suspicious ones.

A channel is suspicious when its reading exceeds the threshold. Threshold
changes take effect only after they are applied. The previously viewed
channel is kept next to the current one for comparison.

Without a subcommand the front-end named in the configuration file is started.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			switch settings.FrontEnd {
			case config.FrontEndImmediate:
				return runImmediate(cmd, settings)
			case config.FrontEndReplay:
				return runReplay(cmd, settings, "")
			default:
				return runRetained(cmd, settings)
			}
		},
	}
)

// Execute runs the channel-inspector CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file (.yaml or .toml)")
	flags.IntVarP(&flagOverrides.threshold, "threshold", "t", 0, "initial suspicion threshold (1-100)")
	flags.Uint64Var(&flagOverrides.seed, "seed", 0, "seed for reproducible readings")
	flags.StringVar(&flagOverrides.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&flagOverrides.logFile, "log-file", "", "file receiving logs while a terminal UI is running")

	rootCmd.AddCommand(retainedCmd, immediateCmd, replayCmd)
}

// loadSettings reads the configuration file and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	settings, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err = flagOverrides.apply(settings, cmd.Flags().Changed); err != nil {
		return nil, err
	}

	if err = config.Validate(settings); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return settings, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
}

// setupLogger installs the global logger for the run. Terminal UIs own the
// screen, so they log to settings.LogFile or nowhere. Other runs log to stderr.
func setupLogger(settings *config.Config, interactive bool) (func(), error) {
	level, _ := logger.ParseLogLevel(settings.LogLevel)
	logger.SetLevel(level)

	switch {
	case settings.LogFile != "":
		l, closer, err := logger.NewFile(settings.LogFile, logger.AtomicLevel())
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}

		logger.SetLogger(l)

		return func() {
			_ = l.Sync()
			_ = closer.Close()
		}, nil
	case interactive:
		logger.SetLogger(logger.Nop())
	default:
		logger.SetLogger(logger.New(logger.AtomicLevel()))
	}

	return func() { _ = logger.Logger().Sync() }, nil
}

// requireTerminal fails when stdout cannot host a terminal UI.
func requireTerminal() error {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}

	return errNotTerminal
}
