package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/service/retained"
)

var (
	// noMouse disables mouse support in the retained front-end.
	noMouse bool

	// retainedCmd starts the bubbletea front-end.
	retainedCmd = &cobra.Command{
		Use:   "retained",
		Short: "Start the retained-mode terminal UI.",
		Long: `Starts the retained-mode terminal UI built on bubbletea.

Keys and mouse clicks become messages that update the channel state; the
screen is re-rendered from the resulting snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			return runRetained(cmd, settings)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	retainedCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
}

// runRetained runs the bubbletea front-end until the user quits.
func runRetained(cmd *cobra.Command, settings *config.Config) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	closeLogger, err := setupLogger(settings, true)
	if err != nil {
		return err
	}

	defer closeLogger()

	ctx, stop := signalContext(cmd)
	defer stop()

	return retained.Run(ctx, &retained.Options{
		Settings:     settings,
		DisableMouse: noMouse,
	})
}
