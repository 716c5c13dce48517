package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/service/immediate"
)

// immediateCmd starts the tcell front-end.
var immediateCmd = &cobra.Command{
	Use:   "immediate",
	Short: "Start the immediate-mode terminal UI.",
	Long: `Starts the immediate-mode terminal UI built on tcell.

Every frame is drawn from the current snapshot; widgets report clicks while
they are drawn. Drag the limit bar to move the threshold and release the
button to apply it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		return runImmediate(cmd, settings)
	},
}

// runImmediate runs the tcell front-end until the user quits.
func runImmediate(cmd *cobra.Command, settings *config.Config) error {
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

	return immediate.Run(ctx, &immediate.Options{Settings: settings})
}
