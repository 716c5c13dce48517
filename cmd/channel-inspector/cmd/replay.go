package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/service/replay"
	"github.com/oshokin/channel-inspector/internal/service/session"
)

var (
	// format selects the snapshot output format of replay.
	format string
	// strict stops replay at the first failing line.
	strict bool
	// readings replaces generated readings in replay.
	readings []int

	// errReadingsCount is returned when --readings does not list every channel.
	errReadingsCount = errors.New("readings must list every channel")

	// replayCmd applies a command script without a terminal UI.
	replayCmd = &cobra.Command{
		Use:   "replay [script]",
		Short: "Apply a command script and print snapshots.",
		Long: `Reads commands one per line from the script file, or from standard input
when the script is omitted or "-", and prints snapshots.

Commands:
  select N          select channel N (1-9)
  shift D | next | prev
                    move the current selection, wrapping around
  clear current|previous
  threshold V       set the live threshold (1-100)
  apply             reclassify channels with the live threshold
  show              print the snapshot

Blank lines and lines starting with # are ignored. The final snapshot is
printed when anything changed since the last show.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			var scriptPath string
			if len(args) > 0 {
				scriptPath = args[0]
			}

			return runReplay(cmd, settings, scriptPath)
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := replayCmd.Flags()

	flags.StringVarP(&format, "format", "f", replay.FormatText, "snapshot format: text or json")
	flags.BoolVar(&strict, "strict", false, "stop at the first failing line")
	flags.IntSliceVar(&readings, "readings", nil, "fixed readings of channels 1-9, comma separated")
}

// runReplay replays scriptPath, or standard input when it is empty.
func runReplay(cmd *cobra.Command, settings *config.Config, scriptPath string) error {
	closeLogger, err := setupLogger(settings, false)
	if err != nil {
		return err
	}

	defer closeLogger()

	var sessionOptions []session.Option

	if len(readings) > 0 {
		dataset, err := datasetFromReadings(readings, settings.Threshold)
		if err != nil {
			return err
		}

		sessionOptions = append(sessionOptions, session.WithDataset(dataset))
	}

	ctx, stop := signalContext(cmd)
	defer stop()

	return replay.Run(ctx, &replay.Options{
		Settings:       settings,
		ScriptPath:     scriptPath,
		Input:          cmd.InOrStdin(),
		Output:         cmd.OutOrStdout(),
		Format:         format,
		Strict:         strict,
		SessionOptions: sessionOptions,
	})
}

// datasetFromReadings builds a dataset from exactly ChannelsCount readings.
func datasetFromReadings(values []int, threshold int) (*channel.Dataset, error) {
	if len(values) != channel.ChannelsCount {
		return nil, fmt.Errorf("%w: got %d, want %d", errReadingsCount, len(values), channel.ChannelsCount)
	}

	var fixed [channel.ChannelsCount]int
	copy(fixed[:], values)

	dataset, err := channel.NewDatasetFromReadings(fixed, threshold)
	if err != nil {
		return nil, fmt.Errorf("parse readings: %w", err)
	}

	return dataset, nil
}
