package retained

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/logger"
	"github.com/oshokin/channel-inspector/internal/service/session"
)

// Options controls a retained front-end run.
type Options struct {
	// Settings are the validated application settings.
	Settings *config.Config
	// SessionOptions are passed to session.New.
	SessionOptions []session.Option
	// ProgramOptions are appended to the default program options.
	ProgramOptions []tea.ProgramOption
	// DisableMouse turns off mouse zones.
	DisableMouse bool
}

// Run starts the bubbletea program and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "retained")

	sess, err := session.New(ctx, opts.Settings, opts.SessionOptions...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	ctx = sess.Context(ctx)
	defer sess.Close(ctx)

	programOptions := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}

	var zones *zone.Manager

	if !opts.DisableMouse {
		zones = zone.New()
		defer zones.Close()

		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}

	programOptions = append(programOptions, opts.ProgramOptions...)

	program := tea.NewProgram(NewModel(ctx, sess, zones), programOptions...)

	if _, err = program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info(ctx, "Interrupted")

			return nil
		}

		logger.ErrorKV(ctx, "Program failed", "error", err)

		return fmt.Errorf("run program: %w", err)
	}

	return nil
}
