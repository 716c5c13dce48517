package immediate

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/logger"
	"github.com/oshokin/channel-inspector/internal/service/session"
)

// Options controls an immediate front-end run.
type Options struct {
	// Settings are the validated application settings.
	Settings *config.Config
	// SessionOptions are passed to session.New.
	SessionOptions []session.Option
	// Screen overrides the terminal screen, e.g. with a simulation screen.
	Screen tcell.Screen
}

// Run draws frames until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "immediate")

	sess, err := session.New(ctx, opts.Settings, opts.SessionOptions...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	ctx = sess.Context(ctx)
	defer sess.Close(ctx)

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
	}

	if err = screen.Init(); err != nil {
		logger.ErrorKV(ctx, "Screen unavailable", "error", err)

		return fmt.Errorf("init screen: %w", err)
	}

	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Interrupted")

			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	newApp(ctx, sess, screen).loop()

	return nil
}
