package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/logger"
	"github.com/oshokin/channel-inspector/internal/service/session"
)

// Options controls a replay run.
type Options struct {
	// Settings are the validated application settings.
	Settings *config.Config
	// ScriptPath is the script to replay; "" or "-" reads Input.
	ScriptPath string
	// Input is read when ScriptPath is empty. Defaults to os.Stdin.
	Input io.Reader
	// Output receives snapshots and error lines. Defaults to os.Stdout.
	Output io.Writer
	// Format is FormatText or FormatJSON.
	Format string
	// Strict stops at the first failing line.
	Strict bool
	// SessionOptions are passed to session.New.
	SessionOptions []session.Option
}

// ErrRejectedCommands is returned in strict mode when a line fails.
var ErrRejectedCommands = errors.New("script stopped on a failing line")

// Run replays the script and prints snapshots. In non-strict mode failing
// lines are reported on Output and the replay continues.
//
//nolint:cyclop // One loop with a handful of outcomes per line reads best inline.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "replay")

	if opts.Format != "" && opts.Format != FormatText && opts.Format != FormatJSON {
		return fmt.Errorf("%w: %q", errUnknownFormat, opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	in, closeInput, err := openScript(opts)
	if err != nil {
		return err
	}

	defer closeInput()

	sess, err := session.New(ctx, opts.Settings, opts.SessionOptions...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	ctx = sess.Context(ctx)
	defer sess.Close(ctx)

	var (
		scanner = bufio.NewScanner(in)
		lineNo  int
		dirty   = true
	)

	for scanner.Scan() {
		lineNo++

		step, ok, err := ParseLine(lineNo, scanner.Text())
		if err == nil && ok && step.Command != nil {
			_, err = sess.Dispatch(ctx, step.Command)
			dirty = true
		}

		if err != nil {
			if opts.Strict {
				logger.ErrorKV(ctx, "Script stopped", "line", lineNo, "error", err)

				return fmt.Errorf("%w: line %d: %w", ErrRejectedCommands, lineNo, err)
			}

			if _, werr := fmt.Fprintf(out, "error: line %d: %v\n", lineNo, err); werr != nil {
				return fmt.Errorf("write error line: %w", werr)
			}

			continue
		}

		if step.Show {
			if err := writeSnapshot(out, opts.Format, sess.Snapshot()); err != nil {
				return err
			}

			dirty = false
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	if dirty {
		return writeSnapshot(out, opts.Format, sess.Snapshot())
	}

	return nil
}

// openScript returns the reader selected by opts and its cleanup.
func openScript(opts *Options) (io.Reader, func(), error) {
	if opts.ScriptPath == "" || opts.ScriptPath == "-" {
		if opts.Input != nil {
			return opts.Input, func() {}, nil
		}

		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(filepath.Clean(opts.ScriptPath))
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
