package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/logger"
)

// Stats counts the commands a session handled.
type Stats struct {
	// Applied is the number of accepted commands.
	Applied int
	// Rejected is the number of commands that failed validation.
	Rejected int
}

// Session owns the machine for one run of a front-end.
// Like the machine it wraps, it is not safe for concurrent use.
type Session struct {
	// id correlates every log line of the run.
	id string
	// operator is the user@host that started the run.
	operator string
	// machine is the state machine commands are dispatched to.
	machine *channel.Machine
	// stats counts dispatched commands.
	stats Stats
}

// Option customizes New.
type Option func(*options)

// options collects Option values.
type options struct {
	dataset  *channel.Dataset
	source   channel.Source
	operator string
}

// WithDataset uses a prepared dataset instead of generating readings.
func WithDataset(d *channel.Dataset) Option {
	return func(o *options) {
		o.dataset = d
	}
}

// WithSource draws readings from src instead of the configured seed.
func WithSource(src channel.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithOperator overrides the detected operator.
func WithOperator(operator string) Option {
	return func(o *options) {
		o.operator = operator
	}
}

var (
	// errSettingsRequired is returned when New gets nil settings.
	errSettingsRequired = errors.New("settings must be provided")
	// errNilCommand is returned when Dispatch gets a nil command.
	errNilCommand = errors.New("command must be provided")
)

// New builds a session from settings. The machine is already bootstrapped.
func New(ctx context.Context, settings *config.Config, opts ...Option) (*Session, error) {
	if settings == nil {
		return nil, errSettingsRequired
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	policy, err := channel.NewPolicy(settings.Threshold)
	if err != nil {
		return nil, fmt.Errorf("create policy: %w", err)
	}

	dataset := o.dataset
	if dataset == nil {
		src := o.source
		if src == nil {
			src = channel.NewSource(settings.Seed)
		}

		dataset = channel.NewDataset(src, settings.Threshold)
	}

	if o.operator == "" {
		o.operator = DetectOperator()
	}

	s := &Session{
		id:       uuid.NewString(),
		operator: o.operator,
		machine:  channel.NewMachine(dataset, policy),
	}

	logger.InfoKV(s.Context(ctx), "Session started",
		"threshold", settings.Threshold,
		"seeded", settings.Seed != nil,
		"current", s.machine.Snapshot().Current.ChannelText(),
	)

	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Operator returns the user@host that started the session.
func (s *Session) Operator() string {
	return s.operator
}

// Context returns ctx whose logger carries the session fields.
func (s *Session) Context(ctx context.Context) context.Context {
	return logger.WithKV(ctx, "session_id", s.id, "operator", s.operator)
}

// Snapshot returns the current rendered state.
func (s *Session) Snapshot() channel.Snapshot {
	return s.machine.Snapshot()
}

// Stats returns the command counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Dispatch executes cmd and returns the snapshot taken afterwards.
// On error the snapshot reflects the unchanged state.
func (s *Session) Dispatch(ctx context.Context, cmd channel.Command) (channel.Snapshot, error) {
	if cmd == nil {
		s.stats.Rejected++

		return s.machine.Snapshot(), errNilCommand
	}

	if err := s.machine.Execute(cmd); err != nil {
		s.stats.Rejected++
		logger.WarnKV(ctx, "Command rejected", "command", cmd.String(), "error", err)

		return s.machine.Snapshot(), err
	}

	s.stats.Applied++
	snap := s.machine.Snapshot()

	logger.DebugKV(ctx, "Command applied",
		"command", cmd.String(),
		"current", snap.Current.ChannelText(),
		"previous", snap.Previous.ChannelText(),
		"threshold", snap.Threshold,
		"pending_apply", snap.PendingApply,
	)

	return snap, nil
}

// Close logs the session summary.
func (s *Session) Close(ctx context.Context) {
	logger.InfoKV(ctx, "Session finished", "applied", s.stats.Applied, "rejected", s.stats.Rejected)
}
