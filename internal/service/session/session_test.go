package session

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/logger"
)

// newTestSession builds a session over readings 10..90 with a silent logger.
func newTestSession(t *testing.T) (*Session, context.Context) {
	t.Helper()

	ctx := logger.ToContext(context.Background(), logger.Nop())

	dataset, err := channel.NewDatasetFromReadings(
		[channel.ChannelsCount]int{10, 20, 30, 40, 50, 60, 70, 80, 90},
		channel.DefaultThreshold,
	)
	require.NoError(t, err)

	s, err := New(ctx, config.Default(), WithDataset(dataset), WithOperator("tester@lab"))
	require.NoError(t, err)

	return s, s.Context(ctx)
}

// TestNew_RequiresSettings rejects nil settings.
func TestNew_RequiresSettings(t *testing.T) {
	t.Parallel()

	s, err := New(context.Background(), nil)
	require.Error(t, err)
	require.Nil(t, s)
}

// TestNew_InvalidThreshold surfaces policy validation.
func TestNew_InvalidThreshold(t *testing.T) {
	t.Parallel()

	ctx := logger.ToContext(context.Background(), logger.Nop())

	_, err := New(ctx, &config.Config{Threshold: 500})
	require.ErrorIs(t, err, channel.ErrValueOutOfRange)
}

// TestNew_SeededSessionsMatch ensures a configured seed reproduces readings.
func TestNew_SeededSessionsMatch(t *testing.T) {
	t.Parallel()

	ctx := logger.ToContext(context.Background(), logger.Nop())
	seed := uint64(7)

	settings := config.Default()
	settings.Seed = &seed

	a, err := New(ctx, settings)
	require.NoError(t, err)

	b, err := New(ctx, settings)
	require.NoError(t, err)

	require.Equal(t, a.Snapshot(), b.Snapshot())
	require.NotEqual(t, a.ID(), b.ID())
	require.NotEmpty(t, a.Operator())
}

// TestSession_Dispatch counts applied and rejected commands.
func TestSession_Dispatch(t *testing.T) {
	t.Parallel()

	s, ctx := newTestSession(t)

	snap, err := s.Dispatch(ctx, channel.ShiftChannel{Delta: 7})
	require.NoError(t, err)
	require.Equal(t, 80, snap.Current.Reading)
	require.True(t, snap.Current.Suspicious)

	snap, err = s.Dispatch(ctx, channel.SelectChannel{Number: 10})
	require.ErrorIs(t, err, channel.ErrIndexOutOfRange)
	require.Equal(t, 80, snap.Current.Reading, "rejected command leaves state unchanged")

	_, err = s.Dispatch(ctx, nil)
	require.Error(t, err)

	require.Equal(t, Stats{Applied: 1, Rejected: 2}, s.Stats())
	require.Equal(t, "tester@lab", s.Operator())
}

// TestSession_LogsCarrySessionFields checks that dispatch logs are tagged.
func TestSession_LogsCarrySessionFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := logger.ToContext(context.Background(), logger.NewWithSink(zapcore.AddSync(&buf), zapcore.DebugLevel))

	s, err := New(ctx, config.Default(), WithOperator("tester@lab"))
	require.NoError(t, err)

	ctx = s.Context(ctx)

	_, err = s.Dispatch(ctx, channel.ClearRow{Row: channel.RowPrevious})
	require.NoError(t, err)

	s.Close(ctx)

	out := buf.String()
	require.Contains(t, out, "Session started")
	require.Contains(t, out, `"command": "clear previous"`)
	require.Contains(t, out, `"session_id": "`+s.ID()+`"`)
	require.Contains(t, out, "Session finished")
}

// TestDetectOperator always yields a user@host pair.
func TestDetectOperator(t *testing.T) {
	t.Parallel()

	require.Contains(t, DetectOperator(), "@")
}
