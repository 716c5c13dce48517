package integration

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/channel-inspector/internal/config"
	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/logger"
	"github.com/oshokin/channel-inspector/internal/service/replay"
	"github.com/oshokin/channel-inspector/internal/service/retained"
	"github.com/oshokin/channel-inspector/internal/service/session"
)

// fixedReadings are the readings every test dataset uses.
var fixedReadings = [channel.ChannelsCount]int{10, 20, 30, 40, 50, 60, 70, 80, 90}

// quietContext returns a context whose logger discards everything.
func quietContext() context.Context {
	return logger.ToContext(context.Background(), logger.Nop())
}

// fixedDataset returns a dataset over fixedReadings.
func fixedDataset(t *testing.T, threshold int) *channel.Dataset {
	t.Helper()

	dataset, err := channel.NewDatasetFromReadings(fixedReadings, threshold)
	require.NoError(t, err)

	return dataset
}

// writeScript stores lines as a script file and returns its path.
func writeScript(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))

	return path
}

// decodeSnapshots parses JSON-lines output.
func decodeSnapshots(t *testing.T, out []byte) []channel.Snapshot {
	t.Helper()

	var snaps []channel.Snapshot

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		var snap channel.Snapshot
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &snap))

		snaps = append(snaps, snap)
	}

	require.NoError(t, scanner.Err())

	return snaps
}

// TestReplay_ConfigFilesDriveThreshold loads YAML and TOML settings from disk and replays a script against each.
func TestReplay_ConfigFilesDriveThreshold(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"settings.yaml", "settings.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Persist settings with a custom threshold and read them back.
			cfgPath := filepath.Join(t.TempDir(), name)
			require.NoError(t, config.Save(cfgPath, &config.Config{Threshold: 50, FrontEnd: config.FrontEndReplay}))

			settings, err := config.Load(cfgPath)
			require.NoError(t, err)
			require.NoError(t, config.Validate(settings))
			require.Equal(t, 50, settings.Threshold)

			script := writeScript(t,
				"# compare two channels",
				"select 5",
				"show",
				"select 6",
				"threshold 55",
				"show",
				"apply",
			)

			var out bytes.Buffer

			err = replay.Run(quietContext(), &replay.Options{
				Settings:       settings,
				ScriptPath:     script,
				Output:         &out,
				Format:         replay.FormatJSON,
				Strict:         true,
				SessionOptions: []session.Option{session.WithDataset(fixedDataset(t, settings.Threshold))},
			})
			require.NoError(t, err)

			snaps := decodeSnapshots(t, out.Bytes())
			require.Len(t, snaps, 3)

			// 50 is not above the configured threshold.
			require.Equal(t, 5, snaps[0].Current.Number)
			require.False(t, snaps[0].Current.Suspicious)

			// 60 is above 50, and stays flagged until 55 is applied.
			require.Equal(t, 6, snaps[1].Current.Number)
			require.Equal(t, 5, snaps[1].Previous.Number)
			require.True(t, snaps[1].Current.Suspicious)
			require.True(t, snaps[1].PendingApply)
			require.Equal(t, 50, snaps[1].AppliedThreshold)

			require.False(t, snaps[2].PendingApply)
			require.Equal(t, 55, snaps[2].AppliedThreshold)
			require.True(t, snaps[2].Current.Suspicious)
			require.False(t, snaps[2].Previous.Suspicious)
		})
	}
}

// TestReplay_SeedIsReproducible replays the same script twice with one seed and expects identical output.
func TestReplay_SeedIsReproducible(t *testing.T) {
	t.Parallel()

	seed := uint64(42)
	script := writeScript(t, "select 1", "show", "next", "show", "prev", "prev", "show")

	runOnce := func() string {
		settings := config.Default()
		settings.Seed = &seed

		var out bytes.Buffer

		err := replay.Run(quietContext(), &replay.Options{
			Settings:   settings,
			ScriptPath: script,
			Output:     &out,
		})
		require.NoError(t, err)

		return out.String()
	}

	first := runOnce()
	require.NotEmpty(t, first)
	require.Equal(t, first, runOnce())
}

// TestReplay_NonStrictReportsAndContinues checks that bad lines are reported while good ones still apply.
func TestReplay_NonStrictReportsAndContinues(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "select 10", "selct 3", "select 3", "threshold 0")

	var out bytes.Buffer

	err := replay.Run(quietContext(), &replay.Options{
		Settings:       config.Default(),
		ScriptPath:     script,
		Output:         &out,
		SessionOptions: []session.Option{session.WithDataset(fixedDataset(t, channel.DefaultThreshold))},
	})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "error: line 1:")
	require.Contains(t, text, "error: line 2:")
	require.Contains(t, text, `did you mean "select"?`)
	require.Contains(t, text, "error: line 4:")
	require.Contains(t, text, "channel 3 value 30")
}

// TestFrontEnds_Agree drives the retained model with keys and replays the same commands, then compares the snapshots.
func TestFrontEnds_Agree(t *testing.T) {
	t.Parallel()

	ctx := quietContext()

	sess, err := session.New(ctx, config.Default(), session.WithDataset(fixedDataset(t, channel.DefaultThreshold)))
	require.NoError(t, err)

	var model tea.Model = retained.NewModel(ctx, sess, nil)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("7")},
		{Type: tea.KeyRight},
		{Type: tea.KeyRight},
		{Type: tea.KeyRunes, Runes: []rune("-")},
		{Type: tea.KeyRunes, Runes: []rune("-")},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune("c")},
		{Type: tea.KeyLeft},
	} {
		model, _ = model.Update(key)
	}

	script := writeScript(t,
		"select 7",
		"shift 1",
		"next",
		"threshold 74",
		"threshold 73",
		"apply",
		"clear current",
		"prev",
	)

	var out bytes.Buffer

	err = replay.Run(ctx, &replay.Options{
		Settings:       config.Default(),
		ScriptPath:     script,
		Output:         &out,
		Format:         replay.FormatJSON,
		Strict:         true,
		SessionOptions: []session.Option{session.WithDataset(fixedDataset(t, channel.DefaultThreshold))},
	})
	require.NoError(t, err)

	snaps := decodeSnapshots(t, out.Bytes())
	require.Len(t, snaps, 1)

	if diff := cmp.Diff(sess.Snapshot(), snaps[0]); diff != "" {
		t.Fatalf("front-ends disagree (-retained +replay):\n%s", diff)
	}
}
