package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
)

// Output formats accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// errUnknownFormat is returned for a format other than text or json.
var errUnknownFormat = fmt.Errorf("unknown output format, want %s or %s", FormatText, FormatJSON)

// writeSnapshot prints snap to w in the requested format.
func writeSnapshot(w io.Writer, format string, snap channel.Snapshot) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}

		return nil
	case FormatText, "":
		_, err := io.WriteString(w, FormatSnapshot(snap))

		return err
	default:
		return errUnknownFormat
	}
}

// FormatSnapshot renders snap as a short, stable text block.
func FormatSnapshot(snap channel.Snapshot) string {
	var b strings.Builder

	writeRow(&b, "previous", snap.Previous)
	writeRow(&b, "current", snap.Current)

	b.WriteString("threshold " + strconv.Itoa(snap.AppliedThreshold))

	if snap.PendingApply {
		b.WriteString(" (pending " + strconv.Itoa(snap.Threshold) + ")")
	}

	b.WriteString("\nchannels ")

	for i, ch := range snap.Channels {
		if i > 0 {
			b.WriteByte(' ')
		}

		label := strconv.Itoa(ch.Number)
		if ch.Suspicious {
			label += "!"
		}

		if ch.IsCurrent {
			label = "[" + label + "]"
		}

		b.WriteString(label)
	}

	b.WriteString("\n")

	return b.String()
}

// writeRow writes one previous/current line.
func writeRow(b *strings.Builder, name string, row channel.RowView) {
	fmt.Fprintf(b, "%-9s", name)

	if !row.Set {
		b.WriteString("-\n")

		return
	}

	fmt.Fprintf(b, "channel %s value %s suspicious %s\n",
		row.ChannelText(), row.ValueText(), row.SuspiciousText())
}
