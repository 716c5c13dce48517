package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
)

// Step is one parsed script line.
type Step struct {
	// Line is the one-based line number in the script.
	Line int
	// Command is nil for show steps.
	Command channel.Command
	// Show requests a snapshot print.
	Show bool
}

// maxSuggestDistance bounds the edit distance of "did you mean" hints.
const maxSuggestDistance = 2

// verbs lists the known verbs in the order hints are searched.
//
//nolint:gochecknoglobals // Read-only lookup table.
var verbs = []string{"select", "shift", "next", "prev", "clear", "threshold", "apply", "show"}

var (
	// errUnknownVerb is returned for a verb outside the grammar.
	errUnknownVerb = errors.New("unknown command")
	// errBadArguments is returned when a verb gets the wrong arguments.
	errBadArguments = errors.New("bad arguments")
)

// ParseLine parses one script line. ok is false for blank and comment lines.
func ParseLine(lineNo int, text string) (Step, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return Step{}, false, nil
	}

	fields := strings.Fields(text)
	verb, args := strings.ToLower(fields[0]), fields[1:]
	step := Step{Line: lineNo}

	var err error

	switch verb {
	case "select":
		var n int
		if n, err = intArg(verb, args); err == nil {
			step.Command = channel.SelectChannel{Number: n}
		}
	case "shift":
		var d int
		if d, err = intArg(verb, args); err == nil {
			step.Command = channel.ShiftChannel{Delta: d}
		}
	case "next", "prev":
		if err = noArgs(verb, args); err == nil {
			delta := 1
			if verb == "prev" {
				delta = -1
			}

			step.Command = channel.ShiftChannel{Delta: delta}
		}
	case "clear":
		if len(args) != 1 {
			err = fmt.Errorf("%w: clear takes current or previous", errBadArguments)

			break
		}

		row, ok := channel.ParseRow(args[0])
		if !ok {
			err = fmt.Errorf("%w: clear takes current or previous, got %q", errBadArguments, args[0])

			break
		}

		step.Command = channel.ClearRow{Row: row}
	case "threshold":
		var v int
		if v, err = intArg(verb, args); err == nil {
			step.Command = channel.SetThreshold{Value: v}
		}
	case "apply":
		if err = noArgs(verb, args); err == nil {
			step.Command = channel.ApplyThreshold{}
		}
	case "show":
		if err = noArgs(verb, args); err == nil {
			step.Show = true
		}
	default:
		err = unknownVerb(verb)
	}

	if err != nil {
		return Step{}, false, err
	}

	return step, true, nil
}

// intArg parses the single integer argument of verb.
func intArg(verb string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s takes one integer", errBadArguments, verb)
	}

	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s takes one integer, got %q", errBadArguments, verb, args[0])
	}

	return v, nil
}

// noArgs rejects any argument to verb.
func noArgs(verb string, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: %s takes no arguments", errBadArguments, verb)
	}

	return nil
}

// unknownVerb builds the error for verb with the closest known verb as a hint.
func unknownVerb(verb string) error {
	best, bestDistance := "", maxSuggestDistance+1

	for _, known := range verbs {
		if d := levenshtein.ComputeDistance(verb, known); d < bestDistance {
			best, bestDistance = known, d
		}
	}

	if best == "" {
		return fmt.Errorf("%w %q", errUnknownVerb, verb)
	}

	return fmt.Errorf("%w %q, did you mean %q?", errUnknownVerb, verb, best)
}
