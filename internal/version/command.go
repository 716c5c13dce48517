package version

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand attaches a `version` subcommand to the provided root command.
// With --short it prints only the semantic version.
func AttachCobraVersionCommand(root *cobra.Command) {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long:  "Print version information including commit hash, build timestamp and Go runtime. Build metadata is injected via ldflags.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), Short())

				return
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(Lines(), "\n"))
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	root.AddCommand(cmd)
}
