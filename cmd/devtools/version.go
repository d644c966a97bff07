package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildInfo resolves version, commit hash and build date.
// Priority: ldflags > debug.ReadBuildInfo > placeholder.
func buildInfo() (string, string, string) {
	v, c, d := version, commit, date

	if info, ok := debug.ReadBuildInfo(); ok {
		if v == "" && info.Main.Version != "" {
			v = info.Main.Version
		}
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if c == "" {
					c = setting.Value
					if len(c) > 7 {
						c = c[:7]
					}
				}
			case "vcs.time":
				if d == "" {
					d = setting.Value
				}
			}
		}
	}

	if v == "" {
		v = "(devel)"
	}
	if c == "" {
		c = "unknown"
	}
	if d == "" {
		d = "unknown"
	}
	return v, c, d
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of devtools.`,
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := buildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "devtools version %s\n", v)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", c)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", d)
		},
	}
}
