// Package main provides the entry point for the devtools CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
)

// NewRootCmd creates the root command for devtools.
func NewRootCmd() *cobra.Command {
	version, _, _ := buildInfo()
	cmd := &cobra.Command{
		Use:   "devtools",
		Short: "Developer utility toolbox: hashes, JWTs, UUIDs, QR codes and converters",
		Long: `devtools bundles the small transformations developers reach for daily:
cryptographic digests, JWT decode/encode/verify, UUID generation and
inspection, stylized QR code rendering, and base64/URL conversion.

Everything runs locally. Results can be rendered as text, JSON,
Markdown, CSV or SQL, and each invocation is recorded in a local
history database unless --no-history is given.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("no-history", false, "Do not record this invocation or save preferences")
	cmd.PersistentFlags().String("data-dir", config.XDGDataDir(), "Directory holding the history database")

	// Add subcommands
	cmd.AddCommand(NewHashCmd())
	cmd.AddCommand(NewJWTCmd())
	cmd.AddCommand(NewUUIDCmd())
	cmd.AddCommand(NewQRCmd())
	cmd.AddCommand(NewEncodeCmd())
	cmd.AddCommand(NewDecodeCmd())
	cmd.AddCommand(NewURLCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
