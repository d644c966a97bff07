package main

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/codec"
	"github.com/devtoolhub/devtools/internal/model"
)

// NewURLCmd creates the url command group.
func NewURLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Normalize and inspect URLs",
	}

	cmd.AddCommand(newURLNormalizeCmd())
	return cmd
}

func newURLNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <url>",
		Short: "Canonicalize a URL",
		Long: `Normalize Unicode-normalizes a URL, converts an internationalized
host to its punycode ASCII form, and canonicalizes path and query
escaping. A URL without a scheme is treated as https.

Examples:
  devtools url normalize "https://www.EXAMPLE.com/a b"
  devtools url normalize bücher.example`,
		Args: cobra.ExactArgs(1),
		RunE: runURLNormalizeCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runURLNormalizeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	normalized, err := codec.NormalizeURL(args[0])
	if err != nil {
		return err
	}

	rep := model.NewReport("urlcodec", args[0])
	rep.AddField("normalized", normalized)

	if u, err := url.Parse(normalized); err == nil && u.Hostname() != "" {
		rep.AddField("host", u.Hostname())
		if unicodeHost, err := codec.DenormalizeHost(u.Hostname()); err == nil && unicodeHost != u.Hostname() {
			rep.AddField("unicode_host", unicodeHost)
		}
	}

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "urlcodec", "normalize "+args[0], normalized)
	return nil
}
