package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
	"github.com/devtoolhub/devtools/internal/history"
	"github.com/devtoolhub/devtools/internal/log"
	"github.com/devtoolhub/devtools/internal/model"
	"github.com/devtoolhub/devtools/internal/report"
)

// buildConfig assembles the Config for one invocation: built-in defaults,
// then the config file, then CLI flags, in ascending precedence. Commands
// fill in their tool-specific fields afterwards and run Validate before
// doing any work.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	rootFlags := cmd.Root().PersistentFlags()
	if v, err := rootFlags.GetBool("verbose"); err == nil {
		cfg.Verbose = v
	}
	if dir, err := rootFlags.GetString("data-dir"); err == nil && dir != "" {
		cfg.HistoryDir = dir
	}
	if v, err := rootFlags.GetBool("no-history"); err == nil {
		cfg.NoHistory = v
	}

	// Not every subcommand carries every common flag; a missing lookup
	// errors and leaves the default in place.
	if path, err := cmd.Flags().GetString("config"); err == nil {
		cfg.ConfigFilePath = path
	}
	cf, err := loadFileDefaults(cfg.ConfigFilePath)
	if err != nil {
		return nil, err
	}
	cfg.File = cf

	if v, err := cmd.Flags().GetString("format"); err == nil && v != "" {
		cfg.Format = v
	}
	if v, err := cmd.Flags().GetString("output"); err == nil {
		cfg.OutputPath = v
	}
	return cfg, nil
}

// setupLogger creates the structured logger for a command invocation.
// Sensitive values (secrets, tokens) are masked by the secure handler.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return log.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
}

// newReportWriter selects the report writer for a format name.
func newReportWriter(format string, out io.Writer) (report.Writer, error) {
	switch format {
	case "text", "":
		return report.NewTextWriter(out), nil
	case "json":
		return report.NewJSONWriter(out, report.WithPrettyPrint()), nil
	case "markdown":
		return report.NewMarkdownWriter(out), nil
	case "csv":
		return report.NewCSVWriter(out), nil
	case "sql":
		return report.NewSQLWriter(out), nil
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
	}
}

// writeReport renders the report in the configured format to the configured
// output path, or to the command's stdout when the path is empty. Parent
// directories are created as needed.
func writeReport(cmd *cobra.Command, cfg *config.Config, rep *model.Report) error {
	out := io.Writer(cmd.OutOrStdout())

	var file *os.File
	if cfg.OutputPath != "" {
		if dir := filepath.Dir(cfg.OutputPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		// Reports can carry digests or tokens derived from secrets.
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		file = f
		out = f
	}

	writer, err := newReportWriter(cfg.Format, out)
	if err != nil {
		if file != nil {
			_ = file.Close()
		}
		return err
	}

	if _, err := writer.Write(rep); err != nil {
		if file != nil {
			_ = file.Close()
		}
		return fmt.Errorf("failed to write report: %w", err)
	}

	if file != nil {
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.OutputPath)
	}
	return nil
}

// recordHistory appends one operation to the local history database.
// History failures are logged, never fatal: losing a log line must not
// fail the operation that produced it.
func recordHistory(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, tool, input, output string) {
	if cfg.NoHistory {
		return
	}

	hdb, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer hdb.Close()

	op := &history.Operation{
		Tool:   tool,
		Input:  truncate(input, 256),
		Output: truncate(output, 256),
	}
	if _, err := hdb.RecordOperation(cmd.Context(), op); err != nil {
		logger.Warn("failed to record history", "error", err)
	}
}

// savePreferences stores a tool's last-used settings so the next
// invocation can default to them. Failures are logged, never fatal.
func savePreferences(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, tool string, settings any) {
	if cfg.NoHistory {
		return
	}

	hdb, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer hdb.Close()

	if err := hdb.SavePreferences(cmd.Context(), tool, settings); err != nil {
		logger.Warn("failed to save preferences", "error", err)
	}
}

// loadPreferences restores a tool's last-used settings into dst. Returns
// false when history is disabled or nothing is stored.
func loadPreferences(cmd *cobra.Command, cfg *config.Config, tool string, dst any) bool {
	if cfg.NoHistory {
		return false
	}

	hdb, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
	if err != nil {
		return false
	}
	defer hdb.Close()

	found, err := hdb.LoadPreferences(cmd.Context(), tool, dst)
	return err == nil && found
}

// loadFileDefaults loads per-tool defaults from the config file. An
// explicitly given path must exist; an absent implicit file yields empty
// defaults.
func loadFileDefaults(path string) (*config.File, error) {
	found := config.FindConfigFile(path)
	if found == "" {
		if path != "" {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return &config.File{}, nil
	}

	cf, err := config.LoadConfigFile(found)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	return cf, nil
}

// readInput resolves the tool input: the positional argument when given,
// otherwise everything from stdin.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) > 0 {
		return args[0], truncate(args[0], 128), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// truncate shortens s to at most n bytes for history and display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
