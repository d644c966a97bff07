package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
	"github.com/devtoolhub/devtools/internal/history"
	"github.com/devtoolhub/devtools/internal/model"
)

// NewHistoryCmd creates the history command group.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and clear the local operation history",
		Long: `Every invocation is recorded in a local SQLite database under the
data directory (see --data-dir). list shows recent operations, newest
first; clear removes them.`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent operations, newest first",
		Long: `List shows recent operations from the history database.

Examples:
  devtools history list
  devtools history list --tool hash --limit 50 --format json`,
		RunE: runHistoryListCmd,
	}

	cmd.Flags().String("tool", "", "Only show operations for the named tool")
	cmd.Flags().Int("limit", config.DefaultHistoryLimit, "Maximum number of operations to show")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runHistoryListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tool, _ := cmd.Flags().GetString("tool")
	limit, _ := cmd.Flags().GetInt("limit")

	hdb, err := history.Open(cfg.HistoryDir, history.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no history database found in %s: %w", cfg.HistoryDir, err)
	}
	defer hdb.Close()

	ops, err := hdb.ListOperations(cmd.Context(), tool, limit)
	if err != nil {
		return err
	}

	input := "all tools"
	if tool != "" {
		input = tool
	}
	rep := model.NewReport("history", input)
	rep.SetColumns("id", "tool", "input", "output", "created_at")
	for _, op := range ops {
		rep.AddRecord(
			strconv.FormatInt(op.ID, 10),
			op.Tool,
			op.Input,
			op.Output,
			op.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return writeReport(cmd, cfg, rep)
}

func newHistoryClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete recorded operations",
		Long: `Clear deletes operations from the history database, either for one
tool or for everything.

Examples:
  devtools history clear
  devtools history clear --tool jwt`,
		RunE: runHistoryClearCmd,
	}

	cmd.Flags().String("tool", "", "Only clear operations for the named tool")
	return cmd
}

func runHistoryClearCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tool, _ := cmd.Flags().GetString("tool")

	hdb, err := history.Open(cfg.HistoryDir, history.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no history database found in %s: %w", cfg.HistoryDir, err)
	}
	defer hdb.Close()

	removed, err := hdb.ClearOperations(cmd.Context(), tool)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d operations\n", removed)
	return nil
}
