package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
	"github.com/devtoolhub/devtools/internal/hashutil"
	"github.com/devtoolhub/devtools/internal/model"
)

// NewHashCmd creates the hash command.
func NewHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "Compute cryptographic digests of text, files or stdin",
		Long: `Hash computes lowercase hex digests of the given input.

By default SHA-1, SHA-256, SHA-384 and SHA-512 are computed concurrently.
--extended adds SHA3-256, SHA3-512 and BLAKE2b-256. Files are hashed in a
single streaming pass per file, several files at a time.

Examples:
  # Hash a string with the default algorithm set
  devtools hash "Hello World"

  # Hash stdin with a narrowed selection
  echo -n secret | devtools hash --algo sha256

  # Hash files concurrently and export the digests as CSV
  devtools hash --file a.iso --file b.iso --format csv -o digests.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHashCmd,
	}

	cmd.Flags().StringSliceP("algo", "a", nil,
		"Algorithms to compute (sha1, sha256, sha384, sha512, sha3-256, sha3-512, blake2b-256)")
	cmd.Flags().BoolP("extended", "x", false,
		"Add the SHA-3 and BLAKE2b algorithms to the selection")
	cmd.Flags().StringSlice("file", nil,
		"Hash the named file instead of text (repeatable)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of files hashed concurrently")
	cmd.Flags().StringP("format", "f", "text",
		"Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the given file instead of stdout")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .devtools in current or home directory)")

	return cmd
}

// hashPreferences is the last-used settings blob for the hash tool.
type hashPreferences struct {
	Algorithms []string `json:"algorithms"`
	Extended   bool     `json:"extended"`
}

// runHashCmd executes the hash command.
func runHashCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	extended, err := hashSelection(cmd, cfg)
	if err != nil {
		return err
	}
	cfg.BatchSize, _ = cmd.Flags().GetInt("batch")

	if err := cfg.Validate(); err != nil {
		return err
	}

	files, err := cmd.Flags().GetStringSlice("file")
	if err != nil {
		return err
	}

	var rep *model.Report
	var input string
	if len(files) > 0 {
		rep, err = hashFiles(cmd, cfg, files, logger)
		input = fmt.Sprintf("%d files", len(files))
	} else {
		rep, input, err = hashText(cmd, args, cfg.HashAlgorithms)
	}
	if err != nil {
		return err
	}

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "hash", input, summarizeDigests(rep))
	savePreferences(cmd, cfg, logger, "hash", hashPreferences{Algorithms: cfg.HashAlgorithms, Extended: extended})
	return nil
}

// hashSelection resolves cfg.HashAlgorithms. Explicit flags win, then the
// config file, then the saved preferences, then the built-in default.
func hashSelection(cmd *cobra.Command, cfg *config.Config) (bool, error) {
	algorithms, err := cmd.Flags().GetStringSlice("algo")
	if err != nil {
		return false, err
	}
	extended, err := cmd.Flags().GetBool("extended")
	if err != nil {
		return false, err
	}

	if !cmd.Flags().Changed("algo") {
		algorithms = nil
		switch {
		case len(cfg.File.Hash.Algorithms) > 0:
			algorithms = cfg.File.Hash.Algorithms
		default:
			var prefs hashPreferences
			if loadPreferences(cmd, cfg, "hash", &prefs) && len(prefs.Algorithms) > 0 {
				algorithms = prefs.Algorithms
				if !cmd.Flags().Changed("extended") {
					extended = prefs.Extended
				}
			}
		}
		if algorithms == nil {
			algorithms = config.DefaultHashAlgorithms()
		}
	}
	if !cmd.Flags().Changed("extended") && cfg.File.Hash.Extended {
		extended = true
	}

	if extended {
		algorithms = append(algorithms, config.ExtendedHashAlgorithms()...)
	}

	for _, name := range algorithms {
		if !hashutil.SupportedAlgorithm(name) {
			return false, fmt.Errorf("%w: %s", hashutil.ErrUnknownAlgorithm, name)
		}
	}
	cfg.HashAlgorithms = algorithms
	return extended, nil
}

// hashText digests a positional argument or stdin.
func hashText(cmd *cobra.Command, args []string, algorithms []string) (*model.Report, string, error) {
	text, input, err := readInput(cmd, args)
	if err != nil {
		return nil, "", err
	}

	digests, err := hashutil.SumString(cmd.Context(), text, algorithms)
	if err != nil {
		return nil, "", err
	}

	rep := model.NewReport("hash", input)
	for _, d := range digests {
		rep.AddField(d.Algorithm(), d.Hex())
	}
	return rep, input, nil
}

// hashFiles digests the named files concurrently, one record per
// file/algorithm pair. Per-file failures become records instead of
// aborting the batch.
func hashFiles(cmd *cobra.Command, cfg *config.Config, files []string, logger *slog.Logger) (*model.Report, error) {
	hasher := hashutil.NewBatchHasher(cfg.HashAlgorithms,
		hashutil.WithConcurrency(cfg.BatchSize),
		hashutil.WithLogger(logger),
	)

	results, err := hasher.HashFiles(cmd.Context(), files)
	if err != nil {
		return nil, err
	}

	rep := model.NewReport("hash", fmt.Sprintf("%d files", len(files)))
	rep.SetColumns("file", "size", "algorithm", "digest")
	for _, res := range results {
		if res.Err != nil {
			rep.AddRecord(res.Path, "", "error", res.Err.Error())
			continue
		}
		for _, d := range res.Digests {
			rep.AddRecord(res.Path, strconv.FormatInt(res.Size, 10), d.Algorithm(), d.Hex())
		}
	}
	return rep, nil
}

// summarizeDigests picks a short history line out of a hash report.
func summarizeDigests(rep *model.Report) string {
	if v, ok := rep.Field("sha256"); ok {
		return "sha256:" + v
	}
	if len(rep.Fields) > 0 {
		return rep.Fields[0].Name + ":" + rep.Fields[0].Value
	}
	return fmt.Sprintf("%d records", len(rep.Records))
}
