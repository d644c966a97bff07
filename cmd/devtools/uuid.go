package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
	"github.com/devtoolhub/devtools/internal/model"
	"github.com/devtoolhub/devtools/internal/uuidkit"
)

// NewUUIDCmd creates the uuid command group.
func NewUUIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate, inspect and analyze UUIDs",
		Long: `UUID tools covering versions 1, 3, 4, 5, 6 and 7.

generate produces one or more UUIDs in the requested version and text
style. inspect decodes the fields embedded in an existing UUID. collision
estimates the birthday-bound collision probability for a batch size.`,
	}

	cmd.AddCommand(newUUIDGenerateCmd())
	cmd.AddCommand(newUUIDInspectCmd())
	cmd.AddCommand(newUUIDCollisionCmd())
	return cmd
}

// uuidPreferences is the last-used settings blob for the uuid tool.
type uuidPreferences struct {
	Version   int    `json:"version"`
	Style     string `json:"style"`
	Uppercase bool   `json:"uppercase"`
}

func newUUIDGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more UUIDs",
		Long: `Generate produces UUIDs of the requested version.

Versions 3 and 5 hash a --name within a --namespace (a UUID or one of
the aliases dns, url, oid, x500). Versions 1, 6 and 7 embed the current
time; 4 is fully random.

Examples:
  devtools uuid generate
  devtools uuid generate -V 7 -n 10
  devtools uuid generate -V 5 --namespace dns --name www.example.com
  devtools uuid generate --style compact -u`,
		RunE: runUUIDGenerateCmd,
	}

	cmd.Flags().IntP("version", "V", 0,
		fmt.Sprintf("UUID version: 1, 3, 4, 5, 6 or 7 (default %d)", config.DefaultUUIDVersion))
	cmd.Flags().IntP("count", "n", 1, "Number of UUIDs to generate")
	cmd.Flags().String("namespace", "", "Namespace for v3/v5: UUID or alias (dns, url, oid, x500)")
	cmd.Flags().String("name", "", "Name input for v3/v5")
	cmd.Flags().String("style", "", "Text style: standard, compact, urn or braced")
	cmd.Flags().BoolP("uppercase", "u", false, "Render hex digits in uppercase")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	cmd.Flags().StringP("config", "c", "", "Configuration file path")
	return cmd
}

func runUUIDGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	namespace, _ := cmd.Flags().GetString("namespace")
	name, _ := cmd.Flags().GetString("name")
	uppercase, _ := cmd.Flags().GetBool("uppercase")
	cfg.UUIDCount, _ = cmd.Flags().GetInt("count")

	// Flag > config file > saved preferences > built-in default.
	var prefs uuidPreferences
	havePrefs := loadPreferences(cmd, cfg, "uuid", &prefs)
	switch {
	case cmd.Flags().Changed("version"):
		cfg.UUIDVersion, _ = cmd.Flags().GetInt("version")
	case cfg.File.UUID.Version != 0:
		cfg.UUIDVersion = cfg.File.UUID.Version
	case havePrefs && prefs.Version != 0:
		cfg.UUIDVersion = prefs.Version
	}
	switch {
	case cmd.Flags().Changed("style"):
		cfg.UUIDFormat, _ = cmd.Flags().GetString("style")
	case cfg.File.UUID.Format != "":
		cfg.UUIDFormat = cfg.File.UUID.Format
	case havePrefs && prefs.Style != "":
		cfg.UUIDFormat = prefs.Style
	}
	if !cmd.Flags().Changed("uppercase") {
		switch {
		case cfg.File.UUID.Uppercase:
			uppercase = true
		case havePrefs:
			uppercase = prefs.Uppercase
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	outFormat, err := uuidkit.ParseFormat(cfg.UUIDFormat)
	if err != nil {
		return err
	}

	req := uuidkit.Request{Version: cfg.UUIDVersion, Namespace: namespace, Name: name}
	values, err := uuidkit.GenerateBatch(req, cfg.UUIDCount)
	if err != nil {
		return err
	}

	input := fmt.Sprintf("v%d x%d", cfg.UUIDVersion, cfg.UUIDCount)
	rep := model.NewReport("uuid", input)
	if cfg.UUIDCount == 1 {
		formatted, err := uuidkit.FormatUUID(values[0], outFormat, uppercase)
		if err != nil {
			return err
		}
		rep.AddField("uuid", formatted)
		rep.AddField("version", strconv.Itoa(cfg.UUIDVersion))
	} else {
		rep.SetColumns("seq", "uuid")
		for i, v := range values {
			formatted, err := uuidkit.FormatUUID(v, outFormat, uppercase)
			if err != nil {
				return err
			}
			rep.AddRecord(strconv.Itoa(i+1), formatted)
		}
	}

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "uuid", "generate "+input, values[0])
	savePreferences(cmd, cfg, logger, "uuid", uuidPreferences{
		Version:   cfg.UUIDVersion,
		Style:     outFormat.String(),
		Uppercase: uppercase,
	})
	return nil
}

func newUUIDInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <uuid>",
		Short: "Decode the fields embedded in a UUID",
		Long: `Inspect validates a UUID and reports its version, variant and the
timestamp, clock sequence and node fields for versions that carry them.
Compact 32-digit input is accepted.

Examples:
  devtools uuid inspect 017f22e2-79b0-7cc3-98c4-dc0c0c07398f`,
		Args: cobra.ExactArgs(1),
		RunE: runUUIDInspectCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runUUIDInspectCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	value := args[0]
	if len(value) == 32 && !uuidkit.IsValid(value) {
		expanded, err := uuidkit.ExpandCompact(value)
		if err == nil {
			value = expanded
		}
	}

	info, err := uuidkit.Parse(value)
	if err != nil {
		return err
	}

	rep := model.NewReport("uuid", args[0])
	rep.AddField("value", info.Value)
	rep.AddField("version", strconv.Itoa(info.Version))
	rep.AddField("variant", info.Variant)
	if info.Timestamp != nil {
		rep.AddField("timestamp", info.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z"))
	}
	if info.ClockSequence != nil {
		rep.AddField("clock_sequence", strconv.Itoa(*info.ClockSequence))
	}
	if info.Node != "" {
		rep.AddField("node", info.Node)
	}

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "uuid", "inspect "+args[0], fmt.Sprintf("v%d", info.Version))
	return nil
}

func newUUIDCollisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collision <count>",
		Short: "Estimate the collision probability for a batch of UUIDs",
		Long: `Collision applies the birthday bound to the version's random bit
space and reports the probability that a batch of the given size
contains at least one duplicate.

Examples:
  devtools uuid collision 1000000
  devtools uuid collision 1000000 -V 7`,
		Args: cobra.ExactArgs(1),
		RunE: runUUIDCollisionCmd,
	}

	cmd.Flags().IntP("version", "V", config.DefaultUUIDVersion, "UUID version: 1, 4, 6 or 7")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runUUIDCollisionCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.UUIDVersion, _ = cmd.Flags().GetInt("version")
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	count, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[0], err)
	}

	bits, err := uuidkit.RandomBits(cfg.UUIDVersion)
	if err != nil {
		return err
	}
	probability, err := uuidkit.CollisionProbability(count, cfg.UUIDVersion)
	if err != nil {
		return err
	}

	rep := model.NewReport("uuid", args[0])
	rep.AddField("version", strconv.Itoa(cfg.UUIDVersion))
	rep.AddField("count", strconv.FormatUint(count, 10))
	rep.AddField("random_bits", strconv.Itoa(bits))
	rep.AddField("probability", strconv.FormatFloat(probability, 'e', 6, 64))

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "uuid",
		fmt.Sprintf("collision v%d n=%d", cfg.UUIDVersion, count),
		strconv.FormatFloat(probability, 'e', 6, 64))
	return nil
}
