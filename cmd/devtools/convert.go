package main

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/codec"
	"github.com/devtoolhub/devtools/internal/model"
)

// NewEncodeCmd creates the encode command group.
func NewEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode text as base64 or a percent-encoded URL component",
	}

	cmd.AddCommand(newBase64EncodeCmd())
	cmd.AddCommand(newURLEncodeCmd())
	return cmd
}

// NewDecodeCmd creates the decode command group.
func NewDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode base64 or percent-encoded URL components",
	}

	cmd.AddCommand(newBase64DecodeCmd())
	cmd.AddCommand(newURLDecodeCmd())
	return cmd
}

func newBase64EncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64 [text]",
		Short: "Encode text as base64",
		Long: `Encode text (or stdin) as base64.

The standard variant uses +/ with padding; the url variant uses -_
without padding.

Examples:
  devtools encode base64 "Hello World"
  cat image.bin | devtools encode base64 --variant url`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBase64EncodeCmd,
	}

	cmd.Flags().String("variant", "standard", "Alphabet variant: standard or url")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runBase64EncodeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	text, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	variantName, _ := cmd.Flags().GetString("variant")
	variant, err := codec.ParseBase64Variant(variantName)
	if err != nil {
		return err
	}

	encoded := codec.Base64Encode([]byte(text), variant)

	rep := model.NewReport("base64", input)
	rep.AddField("variant", variant.String())
	rep.AddField("encoded", encoded)

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "base64", "encode "+input, encoded)
	return nil
}

func newBase64DecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64 [text]",
		Short: "Decode base64 text",
		Long: `Decode base64 text (or stdin). The alphabet and padding are sniffed,
so standard, URL-safe, padded and unpadded inputs all decode. Binary
output is reported as hex.

Examples:
  devtools decode base64 SGVsbG8gV29ybGQ=`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBase64DecodeCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runBase64DecodeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	text, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	decoded, err := codec.Base64Decode(text)
	if err != nil {
		return err
	}

	rep := model.NewReport("base64", input)
	var display string
	if utf8.Valid(decoded) {
		display = string(decoded)
		rep.AddField("decoded", display)
	} else {
		display = hex.EncodeToString(decoded)
		rep.AddField("decoded_hex", display)
	}

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "base64", "decode "+input, display)
	return nil
}

func newURLEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url [text]",
		Short: "Percent-encode a URL component",
		Long: `Percent-encode text (or stdin) as a single URL component. Spaces
become %20 and the input is Unicode-normalized first so visually
identical strings encode identically.

Examples:
  devtools encode url "a b&c=d"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runURLEncodeCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runURLEncodeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	text, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	encoded := codec.URLEncodeComponent(text)

	rep := model.NewReport("urlcodec", input)
	rep.AddField("encoded", encoded)

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "urlcodec", "encode "+input, encoded)
	return nil
}

func newURLDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url [text]",
		Short: "Percent-decode a URL component",
		Long: `Percent-decode text (or stdin). Both %20 and + are accepted for
spaces.

Examples:
  devtools decode url "a%20b%26c%3Dd"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runURLDecodeCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runURLDecodeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	text, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	decoded, err := codec.URLDecodeComponent(text)
	if err != nil {
		return err
	}

	rep := model.NewReport("urlcodec", input)
	rep.AddField("decoded", decoded)

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "urlcodec", "decode "+input, decoded)
	return nil
}
