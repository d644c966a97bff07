package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
	"github.com/devtoolhub/devtools/internal/qr"
)

// NewQRCmd creates the qr command.
func NewQRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr <content>",
		Short: "Render a stylized QR code as PNG or SVG",
		Long: `QR encodes the given content and renders it with configurable module,
finder and center shapes and colors.

The output format is PNG or SVG, inferred from the output file extension
unless --format is given. "-o -" streams PNG bytes to stdout.

Module shapes:  square, rounded, circle, diamond, star, heart, hexagon
Finder shapes:  square, rounded, circle
Center shapes:  square, rounded, circle, dot

Examples:
  devtools qr "https://example.com"
  devtools qr "https://example.com" --module-shape circle --finder-shape rounded
  devtools qr "wifi config" --foreground "#1a73e8" -o wifi.svg`,
		Args: cobra.ExactArgs(1),
		RunE: runQRCmd,
	}

	cmd.Flags().Int("size", 0, fmt.Sprintf("Image size in pixels (default %d)", qr.DefaultOptions().Size))
	cmd.Flags().String("level", "", "Error-correction level: L, M, Q or H (default M)")
	cmd.Flags().Int("quiet-zone", qr.DefaultOptions().QuietZone, "Blank border width in modules")
	cmd.Flags().String("foreground", "", "Module color as #rgb or #rrggbb (default #000000)")
	cmd.Flags().String("background", "", "Canvas color as #rgb or #rrggbb (default #ffffff)")
	cmd.Flags().String("module-shape", "", "Data-module shape (default square)")
	cmd.Flags().String("finder-shape", "", "Finder-ring shape (default square)")
	cmd.Flags().String("center-shape", "", "Finder-center shape (default square)")
	cmd.Flags().StringP("format", "f", "", "Image format: png or svg (default: inferred from output)")
	cmd.Flags().StringP("output", "o", "qrcode.png", "Output file, or - for stdout")
	cmd.Flags().StringP("config", "c", "", "Configuration file path")
	return cmd
}

// qrPreferences is the last-used settings blob for the qr tool.
type qrPreferences struct {
	Size        int    `json:"size"`
	Level       string `json:"level"`
	ModuleShape string `json:"module_shape"`
	FinderShape string `json:"finder_shape"`
	CenterShape string `json:"center_shape"`
	Foreground  string `json:"foreground"`
	Background  string `json:"background"`
}

// runQRCmd executes the qr command.
func runQRCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	// Here --format names an image codec, not a report writer.
	imageFormat, _ := cmd.Flags().GetString("format")
	cfg.Format = "text"

	opts, err := resolveQROptions(cmd, cfg)
	if err != nil {
		return err
	}
	cfg.QRSize = opts.Size
	cfg.QRLevel = strings.ToUpper(strings.TrimSpace(opts.Level))

	if err := cfg.Validate(); err != nil {
		return err
	}

	if imageFormat == "" {
		imageFormat = "png"
		if strings.EqualFold(filepath.Ext(cfg.OutputPath), ".svg") {
			imageFormat = "svg"
		}
	}

	if err := renderQR(cmd, args[0], opts, imageFormat, cfg.OutputPath); err != nil {
		return err
	}

	if cfg.OutputPath != "-" {
		fmt.Fprintf(cmd.OutOrStdout(), "QR code written to %s\n", cfg.OutputPath)
	}

	recordHistory(cmd, cfg, logger, "qr", args[0], cfg.OutputPath)
	savePreferences(cmd, cfg, logger, "qr", qrPreferences{
		Size:        opts.Size,
		Level:       opts.Level,
		ModuleShape: opts.Module.String(),
		FinderShape: opts.Finder.String(),
		CenterShape: opts.Center.String(),
		Foreground:  opts.Foreground,
		Background:  opts.Background,
	})
	return nil
}

// resolveQROptions merges flags, config-file defaults and saved
// preferences into render options. Explicit flags win, then the config
// file, then preferences, then the built-in defaults.
func resolveQROptions(cmd *cobra.Command, cfg *config.Config) (qr.Options, error) {
	opts := qr.DefaultOptions()
	cf := cfg.File

	var prefs qrPreferences
	havePrefs := loadPreferences(cmd, cfg, "qr", &prefs)

	pick := func(flag, fileValue, prefValue string) string {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			return v
		}
		if fileValue != "" {
			return fileValue
		}
		if havePrefs && prefValue != "" {
			return prefValue
		}
		return ""
	}

	if cmd.Flags().Changed("size") {
		opts.Size, _ = cmd.Flags().GetInt("size")
	} else if cf.QR.Size != 0 {
		opts.Size = cf.QR.Size
	} else if havePrefs && prefs.Size != 0 {
		opts.Size = prefs.Size
	}
	opts.QuietZone, _ = cmd.Flags().GetInt("quiet-zone")

	if v := pick("level", cf.QR.Level, prefs.Level); v != "" {
		opts.Level = v
	}
	if v := pick("foreground", cf.QR.Foreground, prefs.Foreground); v != "" {
		opts.Foreground = v
	}
	if v := pick("background", cf.QR.Background, prefs.Background); v != "" {
		opts.Background = v
	}

	var err error
	if opts.Module, err = qr.ParseModuleShape(pick("module-shape", cf.QR.ModuleShape, prefs.ModuleShape)); err != nil {
		return qr.Options{}, err
	}
	if opts.Finder, err = qr.ParseFinderShape(pick("finder-shape", cf.QR.FinderShape, prefs.FinderShape)); err != nil {
		return qr.Options{}, err
	}
	if opts.Center, err = qr.ParseCenterShape(pick("center-shape", cf.QR.CenterShape, prefs.CenterShape)); err != nil {
		return qr.Options{}, err
	}
	return opts, nil
}

// renderQR encodes the symbol into the requested format and destination.
func renderQR(cmd *cobra.Command, content string, opts qr.Options, format, outputPath string) error {
	out := cmd.OutOrStdout()

	var file *os.File
	if outputPath != "-" {
		if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(outputPath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		file = f
		out = f
	}

	var err error
	switch format {
	case "png":
		err = qr.EncodePNG(out, content, opts)
	case "svg":
		err = qr.EncodeSVG(out, content, opts)
	default:
		err = fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
	}

	if file != nil {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}
	return err
}
