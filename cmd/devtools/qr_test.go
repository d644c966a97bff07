package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devtoolhub/devtools/internal/config"
)

// TestNewQRCmd tests the qr command creation.
func TestNewQRCmd(t *testing.T) {
	t.Parallel()

	cmd := NewQRCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "qr <content>" {
			t.Errorf("expected use 'qr <content>', got %q", cmd.Use)
		}
	})

	t.Run("has shape flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"module-shape", "finder-shape", "center-shape"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("defaults output to qrcode.png", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.DefValue != "qrcode.png" {
			t.Errorf("expected default 'qrcode.png', got %q", flag.DefValue)
		}
	})
}

// TestRunQRCmd tests QR rendering through the CLI.
func TestRunQRCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes a decodable PNG", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), "code.png")

		out, err := execute(t, "qr", "https://example.com",
			"-o", outputPath, "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "QR code written to") {
			t.Errorf("expected confirmation line, got %q", out)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read PNG: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("failed to decode PNG: %v", err)
		}
		if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
			t.Errorf("expected 512x512 image, got %v", img.Bounds())
		}
	})

	t.Run("infers SVG from extension", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), "code.svg")

		if _, err := execute(t, "qr", "https://example.com",
			"-o", outputPath, "--no-history"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read SVG: %v", err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("expected SVG document, got %q", string(data[:min(len(data), 40)]))
		}
	})

	t.Run("streams PNG to stdout with dash", func(t *testing.T) {
		t.Parallel()
		out, err := execute(t, "qr", "https://example.com",
			"-o", "-", "--no-history")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := png.Decode(strings.NewReader(out)); err != nil {
			t.Errorf("expected decodable PNG on stdout: %v", err)
		}
	})

	t.Run("honors size and shapes", func(t *testing.T) {
		t.Parallel()
		outputPath := filepath.Join(t.TempDir(), "styled.png")

		if _, err := execute(t, "qr", "styled",
			"--size", "256",
			"--module-shape", "circle",
			"--finder-shape", "rounded",
			"--center-shape", "dot",
			"--foreground", "#1a73e8",
			"-o", outputPath, "--no-history"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := os.Open(outputPath)
		if err != nil {
			t.Fatalf("failed to open PNG: %v", err)
		}
		defer f.Close()

		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("failed to decode PNG: %v", err)
		}
		if img.Bounds().Dx() != 256 {
			t.Errorf("expected 256px image, got %v", img.Bounds())
		}
	})

	t.Run("rejects unknown shape", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "qr", "x", "--module-shape", "triangle",
			"-o", filepath.Join(t.TempDir(), "x.png"), "--no-history")
		if err == nil {
			t.Error("expected error for unknown shape")
		}
	})

	t.Run("rejects invalid color", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "qr", "x", "--foreground", "red",
			"-o", filepath.Join(t.TempDir(), "x.png"), "--no-history")
		if err == nil {
			t.Error("expected error for invalid color")
		}
	})

	t.Run("rejects undersized output", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "qr", "x", "--size", "10",
			"-o", filepath.Join(t.TempDir(), "x.png"), "--no-history")
		if !errors.Is(err, config.ErrInvalidQRSize) {
			t.Errorf("expected ErrInvalidQRSize, got %v", err)
		}
	})

	t.Run("rejects unknown error-correction level", func(t *testing.T) {
		t.Parallel()
		_, err := execute(t, "qr", "x", "--level", "X",
			"-o", filepath.Join(t.TempDir(), "x.png"), "--no-history")
		if !errors.Is(err, config.ErrInvalidQRLevel) {
			t.Errorf("expected ErrInvalidQRLevel, got %v", err)
		}
	})

	t.Run("remembers shape preferences", func(t *testing.T) {
		t.Parallel()
		dataDir := t.TempDir()
		first := filepath.Join(t.TempDir(), "a.png")
		second := filepath.Join(t.TempDir(), "b.png")

		if _, err := execute(t, "qr", "first", "--size", "128",
			"-o", first, "--data-dir", dataDir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := execute(t, "qr", "second",
			"-o", second, "--data-dir", dataDir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := os.Open(second)
		if err != nil {
			t.Fatalf("failed to open PNG: %v", err)
		}
		defer f.Close()

		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("failed to decode PNG: %v", err)
		}
		if img.Bounds().Dx() != 128 {
			t.Errorf("expected remembered 128px size, got %v", img.Bounds())
		}
	})
}
