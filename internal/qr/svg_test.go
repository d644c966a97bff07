package qr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeSVG(t *testing.T) {
	t.Parallel()

	const content = "https://example.com"

	render := func(t *testing.T, opts Options) string {
		t.Helper()

		var buf bytes.Buffer
		if err := EncodeSVG(&buf, content, opts); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return buf.String()
	}

	t.Run("document structure", func(t *testing.T) {
		t.Parallel()

		svg := render(t, DefaultOptions())
		for _, want := range []string{
			`<svg xmlns="http://www.w3.org/2000/svg" width="512" height="512"`,
			`<rect width="100%" height="100%" fill="#ffffff"/>`,
			`<g fill="#000000">`,
			`</svg>`,
		} {
			if !strings.Contains(svg, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("rings use even-odd paths", func(t *testing.T) {
		t.Parallel()

		svg := render(t, DefaultOptions())
		if got := strings.Count(svg, `fill-rule="evenodd"`); got != 3 {
			t.Errorf("expected 3 finder ring paths, got %d", got)
		}
	})

	t.Run("circle modules emit circles", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Module = ModuleCircle
		opts.Center = CenterDot

		svg := render(t, opts)
		if !strings.Contains(svg, "<circle") {
			t.Error("expected circle elements")
		}
	})

	t.Run("hexagon modules emit polygons", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Module = ModuleHexagon

		svg := render(t, opts)
		if !strings.Contains(svg, "<polygon") {
			t.Error("expected polygon elements")
		}
	})

	t.Run("heart modules emit paths", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Module = ModuleHeart

		svg := render(t, opts)
		if !strings.Contains(svg, `<path d="M `) {
			t.Error("expected heart path elements")
		}
	})

	t.Run("empty content fails", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := EncodeSVG(&buf, "", DefaultOptions()); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})

	t.Run("bad background fails", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Background = "white"

		var buf bytes.Buffer
		if err := EncodeSVG(&buf, content, opts); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("expected ErrInvalidColor, got %v", err)
		}
	})
}
