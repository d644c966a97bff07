package qr

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestRender(t *testing.T) {
	t.Parallel()

	const content = "https://example.com"

	black := color.RGBA{A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	t.Run("output matches requested size", func(t *testing.T) {
		t.Parallel()

		img, err := Render(content, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
			t.Errorf("expected 512x512 image, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("quiet zone is background", func(t *testing.T) {
		t.Parallel()

		img, err := Render(content, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, p := range []image.Point{{1, 1}, {510, 1}, {1, 510}, {510, 510}} {
			if got := img.At(p.X, p.Y); got != white {
				t.Errorf("expected background at %v, got %v", p, got)
			}
		}
	})

	t.Run("finder geometry with square shapes", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		img, err := Render(content, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// A version 1 symbol is 21 modules; sample module centers of the
		// top-left finder.
		const n = 21
		cell := float64(opts.Size) / float64(n+2*opts.QuietZone)
		origin := (float64(opts.Size) - cell*float64(n)) / 2
		at := func(mx, my float64) color.Color {
			return img.At(int(origin+cell*mx), int(origin+cell*my))
		}

		if got := at(0.5, 3.5); got != black {
			t.Errorf("expected ring at module column 0, got %v", got)
		}
		if got := at(1.5, 3.5); got != white {
			t.Errorf("expected punched hole at module column 1, got %v", got)
		}
		if got := at(3.5, 3.5); got != black {
			t.Errorf("expected center glyph at module column 3, got %v", got)
		}
		if got := at(5.5, 3.5); got != white {
			t.Errorf("expected punched hole at module column 5, got %v", got)
		}
		if got := at(6.5, 3.5); got != black {
			t.Errorf("expected ring at module column 6, got %v", got)
		}
	})

	t.Run("center glyphs reach all three corners", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		img, err := Render(content, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		const n = 21
		cell := float64(opts.Size) / float64(n+2*opts.QuietZone)
		origin := (float64(opts.Size) - cell*float64(n)) / 2

		for _, corner := range [][2]float64{{0, 0}, {n - 7, 0}, {0, n - 7}} {
			px := int(origin + cell*(corner[0]+3.5))
			py := int(origin + cell*(corner[1]+3.5))
			if got := img.At(px, py); got != black {
				t.Errorf("expected center glyph at corner %v, got %v", corner, got)
			}
		}
	})

	t.Run("custom colors are honored", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Foreground = "#0000ff"
		opts.Background = "#ff0000"

		img, err := Render(content, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := img.At(1, 1); got != (color.RGBA{R: 0xff, A: 0xff}) {
			t.Errorf("expected red background, got %v", got)
		}
	})

	t.Run("every shape renders", func(t *testing.T) {
		t.Parallel()

		shapes := []ModuleShape{
			ModuleSquare, ModuleRounded, ModuleCircle, ModuleDiamond,
			ModuleStar, ModuleHeart, ModuleHexagon,
		}
		for _, shape := range shapes {
			opts := DefaultOptions()
			opts.Module = shape
			opts.Finder = FinderCircle
			opts.Center = CenterDot

			if _, err := Render(content, opts); err != nil {
				t.Errorf("unexpected error for shape %s: %v", shape, err)
			}
		}
	})

	t.Run("empty content fails", func(t *testing.T) {
		t.Parallel()

		if _, err := Render("  ", DefaultOptions()); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("expected ErrEmptyContent, got %v", err)
		}
	})

	t.Run("undersized output fails", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Size = 10
		if _, err := Render(content, opts); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize, got %v", err)
		}
	})

	t.Run("negative quiet zone fails", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.QuietZone = -1
		if _, err := Render(content, opts); !errors.Is(err, ErrInvalidQuietZone) {
			t.Errorf("expected ErrInvalidQuietZone, got %v", err)
		}
	})

	t.Run("bad color fails", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Foreground = "black"
		if _, err := Render(content, opts); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("expected ErrInvalidColor, got %v", err)
		}
	})

	t.Run("bad level fails", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.Level = "Z"
		if _, err := Render(content, opts); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("expected ErrUnknownLevel, got %v", err)
		}
	})
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := EncodePNG(&buf, "hello", DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Errorf("expected 512x512 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestTrimQuietZone(t *testing.T) {
	t.Parallel()

	t.Run("strips blank border", func(t *testing.T) {
		t.Parallel()

		// 3x3 payload inside a 2-module blank border.
		const border, inner = 2, 3
		size := inner + 2*border
		bitmap := make([][]bool, size)
		for y := range bitmap {
			bitmap[y] = make([]bool, size)
		}
		bitmap[border][border] = true
		bitmap[border+1][border+1] = true
		bitmap[border+2][border+2] = true

		got := trimQuietZone(bitmap)
		if len(got) != inner || len(got[0]) != inner {
			t.Fatalf("expected %dx%d matrix, got %dx%d", inner, inner, len(got), len(got[0]))
		}
		if !got[0][0] || !got[1][1] || !got[2][2] {
			t.Errorf("payload shifted during trim: %v", got)
		}
	})

	t.Run("all-blank bitmap trims to nothing", func(t *testing.T) {
		t.Parallel()

		if got := trimQuietZone([][]bool{{false, false}, {false, false}}); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestInFinder(t *testing.T) {
	t.Parallel()

	const n = 21

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{name: "top-left corner", x: 0, y: 0, want: true},
		{name: "top-left edge", x: 6, y: 6, want: true},
		{name: "just outside top-left", x: 7, y: 6, want: false},
		{name: "top-right corner", x: n - 1, y: 0, want: true},
		{name: "top-right edge", x: n - 7, y: 6, want: true},
		{name: "just outside top-right", x: n - 8, y: 0, want: false},
		{name: "bottom-left corner", x: 0, y: n - 1, want: true},
		{name: "bottom-right is data", x: n - 1, y: n - 1, want: false},
		{name: "center is data", x: 10, y: 10, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inFinder(tt.x, tt.y, n); got != tt.want {
				t.Errorf("inFinder(%d, %d, %d) = %v, want %v", tt.x, tt.y, n, got, tt.want)
			}
		})
	}
}
