package qr

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
)

// finderSpan is the width of a finder pattern in modules.
const finderSpan = 7

// Render draws the styled QR symbol for content and returns the image.
func Render(content string, opts Options) (image.Image, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if opts.Size < 21 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, opts.Size)
	}
	if opts.QuietZone < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuietZone, opts.QuietZone)
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	fg, err := parseHexColor(opts.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}

	modules, err := matrix(content, level)
	if err != nil {
		return nil, err
	}

	n := len(modules)
	cell := float64(opts.Size) / float64(n+2*opts.QuietZone)
	origin := (float64(opts.Size) - cell*float64(n)) / 2

	dc := gg.NewContext(opts.Size, opts.Size)
	dc.SetColor(bg)
	dc.Clear()

	dc.SetColor(fg)
	for y, row := range modules {
		for x, set := range row {
			if !set || inFinder(x, y, n) {
				continue
			}
			drawModule(dc, opts.Module, origin+cell*float64(x), origin+cell*float64(y), cell)
		}
	}

	corners := [][2]int{{0, 0}, {n - finderSpan, 0}, {0, n - finderSpan}}
	for _, corner := range corners {
		fx := origin + cell*float64(corner[0])
		fy := origin + cell*float64(corner[1])
		drawCenter(dc, opts.Center, fx+2*cell, fy+2*cell, 3*cell)
	}

	// All vector drawing is done; only the ring composites touch the
	// canvas from here on.
	canvas, ok := dc.Image().(*image.RGBA)
	if !ok {
		// gg always backs its context with an RGBA image.
		rgba := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
		draw.Draw(rgba, rgba.Bounds(), dc.Image(), image.Point{}, draw.Src)
		canvas = rgba
	}

	for _, corner := range corners {
		fx := origin + cell*float64(corner[0])
		fy := origin + cell*float64(corner[1])
		drawFinderRing(canvas, opts.Finder, fx, fy, cell, fg)
	}

	return canvas, nil
}

// EncodePNG renders content and writes it as PNG.
func EncodePNG(w io.Writer, content string, opts Options) error {
	img, err := Render(content, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// matrix produces the module matrix for content with the library quiet
// zone trimmed off.
func matrix(content string, level qrcode.RecoveryLevel) ([][]bool, error) {
	code, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr content: %w", err)
	}
	modules := trimQuietZone(code.Bitmap())
	if len(modules) < finderSpan {
		return nil, fmt.Errorf("failed to encode qr content: degenerate %dx%d matrix", len(modules), len(modules))
	}
	return modules, nil
}

// trimQuietZone strips all-blank border rows and columns from a bitmap.
// The border width is discovered by scanning, not assumed, so a library
// change to the default quiet zone cannot skew the geometry.
func trimQuietZone(bitmap [][]bool) [][]bool {
	top, bottom := -1, -1
	for y, row := range bitmap {
		if !anySet(row) {
			continue
		}
		if top < 0 {
			top = y
		}
		bottom = y
	}
	if top < 0 {
		return nil
	}

	left, right := len(bitmap[0]), -1
	for _, row := range bitmap[top : bottom+1] {
		for x, set := range row {
			if !set {
				continue
			}
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
		}
	}

	out := make([][]bool, 0, bottom-top+1)
	for _, row := range bitmap[top : bottom+1] {
		out = append(out, row[left:right+1])
	}
	return out
}

func anySet(row []bool) bool {
	for _, set := range row {
		if set {
			return true
		}
	}
	return false
}

// inFinder reports whether module (x, y) falls inside one of the three
// 7x7 finder-pattern corners of an n-module symbol.
func inFinder(x, y, n int) bool {
	inTop := y < finderSpan
	inLeft := x < finderSpan
	return (inLeft && inTop) ||
		(x >= n-finderSpan && inTop) ||
		(inLeft && y >= n-finderSpan)
}

// drawModule fills one data cell at pixel (x, y) with the given shape.
func drawModule(dc *gg.Context, shape ModuleShape, x, y, cell float64) {
	cx := x + cell/2
	cy := y + cell/2

	switch shape {
	case ModuleRounded:
		dc.DrawRoundedRectangle(x, y, cell, cell, cell*0.3)
	case ModuleCircle:
		dc.DrawCircle(cx, cy, cell/2)
	case ModuleDiamond:
		dc.DrawRegularPolygon(4, cx, cy, cell/2, 0)
	case ModuleStar:
		starPath(dc, cx, cy, cell/2)
	case ModuleHeart:
		heartPath(dc, x, y, cell)
	case ModuleHexagon:
		dc.DrawRegularPolygon(6, cx, cy, cell/2, 0)
	default:
		dc.DrawRectangle(x, y, cell, cell)
	}
	dc.Fill()
}

// starPath traces a five-pointed star centered at (cx, cy).
func starPath(dc *gg.Context, cx, cy, r float64) {
	inner := r * 0.4
	for i := 0; i < 10; i++ {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		px := cx + radius*math.Cos(angle)
		py := cy + radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

// heartPath traces a heart filling the cell at (x, y).
func heartPath(dc *gg.Context, x, y, cell float64) {
	cx := x + cell/2
	top := y + cell*0.3
	bottom := y + cell*0.95

	dc.MoveTo(cx, bottom)
	dc.CubicTo(x-cell*0.1, y+cell*0.55, x+cell*0.1, y-cell*0.05, cx, top)
	dc.CubicTo(x+cell*0.9, y-cell*0.05, x+cell*1.1, y+cell*0.55, cx, bottom)
	dc.ClosePath()
}

// drawFinderRing composites one offscreen-built 7x7 ring onto the canvas
// at pixel (x, y).
func drawFinderRing(canvas *image.RGBA, shape FinderShape, x, y, cell float64, fg color.RGBA) {
	px := int(math.Round(finderSpan * cell))
	ring := finderRing(shape, px, cell, fg)

	left := int(math.Round(x))
	top := int(math.Round(y))
	draw.Draw(canvas, image.Rect(left, top, left+px, top+px), ring, image.Point{}, draw.Over)
}

// finderRing builds the ring offscreen: the outer shape is rendered as an
// alpha mask, then a one-cell-inset copy of the same shape is punched out
// of it (destination-out: each alpha value is scaled by the hole's
// inverse). The surviving mask tints a transparent RGBA with the
// foreground color.
func finderRing(shape FinderShape, px int, cell float64, fg color.RGBA) *image.RGBA {
	outer := finderMask(shape, px, 0)
	hole := finderMask(shape, px, cell)

	for i, a := range hole.Pix {
		outer.Pix[i] = uint8(uint16(outer.Pix[i]) * uint16(255-a) / 255) //nolint:gosec // product of two bytes over 255 fits a byte
	}

	ring := image.NewRGBA(image.Rect(0, 0, px, px))
	draw.DrawMask(ring, ring.Bounds(), image.NewUniform(fg), image.Point{}, outer, image.Point{}, draw.Src)
	return ring
}

// finderMask renders the finder shape, inset on all sides, as an alpha
// mask.
func finderMask(shape FinderShape, px int, inset float64) *image.Alpha {
	dc := gg.NewContext(px, px)
	size := float64(px) - 2*inset

	switch shape {
	case FinderRounded:
		dc.DrawRoundedRectangle(inset, inset, size, size, size*0.25)
	case FinderCircle:
		half := float64(px) / 2
		dc.DrawCircle(half, half, size/2)
	default:
		dc.DrawRectangle(inset, inset, size, size)
	}
	dc.SetRGB(0, 0, 0)
	dc.Fill()

	rgba := dc.Image().(*image.RGBA)
	mask := image.NewAlpha(rgba.Bounds())
	for i := range mask.Pix {
		mask.Pix[i] = rgba.Pix[i*4+3]
	}
	return mask
}

// drawCenter fills the finder-center glyph covering a span x span area
// at pixel (x, y).
func drawCenter(dc *gg.Context, shape CenterShape, x, y, span float64) {
	cx := x + span/2
	cy := y + span/2

	switch shape {
	case CenterRounded:
		dc.DrawRoundedRectangle(x, y, span, span, span*0.25)
	case CenterCircle:
		dc.DrawCircle(cx, cy, span/2)
	case CenterDot:
		dc.DrawCircle(cx, cy, span/4)
	default:
		dc.DrawRectangle(x, y, span, span)
	}
	dc.Fill()
}
