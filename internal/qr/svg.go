package qr

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
)

// EncodeSVG renders content as an SVG document with the same geometry as
// the PNG renderer. Finder rings are single paths whose hole falls out of
// the even-odd fill rule.
func EncodeSVG(w io.Writer, content string, opts Options) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if opts.Size < 21 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, opts.Size)
	}
	if opts.QuietZone < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuietZone, opts.QuietZone)
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}
	fg, err := parseHexColor(opts.Foreground)
	if err != nil {
		return err
	}
	bg, err := parseHexColor(opts.Background)
	if err != nil {
		return err
	}

	modules, err := matrix(content, level)
	if err != nil {
		return err
	}

	n := len(modules)
	cell := float64(opts.Size) / float64(n+2*opts.QuietZone)
	origin := (float64(opts.Size) - cell*float64(n)) / 2

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Size, opts.Size, opts.Size, opts.Size)
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hexColor(bg))

	fmt.Fprintf(&sb, `<g fill="%s">`+"\n", hexColor(fg))
	for y, row := range modules {
		for x, set := range row {
			if !set || inFinder(x, y, n) {
				continue
			}
			sb.WriteString(moduleElement(opts.Module, origin+cell*float64(x), origin+cell*float64(y), cell))
			sb.WriteByte('\n')
		}
	}

	for _, corner := range [][2]int{{0, 0}, {n - finderSpan, 0}, {0, n - finderSpan}} {
		fx := origin + cell*float64(corner[0])
		fy := origin + cell*float64(corner[1])
		sb.WriteString(ringElement(opts.Finder, fx, fy, finderSpan*cell, cell))
		sb.WriteByte('\n')
		sb.WriteString(centerElement(opts.Center, fx+2*cell, fy+2*cell, 3*cell))
		sb.WriteByte('\n')
	}
	sb.WriteString("</g>\n</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// moduleElement emits one data module as an SVG element.
func moduleElement(shape ModuleShape, x, y, cell float64) string {
	cx := x + cell/2
	cy := y + cell/2

	switch shape {
	case ModuleRounded:
		return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"/>`,
			x, y, cell, cell, cell*0.3)
	case ModuleCircle:
		return fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>`, cx, cy, cell/2)
	case ModuleDiamond:
		return polygonElement(regularPolygon(4, cx, cy, cell/2))
	case ModuleStar:
		return polygonElement(starPoints(cx, cy, cell/2))
	case ModuleHeart:
		return fmt.Sprintf(
			`<path d="M %.2f,%.2f C %.2f,%.2f %.2f,%.2f %.2f,%.2f C %.2f,%.2f %.2f,%.2f %.2f,%.2f Z"/>`,
			cx, y+cell*0.95,
			x-cell*0.1, y+cell*0.55, x+cell*0.1, y-cell*0.05, cx, y+cell*0.3,
			x+cell*0.9, y-cell*0.05, x+cell*1.1, y+cell*0.55, cx, y+cell*0.95)
	case ModuleHexagon:
		return polygonElement(regularPolygon(6, cx, cy, cell/2))
	default:
		return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`,
			x, y, cell, cell)
	}
}

// regularPolygon returns n vertices with the first one pointing up,
// matching the raster renderer's orientation.
func regularPolygon(n int, cx, cy, r float64) [][2]float64 {
	points := make([][2]float64, 0, n)
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		points = append(points, [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return points
}

// starPoints returns the ten alternating outer/inner star vertices.
func starPoints(cx, cy, r float64) [][2]float64 {
	inner := r * 0.4
	points := make([][2]float64, 0, 10)
	for i := 0; i < 10; i++ {
		radius := r
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		points = append(points, [2]float64{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)})
	}
	return points
}

func polygonElement(points [][2]float64) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, fmt.Sprintf("%.2f,%.2f", p[0], p[1]))
	}
	return fmt.Sprintf(`<polygon points="%s"/>`, strings.Join(parts, " "))
}

// ringElement emits a finder ring as one even-odd path: the outer shape
// subpath followed by the one-cell-inset hole subpath.
func ringElement(shape FinderShape, x, y, size, cell float64) string {
	outer := ringSubpath(shape, x, y, size)
	hole := ringSubpath(shape, x+cell, y+cell, size-2*cell)
	return fmt.Sprintf(`<path fill-rule="evenodd" d="%s %s"/>`, outer, hole)
}

// ringSubpath traces one closed finder outline of the given size at
// (x, y).
func ringSubpath(shape FinderShape, x, y, size float64) string {
	switch shape {
	case FinderRounded:
		r := size * 0.25
		edge := size - 2*r
		return fmt.Sprintf(
			"M %.2f,%.2f h %.2f a %.2f,%.2f 0 0 1 %.2f,%.2f v %.2f a %.2f,%.2f 0 0 1 %.2f,%.2f h %.2f a %.2f,%.2f 0 0 1 %.2f,%.2f v %.2f a %.2f,%.2f 0 0 1 %.2f,%.2f Z",
			x+r, y, edge,
			r, r, r, r, edge,
			r, r, -r, r, -edge,
			r, r, -r, -r, -edge,
			r, r, r, -r)
	case FinderCircle:
		r := size / 2
		cx := x + r
		cy := y + r
		return fmt.Sprintf(
			"M %.2f,%.2f a %.2f,%.2f 0 1 0 %.2f,0 a %.2f,%.2f 0 1 0 %.2f,0 Z",
			cx-r, cy, r, r, 2*r, r, r, -2*r)
	default:
		return fmt.Sprintf("M %.2f,%.2f h %.2f v %.2f h %.2f Z", x, y, size, size, -size)
	}
}

// centerElement emits the finder-center glyph.
func centerElement(shape CenterShape, x, y, span float64) string {
	cx := x + span/2
	cy := y + span/2

	switch shape {
	case CenterRounded:
		return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f"/>`,
			x, y, span, span, span*0.25)
	case CenterCircle:
		return fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>`, cx, cy, span/2)
	case CenterDot:
		return fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f"/>`, cx, cy, span/4)
	default:
		return fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`,
			x, y, span, span)
	}
}
