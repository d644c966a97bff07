package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/devtoolhub/devtools/internal/config"
)

// ModuleShape is the vector primitive used for data modules.
type ModuleShape int

const (
	// ModuleSquare fills the whole cell.
	ModuleSquare ModuleShape = iota

	// ModuleRounded is a square with rounded corners.
	ModuleRounded

	// ModuleCircle is a circle inscribed in the cell.
	ModuleCircle

	// ModuleDiamond is a square rotated 45 degrees.
	ModuleDiamond

	// ModuleStar is a five-pointed star.
	ModuleStar

	// ModuleHeart is a heart glyph.
	ModuleHeart

	// ModuleHexagon is a regular hexagon inscribed in the cell.
	ModuleHexagon
)

// ParseModuleShape converts a shape name into a ModuleShape.
func ParseModuleShape(name string) (ModuleShape, error) {
	switch strings.ToLower(name) {
	case "square", "":
		return ModuleSquare, nil
	case "rounded":
		return ModuleRounded, nil
	case "circle":
		return ModuleCircle, nil
	case "diamond":
		return ModuleDiamond, nil
	case "star":
		return ModuleStar, nil
	case "heart":
		return ModuleHeart, nil
	case "hexagon":
		return ModuleHexagon, nil
	default:
		return ModuleSquare, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
}

// String returns the shape name.
func (s ModuleShape) String() string {
	switch s {
	case ModuleRounded:
		return "rounded"
	case ModuleCircle:
		return "circle"
	case ModuleDiamond:
		return "diamond"
	case ModuleStar:
		return "star"
	case ModuleHeart:
		return "heart"
	case ModuleHexagon:
		return "hexagon"
	default:
		return "square"
	}
}

// FinderShape is the outline used for the three finder-pattern rings.
type FinderShape int

const (
	// FinderSquare is the standard square ring.
	FinderSquare FinderShape = iota

	// FinderRounded is a ring with rounded corners.
	FinderRounded

	// FinderCircle is a circular ring.
	FinderCircle
)

// ParseFinderShape converts a shape name into a FinderShape.
func ParseFinderShape(name string) (FinderShape, error) {
	switch strings.ToLower(name) {
	case "square", "":
		return FinderSquare, nil
	case "rounded":
		return FinderRounded, nil
	case "circle":
		return FinderCircle, nil
	default:
		return FinderSquare, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
}

// String returns the shape name.
func (s FinderShape) String() string {
	switch s {
	case FinderRounded:
		return "rounded"
	case FinderCircle:
		return "circle"
	default:
		return "square"
	}
}

// CenterShape is the glyph drawn in the middle of each finder pattern.
type CenterShape int

const (
	// CenterSquare fills the 3x3 center area.
	CenterSquare CenterShape = iota

	// CenterRounded is a rounded square.
	CenterRounded

	// CenterCircle is a circle filling the center area.
	CenterCircle

	// CenterDot is a smaller circle, half the center area.
	CenterDot
)

// ParseCenterShape converts a shape name into a CenterShape.
func ParseCenterShape(name string) (CenterShape, error) {
	switch strings.ToLower(name) {
	case "square", "":
		return CenterSquare, nil
	case "rounded":
		return CenterRounded, nil
	case "circle":
		return CenterCircle, nil
	case "dot":
		return CenterDot, nil
	default:
		return CenterSquare, fmt.Errorf("%w: %s", ErrUnknownShape, name)
	}
}

// String returns the shape name.
func (s CenterShape) String() string {
	switch s {
	case CenterRounded:
		return "rounded"
	case CenterCircle:
		return "circle"
	case CenterDot:
		return "dot"
	default:
		return "square"
	}
}

// Options describes one render call.
type Options struct {
	// Size is the output width and height in pixels.
	Size int

	// QuietZone is the blank border width in modules.
	QuietZone int

	// Level is the error-correction level: L, M, Q or H.
	Level string

	// Foreground is the module color as #rgb or #rrggbb.
	Foreground string

	// Background is the canvas color as #rgb or #rrggbb.
	Background string

	// Module is the data-module shape.
	Module ModuleShape

	// Finder is the finder-ring shape.
	Finder FinderShape

	// Center is the finder-center glyph shape.
	Center CenterShape
}

// DefaultOptions returns the options used when nothing is configured:
// a black-on-white symbol with medium error correction and plain square
// shapes.
func DefaultOptions() Options {
	return Options{
		Size:       config.DefaultQRSize,
		QuietZone:  config.DefaultQRQuietZone,
		Level:      config.DefaultQRLevel,
		Foreground: config.DefaultQRForeground,
		Background: config.DefaultQRBackground,
	}
}

// parseLevel maps an L/M/Q/H name onto the library recovery level.
func parseLevel(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "L":
		return qrcode.Low, nil
	case "M", "":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return qrcode.Medium, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
}

// parseHexColor decodes a #rgb or #rrggbb value into an opaque color.
func parseHexColor(s string) (color.RGBA, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(trimmed, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %s", ErrInvalidColor, s)
	}

	hex := trimmed[1:]
	if len(hex) == 3 {
		hex = string([]byte{
			hex[0], hex[0],
			hex[1], hex[1],
			hex[2], hex[2],
		})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %s", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %s", ErrInvalidColor, s)
	}

	return color.RGBA{
		R: uint8(v >> 16), //nolint:gosec // 24-bit value, each shift fits a byte
		G: uint8(v >> 8),  //nolint:gosec
		B: uint8(v),       //nolint:gosec
		A: 0xff,
	}, nil
}
