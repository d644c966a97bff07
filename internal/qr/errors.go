package qr

import "errors"

// ErrEmptyContent means there is nothing to encode.
var ErrEmptyContent = errors.New("qr content is empty")

// ErrUnknownShape means a shape name is not one of the supported
// module, finder or center shapes.
var ErrUnknownShape = errors.New("unknown shape")

// ErrUnknownLevel means the error-correction level is not L, M, Q or H.
var ErrUnknownLevel = errors.New("unknown error correction level")

// ErrInvalidColor means a color is not a #rgb or #rrggbb hex value.
var ErrInvalidColor = errors.New("invalid hex color")

// ErrInvalidSize means the output size is too small to render a symbol.
var ErrInvalidSize = errors.New("invalid output size")

// ErrInvalidQuietZone means the quiet-zone width is negative.
var ErrInvalidQuietZone = errors.New("invalid quiet zone width")
