// Package qr renders stylized QR codes. The module matrix comes from
// skip2/go-qrcode; this package redraws it with configurable vector
// shapes for data modules, finder-pattern rings and finder centers, and
// encodes the result as PNG or SVG.
package qr
