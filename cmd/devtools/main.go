// Package main provides the entry point for the devtools CLI.
//
// devtools is a developer utility toolbox: hash digests, JWT
// decode/encode/verify, UUID generation and inspection, stylized QR
// codes, and base64/URL converters. Everything runs locally.
//
// Usage:
//
//	devtools hash "Hello World"
//	devtools uuid generate -V 7 -n 5
//	devtools qr "https://example.com" -o code.png
//
// See --help for all available options.
package main

// main is the entry point for devtools.
func main() {
	Execute()
}
