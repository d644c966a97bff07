package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values. These mirror the defaults of the original
// web tools where applicable.
const (
	// DefaultQRSize is the rendered QR image size in pixels. 512 keeps a
	// 25x25 symbol crisp at typical screen densities while staying small
	// enough to embed anywhere.
	DefaultQRSize = 512

	// DefaultQRQuietZone is the quiet-zone width in modules. The QR
	// standard requires 4; smaller values hurt scanner reliability.
	DefaultQRQuietZone = 4

	// DefaultQRLevel is the error-correction level. "M" (15% recovery) is
	// the common default; styled modules eat into the error budget, so
	// users applying aggressive shapes should raise this to Q or H.
	DefaultQRLevel = "M"

	// DefaultQRForeground and DefaultQRBackground are the module and
	// canvas colors: plain black on white scans most reliably.
	DefaultQRForeground = "#000000"
	DefaultQRBackground = "#ffffff"

	// DefaultUUIDVersion is the UUID version generated when none is
	// requested. v4 (random) is the safe general-purpose choice.
	DefaultUUIDVersion = 4

	// DefaultUUIDFormat is the output format for generated UUIDs.
	DefaultUUIDFormat = "standard"

	// DefaultJWTAlgorithm is the HMAC algorithm used when encoding tokens
	// without an explicit header.
	DefaultJWTAlgorithm = "HS256"

	// DefaultBatchSize is the number of files hashed concurrently. Hashing
	// is CPU-bound, so a small bound avoids thrashing while still
	// overlapping I/O.
	DefaultBatchSize = 4

	// DefaultHistoryLimit is the number of history entries listed when no
	// limit is requested.
	DefaultHistoryLimit = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "devtools"
)

// DefaultHashAlgorithms is the core algorithm set computed when the user
// does not narrow the selection. Order is presentation order.
func DefaultHashAlgorithms() []string {
	return []string{"sha1", "sha256", "sha384", "sha512"}
}

// ExtendedHashAlgorithms is the supplementary set enabled by --extended.
func ExtendedHashAlgorithms() []string {
	return []string{"sha3-256", "sha3-512", "blake2b-256"}
}

// Config holds all options for a devtools invocation. It is populated from
// CLI flags (optionally seeded from the config file) and passed through the
// application by dependency injection rather than global state.
//
// Design decision: one flat struct for the whole CLI rather than one per
// subcommand. Each subcommand reads only the fields it cares about, and a
// single Validate keeps the rules in one place.
type Config struct {
	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .devtools in the current directory, then in the
	// user's home directory, then for config.yaml in the XDG config
	// directory.
	ConfigFilePath string

	// File holds per-tool defaults loaded from the config file.
	File *File

	// OutputPath is the file the report is written to. When empty the
	// report goes to stdout. Parent directories are created automatically.
	OutputPath string

	// Format selects the report format: "text", "json", "markdown", "csv"
	// or "sql". Not every tool supports every format; Validate only checks
	// that the name is known, the tool rejects unsupported combinations.
	Format string

	// HashAlgorithms is the algorithm selection for the hash tool.
	HashAlgorithms []string

	// BatchSize is the number of files hashed concurrently.
	BatchSize int

	// UUIDVersion is the UUID version to generate (1-7, excluding 2).
	UUIDVersion int

	// UUIDCount is the number of UUIDs generated per invocation.
	UUIDCount int

	// UUIDFormat is the output format: standard, compact, urn or braced.
	UUIDFormat string

	// QRSize is the rendered image size in pixels.
	QRSize int

	// QRLevel is the error-correction level: L, M, Q or H.
	QRLevel string

	// NoHistory disables recording the invocation in the local history
	// database. History failures are never fatal either way.
	NoHistory bool

	// HistoryDir is the directory holding the history database. Defaults
	// to the XDG data directory.
	HistoryDir string
}

// NewConfig creates a Config with default values.
//
// Design decision: a constructor instead of zero values because most
// defaults are non-zero, and the constructor documents what they are.
func NewConfig() *Config {
	return &Config{
		Format:         "text",
		HashAlgorithms: DefaultHashAlgorithms(),
		BatchSize:      DefaultBatchSize,
		UUIDVersion:    DefaultUUIDVersion,
		UUIDCount:      1,
		UUIDFormat:     DefaultUUIDFormat,
		QRSize:         DefaultQRSize,
		QRLevel:        DefaultQRLevel,
		HistoryDir:     XDGDataDir(),
	}
}

// knownFormats is the set of report formats accepted by --format.
var knownFormats = map[string]bool{
	"text":     true,
	"json":     true,
	"markdown": true,
	"csv":      true,
	"sql":      true,
}

// Validate checks the configuration and returns the first problem found.
// It runs once after CLI parsing so each tool can assume a sane Config.
func (c *Config) Validate() error {
	if !knownFormats[c.Format] {
		return ErrUnknownFormat
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.UUIDCount <= 0 {
		return ErrInvalidCount
	}
	switch c.UUIDVersion {
	case 1, 3, 4, 5, 6, 7:
	default:
		return ErrInvalidUUIDVersion
	}
	if c.QRSize < 21 {
		return ErrInvalidQRSize
	}
	switch c.QRLevel {
	case "L", "M", "Q", "H":
	default:
		return ErrInvalidQRLevel
	}
	return nil
}

// XDGDataDir returns the XDG data directory for devtools.
// On Linux: ~/.local/share/devtools
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for devtools, the last
// stop of the FindConfigFile search.
// On Linux: ~/.config/devtools
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
