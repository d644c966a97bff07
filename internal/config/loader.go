package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".devtools"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File holds per-tool defaults loaded from the YAML configuration file.
// Every section is optional; zero values mean "use the built-in default".
type File struct {
	Hash HashDefaults `yaml:"hash"`
	UUID UUIDDefaults `yaml:"uuid"`
	QR   QRDefaults   `yaml:"qr"`
	JWT  JWTDefaults  `yaml:"jwt"`
}

// HashDefaults configures the hash tool.
type HashDefaults struct {
	// Algorithms narrows the default algorithm selection.
	Algorithms []string `yaml:"algorithms"`

	// Extended enables the SHA-3/BLAKE2b set by default.
	Extended bool `yaml:"extended"`
}

// UUIDDefaults configures the uuid tool.
type UUIDDefaults struct {
	// Version is the default UUID version (1, 3, 4, 5, 6 or 7).
	Version int `yaml:"version"`

	// Format is the default output format.
	Format string `yaml:"format"`

	// Uppercase prints hex digits in upper case.
	Uppercase bool `yaml:"uppercase"`
}

// QRDefaults configures the qr tool.
type QRDefaults struct {
	// Size is the rendered image size in pixels.
	Size int `yaml:"size"`

	// Level is the error-correction level (L, M, Q or H).
	Level string `yaml:"level"`

	// ModuleShape is the default data-module shape.
	ModuleShape string `yaml:"module-shape"`

	// FinderShape is the default finder-frame shape.
	FinderShape string `yaml:"finder-shape"`

	// CenterShape is the default finder-center shape.
	CenterShape string `yaml:"center-shape"`

	// Foreground and Background are #rgb or #rrggbb colors.
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

// JWTDefaults configures the jwt tool.
type JWTDefaults struct {
	// Algorithm is the default HMAC algorithm (HS256, HS384 or HS512).
	Algorithm string `yaml:"algorithm"`
}

// LoadConfigFile loads per-tool defaults from a YAML file.
// If the file does not exist it returns ErrConfigNotFound; callers decide
// whether that is fatal based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// XDGConfigFile is the configuration file name inside the XDG config
// directory, where the dotfile convention would be redundant.
const XDGConfigFile = "config.yaml"

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .devtools in the current directory
// 3. Look for .devtools in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
