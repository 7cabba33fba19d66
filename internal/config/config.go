// Package config loads the optional YAML run configuration for imgs2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	imgs2pdf "github.com/j-hc/yet-another-imgs2pdf"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
)

// maxConfigSize bounds how much YAML the parser accepts.
const maxConfigSize = 1 << 20 // 1MB

// Config holds the run configuration. A YAML file supplies defaults;
// explicitly set CLI flags override individual fields afterwards.
type Config struct {
	DPI         float64 `yaml:"dpi"`         // resolution for page size, dots per inch
	ScaleWidth  uint    `yaml:"scaleWidth"`  // resize bound width in pixels
	ScaleHeight uint    `yaml:"scaleHeight"` // resize bound height in pixels
	AutoSort    bool    `yaml:"autoSort"`    // sort input paths before processing
	Title       string  `yaml:"title"`       // document title metadata
	Output      string  `yaml:"output"`      // default output PDF path
	Dir         string  `yaml:"dir"`         // default input directory
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		DPI:         imgs2pdf.DefaultDPI,
		ScaleWidth:  imgs2pdf.DefaultScaleWidth,
		ScaleHeight: imgs2pdf.DefaultScaleHeight,
	}
}

// Load reads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Fields absent from the file keep their defaults. Unknown fields are
// rejected so typos surface instead of being silently ignored.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d)", ErrConfigTooLarge, configPath, len(data), maxConfigSize)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/imgs2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "imgs2pdf", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
