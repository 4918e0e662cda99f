package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up in the working and home directories.
const FileName = ".changereport.json"

// Config is the root configuration structure.
type Config struct {
	Report  ReportConfig `json:"report"`
	Git     GitConfig    `json:"git"`
	Filters FilterConfig `json:"filters"`
}

// ReportConfig bounds how much of the change set is printed.
type ReportConfig struct {
	MaxFiles     int  `json:"maxFiles"`     // Default: 3
	PreviewLines int  `json:"previewLines"` // Default: 5
	LineWidth    int  `json:"lineWidth"`    // Default: 60
	Banner       bool `json:"banner"`       // Default: true
}

// GitConfig selects how the version-control tool is reached.
type GitConfig struct {
	Binary  string `json:"binary"`  // Default: "git"
	Backend string `json:"backend"` // "cli" or "gogit"
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			MaxFiles:     3,
			PreviewLines: 5,
			LineWidth:    60,
			Banner:       true,
		},
		Git: GitConfig{
			Binary:  "git",
			Backend: "cli",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Report.MaxFiles <= 0 {
		return fmt.Errorf("report.maxFiles must be positive, got %d", c.Report.MaxFiles)
	}
	if c.Report.PreviewLines < 0 {
		return fmt.Errorf("report.previewLines must not be negative, got %d", c.Report.PreviewLines)
	}
	if c.Report.LineWidth <= 0 {
		return fmt.Errorf("report.lineWidth must be positive, got %d", c.Report.LineWidth)
	}
	switch c.Git.Backend {
	case "cli", "gogit":
	default:
		return fmt.Errorf("git.backend must be \"cli\" or \"gogit\", got %q", c.Git.Backend)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
