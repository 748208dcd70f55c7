// Package config loads and stores the ccexport configuration, a small TOML
// file under the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Config is the ccexport configuration.
type Config struct {
	OutputDir        string `toml:"output_dir"`
	FilenameFormat   string `toml:"filename_format"`
	GitCommit        bool   `toml:"git_commit"`
	ProjectMode      string `toml:"project_mode"`
	SpeakerUser      string `toml:"speaker_user"`
	SpeakerAssistant string `toml:"speaker_assistant"`
}

// Project grouping modes.
const (
	ModeMerge    = "merge"    // one file per date across all projects
	ModeSeparate = "separate" // one file per date per project subdirectory
)

// Default returns the defaults applied to missing fields. OutputDir has no
// default; it must be configured.
func Default() Config {
	return Config{
		FilenameFormat:   "yyyy-MM-dd",
		ProjectMode:      ModeMerge,
		SpeakerUser:      "👤",
		SpeakerAssistant: "🤖",
	}
}

// DefaultPath returns the default config file location, following the
// platform config directory convention.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "ccexport", "config.toml")
}

// Path resolves the config file path: explicit flag value, then the
// CCEXPORT_CONFIG environment variable, then the default location.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CCEXPORT_CONFIG"); env != "" {
		return env
	}
	return DefaultPath()
}

// Load reads the config file and fills missing fields with defaults.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ProjectMode != ModeMerge && cfg.ProjectMode != ModeSeparate {
		return Config{}, fmt.Errorf("invalid project_mode %q: must be %q or %q", cfg.ProjectMode, ModeMerge, ModeSeparate)
	}

	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// dateTokens maps the date-fns style tokens used in filename_format to Go
// reference layout fragments. The config keeps the original pattern syntax
// so existing config files stay valid.
var dateTokens = []struct{ from, to string }{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MM", "01"},
	{"dd", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// DateLayout translates a date-fns style pattern (e.g. "yyyy-MM-dd") into a
// Go time layout.
func DateLayout(pattern string) string {
	layout := pattern
	for _, t := range dateTokens {
		layout = strings.ReplaceAll(layout, t.from, t.to)
	}
	return layout
}
