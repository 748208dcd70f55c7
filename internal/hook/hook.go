// Package hook manages the ccexport entry in Claude Code's settings.json,
// wiring `ccexport export` to run when a session ends.
package hook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookEvent is the Claude Code lifecycle event the export runs on.
const hookEvent = "SessionEnd"

// Entry is one command hook inside a matcher group.
type Entry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// Matcher groups hooks under a tool/event matcher expression.
type Matcher struct {
	Matcher string  `json:"matcher"`
	Hooks   []Entry `json:"hooks"`
}

// Status describes whether and how the hook is installed.
type Status struct {
	Installed bool
	Trigger   string
	Command   string
}

// DefaultSettingsPath returns the Claude Code settings file location.
func DefaultSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude", "settings.json"), nil
}

// settings round-trips settings.json without dropping keys ccexport does
// not know about. Hook matchers for other events pass through untouched.
type settings struct {
	raw   map[string]json.RawMessage
	hooks map[string][]Matcher
}

func loadSettings(path string) (*settings, error) {
	s := &settings{
		raw:   map[string]json.RawMessage{},
		hooks: map[string][]Matcher{},
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(content, &s.raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if hooksRaw, ok := s.raw["hooks"]; ok {
		if err := json.Unmarshal(hooksRaw, &s.hooks); err != nil {
			return nil, fmt.Errorf("failed to parse hooks section: %w", err)
		}
	}

	return s, nil
}

func saveSettings(path string, s *settings) error {
	if len(s.hooks) > 0 {
		hooksRaw, err := json.Marshal(s.hooks)
		if err != nil {
			return fmt.Errorf("failed to encode hooks section: %w", err)
		}
		s.raw["hooks"] = hooksRaw
	} else {
		delete(s.raw, "hooks")
	}

	content, err := json.MarshalIndent(s.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func isExportHook(m Matcher) bool {
	for _, h := range m.Hooks {
		if strings.Contains(h.Command, "ccexport") {
			return true
		}
	}
	return false
}

func withoutExportHooks(matchers []Matcher) []Matcher {
	var kept []Matcher
	for _, m := range matchers {
		if !isExportHook(m) {
			kept = append(kept, m)
		}
	}
	return kept
}

// Install adds (or replaces) the ccexport hook under the SessionEnd event.
func Install(settingsPath, command string) error {
	s, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	matchers := withoutExportHooks(s.hooks[hookEvent])
	matchers = append(matchers, Matcher{
		Matcher: "",
		Hooks:   []Entry{{Type: "command", Command: command}},
	})
	s.hooks[hookEvent] = matchers

	return saveSettings(settingsPath, s)
}

// Uninstall removes the ccexport hook. A missing settings file or hook is
// not an error.
func Uninstall(settingsPath string) error {
	s, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	matchers, ok := s.hooks[hookEvent]
	if !ok {
		return nil
	}

	kept := withoutExportHooks(matchers)
	if len(kept) == 0 {
		delete(s.hooks, hookEvent)
	} else {
		s.hooks[hookEvent] = kept
	}

	return saveSettings(settingsPath, s)
}

// GetStatus reports whether the ccexport hook is installed.
func GetStatus(settingsPath string) (Status, error) {
	s, err := loadSettings(settingsPath)
	if err != nil {
		return Status{}, err
	}

	for _, m := range s.hooks[hookEvent] {
		if !isExportHook(m) {
			continue
		}
		for _, h := range m.Hooks {
			if strings.Contains(h.Command, "ccexport") {
				return Status{
					Installed: true,
					Trigger:   fmt.Sprintf("%s (%q)", hookEvent, m.Matcher),
					Command:   h.Command,
				}, nil
			}
		}
	}

	return Status{Installed: false}, nil
}
