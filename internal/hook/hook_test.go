package hook

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func settingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.json")
}

func TestInstallCreatesSettingsFile(t *testing.T) {
	path := settingsPath(t)

	if err := Install(path, "ccexport export"); err != nil {
		t.Fatalf("failed to install hook: %v", err)
	}

	status, err := GetStatus(path)
	if err != nil {
		t.Fatalf("failed to get status: %v", err)
	}
	if !status.Installed {
		t.Fatal("hook should be installed")
	}
	if status.Command != "ccexport export" {
		t.Errorf("unexpected command %q", status.Command)
	}
}

func TestInstallReplacesExistingHook(t *testing.T) {
	path := settingsPath(t)

	if err := Install(path, "ccexport export"); err != nil {
		t.Fatal(err)
	}
	if err := Install(path, "/usr/local/bin/ccexport export -d today"); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var parsed struct {
		Hooks map[string][]Matcher `json:"hooks"`
	}
	if err := json.Unmarshal(content, &parsed); err != nil {
		t.Fatalf("settings file should stay valid JSON: %v", err)
	}
	if n := len(parsed.Hooks["SessionEnd"]); n != 1 {
		t.Errorf("reinstall should replace, not append: found %d matchers", n)
	}

	status, err := GetStatus(path)
	if err != nil {
		t.Fatal(err)
	}
	if status.Command != "/usr/local/bin/ccexport export -d today" {
		t.Errorf("unexpected command %q", status.Command)
	}
}

// TestInstallPreservesForeignSettings: keys and hooks ccexport does not own
// must survive the round trip untouched.
func TestInstallPreservesForeignSettings(t *testing.T) {
	path := settingsPath(t)
	existing := `{
  "model": "opus",
  "hooks": {
    "PreToolUse": [
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "audit.sh"}]}
    ]
  }
}`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Install(path, "ccexport export"); err != nil {
		t.Fatalf("failed to install hook: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(content, &parsed); err != nil {
		t.Fatal(err)
	}
	if string(parsed["model"]) != `"opus"` {
		t.Errorf("foreign top-level key should be preserved, got %s", parsed["model"])
	}

	var hooks map[string][]Matcher
	if err := json.Unmarshal(parsed["hooks"], &hooks); err != nil {
		t.Fatal(err)
	}
	if len(hooks["PreToolUse"]) != 1 || hooks["PreToolUse"][0].Hooks[0].Command != "audit.sh" {
		t.Error("foreign hook should be preserved")
	}
	if len(hooks["SessionEnd"]) != 1 {
		t.Error("ccexport hook should be added under SessionEnd")
	}
}

func TestUninstall(t *testing.T) {
	path := settingsPath(t)

	if err := Install(path, "ccexport export"); err != nil {
		t.Fatal(err)
	}
	if err := Uninstall(path); err != nil {
		t.Fatalf("failed to uninstall: %v", err)
	}

	status, err := GetStatus(path)
	if err != nil {
		t.Fatal(err)
	}
	if status.Installed {
		t.Error("hook should be removed")
	}
}

func TestUninstallWithoutSettingsFile(t *testing.T) {
	if err := Uninstall(settingsPath(t)); err != nil {
		t.Errorf("uninstall without settings file should be a no-op, got %v", err)
	}
}

func TestStatusNotInstalled(t *testing.T) {
	status, err := GetStatus(settingsPath(t))
	if err != nil {
		t.Fatal(err)
	}
	if status.Installed {
		t.Error("missing settings file means not installed")
	}
}
