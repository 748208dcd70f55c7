package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func writeSession(t *testing.T, projectDir, content string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(projectDir, uuid.NewString()+".jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestFallbackProjectStats(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "-Users-dev-alpha")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}

	target := time.Date(2026, 1, 12, 12, 0, 0, 0, time.Local)
	content := `{"type":"user","timestamp":"2026-01-12T09:00:00Z","message":{"content":"q"}}
{"type":"assistant","timestamp":"2026-01-12T09:00:10Z","message":{"content":[{"type":"text","text":"a"}]}}
`
	writeSession(t, projectDir, content, target)
	writeSession(t, projectDir, content, target)
	writeSession(t, projectDir, content, target.AddDate(0, 0, -3))

	projects := FallbackProjectStats(root, target)

	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	p := projects[0]
	if p.Name != "alpha" {
		t.Errorf("unexpected project name %q", p.Name)
	}
	if p.SessionCount != 2 {
		t.Errorf("expected 2 sessions on the target date, got %d", p.SessionCount)
	}
	if p.LastActivity.IsZero() {
		t.Error("last activity should be set")
	}
}

func TestFallbackProjectStatsEmpty(t *testing.T) {
	projects := FallbackProjectStats(t.TempDir(), time.Now())
	if len(projects) != 0 {
		t.Fatalf("expected no projects, got %d", len(projects))
	}
}

// TestFetchProjectStats exercises the DuckDB path when the extension can be
// loaded in this environment.
func TestFetchProjectStats(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "-Users-dev-beta")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}

	target := time.Date(2026, 1, 12, 12, 0, 0, 0, time.Local)
	content := `{"type":"user","timestamp":"` + target.Format(time.RFC3339) + `","message":{"content":"q"}}
`
	writeSession(t, projectDir, content, target)

	projects, err := FetchProjectStats(root, target)
	if err != nil {
		t.Skipf("DuckDB unavailable in test environment: %v", err)
	}

	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	if projects[0].Name != "beta" {
		t.Errorf("unexpected project name %q", projects[0].Name)
	}
}
