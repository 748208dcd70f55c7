package sessions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

// writeDatedSession writes a session log named like a real transcript
// (UUID.jsonl) and pins its mtime.
func writeDatedSession(t *testing.T, projectDir, content string, mtime time.Time) string {
	t.Helper()
	id := uuid.NewString()
	path := filepath.Join(projectDir, id+".jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write session file: %v", err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}
	return id
}

const normalSession = `{"type":"user","timestamp":"2026-01-12T09:00:00Z","message":{"content":"question"}}
{"type":"assistant","timestamp":"2026-01-12T09:00:10Z","message":{"content":[{"type":"text","text":"answer"}]}}
`

func TestFindSessionsMatchesDate(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "-Users-dev-myproject")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}

	target := time.Date(2026, 1, 12, 15, 0, 0, 0, time.Local)
	matched := writeDatedSession(t, projectDir, normalSession, target.Add(-3*time.Hour))
	writeDatedSession(t, projectDir, normalSession, target.AddDate(0, 0, -1))

	sessions := NewParser().FindSessions(root, target)

	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	s := sessions[0]
	if s.ID != matched {
		t.Errorf("expected session %s, got %s", matched, s.ID)
	}
	if s.ProjectPath != "-Users-dev-myproject" {
		t.Errorf("unexpected project path %q", s.ProjectPath)
	}
	if s.ProjectName != "myproject" {
		t.Errorf("unexpected project name %q", s.ProjectName)
	}
	if len(s.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(s.Messages))
	}
	if !s.StartTime.Equal(s.Messages[0].Timestamp) {
		t.Error("start time should be the first message timestamp")
	}
}

func TestFindSessionsExcludesSubagents(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "-Users-dev-proj")
	subagentDir := filepath.Join(projectDir, "subagents")
	if err := os.MkdirAll(subagentDir, 0o755); err != nil {
		t.Fatal(err)
	}

	target := time.Now()
	writeDatedSession(t, subagentDir, normalSession, target)

	sessions := NewParser().FindSessions(root, target)
	if len(sessions) != 0 {
		t.Fatalf("subagent transcripts must not be discovered, got %d sessions", len(sessions))
	}
}

func TestFindSessionsExcludesObserver(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "-Users-dev-proj")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}

	observer := `{"type":"user","timestamp":"2026-01-12T09:00:00Z","message":{"content":"You are a Claude-Mem, a specialized observer tool. Watch."}}
{"type":"assistant","timestamp":"2026-01-12T09:00:05Z","message":{"content":[{"type":"text","text":"ok"}]}}
`
	target := time.Now()
	writeDatedSession(t, projectDir, observer, target)

	sessions := NewParser().FindSessions(root, target)
	if len(sessions) != 0 {
		t.Fatalf("observer sessions must not be discovered, got %d sessions", len(sessions))
	}
}

// TestFindSessionsDropsEmptySessions: a file whose every record is filtered
// contributes no session.
func TestFindSessionsDropsEmptySessions(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "-Users-dev-proj")
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		t.Fatal(err)
	}

	filteredOnly := `{"type":"user","timestamp":"2026-01-12T09:00:00Z","message":{"content":"<system-reminder>noise</system-reminder>"}}
`
	target := time.Now()
	writeDatedSession(t, projectDir, filteredOnly, target)

	sessions := NewParser().FindSessions(root, target)
	if len(sessions) != 0 {
		t.Fatalf("sessions without exportable messages must be dropped, got %d", len(sessions))
	}
}

func TestFindSessionsSkipsMissingRoot(t *testing.T) {
	sessions := NewParser().FindSessions(filepath.Join(t.TempDir(), "does-not-exist"), time.Now())
	if len(sessions) != 0 {
		t.Fatalf("missing root should yield no sessions, got %d", len(sessions))
	}
}

func TestProjectNameFromPath(t *testing.T) {
	cases := []struct {
		encoded string
		want    string
	}{
		{"-Users-dev-myproject", "myproject"},
		{"-home-alice-code-tool", "tool"},
		{"plain", "plain"},
	}

	for _, c := range cases {
		if got := ProjectNameFromPath(c.encoded); got != c.want {
			t.Errorf("ProjectNameFromPath(%q) = %q, want %q", c.encoded, got, c.want)
		}
	}
}
