package sessions

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/strrl/ccexport/internal/logger"
	"github.com/strrl/ccexport/pkg/models"
)

// loadWorkers bounds concurrent session file loads. Ordering is not
// load-bearing: the renderer sorts sessions by start time.
const loadWorkers = 4

// ProjectNameFromPath derives the display name from an encoded project
// directory name: the last "-"-delimited segment.
func ProjectNameFromPath(encoded string) string {
	parts := strings.Split(encoded, "-")
	if last := parts[len(parts)-1]; last != "" {
		return last
	}
	return encoded
}

// sameLocalDate compares calendar dates in local time; time of day and
// offset are irrelevant.
func sameLocalDate(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type candidate struct {
	path        string
	id          string
	projectPath string
}

// FindSessions scans the projects root for sessions whose log files were
// last modified on the given calendar date and loads them. Unreadable
// directories and files are skipped; a session yielding zero messages does
// not appear in the result.
func (p *Parser) FindSessions(projectsDir string, date time.Time) []models.Session {
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		logger.Log.Debug().Err(err).Str("dir", projectsDir).Msg("cannot read projects directory")
		return nil
	}

	var candidates []candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		projectDir := filepath.Join(projectsDir, entry.Name())
		candidates = append(candidates, p.collectCandidates(projectDir, entry.Name(), date)...)
	}

	return p.loadCandidates(candidates)
}

// collectCandidates enumerates one project directory and keeps the session
// files that pass the date and whole-session exclusion checks. Log files
// live directly in the project directory; the subagents subdirectory is not
// traversed.
func (p *Parser) collectCandidates(projectDir, encodedProject string, date time.Time) []candidate {
	entries, err := os.ReadDir(projectDir)
	if err != nil {
		logger.Log.Debug().Err(err).Str("dir", projectDir).Msg("skipping unreadable project")
		return nil
	}

	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
			continue
		}

		path := filepath.Join(projectDir, entry.Name())
		if IsSubagentSession(path) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Log.Debug().Err(err).Str("file", path).Msg("skipping unreadable session file")
			continue
		}
		if !sameLocalDate(info.ModTime(), date) {
			continue
		}

		if observer, err := p.IsObserverSession(path); err != nil || observer {
			if err != nil {
				logger.Log.Debug().Err(err).Str("file", path).Msg("skipping unreadable session file")
			}
			continue
		}

		candidates = append(candidates, candidate{
			path:        path,
			id:          strings.TrimSuffix(entry.Name(), ".jsonl"),
			projectPath: encodedProject,
		})
	}

	return candidates
}

// loadCandidates parses candidate files through a small worker pool and
// drops sessions without any exportable message.
func (p *Parser) loadCandidates(candidates []candidate) []models.Session {
	results := make([]*models.Session, len(candidates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, loadWorkers)

	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c candidate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			messages, err := p.ParseSessionFile(c.path)
			if err != nil {
				logger.Log.Debug().Err(err).Str("file", c.path).Msg("skipping session")
				return
			}
			if len(messages) == 0 {
				return
			}

			results[i] = &models.Session{
				ID:          c.id,
				ProjectPath: c.projectPath,
				ProjectName: ProjectNameFromPath(c.projectPath),
				Messages:    messages,
				StartTime:   messages[0].Timestamp,
			}
		}(i, c)
	}
	wg.Wait()

	var sessions []models.Session
	for _, s := range results {
		if s != nil {
			sessions = append(sessions, *s)
		}
	}

	return sessions
}
