// Package stats aggregates session activity per project for the list
// command. It queries the whole log corpus through DuckDB's JSON reader;
// when DuckDB is unavailable the caller falls back to the discovery walk.
package stats

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/strrl/ccexport/internal/db"
	"github.com/strrl/ccexport/internal/sessions"
	"github.com/strrl/ccexport/pkg/models"
)

// FetchProjectStats returns per-project session counts and last activity
// for sessions whose latest record falls on the given local calendar date.
func FetchProjectStats(projectsDir string, date time.Time) ([]models.Project, error) {
	database, err := db.Get()
	if err != nil {
		return nil, err
	}
	// The singleton connection is shared; never close it here.

	globPattern := filepath.Join(projectsDir, "*", "*.jsonl")

	query := fmt.Sprintf(`
		SELECT
			filename,
			COUNT(*) as record_count,
			MAX(timestamp) as last_activity
		FROM read_json('%s',
			format = 'newline_delimited',
			union_by_name = true,
			filename = true
		)
		WHERE type IN ('user', 'assistant')
		GROUP BY filename
	`, globPattern)

	rows, err := database.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute stats query: %w", err)
	}
	defer rows.Close()

	type projectAgg struct {
		sessionCount int
		lastActivity time.Time
	}
	byProject := make(map[string]*projectAgg)

	for rows.Next() {
		var filename string
		var recordCount int64
		var lastActivity sql.NullString

		if err := rows.Scan(&filename, &recordCount, &lastActivity); err != nil {
			continue
		}
		if sessions.IsSubagentSession(filename) {
			continue
		}

		var activity time.Time
		if lastActivity.Valid {
			if t, err := time.Parse(time.RFC3339, lastActivity.String); err == nil {
				activity = t.Local()
			}
		}
		if activity.IsZero() || !sameLocalDate(activity, date) {
			continue
		}

		encoded := filepath.Base(filepath.Dir(filename))
		agg, ok := byProject[encoded]
		if !ok {
			agg = &projectAgg{}
			byProject[encoded] = agg
		}
		agg.sessionCount++
		if activity.After(agg.lastActivity) {
			agg.lastActivity = activity
		}
	}

	var projects []models.Project
	for encoded, agg := range byProject {
		projects = append(projects, models.Project{
			Name:         sessions.ProjectNameFromPath(encoded),
			Path:         encoded,
			SessionCount: agg.sessionCount,
			LastActivity: agg.lastActivity,
		})
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].LastActivity.After(projects[j].LastActivity)
	})

	return projects, nil
}

// FallbackProjectStats derives the same listing from the pure-Go discovery
// walk. Slower per byte but dependency-free at runtime.
func FallbackProjectStats(projectsDir string, date time.Time) []models.Project {
	found := sessions.NewParser().FindSessions(projectsDir, date)

	type projectAgg struct {
		sessionCount int
		lastActivity time.Time
	}
	byProject := make(map[string]*projectAgg)

	for _, s := range found {
		agg, ok := byProject[s.ProjectPath]
		if !ok {
			agg = &projectAgg{}
			byProject[s.ProjectPath] = agg
		}
		agg.sessionCount++
		last := s.Messages[len(s.Messages)-1].Timestamp
		if last.After(agg.lastActivity) {
			agg.lastActivity = last
		}
	}

	var projects []models.Project
	for encoded, agg := range byProject {
		projects = append(projects, models.Project{
			Name:         sessions.ProjectNameFromPath(encoded),
			Path:         encoded,
			SessionCount: agg.sessionCount,
			LastActivity: agg.lastActivity,
		})
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].LastActivity.After(projects[j].LastActivity)
	})

	return projects
}

func sameLocalDate(a, b time.Time) bool {
	y1, m1, d1 := a.Local().Date()
	y2, m2, d2 := b.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
