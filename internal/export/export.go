package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/strrl/ccexport/internal/config"
	"github.com/strrl/ccexport/internal/logger"
	"github.com/strrl/ccexport/internal/sessions"
	"github.com/strrl/ccexport/pkg/models"
)

// Options scope a single export run.
type Options struct {
	Date          time.Time
	OutputDir     string // overrides the configured destination when set
	ProjectFilter string // substring match against the encoded project path
	DryRun        bool
}

// Run discovers sessions for the target date and writes the digest(s).
// It returns the rendered Markdown (for dry runs and logging) and the list
// of written files.
func Run(cfg config.Config, opts Options) (string, []string, error) {
	projectsDir, err := sessions.ProjectsDir()
	if err != nil {
		return "", nil, fmt.Errorf("failed to locate projects directory: %w", err)
	}

	found := sessions.NewParser().FindSessions(projectsDir, opts.Date)

	if opts.ProjectFilter != "" {
		encoded := strings.ReplaceAll(opts.ProjectFilter, "/", "-")
		var filtered []models.Session
		for _, s := range found {
			if strings.Contains(s.ProjectPath, encoded) {
				filtered = append(filtered, s)
			}
		}
		found = filtered
	}

	logger.Log.Debug().Int("sessions", len(found)).Str("date", opts.Date.Format("2006-01-02")).Msg("discovered sessions")

	return WriteSessions(cfg, opts, found)
}

// WriteSessions renders the given sessions and writes them according to the
// configured project mode. Destination failures are fatal; everything before
// this point is best-effort.
func WriteSessions(cfg config.Config, opts Options, found []models.Session) (string, []string, error) {
	if len(found) == 0 {
		return "", nil, nil
	}

	outputDir := cfg.OutputDir
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	outputDir = config.ExpandPath(outputDir)
	if outputDir == "" {
		return "", nil, fmt.Errorf("no output directory configured")
	}

	filename := opts.Date.Format(config.DateLayout(cfg.FilenameFormat)) + ".md"
	labels := SpeakerLabels{User: cfg.SpeakerUser, Assistant: cfg.SpeakerAssistant}

	var written []string

	if cfg.ProjectMode == config.ModeSeparate {
		byProject := make(map[string][]models.Session)
		var order []string
		for _, s := range found {
			if _, ok := byProject[s.ProjectName]; !ok {
				order = append(order, s.ProjectName)
			}
			byProject[s.ProjectName] = append(byProject[s.ProjectName], s)
		}

		var parts []string
		for _, name := range order {
			markdown := FormatMarkdown(byProject[name], opts.Date, labels)
			parts = append(parts, markdown)
			if markdown == "" || opts.DryRun {
				continue
			}

			projectDir := filepath.Join(outputDir, name)
			if err := os.MkdirAll(projectDir, 0o755); err != nil {
				return "", written, fmt.Errorf("failed to create output directory: %w", err)
			}
			path := filepath.Join(projectDir, filename)
			if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
				return "", written, fmt.Errorf("failed to write output file: %w", err)
			}
			written = append(written, path)
		}

		finishCommit(cfg, opts, outputDir, written)
		return strings.Join(parts, "\n\n"), written, nil
	}

	// merge mode (default)
	markdown := FormatMarkdown(found, opts.Date, labels)
	if opts.DryRun || markdown == "" {
		return markdown, nil, nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return "", nil, fmt.Errorf("failed to write output file: %w", err)
	}
	written = append(written, path)

	finishCommit(cfg, opts, outputDir, written)
	return markdown, written, nil
}

// finishCommit runs the optional git auto-commit. Commit failures are
// logged, never fatal: the digest on disk is the deliverable.
func finishCommit(cfg config.Config, opts Options, outputDir string, written []string) {
	if !cfg.GitCommit || opts.DryRun || len(written) == 0 {
		return
	}
	if err := commitFiles(outputDir, written, opts.Date); err != nil {
		logger.Log.Warn().Err(err).Msg("failed to commit exported files")
	}
}
