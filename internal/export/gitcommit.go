package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// commitFiles stages the written digest files and commits them in the
// repository containing the output directory. The output directory does not
// need to be the repository root.
func commitFiles(outputDir string, files []string, date time.Time) error {
	repo, err := git.PlainOpenWithOptions(outputDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	for _, file := range files {
		rel, err := filepath.Rel(root, file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if _, err := wt.Add(filepath.ToSlash(rel)); err != nil {
			return fmt.Errorf("failed to stage %s: %w", rel, err)
		}
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("failed to get worktree status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	message := fmt.Sprintf("ccexport: %s conversation log", date.Format("2006-01-02"))
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "ccexport",
			Email: "ccexport@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}
