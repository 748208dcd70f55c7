// Package export renders discovered sessions into daily Markdown digests
// and writes them to the configured destination.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/strrl/ccexport/pkg/models"
)

// SpeakerLabels configures how the two roles are displayed in the digest.
type SpeakerLabels struct {
	User      string
	Assistant string
}

// FormatSession renders one session as a Markdown section: a time/project
// subheading followed by the messages in log order.
func FormatSession(session models.Session, labels SpeakerLabels) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("## %s %s", session.StartTime.Local().Format("15:04"), session.ProjectName))
	lines = append(lines, "")

	for _, msg := range session.Messages {
		speaker := labels.Assistant
		if msg.Role == "user" {
			speaker = labels.User
		}
		lines = append(lines, fmt.Sprintf("**%s**: %s", speaker, msg.Text))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// FormatMarkdown renders the full digest for one date. Sessions are sorted
// by start time ascending and separated by horizontal rules. Zero sessions
// produce an empty document.
func FormatMarkdown(sessions []models.Session, date time.Time, labels SpeakerLabels) string {
	if len(sessions) == 0 {
		return ""
	}

	sorted := make([]models.Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	var lines []string
	lines = append(lines, fmt.Sprintf("# %s Claude Conversation Log", date.Format("2006-01-02")))
	lines = append(lines, "")

	for i, session := range sorted {
		lines = append(lines, FormatSession(session, labels))
		if i < len(sorted)-1 {
			lines = append(lines, "---")
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}
