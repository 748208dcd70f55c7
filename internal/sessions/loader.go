package sessions

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/strrl/ccexport/internal/rules"
	"github.com/strrl/ccexport/pkg/models"
)

// subagentDirName is the nested directory holding delegated sub-agent
// transcripts; those never appear in exports.
const subagentDirName = "subagents"

// newScanner sizes the line buffer for session logs, which routinely carry
// full file contents inside tool results.
func newScanner(file *os.File) *bufio.Scanner {
	const maxCapacity = 8 * 1024 * 1024
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), maxCapacity)
	return scanner
}

// ParseSessionFile loads every exportable message from one session log, in
// file order. Malformed lines, empty extractions, and filtered messages are
// skipped silently.
func (p *Parser) ParseSessionFile(path string) ([]models.Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file: %w", err)
	}
	defer file.Close()

	var messages []models.Message

	scanner := newScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		msg, ok := p.ParseMessage(line)
		if !ok {
			continue
		}
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		if p.engine.ShouldFilter(msg.Text) {
			continue
		}

		messages = append(messages, msg)
	}

	if err := scanner.Err(); err != nil {
		return messages, fmt.Errorf("failed to scan session file: %w", err)
	}

	return messages, nil
}

// IsSubagentSession reports whether the file is a sub-agent transcript
// nested under its parent session's directory.
func IsSubagentSession(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == subagentDirName {
			return true
		}
	}
	return false
}

// observerProbe is the minimal record shape needed to classify a session.
type observerProbe struct {
	Type    string `json:"type"`
	Message struct {
		Content models.MessageContent `json:"content"`
	} `json:"message"`
}

// IsObserverSession reports whether the session belongs to a claude-mem
// observer agent. Only the first user record decides: its text starting
// with the observer system prompt marks the whole file. The scan stops at
// that record, so large files are not read in full. A file with no user
// record is not an observer session.
func (p *Parser) IsObserverSession(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open session file: %w", err)
	}
	defer file.Close()

	scanner := newScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var probe observerProbe
		if err := json.Unmarshal(line, &probe); err != nil {
			continue
		}
		if probe.Type != "user" {
			continue
		}

		text := p.engine.ExtractText(probe.Message.Content)
		return strings.HasPrefix(text, rules.ObserverSystemPromptPrefix), nil
	}

	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to scan session file: %w", err)
	}

	return false, nil
}
