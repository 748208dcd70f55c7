// Package sessions reads Claude Code session logs: it parses raw JSONL
// records into messages, loads whole session files, and discovers the
// sessions that belong to a target export date.
package sessions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"github.com/strrl/ccexport/internal/rules"
	"github.com/strrl/ccexport/pkg/models"
)

// Parser turns raw log lines into normalized messages using a rule engine.
type Parser struct {
	engine *rules.Engine
}

// NewParser creates a parser backed by the default rule engine.
func NewParser() *Parser {
	return NewParserWithEngine(rules.NewEngine())
}

// NewParserWithEngine creates a parser with a caller-supplied rule engine.
func NewParserWithEngine(engine *rules.Engine) *Parser {
	return &Parser{engine: engine}
}

// Engine returns the parser's rule engine.
func (p *Parser) Engine() *rules.Engine {
	return p.engine
}

// ParseMessage decodes one log line into a message. It returns false for
// structurally malformed lines; callers drop those and keep going, so one
// bad line never aborts a file.
func (p *Parser) ParseMessage(line []byte) (models.Message, bool) {
	record, ok := decodeRecord(line)
	if !ok {
		return models.Message{}, false
	}

	ts, err := time.Parse(time.RFC3339, record.Timestamp)
	if err != nil {
		return models.Message{}, false
	}

	return models.Message{
		Role:      record.Type,
		Timestamp: ts,
		Text:      p.engine.ExtractText(record.Message.Content),
	}, true
}

// decodeRecord unmarshals a raw record, retrying once through jsonrepair.
// Session logs are append-only and may end in a truncated line from an
// interrupted write; repairing recovers those instead of dropping them.
func decodeRecord(line []byte) (models.RawRecord, bool) {
	var record models.RawRecord
	if err := json.Unmarshal(line, &record); err == nil {
		return record, true
	}

	repaired, err := jsonrepair.JSONRepair(string(line))
	if err != nil {
		return models.RawRecord{}, false
	}
	if err := json.Unmarshal([]byte(repaired), &record); err != nil {
		return models.RawRecord{}, false
	}
	return record, true
}

// ProjectsDir returns the Claude Code projects root, one subdirectory per
// project with "/" in the project path encoded as "-".
func ProjectsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".claude", "projects"), nil
}
