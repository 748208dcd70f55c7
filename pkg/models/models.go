package models

import (
	"encoding/json"
	"time"
)

// Message is one exported conversational turn, normalized from a raw log record.
type Message struct {
	Role      string // "user" or "assistant"
	Timestamp time.Time
	Text      string
}

// Session represents one conversation transcript, backed by a single JSONL file.
type Session struct {
	ID          string // Filename without the .jsonl extension
	ProjectPath string // Encoded project directory name ("/" replaced by "-")
	ProjectName string // Last "-"-delimited segment of ProjectPath
	Messages    []Message
	StartTime   time.Time // Timestamp of the first included message
}

// Project represents a project directory with aggregated session information.
type Project struct {
	Name         string
	Path         string
	SessionCount int
	LastActivity time.Time
}

// RawRecord is one line of a Claude Code session log. Fields irrelevant to
// export (uuid, cwd, queue events, ...) are ignored by the decoder.
type RawRecord struct {
	Type      string     `json:"type"`
	Timestamp string     `json:"timestamp"`
	Message   RawMessage `json:"message"`
}

// RawMessage carries the content payload of a RawRecord.
type RawMessage struct {
	Content MessageContent `json:"content"`
}

// MessageContent is either a plain string or an ordered list of content
// blocks; the upstream log format uses both shapes.
type MessageContent struct {
	Text   string
	Blocks []ContentBlock
	IsText bool
}

// UnmarshalJSON accepts both the string and the block-array form.
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Text = s
		c.IsText = true
		return nil
	}

	var blocks []ContentBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		return err
	}
	c.Blocks = blocks
	return nil
}

// ContentBlock is one element of a block-array message content.
type ContentBlock struct {
	Type    string            `json:"type"`
	Text    string            `json:"text,omitempty"`
	Name    string            `json:"name,omitempty"`
	Input   BlockInput        `json:"input,omitempty"`
	Content ToolResultContent `json:"content,omitempty"`
}

// ToolResultContent is the content of a tool_result block. The upstream
// format allows both a string and a nested block array; only the string
// form ever carries exportable text, so the array form decodes to "".
type ToolResultContent string

// UnmarshalJSON keeps string content and silently drops any other shape.
func (c *ToolResultContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ToolResultContent(s)
	}
	return nil
}

// BlockInput is the tool_use input; only AskUserQuestion questions matter here.
type BlockInput struct {
	Questions []AskUserQuestion `json:"questions,omitempty"`
}

// AskUserQuestion is one question from an AskUserQuestion tool invocation.
type AskUserQuestion struct {
	Question string                  `json:"question"`
	Header   string                  `json:"header"`
	Options  []AskUserQuestionOption `json:"options"`
}

// AskUserQuestionOption is one selectable answer for an AskUserQuestion.
type AskUserQuestionOption struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}
