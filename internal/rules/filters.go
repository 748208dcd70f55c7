package rules

import "strings"

// Marker literals below track the upstream Claude Code log format. They are
// data, not structure: pass alternatives to the constructors when the
// upstream markup changes.

// DefaultSystemTagPatterns are infrastructure markup substrings that mark a
// message as tool-lifecycle or command-echo noise.
var DefaultSystemTagPatterns = []string{
	"<system-reminder>",
	"<local-command",
	"<command-name>",
	"<task-notification>",
}

// DefaultObserverPatterns are substrings of the claude-mem observer agent's
// XML protocol chatter.
var DefaultObserverPatterns = []string{
	"<observed_from_primary_session>",
	"<observation>",
	"<summary>",
	"you are a memory agent",
	"observe the primary Claude session",
	"I need to observe",
	"I'll wait for",
	"I'll skip this observation",
	"no observations to record",
	"nothing to record",
}

// ObserverSystemPromptPrefix starts the claude-mem observer agent's system
// prompt; it identifies both individual protocol messages and whole
// observer sessions.
const ObserverSystemPromptPrefix = "You are a Claude-Mem, a specialized observer tool"

// SkillPromptPrefix starts the boilerplate preamble injected by skill
// invocations.
const SkillPromptPrefix = "Base directory for this skill:"

// NoResponsePrefix starts the assistant's explicit decline-to-respond
// messages.
const NoResponsePrefix = "No response requested"

// DefaultFilters returns the default filter rules. Filters are independent
// predicates OR'd together, so their relative order does not change results.
func DefaultFilters() []FilterRule {
	return []FilterRule{
		NewSystemTagsFilter(DefaultSystemTagPatterns...),
		NewObserverFilter(DefaultObserverPatterns...),
		NewSkillPromptFilter(SkillPromptPrefix),
		NewNoResponseFilter(NoResponsePrefix),
	}
}

type systemTagsFilter struct {
	patterns []string
}

// NewSystemTagsFilter filters messages containing any of the given Claude
// Code system tag substrings.
func NewSystemTagsFilter(patterns ...string) FilterRule {
	return &systemTagsFilter{patterns: patterns}
}

func (f *systemTagsFilter) Name() string { return "system-tags" }

func (f *systemTagsFilter) Description() string {
	return "Filter messages containing Claude Code system tags"
}

func (f *systemTagsFilter) ShouldFilter(text string) bool {
	for _, p := range f.patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

type observerFilter struct {
	patterns []string
}

// NewObserverFilter filters claude-mem observer messages by their protocol
// markup or by the observer system prompt.
func NewObserverFilter(patterns ...string) FilterRule {
	return &observerFilter{patterns: patterns}
}

func (f *observerFilter) Name() string { return "claude-mem" }

func (f *observerFilter) Description() string {
	return "Filter claude-mem observer messages by XML protocol tags"
}

func (f *observerFilter) ShouldFilter(text string) bool {
	if strings.HasPrefix(text, ObserverSystemPromptPrefix) {
		return true
	}
	for _, p := range f.patterns {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

type skillPromptFilter struct {
	prefix string
}

// NewSkillPromptFilter filters skill base directory prompts.
func NewSkillPromptFilter(prefix string) FilterRule {
	return &skillPromptFilter{prefix: prefix}
}

func (f *skillPromptFilter) Name() string { return "skill-prompt" }

func (f *skillPromptFilter) Description() string {
	return "Filter skill base directory prompts"
}

func (f *skillPromptFilter) ShouldFilter(text string) bool {
	return strings.HasPrefix(text, f.prefix)
}

type noResponseFilter struct {
	prefix string
}

// NewNoResponseFilter filters "No response requested" messages.
func NewNoResponseFilter(prefix string) FilterRule {
	return &noResponseFilter{prefix: prefix}
}

func (f *noResponseFilter) Name() string { return "no-response" }

func (f *noResponseFilter) Description() string {
	return "Filter 'No response requested' messages"
}

func (f *noResponseFilter) ShouldFilter(text string) bool {
	return strings.HasPrefix(text, f.prefix)
}
