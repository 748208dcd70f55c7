package rules

import (
	"strings"

	"github.com/strrl/ccexport/pkg/models"
)

// Engine composes an ordered filter list and an ordered transformer list.
// The zero value is not usable; construct with NewEngine or NewEngineWithRules.
type Engine struct {
	filters      []FilterRule
	transformers []TransformerRule
}

// NewEngine creates an engine with the default rule sets.
func NewEngine() *Engine {
	return NewEngineWithRules(DefaultFilters(), DefaultTransformers())
}

// NewEngineWithRules creates an engine with caller-supplied rules. Both
// slices are used as given; transformer order determines match priority.
func NewEngineWithRules(filters []FilterRule, transformers []TransformerRule) *Engine {
	return &Engine{filters: filters, transformers: transformers}
}

// Filters returns the engine's filter rules in evaluation order.
func (e *Engine) Filters() []FilterRule {
	return e.filters
}

// Transformers returns the engine's transformer rules in match order.
func (e *Engine) Transformers() []TransformerRule {
	return e.transformers
}

// ShouldFilter reports whether any filter rule suppresses the given text.
func (e *Engine) ShouldFilter(text string) bool {
	for _, f := range e.filters {
		if f.ShouldFilter(text) {
			return true
		}
	}
	return false
}

// ExtractText renders message content to plain text. String content is
// returned unchanged; block content is rendered per block by the first
// matching transformer, with block contributions joined by newlines.
// Blocks no transformer claims contribute nothing.
func (e *Engine) ExtractText(content models.MessageContent) string {
	if content.IsText {
		return content.Text
	}

	var parts []string
	for _, block := range content.Blocks {
		for _, t := range e.transformers {
			if text, ok := t.Transform(block); ok {
				parts = append(parts, text)
				break
			}
		}
	}

	return strings.Join(parts, "\n")
}
