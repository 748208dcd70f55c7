// Package rules implements the extraction and filtering pipeline that decides
// what text a raw log record contributes to an export, if any.
//
// Two kinds of rules exist: filters judge fully-assembled message text and
// vote for suppression; transformers turn a single content block into text.
// Both are pure and stateless, identified by name, and evaluated in list
// order. Transformer order is a behavioral contract: the first transformer
// that applies to a block wins, so specific rules must be registered before
// the generic text catch-all.
package rules

import "github.com/strrl/ccexport/pkg/models"

// FilterRule decides whether an assembled message text should be excluded
// from export.
type FilterRule interface {
	Name() string
	Description() string
	// ShouldFilter returns true if the message should be filtered out.
	ShouldFilter(text string) bool
}

// TransformerRule extracts or transforms text from a single content block.
type TransformerRule interface {
	Name() string
	Description() string
	// Transform returns the rendered text and true when the rule applies,
	// or "" and false when it does not.
	Transform(block models.ContentBlock) (string, bool)
}
