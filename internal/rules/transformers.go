package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/strrl/ccexport/pkg/models"
)

// askUserQuestionTool is the interactive tool whose invocations and results
// are rendered instead of dropped.
const askUserQuestionTool = "AskUserQuestion"

var (
	answersSegmentRe = regexp.MustCompile(`User has answered your questions:(.+?)(?:\. You can now continue|$)`)
	answerPairRe     = regexp.MustCompile(`"[^"]*"="([^"]*)"`)
)

// DefaultTransformers returns the default transformer rules in match order.
// The text catch-all must stay last; more specific rules come first.
func DefaultTransformers() []TransformerRule {
	return []TransformerRule{
		NewAskUserQuestionTransformer(),
		NewTextExtractTransformer(),
	}
}

type askUserQuestionTransformer struct{}

// NewAskUserQuestionTransformer renders AskUserQuestion tool_use blocks as
// formatted questions and recovers the chosen answers from the matching
// tool_result block.
func NewAskUserQuestionTransformer() TransformerRule {
	return &askUserQuestionTransformer{}
}

func (t *askUserQuestionTransformer) Name() string { return "ask-user-question" }

func (t *askUserQuestionTransformer) Description() string {
	return "Extract AskUserQuestion tool_use and tool_result content"
}

func (t *askUserQuestionTransformer) Transform(block models.ContentBlock) (string, bool) {
	if block.Type == "tool_use" && block.Name == askUserQuestionTool && len(block.Input.Questions) > 0 {
		return formatQuestions(block.Input.Questions), true
	}

	if block.Type == "tool_result" && block.Content != "" {
		if answer, ok := extractAnswers(string(block.Content)); ok {
			return answer, true
		}
	}

	return "", false
}

func formatQuestions(questions []models.AskUserQuestion) string {
	sections := make([]string, 0, len(questions))
	for _, q := range questions {
		var b strings.Builder
		fmt.Fprintf(&b, "**Question: %s**\n%s", q.Header, q.Question)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "\n- %s: %s", opt.Label, opt.Description)
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

// extractAnswers recovers answer values from the fixed tool_result phrasing
// `User has answered your questions: "q"="a", ...`. Question labels are
// discarded; only answers are kept.
func extractAnswers(content string) (string, bool) {
	m := answersSegmentRe.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}

	pairs := answerPairRe.FindAllStringSubmatch(strings.TrimSpace(m[1]), -1)
	if len(pairs) == 0 {
		return "", false
	}

	answers := make([]string, 0, len(pairs))
	for _, p := range pairs {
		answers = append(answers, p[1])
	}

	return "**Answer:** " + strings.Join(answers, ", "), true
}

type textExtractTransformer struct{}

// NewTextExtractTransformer extracts the payload of plain text blocks. It is
// the catch-all and must be registered after every specific transformer.
func NewTextExtractTransformer() TransformerRule {
	return &textExtractTransformer{}
}

func (t *textExtractTransformer) Name() string { return "text-extract" }

func (t *textExtractTransformer) Description() string {
	return "Extract text content from text type items"
}

func (t *textExtractTransformer) Transform(block models.ContentBlock) (string, bool) {
	if block.Type == "text" && block.Text != "" {
		return block.Text, true
	}
	return "", false
}
