package planning

import (
	"fmt"
	"strings"

	"github.com/planlock/planlock/internal/types"
)

// SpecEntry is one answered question as seen by the synthesizer
type SpecEntry struct {
	Category types.Category
	Prompt   string
	Answer   string
}

// Synthesizer builds the spec document body from the collected answers.
// The planning core treats it as an opaque pure function: same entries in,
// same document out.
type Synthesizer interface {
	Synthesize(task *types.Task, entries []SpecEntry) (string, error)
}

// MarkdownSynthesizer is the default Synthesizer: a deterministic markdown
// document with one section per category in canonical order.
type MarkdownSynthesizer struct{}

// Synthesize renders the spec document
func (m *MarkdownSynthesizer) Synthesize(task *types.Task, entries []SpecEntry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no entries to synthesize")
	}

	byCategory := make(map[types.Category][]SpecEntry)
	for _, e := range entries {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Planning Spec: %s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", task.Description)
	}

	for _, category := range types.Categories() {
		section := byCategory[category]
		if len(section) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", categoryHeading(category))
		for _, e := range section {
			fmt.Fprintf(&b, "\n**%s**\n\n%s\n", e.Prompt, e.Answer)
		}
	}
	return b.String(), nil
}

func categoryHeading(c types.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// entriesFromQuestions flattens a question set into synthesizer entries,
// preserving sort order
func entriesFromQuestions(questions []*types.Question) []SpecEntry {
	entries := make([]SpecEntry, 0, len(questions))
	for _, q := range questions {
		answer := ""
		if q.Answer != nil {
			answer = *q.Answer
		}
		entries = append(entries, SpecEntry{
			Category: q.Category,
			Prompt:   q.Prompt,
			Answer:   answer,
		})
	}
	return entries
}
