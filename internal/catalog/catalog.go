// Package catalog defines the static battery of planning questions.
//
// A Catalog is an immutable value injected into the planning service. The
// compiled-in default battery covers all eight categories; deployments can
// substitute an alternate battery from a YAML file without touching any
// package-level state.
package catalog

import (
	"fmt"
	"strings"

	"github.com/planlock/planlock/internal/types"
)

// Template is a catalog-defined question shape. A template with choices
// materializes as a multiple-choice question; one without choices as free
// text. A literal "Other" choice label signals that the caller may submit
// free-form elaboration of the form "Other: <text>".
type Template struct {
	Category types.Category `yaml:"-"`
	Prompt   string         `yaml:"prompt"`
	Choices  []string       `yaml:"choices,omitempty"`
}

// Catalog is an ordered, immutable mapping from category to question
// templates. Iteration order is always the canonical category order, then
// template order within a category, so regenerated batteries are
// reproducible across process restarts.
type Catalog struct {
	templates map[types.Category][]Template
}

// New builds a catalog from the given templates, preserving their relative
// order within each category. It fails if any template is malformed.
func New(templates []Template) (*Catalog, error) {
	byCategory := make(map[types.Category][]Template)
	for i, tmpl := range templates {
		if err := validateTemplate(tmpl); err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		byCategory[tmpl.Category] = append(byCategory[tmpl.Category], tmpl)
	}
	return &Catalog{templates: byCategory}, nil
}

func validateTemplate(tmpl Template) error {
	if !tmpl.Category.IsValid() {
		return fmt.Errorf("unknown category: %q", tmpl.Category)
	}
	if strings.TrimSpace(tmpl.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(tmpl.Choices) == 1 {
		return fmt.Errorf("a choice set needs at least 2 options (got 1)")
	}
	// Choice IDs are single letters, which caps the option count.
	if len(tmpl.Choices) > 26 {
		return fmt.Errorf("too many choices: %d (max 26)", len(tmpl.Choices))
	}
	seen := make(map[string]bool, len(tmpl.Choices))
	for _, label := range tmpl.Choices {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("choice labels cannot be empty")
		}
		if seen[label] {
			return fmt.Errorf("duplicate choice label: %q", label)
		}
		seen[label] = true
	}
	return nil
}

// Templates returns the templates for one category in catalog order.
// The returned slice is a copy.
func (c *Catalog) Templates(category types.Category) []Template {
	tmpls := c.templates[category]
	out := make([]Template, len(tmpls))
	copy(out, tmpls)
	return out
}

// All returns every template in canonical order: category order first, then
// template order within each category.
func (c *Catalog) All() []Template {
	var out []Template
	for _, category := range types.Categories() {
		out = append(out, c.templates[category]...)
	}
	return out
}

// Len reports the total number of templates across all categories
func (c *Catalog) Len() int {
	n := 0
	for _, tmpls := range c.templates {
		n += len(tmpls)
	}
	return n
}

// ChoiceID returns the stable identifier for the k-th choice (0-indexed) of
// a template: letters starting at 'A'.
func ChoiceID(k int) string {
	return string(rune('A' + k))
}
