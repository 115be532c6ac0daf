package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/planlock/planlock/internal/types"
)

// catalogFile is the on-disk YAML shape:
//
//	categories:
//	  goal:
//	    - prompt: "What is the goal?"
//	      choices: ["Ship it", "Learn", "Other"]
//	    - prompt: "How do we measure success?"
type catalogFile struct {
	Categories map[string][]Template `yaml:"categories"`
}

// Load reads an alternate catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML bytes. Category keys must come from the
// fixed category set; template order within each category is preserved.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}

	for key := range file.Categories {
		if !types.Category(key).IsValid() {
			return nil, fmt.Errorf("unknown category: %q", key)
		}
	}

	var templates []Template
	for _, category := range types.Categories() {
		for _, tmpl := range file.Categories[string(category)] {
			tmpl.Category = category
			templates = append(templates, tmpl)
		}
	}
	return New(templates)
}
