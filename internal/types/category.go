package types

// Category is one of the fixed topical groupings for planning questions.
// The set is closed and the order of Categories() is significant: it defines
// the default question ordering and UI grouping.
type Category string

const (
	CategoryGoal        Category = "goal"
	CategoryAudience    Category = "audience"
	CategoryScope       Category = "scope"
	CategoryDesign      Category = "design"
	CategoryContent     Category = "content"
	CategoryTechnical   Category = "technical"
	CategoryTimeline    Category = "timeline"
	CategoryConstraints Category = "constraints"
)

// Categories returns all categories in canonical order
func Categories() []Category {
	return []Category{
		CategoryGoal,
		CategoryAudience,
		CategoryScope,
		CategoryDesign,
		CategoryContent,
		CategoryTechnical,
		CategoryTimeline,
		CategoryConstraints,
	}
}

// IsValid checks if the category is a known value
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
