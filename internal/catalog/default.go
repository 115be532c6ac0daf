package catalog

import "github.com/planlock/planlock/internal/types"

// Default returns the compiled-in question battery. Every category carries
// at least two templates; choice sets that end in "Other" accept free-form
// elaboration submitted as "Other: <text>".
func Default() *Catalog {
	c, err := New(defaultTemplates())
	if err != nil {
		// The default battery is fixed data validated by tests; a failure
		// here is a programming error, not a runtime condition.
		panic("catalog: invalid default battery: " + err.Error())
	}
	return c
}

func defaultTemplates() []Template {
	return []Template{
		{
			Category: types.CategoryGoal,
			Prompt:   "What is the primary goal of this project?",
			Choices: []string{
				"Launch something new",
				"Improve an existing product",
				"Replace a legacy system",
				"Explore or prototype an idea",
				"Other",
			},
		},
		{
			Category: types.CategoryGoal,
			Prompt:   "How will you know this project succeeded?",
		},
		{
			Category: types.CategoryAudience,
			Prompt:   "Who is the primary audience?",
			Choices: []string{
				"Internal team",
				"Existing customers",
				"New customers",
				"General public",
				"Other",
			},
		},
		{
			Category: types.CategoryAudience,
			Prompt:   "What does that audience need most from this work?",
		},
		{
			Category: types.CategoryScope,
			Prompt:   "How large is the scope of this work?",
			Choices: []string{
				"Small (days)",
				"Medium (weeks)",
				"Large (months)",
			},
		},
		{
			Category: types.CategoryScope,
			Prompt:   "What is explicitly out of scope?",
		},
		{
			Category: types.CategoryDesign,
			Prompt:   "Is there an existing design or visual identity to follow?",
			Choices: []string{
				"Yes, follow it closely",
				"Yes, but it can evolve",
				"No, design from scratch",
				"Other",
			},
		},
		{
			Category: types.CategoryDesign,
			Prompt:   "Describe the look and feel you are aiming for.",
		},
		{
			Category: types.CategoryContent,
			Prompt:   "Where will the content come from?",
			Choices: []string{
				"Already written",
				"Will be written during the project",
				"Migrated from an existing source",
				"Other",
			},
		},
		{
			Category: types.CategoryContent,
			Prompt:   "What content or assets must exist before launch?",
		},
		{
			Category: types.CategoryTechnical,
			Prompt:   "Are there fixed technology choices?",
			Choices: []string{
				"Yes, the stack is decided",
				"Partially decided",
				"No, open to proposals",
			},
		},
		{
			Category: types.CategoryTechnical,
			Prompt:   "List any systems this must integrate with.",
		},
		{
			Category: types.CategoryTimeline,
			Prompt:   "Is there a hard deadline?",
			Choices: []string{
				"Yes, a fixed date",
				"A target quarter",
				"No deadline",
			},
		},
		{
			Category: types.CategoryTimeline,
			Prompt:   "What milestones matter along the way?",
		},
		{
			Category: types.CategoryConstraints,
			Prompt:   "What is the biggest constraint on this project?",
			Choices: []string{
				"Budget",
				"People",
				"Time",
				"Regulatory or compliance",
				"Other",
			},
		},
		{
			Category: types.CategoryConstraints,
			Prompt:   "Are there constraints the team cannot change? Describe them.",
		},
	}
}
