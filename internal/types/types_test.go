package types

import (
	"testing"
	"time"
)

func TestTaskValidate(t *testing.T) {
	valid := Task{ID: "t1", Title: "A task", Status: StatusCreated}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid task, got %v", err)
	}

	tests := []struct {
		name string
		task Task
	}{
		{"blank title", Task{Title: "   ", Status: StatusCreated}},
		{"bad status", Task{Title: "ok", Status: "bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.task.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusCreated, StatusPlanning, StatusLocked} {
		if !s.IsValid() {
			t.Errorf("Expected %s to be valid", s)
		}
	}
	if TaskStatus("done").IsValid() {
		t.Error("Expected 'done' to be invalid")
	}
}

func TestQuestionValidate(t *testing.T) {
	valid := Question{
		TaskID:   "t1",
		Category: CategoryGoal,
		Prompt:   "What is the goal?",
		Kind:     KindMultipleChoice,
		Choices:  []Choice{{ID: "A", Label: "Ship"}, {ID: "B", Label: "Learn"}},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid question, got %v", err)
	}

	tests := []struct {
		name     string
		question Question
	}{
		{"missing task", Question{Category: CategoryGoal, Prompt: "?", Kind: KindText}},
		{"blank prompt", Question{TaskID: "t1", Category: CategoryGoal, Prompt: " ", Kind: KindText}},
		{"bad category", Question{TaskID: "t1", Category: "vibes", Prompt: "?", Kind: KindText}},
		{"bad kind", Question{TaskID: "t1", Category: CategoryGoal, Prompt: "?", Kind: "essay"}},
		// kind == multiple_choice iff choices is non-empty
		{"choice kind without choices", Question{TaskID: "t1", Category: CategoryGoal, Prompt: "?", Kind: KindMultipleChoice}},
		{"text kind with choices", Question{TaskID: "t1", Category: CategoryGoal, Prompt: "?", Kind: KindText, Choices: []Choice{{ID: "A", Label: "x"}}}},
		{"negative position", Question{TaskID: "t1", Category: CategoryGoal, Prompt: "?", Kind: KindText, SortPosition: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.question.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestQuestionAnswered(t *testing.T) {
	q := Question{}
	if q.Answered() {
		t.Error("Unanswered question reported as answered")
	}

	empty := ""
	q.Answer = &empty
	if q.Answered() {
		t.Error("Empty-string answer reported as answered")
	}

	value := "yes"
	now := time.Now()
	q.Answer = &value
	q.AnsweredAt = &now
	if !q.Answered() {
		t.Error("Answered question reported as unanswered")
	}
}

func TestCategories(t *testing.T) {
	categories := Categories()
	if len(categories) != 8 {
		t.Fatalf("Expected 8 categories, got %d", len(categories))
	}
	if categories[0] != CategoryGoal || categories[7] != CategoryConstraints {
		t.Errorf("Category order wrong: %v", categories)
	}
	for _, c := range categories {
		if !c.IsValid() {
			t.Errorf("Expected %s to be valid", c)
		}
	}
	if Category("vibes").IsValid() {
		t.Error("Expected 'vibes' to be invalid")
	}
}

func TestProgressComplete(t *testing.T) {
	tests := []struct {
		progress Progress
		complete bool
	}{
		{Progress{Total: 0, Answered: 0}, false},
		{Progress{Total: 3, Answered: 2}, false},
		{Progress{Total: 3, Answered: 3}, true},
	}
	for _, tt := range tests {
		if got := tt.progress.Complete(); got != tt.complete {
			t.Errorf("Complete() for %+v: got %v, want %v", tt.progress, got, tt.complete)
		}
	}
}

func TestSpecValidate(t *testing.T) {
	valid := Spec{ID: "s1", TaskID: "t1", Markdown: "# Plan"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected valid spec, got %v", err)
	}
	if err := (&Spec{ID: "s1", Markdown: "# Plan"}).Validate(); err == nil {
		t.Error("Expected error for missing task_id")
	}
	if err := (&Spec{ID: "s1", TaskID: "t1"}).Validate(); err == nil {
		t.Error("Expected error for empty markdown")
	}
}
