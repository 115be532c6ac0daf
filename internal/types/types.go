package types

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a unit of work that a planning workflow is attached to
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks if the task has valid field values
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(t.Title) > 500 {
		return fmt.Errorf("title must be 500 characters or less (got %d)", len(t.Title))
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	return nil
}

// TaskStatus represents where a task sits in its planning lifecycle
type TaskStatus string

const (
	// StatusCreated is the initial status before any questions exist
	StatusCreated TaskStatus = "created"
	// StatusPlanning means the question battery has been generated
	StatusPlanning TaskStatus = "planning"
	// StatusLocked means the plan was frozen into a spec; terminal
	StatusLocked TaskStatus = "locked"
)

// IsValid checks if the status is a known value
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusCreated, StatusPlanning, StatusLocked:
		return true
	}
	return false
}

// QuestionKind distinguishes multiple-choice questions from free text
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindText           QuestionKind = "text"
)

// IsValid checks if the kind is a known value
func (k QuestionKind) IsValid() bool {
	return k == KindMultipleChoice || k == KindText
}

// Choice is one selectable option on a multiple-choice question.
// IDs are single letters assigned in option order (A, B, C, ...).
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Question is a task-scoped instance of a catalog template.
// Answer and AnsweredAt are nil until the question is answered.
type Question struct {
	ID           string       `json:"id"`
	TaskID       string       `json:"task_id"`
	Category     Category     `json:"category"`
	Prompt       string       `json:"prompt"`
	Kind         QuestionKind `json:"kind"`
	Choices      []Choice     `json:"choices,omitempty"`
	Answer       *string      `json:"answer,omitempty"`
	AnsweredAt   *time.Time   `json:"answered_at,omitempty"`
	SortPosition int          `json:"sort_position"`
}

// Validate checks if the question has valid field values
func (q *Question) Validate() error {
	if q.TaskID == "" {
		return fmt.Errorf("task_id is required")
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("prompt is required")
	}
	if !q.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", q.Category)
	}
	if !q.Kind.IsValid() {
		return fmt.Errorf("invalid kind: %s", q.Kind)
	}
	if q.Kind == KindMultipleChoice && len(q.Choices) == 0 {
		return fmt.Errorf("multiple_choice question must have choices")
	}
	if q.Kind == KindText && len(q.Choices) > 0 {
		return fmt.Errorf("text question must not have choices")
	}
	if q.SortPosition < 0 {
		return fmt.Errorf("sort_position cannot be negative (got %d)", q.SortPosition)
	}
	return nil
}

// Answered reports whether the question carries a non-empty answer
func (q *Question) Answered() bool {
	return q.Answer != nil && *q.Answer != ""
}

// Spec is the immutable document produced when a plan is locked.
// At most one exists per task, and it is never updated or deleted.
type Spec struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Markdown  string    `json:"markdown"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks if the spec has valid field values
func (s *Spec) Validate() error {
	if s.TaskID == "" {
		return fmt.Errorf("task_id is required")
	}
	if s.Markdown == "" {
		return fmt.Errorf("markdown is required")
	}
	return nil
}

// Progress summarizes how much of the question battery is answered
type Progress struct {
	Total      int `json:"total"`
	Answered   int `json:"answered"`
	Percentage int `json:"percentage"`
}

// Complete reports lock eligibility. Computed from the raw counts, not the
// rounded percentage, so rounding can never admit an early lock.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Answered == p.Total
}

// PlanningState is the derived read model for a task's planning workflow.
// It is recomputed on every read and never persisted.
type PlanningState struct {
	TaskID    string     `json:"task_id"`
	Questions []Question `json:"questions"`
	Spec      *Spec      `json:"spec,omitempty"`
	Progress  Progress   `json:"progress"`
	IsLocked  bool       `json:"is_locked"`
}
