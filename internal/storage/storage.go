// Package storage defines the persistence interface for tasks, questions,
// and locked specs.
package storage

import (
	"context"
	"time"

	"github.com/planlock/planlock/internal/types"
)

// SynthesizeFunc builds the spec document body from a task and its fully
// answered question set. Implementations must be pure: LockTask calls the
// function inside its critical section so the document is always consistent
// with the answers it was built from.
type SynthesizeFunc func(task *types.Task, questions []*types.Question) (string, error)

// Storage defines the interface for planning storage backends.
//
// Lookups return (nil, nil) when the record is absent. The compound
// operations (InsertQuestionBatch, UpdateAnswer, LockTask) run their
// check-and-insert as a single atomic unit and surface domain conditions as
// the sentinel errors in the types package; any other error is an internal
// storage failure.
type Storage interface {
	// Tasks
	CreateTask(ctx context.Context, task *types.Task) error
	GetTask(ctx context.Context, id string) (*types.Task, error)
	ListTasks(ctx context.Context) ([]*types.Task, error)

	// Questions
	CountQuestions(ctx context.Context, taskID string) (int, error)
	GetQuestion(ctx context.Context, id string) (*types.Question, error)
	ListQuestions(ctx context.Context, taskID string) ([]*types.Question, error)

	// InsertQuestionBatch persists a freshly generated battery and moves the
	// task to planning status in the same transaction. Fails with
	// types.ErrTaskNotFound if the task is absent and types.ErrAlreadyGenerated
	// if the task already has questions.
	InsertQuestionBatch(ctx context.Context, taskID string, questions []*types.Question) error

	// UpdateAnswer overwrites a question's answer and timestamp. Fails with
	// types.ErrQuestionNotFound if the question is absent or owned by a
	// different task, and types.ErrLocked if the owning task has a spec.
	// Returns the updated question.
	UpdateAnswer(ctx context.Context, taskID, questionID, value string, answeredAt time.Time) (*types.Question, error)

	// Specs
	GetSpecForTask(ctx context.Context, taskID string) (*types.Spec, error)

	// LockTask performs the one-way lock transition: inside a single
	// transaction it verifies no spec exists, re-reads the question set,
	// verifies every question is answered, synthesizes the document, inserts
	// the spec row, and moves the task to locked status. Fails with
	// types.ErrTaskNotFound, types.ErrAlreadyLocked, or types.ErrIncomplete.
	LockTask(ctx context.Context, taskID, specID string, synthesize SynthesizeFunc) (*types.Spec, error)

	// Lifecycle
	Close() error
}

// Config holds database configuration
type Config struct {
	// Path is the SQLite database file path.
	// Special value ":memory:" creates an in-memory database (useful for tests).
	Path string
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Path: ".planlock/planlock.db",
	}
}
