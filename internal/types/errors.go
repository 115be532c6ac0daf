package types

import "errors"

// Domain errors returned by the planning core and the storage layer.
// Callers match these with errors.Is; anything that doesn't match is an
// internal failure (driver, connectivity) and may be retried, while these
// sentinels are terminal for the caller's intent.
var (
	// ErrTaskNotFound means the referenced task does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrQuestionNotFound means the referenced question does not exist,
	// or does not belong to the task the caller named
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAlreadyGenerated means the task already has its question battery.
	// Generation is a one-time, non-repeatable event per task.
	ErrAlreadyGenerated = errors.New("questions already generated for task")

	// ErrLocked means the task's plan has been locked into a spec and no
	// answer may be altered or added
	ErrLocked = errors.New("task plan is locked")

	// ErrAlreadyLocked means a spec already exists for the task; lock is
	// one-way and must not be attempted twice
	ErrAlreadyLocked = errors.New("spec already exists for task")

	// ErrIncomplete means lock was attempted with unanswered questions
	// (or no questions at all)
	ErrIncomplete = errors.New("not all questions answered")

	// ErrInvalidInput means the caller supplied an empty or malformed value
	ErrInvalidInput = errors.New("invalid input")
)
