package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/planlock/planlock/internal/storage"
	"github.com/planlock/planlock/internal/types"
)

// GetSpecForTask retrieves the spec for a task. Returns (nil, nil) if the
// task has not been locked.
func (s *SQLiteStorage) GetSpecForTask(ctx context.Context, taskID string) (*types.Spec, error) {
	var spec types.Spec
	err := s.db.QueryRowContext(ctx, `
		SELECT id, task_id, markdown, created_at FROM specs WHERE task_id = ?
	`, taskID).Scan(&spec.ID, &spec.TaskID, &spec.Markdown, &spec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spec: %w", err)
	}
	return &spec, nil
}

// LockTask performs the one-way lock transition in a single transaction.
// The question set is re-read inside the transaction and the document is
// synthesized from that snapshot, so the stored spec is always consistent
// with the answers it was built from; a concurrent answer either commits
// first and is included, or is rejected once the spec row exists. The
// UNIQUE constraint on specs.task_id guarantees at most one spec per task
// even if two lock attempts race.
func (s *SQLiteStorage) LockTask(ctx context.Context, taskID, specID string, synthesize storage.SynthesizeFunc) (*types.Spec, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Verify the task exists
	var task types.Task
	err = tx.QueryRowContext(ctx, `
		SELECT id, title, description, status, created_at, updated_at FROM tasks WHERE id = ?
	`, taskID).Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.CreatedAt, &task.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrTaskNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	// Lock is one-time per task
	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM specs WHERE task_id = ?`, taskID).Scan(&existing)
	if err == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrAlreadyLocked)
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check spec: %w", err)
	}

	// Snapshot the question set and verify completeness. Eligibility is
	// answered == total with total > 0, never a rounded percentage.
	rows, err := tx.QueryContext(ctx, questionSelect+` WHERE task_id = ? ORDER BY sort_position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	var questions []*types.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	rows.Close()

	if len(questions) == 0 {
		return nil, fmt.Errorf("task %s has no questions: %w", taskID, types.ErrIncomplete)
	}
	for _, q := range questions {
		if !q.Answered() {
			return nil, fmt.Errorf("question %s unanswered: %w", q.ID, types.ErrIncomplete)
		}
	}

	markdown, err := synthesize(&task, questions)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize spec document: %w", err)
	}

	spec := &types.Spec{
		ID:        specID,
		TaskID:    taskID,
		Markdown:  markdown,
		CreatedAt: time.Now(),
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO specs (id, task_id, markdown, created_at) VALUES (?, ?, ?, ?)
	`, spec.ID, spec.TaskID, spec.Markdown, spec.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, fmt.Errorf("task %s: %w", taskID, types.ErrAlreadyLocked)
		}
		return nil, fmt.Errorf("failed to insert spec: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		types.StatusLocked, time.Now(), taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return spec, nil
}
