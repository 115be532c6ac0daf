package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/planlock/planlock/internal/types"
)

// CountQuestions returns the number of questions generated for a task
func (s *SQLiteStorage) CountQuestions(ctx context.Context, taskID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE task_id = ?`, taskID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// GetQuestion retrieves a question by ID. Returns (nil, nil) if not found.
func (s *SQLiteStorage) GetQuestion(ctx context.Context, id string) (*types.Question, error) {
	row := s.db.QueryRowContext(ctx, questionSelect+` WHERE id = ?`, id)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// ListQuestions returns a task's questions ordered by sort position
func (s *SQLiteStorage) ListQuestions(ctx context.Context, taskID string) ([]*types.Question, error) {
	rows, err := s.db.QueryContext(ctx, questionSelect+` WHERE task_id = ? ORDER BY sort_position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var questions []*types.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	return questions, nil
}

// InsertQuestionBatch persists a freshly generated battery inside a single
// transaction. The existence check and the batch insert are one atomic unit
// so two concurrent generate calls cannot both succeed; the loser sees
// types.ErrAlreadyGenerated. The owning task moves to planning status in the
// same transaction.
func (s *SQLiteStorage) InsertQuestionBatch(ctx context.Context, taskID string, questions []*types.Question) error {
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if q.TaskID != taskID {
			return fmt.Errorf("question %s belongs to task %s, not %s", q.ID, q.TaskID, taskID)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Verify the task exists
	var status string
	err = tx.QueryRowContext(ctx, `SELECT status FROM tasks WHERE id = ?`, taskID).Scan(&status)
	if err == sql.ErrNoRows {
		return fmt.Errorf("task %s: %w", taskID, types.ErrTaskNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check task: %w", err)
	}

	// Generation is one-time per task
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE task_id = ?`, taskID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count existing questions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("task %s has %d questions: %w", taskID, count, types.ErrAlreadyGenerated)
	}

	for _, q := range questions {
		choices, err := marshalChoices(q.Choices)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO questions (id, task_id, category, prompt, kind, choices, answer, answered_at, sort_position)
			VALUES (?, ?, ?, ?, ?, ?, NULL, NULL, ?)
		`, q.ID, q.TaskID, q.Category, q.Prompt, q.Kind, choices, q.SortPosition)
		if err != nil {
			if isUniqueConstraintError(err) {
				return fmt.Errorf("task %s: %w", taskID, types.ErrAlreadyGenerated)
			}
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		types.StatusPlanning, time.Now(), taskID)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	return tx.Commit()
}

// UpdateAnswer overwrites a question's answer and timestamp. The lock check
// and the write happen in one transaction: an answer racing a lock either
// commits before the spec row exists or is rejected with types.ErrLocked.
func (s *SQLiteStorage) UpdateAnswer(ctx context.Context, taskID, questionID, value string, answeredAt time.Time) (*types.Question, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The question must exist and belong to the task the caller named
	row := tx.QueryRowContext(ctx, questionSelect+` WHERE id = ? AND task_id = ?`, questionID, taskID)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question %s: %w", questionID, types.ErrQuestionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	// A locked task is permanently read-only
	var specID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM specs WHERE task_id = ?`, taskID).Scan(&specID)
	if err == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrLocked)
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check spec: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE questions SET answer = ?, answered_at = ? WHERE id = ?`,
		value, answeredAt, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to update answer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	q.Answer = &value
	q.AnsweredAt = &answeredAt
	return q, nil
}

const questionSelect = `
	SELECT id, task_id, category, prompt, kind, choices, answer, answered_at, sort_position
	FROM questions`

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(row scanner) (*types.Question, error) {
	var q types.Question
	var choices sql.NullString
	var answer sql.NullString
	var answeredAt sql.NullTime

	err := row.Scan(&q.ID, &q.TaskID, &q.Category, &q.Prompt, &q.Kind, &choices, &answer, &answeredAt, &q.SortPosition)
	if err != nil {
		return nil, err
	}

	if choices.Valid && choices.String != "" {
		if err := json.Unmarshal([]byte(choices.String), &q.Choices); err != nil {
			return nil, fmt.Errorf("failed to parse choices for question %s: %w", q.ID, err)
		}
	}
	if answer.Valid {
		q.Answer = &answer.String
	}
	if answeredAt.Valid {
		q.AnsweredAt = &answeredAt.Time
	}
	return &q, nil
}

// marshalChoices serializes a choice list to the JSON text column.
// Free-text questions store NULL.
func marshalChoices(choices []types.Choice) (interface{}, error) {
	if len(choices) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(choices)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal choices: %w", err)
	}
	return string(data), nil
}
