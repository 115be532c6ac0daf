package planning

import (
	"context"
	"fmt"
	"strings"

	"github.com/planlock/planlock/internal/types"
)

// AnswerQuestion records an answer on one question. The value is stored
// verbatim regardless of question kind: multiple-choice questions accept any
// string, which is what lets the "Other: <text>" convention share the same
// storage contract as a plain choice label. Re-answering overwrites (last
// write wins) and refreshes the timestamp, up until the task is locked.
func (s *Service) AnswerQuestion(ctx context.Context, taskID, questionID, value string) (*types.Question, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("answer value is empty: %w", types.ErrInvalidInput)
	}

	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrTaskNotFound)
	}

	// The storage layer validates the question against the owning task and
	// rejects the write with types.ErrLocked once a spec exists, inside one
	// transaction.
	return s.store.UpdateAnswer(ctx, taskID, questionID, value, s.now())
}
