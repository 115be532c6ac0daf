package planning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planlock/planlock/internal/types"
)

// LockSpec performs the irreversible lock transition. It requires every
// question answered (and at least one question); on success the synthesized
// spec document is persisted and the task is permanently read-only for the
// planning workflow.
//
// The completeness check, document synthesis, and spec insert all run inside
// the storage layer's single transaction, so a concurrent answer is either
// included in the document or rejected with types.ErrLocked, never lost.
func (s *Service) LockSpec(ctx context.Context, taskID string) (*types.Spec, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrTaskNotFound)
	}

	return s.store.LockTask(ctx, taskID, uuid.New().String(), func(task *types.Task, questions []*types.Question) (string, error) {
		return s.synth.Synthesize(task, entriesFromQuestions(questions))
	})
}
