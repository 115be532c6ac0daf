package planning

import (
	"context"
	"fmt"

	"github.com/planlock/planlock/internal/types"
)

// GetPlanningState assembles the derived read model for a task: its question
// battery in sort order, the spec if the plan has been locked, and the
// progress counters. It performs no mutation and always succeeds for an
// existing task, including one with no generated questions yet.
func (s *Service) GetPlanningState(ctx context.Context, taskID string) (*types.PlanningState, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrTaskNotFound)
	}

	questions, err := s.store.ListQuestions(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	spec, err := s.store.GetSpecForTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get spec: %w", err)
	}

	state := &types.PlanningState{
		TaskID:    taskID,
		Questions: make([]types.Question, len(questions)),
		Spec:      spec,
		Progress:  ComputeProgress(questions),
		IsLocked:  spec != nil,
	}
	for i, q := range questions {
		state.Questions[i] = *q
	}
	return state, nil
}
