package planning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planlock/planlock/internal/catalog"
	"github.com/planlock/planlock/internal/types"
)

// GenerateQuestions materializes the catalog into the task's question
// battery. Generation is a one-time event per task: a second call fails with
// types.ErrAlreadyGenerated and leaves the stored battery untouched. The
// task moves to planning status as part of the same transaction that inserts
// the batch.
func (s *Service) GenerateQuestions(ctx context.Context, taskID string) (*types.PlanningState, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task %s: %w", taskID, types.ErrTaskNotFound)
	}

	questions := s.buildBattery(taskID)
	if err := s.store.InsertQuestionBatch(ctx, taskID, questions); err != nil {
		return nil, err
	}

	return s.GetPlanningState(ctx, taskID)
}

// buildBattery instantiates every catalog template for one task. Templates
// are visited in category order, then template order within a category, and
// sort positions increase monotonically from 0 across the whole battery
// (not per category). The k-th choice of a template gets identifier 'A'+k.
func (s *Service) buildBattery(taskID string) []*types.Question {
	var questions []*types.Question
	position := 0
	for _, tmpl := range s.catalog.All() {
		questions = append(questions, instantiate(taskID, tmpl, position))
		position++
	}
	return questions
}

func instantiate(taskID string, tmpl catalog.Template, position int) *types.Question {
	q := &types.Question{
		ID:           uuid.New().String(),
		TaskID:       taskID,
		Category:     tmpl.Category,
		Prompt:       tmpl.Prompt,
		Kind:         types.KindText,
		SortPosition: position,
	}
	if len(tmpl.Choices) > 0 {
		q.Kind = types.KindMultipleChoice
		q.Choices = make([]types.Choice, len(tmpl.Choices))
		for k, label := range tmpl.Choices {
			q.Choices[k] = types.Choice{ID: catalog.ChoiceID(k), Label: label}
		}
	}
	return q
}
