package planning

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planlock/planlock/internal/catalog"
	"github.com/planlock/planlock/internal/storage"
	"github.com/planlock/planlock/internal/storage/sqlite"
	"github.com/planlock/planlock/internal/types"
)

func newTestService(t *testing.T) (*Service, storage.Storage) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "planning-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewService(store, catalog.Default(), nil), store
}

func newTestTask(t *testing.T, store storage.Storage) *types.Task {
	t.Helper()

	task := &types.Task{
		ID:     uuid.New().String(),
		Title:  "Relaunch the docs site",
		Status: types.StatusCreated,
	}
	require.NoError(t, store.CreateTask(context.Background(), task))
	return task
}

func TestGenerateQuestions(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	battery := catalog.Default().All()
	require.Len(t, state.Questions, len(battery))
	assert.Equal(t, len(battery), state.Progress.Total)
	assert.Equal(t, 0, state.Progress.Answered)
	assert.False(t, state.IsLocked)

	// Sort positions are 0..n-1 with no gaps, and ordering matches category
	// order then template order
	for i, q := range state.Questions {
		assert.Equal(t, i, q.SortPosition)
		assert.Equal(t, battery[i].Category, q.Category)
		assert.Equal(t, battery[i].Prompt, q.Prompt)
	}

	// Category sequence is non-decreasing in canonical order
	rank := make(map[types.Category]int)
	for i, c := range types.Categories() {
		rank[c] = i
	}
	for i := 1; i < len(state.Questions); i++ {
		assert.LessOrEqual(t, rank[state.Questions[i-1].Category], rank[state.Questions[i].Category])
	}
}

func TestGenerateChoiceIdentifiers(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	battery := catalog.Default().All()
	sawChoices := false
	for i, q := range state.Questions {
		tmpl := battery[i]
		if len(tmpl.Choices) == 0 {
			assert.Equal(t, types.KindText, q.Kind)
			assert.Empty(t, q.Choices)
			continue
		}
		sawChoices = true
		assert.Equal(t, types.KindMultipleChoice, q.Kind)
		require.Len(t, q.Choices, len(tmpl.Choices))
		for k, c := range q.Choices {
			// k-th choice gets the k-th letter starting at 'A'
			assert.Equal(t, string(rune('A'+k)), c.ID)
			assert.Equal(t, tmpl.Choices[k], c.Label)
		}
	}
	assert.True(t, sawChoices, "default catalog should include multiple-choice templates")
}

func TestGenerateTwiceFails(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	first, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	_, err = service.GenerateQuestions(ctx, task.ID)
	assert.ErrorIs(t, err, types.ErrAlreadyGenerated)

	// Stored battery unchanged
	count, err := store.CountQuestions(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Progress.Total, count)
}

func TestGenerateTaskNotFound(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GenerateQuestions(context.Background(), "no-such-task")
	assert.ErrorIs(t, err, types.ErrTaskNotFound)
}

func TestAnswerQuestion(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)
	qid := state.Questions[0].ID

	q, err := service.AnswerQuestion(ctx, task.ID, qid, "Launch something new")
	require.NoError(t, err)
	require.NotNil(t, q.Answer)
	assert.Equal(t, "Launch something new", *q.Answer)
	require.NotNil(t, q.AnsweredAt)

	// Progress reflects the answer on the next read
	state, err = service.GetPlanningState(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Progress.Answered)
}

func TestAnswerStoresValueVerbatim(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	// Find a multiple-choice question; the mutator must accept free text on
	// it, which is what the "Other: <text>" affordance relies on
	var qid string
	for _, q := range state.Questions {
		if q.Kind == types.KindMultipleChoice {
			qid = q.ID
			break
		}
	}
	require.NotEmpty(t, qid)

	q, err := service.AnswerQuestion(ctx, task.ID, qid, "Other: a hand-rolled static site")
	require.NoError(t, err)
	assert.Equal(t, "Other: a hand-rolled static site", *q.Answer)
}

func TestAnswerEmptyValue(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	_, err = service.AnswerQuestion(ctx, task.ID, state.Questions[0].ID, "")
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = service.AnswerQuestion(ctx, task.ID, state.Questions[0].ID, "   ")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestAnswerQuestionNotFound(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	_, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	_, err = service.AnswerQuestion(ctx, task.ID, "no-such-question", "value")
	assert.ErrorIs(t, err, types.ErrQuestionNotFound)
}

func TestLockSpecIncomplete(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	// Answer all but one
	for _, q := range state.Questions[1:] {
		_, err := service.AnswerQuestion(ctx, task.ID, q.ID, "answered")
		require.NoError(t, err)
	}

	_, err = service.LockSpec(ctx, task.ID)
	assert.ErrorIs(t, err, types.ErrIncomplete)
}

func TestLockSpecZeroQuestions(t *testing.T) {
	service, store := newTestService(t)
	task := newTestTask(t, store)

	// A task with no generated questions can never lock
	_, err := service.LockSpec(context.Background(), task.ID)
	assert.ErrorIs(t, err, types.ErrIncomplete)
}

func TestGetPlanningStateZeroQuestions(t *testing.T) {
	service, store := newTestService(t)
	task := newTestTask(t, store)

	state, err := service.GetPlanningState(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Empty(t, state.Questions)
	assert.Nil(t, state.Spec)
	assert.Equal(t, types.Progress{Total: 0, Answered: 0, Percentage: 0}, state.Progress)
	assert.False(t, state.IsLocked)
}

func TestGetPlanningStateNotFound(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetPlanningState(context.Background(), "no-such-task")
	assert.ErrorIs(t, err, types.ErrTaskNotFound)
}

func TestGetPlanningStateIdempotent(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	_, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)

	first, err := service.GetPlanningState(ctx, task.ID)
	require.NoError(t, err)
	second, err := service.GetPlanningState(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlanningEndToEnd(t *testing.T) {
	service, store := newTestService(t)
	ctx := context.Background()
	task := newTestTask(t, store)

	// Generate: the 8 categories produce a deterministic battery
	state, err := service.GenerateQuestions(ctx, task.ID)
	require.NoError(t, err)
	total := state.Progress.Total
	require.Equal(t, catalog.Default().Len(), total)

	seen := make(map[types.Category]bool)
	for _, q := range state.Questions {
		seen[q.Category] = true
	}
	assert.Len(t, seen, len(types.Categories()))

	// Answer every question
	for _, q := range state.Questions {
		_, err := service.AnswerQuestion(ctx, task.ID, q.ID, "decided: "+q.Prompt)
		require.NoError(t, err)
	}

	state, err = service.GetPlanningState(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, state.Progress.Percentage)
	assert.True(t, state.Progress.Complete())

	// Lock produces a spec referencing the task
	spec, err := service.LockSpec(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, spec.TaskID)
	assert.NotEmpty(t, spec.Markdown)
	assert.Contains(t, spec.Markdown, task.Title)

	// Locked is terminal
	state, err = service.GetPlanningState(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, state.IsLocked)
	require.NotNil(t, state.Spec)
	assert.Equal(t, spec.ID, state.Spec.ID)

	_, err = service.AnswerQuestion(ctx, task.ID, state.Questions[0].ID, "too late")
	assert.ErrorIs(t, err, types.ErrLocked)

	_, err = service.LockSpec(ctx, task.ID)
	assert.ErrorIs(t, err, types.ErrAlreadyLocked)
}
