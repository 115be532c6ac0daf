// Package planning implements the guided planning workflow for a task:
// generating the clarifying-question battery, collecting answers, computing
// progress, and the one-way lock transition that freezes the plan into an
// immutable spec document.
//
// The state machine for a task's planning sub-state is:
//
//	Uninitialized --GenerateQuestions--> InProgress --(all answered)--> eligible --LockSpec--> Locked
//
// Locked is terminal: every mutation afterwards fails with types.ErrLocked.
package planning

import (
	"time"

	"github.com/planlock/planlock/internal/catalog"
	"github.com/planlock/planlock/internal/storage"
)

// Service drives the planning workflow over a storage backend. The catalog
// and synthesizer are injected so tests can substitute alternates without
// process-wide side effects.
type Service struct {
	store   storage.Storage
	catalog *catalog.Catalog
	synth   Synthesizer
	now     func() time.Time
}

// NewService creates a planning service. A nil synthesizer falls back to
// the built-in markdown synthesizer.
func NewService(store storage.Storage, cat *catalog.Catalog, synth Synthesizer) *Service {
	if synth == nil {
		synth = &MarkdownSynthesizer{}
	}
	return &Service{
		store:   store,
		catalog: cat,
		synth:   synth,
		now:     time.Now,
	}
}
