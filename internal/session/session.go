// Package session holds the state of one interactive quiz run: the
// current items, the user's selections, and the growing history used
// for deduplication.
package session

import (
	"github.com/google/uuid"

	"github.com/mujeeb/quizdev/internal/quizgen"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	// PhaseEmpty means no quiz has been loaded yet.
	PhaseEmpty Phase = iota

	// PhaseReady means items are loaded and accepting answers.
	PhaseReady

	// PhaseScored means the current items have been submitted and scored.
	PhaseScored
)

// Unanswered is the sentinel for an item the user has not answered.
// Real answers are never empty (options and True/False are non-empty
// strings), so the empty string is unambiguous.
const Unanswered = ""

// Session is the mutable state of one interactive run. It is owned by
// a single caller and mutated only through its methods; all operations
// run on one goroutine.
type Session struct {
	// ID identifies this run in recorded events.
	ID string

	// Items is the current quiz, replaced wholesale on each successful
	// generation.
	Items []quizgen.Item

	// Answers holds the user's selection per item, index-aligned with
	// Items. Reset to Unanswered whenever Items is replaced.
	Answers []string

	// History is the append-only record of every item ever accepted
	// into Items during this session. Never pruned.
	History []quizgen.Item

	// Phase is the current lifecycle state.
	Phase Phase
}

// New creates an empty session.
func New() *Session {
	return &Session{
		ID:    uuid.NewString(),
		Phase: PhaseEmpty,
	}
}

// ApplyGeneration installs a filtered generation result: Items is
// replaced, Answers is reset to one Unanswered entry per item, the
// items are appended to History, and the session becomes Ready. This is
// the only mutation the generation path performs, and it is all-or-
// nothing: a failed generation never reaches this method, so the prior
// state survives any error intact. An empty result is valid and still
// transitions to Ready.
func (s *Session) ApplyGeneration(items []quizgen.Item) {
	s.Items = items
	s.Answers = make([]string, len(items))
	for i := range s.Answers {
		s.Answers[i] = Unanswered
	}
	s.History = append(s.History, items...)
	s.Phase = PhaseReady
}

// SetAnswer records the user's selection for the item at index i.
// Ignored when the session is not accepting answers or i is out of
// range. Changing an answer any number of times keeps the session
// Ready.
func (s *Session) SetAnswer(i int, answer string) {
	if s.Phase != PhaseReady || i < 0 || i >= len(s.Answers) {
		return
	}
	s.Answers[i] = answer
}

// Submit scores the current items and moves the session to Scored.
// Items, Answers and History are left untouched; submitting with
// unanswered items is allowed, and a zero-item quiz scores 0 out of 0.
func (s *Session) Submit() Result {
	result := Score(s.Items, s.Answers)
	s.Phase = PhaseScored
	return result
}
