package session

import (
	"testing"

	"github.com/mujeeb/quizdev/internal/quizgen"
)

func item(question string) quizgen.Item {
	return quizgen.Item{
		Question:    question,
		Kind:        quizgen.KindMultipleChoice,
		Options:     []string{"A", "B", "C", "D"},
		Answer:      "A",
		Explanation: "A is right.",
	}
}

func TestNew(t *testing.T) {
	s := New()
	if s.ID == "" {
		t.Error("expected a session ID")
	}
	if s.Phase != PhaseEmpty {
		t.Errorf("expected PhaseEmpty, got %v", s.Phase)
	}
	if len(s.Items) != 0 || len(s.History) != 0 {
		t.Error("new session should carry no items or history")
	}
}

func TestApplyGeneration(t *testing.T) {
	s := New()
	s.ApplyGeneration([]quizgen.Item{item("q1"), item("q2")})

	if s.Phase != PhaseReady {
		t.Errorf("expected PhaseReady, got %v", s.Phase)
	}
	if len(s.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(s.Items))
	}
	if len(s.Answers) != 2 {
		t.Fatalf("answers must be index-aligned with items, got %d", len(s.Answers))
	}
	for i, a := range s.Answers {
		if a != Unanswered {
			t.Errorf("answer %d not reset: %q", i, a)
		}
	}
	if len(s.History) != 2 {
		t.Errorf("expected items appended to history, got %d", len(s.History))
	}
}

func TestApplyGeneration_ReplacesWholesale(t *testing.T) {
	s := New()
	s.ApplyGeneration([]quizgen.Item{item("q1"), item("q2")})
	s.SetAnswer(0, "B")

	s.ApplyGeneration([]quizgen.Item{item("q3")})

	if len(s.Items) != 1 || s.Items[0].Question != "q3" {
		t.Errorf("expected old items gone, got %v", s.Items)
	}
	if len(s.Answers) != 1 || s.Answers[0] != Unanswered {
		t.Errorf("expected answers reset, got %v", s.Answers)
	}
	if len(s.History) != 3 {
		t.Errorf("history must accumulate across generations, got %d", len(s.History))
	}
}

func TestApplyGeneration_EmptyResult(t *testing.T) {
	s := New()
	s.ApplyGeneration(nil)

	if s.Phase != PhaseReady {
		t.Errorf("empty generation should still be Ready, got %v", s.Phase)
	}

	result := s.Submit()
	if result.Score != 0 || result.Total != 0 {
		t.Errorf("expected 0/0, got %d/%d", result.Score, result.Total)
	}
}

func TestSetAnswer(t *testing.T) {
	s := New()
	s.ApplyGeneration([]quizgen.Item{item("q1")})

	s.SetAnswer(0, "B")
	if s.Answers[0] != "B" {
		t.Errorf("expected answer recorded, got %q", s.Answers[0])
	}

	// Changing an answer is allowed any number of times.
	s.SetAnswer(0, "A")
	if s.Answers[0] != "A" {
		t.Errorf("expected answer updated, got %q", s.Answers[0])
	}
	if s.Phase != PhaseReady {
		t.Errorf("answering must not change phase, got %v", s.Phase)
	}
}

func TestSetAnswer_Guards(t *testing.T) {
	s := New()
	s.SetAnswer(0, "A") // empty session: no-op

	s.ApplyGeneration([]quizgen.Item{item("q1")})
	s.SetAnswer(-1, "A")
	s.SetAnswer(1, "A")
	if s.Answers[0] != Unanswered {
		t.Errorf("out-of-range answers must be ignored, got %v", s.Answers)
	}

	s.Submit()
	s.SetAnswer(0, "B")
	if s.Answers[0] != Unanswered {
		t.Errorf("scored session must not accept answers, got %v", s.Answers)
	}
}

func TestSubmit(t *testing.T) {
	s := New()
	s.ApplyGeneration([]quizgen.Item{item("q1"), item("q2")})
	s.SetAnswer(0, "A")
	s.SetAnswer(1, "B")

	result := s.Submit()

	if s.Phase != PhaseScored {
		t.Errorf("expected PhaseScored, got %v", s.Phase)
	}
	if result.Score != 1 || result.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", result.Score, result.Total)
	}
	if len(s.Items) != 2 || len(s.History) != 2 {
		t.Error("submit must leave items and history untouched")
	}
}

func TestGenerateAfterSubmit(t *testing.T) {
	s := New()
	s.ApplyGeneration([]quizgen.Item{item("q1")})
	s.Submit()

	s.ApplyGeneration([]quizgen.Item{item("q2")})
	if s.Phase != PhaseReady {
		t.Errorf("a scored session accepts a fresh quiz, got %v", s.Phase)
	}
	if len(s.History) != 2 {
		t.Errorf("history survives scoring, got %d", len(s.History))
	}
}

func TestDedupAcrossGenerations(t *testing.T) {
	s := New()
	first := []quizgen.Item{item("q1"), item("q2")}
	s.ApplyGeneration(first)

	// A second batch overlapping with history: the caller filters before
	// applying, and only the survivors enter the session.
	second := []quizgen.Item{item("q1"), item("q3")}
	fresh := quizgen.FilterSeen(second, s.History)
	s.ApplyGeneration(fresh)

	if len(s.Items) != 1 || s.Items[0].Question != "q3" {
		t.Errorf("expected only the unseen item, got %v", s.Items)
	}
	if len(s.History) != 3 {
		t.Errorf("expected history of 3, got %d", len(s.History))
	}
}
