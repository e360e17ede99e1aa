package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/session"
)

func testResult() session.Result {
	return session.Result{
		Items: []session.ItemResult{
			{
				Question:      "What color is the sky?",
				YourAnswer:    "Blue",
				CorrectAnswer: "Blue",
				Correct:       true,
				Explanation:   "Rayleigh scattering favors shorter wavelengths.",
			},
			{
				Question:      "Water boils at 90C at sea level.",
				YourAnswer:    session.Unanswered,
				CorrectAnswer: "False",
				Correct:       false,
				Explanation:   "Water boils at 100C at standard pressure.",
			},
		},
		Score: 1,
		Total: 2,
	}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if !strings.Contains(view, "You scored 1 out of 2") {
		t.Errorf("expected headline score in view:\n%s", view)
	}
	if !strings.Contains(view, "What color is the sky?") {
		t.Error("expected first question in view")
	}
	if !strings.Contains(view, "(not answered)") {
		t.Error("expected unanswered marker in view")
	}
	if !strings.Contains(view, "Correct answer: False") {
		t.Error("expected correct answer shown for the missed item")
	}
}

func TestResultsScreen_EmptyQuiz(t *testing.T) {
	s := New(session.Result{})
	view := s.View(80, 24)
	if !strings.Contains(view, "You scored 0 out of 0") {
		t.Errorf("expected zero score headline:\n%s", view)
	}
	if !strings.Contains(view, "no questions to score") {
		t.Error("expected empty-quiz message")
	}
}

func TestResultsScreen_Scroll(t *testing.T) {
	s := New(testResult())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 1 {
		t.Errorf("offset after down = %d, want 1", s.offset)
	}
	// Clamped at the last item.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 1 {
		t.Errorf("offset after second down = %d, want 1", s.offset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("offset after up = %d, want 0", s.offset)
	}
	// Clamped at the top.
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.offset != 0 {
		t.Errorf("offset after second up = %d, want 0", s.offset)
	}
}

func TestResultsScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testResult())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Errorf("expected a command on key %q (pop)", code)
		}
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	hints := s.KeyHints()
	if len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
