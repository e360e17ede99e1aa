package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/screen"
)

// fakeScreen records Init calls and answers to a fixed name.
type fakeScreen struct {
	name  string
	inits int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func newTestRouter() (*Router, *fakeScreen) {
	home := &fakeScreen{name: "setup"}
	return New(home), home
}

func TestPushAndPop(t *testing.T) {
	r, _ := newTestRouter()

	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "quiz" {
		t.Errorf("active = %q, want quiz", got)
	}
	if quiz.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", quiz.inits)
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth after pop = %d, want 1", r.Depth())
	}
	if got := r.Active().Title(); got != "setup" {
		t.Errorf("active after pop = %q, want setup", got)
	}
}

func TestPopKeepsHome(t *testing.T) {
	r, _ := newTestRouter()

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want home to survive pops", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r, _ := newTestRouter()
	r.Push(&fakeScreen{name: "quiz"})

	results := &fakeScreen{name: "results"}
	r.Replace(results)

	if r.Depth() != 2 {
		t.Errorf("depth after replace = %d, want 2", r.Depth())
	}
	if got := r.Active().Title(); got != "results" {
		t.Errorf("active = %q, want results", got)
	}
	if results.inits != 1 {
		t.Errorf("replaced-in screen inits = %d, want 1", results.inits)
	}

	// Popping the replacement lands on home, not on the replaced screen.
	r.Pop()
	if got := r.Active().Title(); got != "setup" {
		t.Errorf("active after pop = %q, want setup", got)
	}
}

func TestNavigationMessages(t *testing.T) {
	r, _ := newTestRouter()

	quiz := &fakeScreen{name: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})
	if got := r.Active().Title(); got != "quiz" {
		t.Fatalf("active after push msg = %q, want quiz", got)
	}

	results := &fakeScreen{name: "results"}
	r.Update(ReplaceScreenMsg{Screen: results})
	if got := r.Active().Title(); got != "results" {
		t.Fatalf("active after replace msg = %q, want results", got)
	}
	if results.inits != 1 {
		t.Errorf("inits via message = %d, want 1", results.inits)
	}

	r.Update(PopScreenMsg{})
	if got := r.Active().Title(); got != "setup" {
		t.Errorf("active after pop msg = %q, want setup", got)
	}
}
