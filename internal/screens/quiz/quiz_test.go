package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/content"
	"github.com/mujeeb/quizdev/internal/llm"
	"github.com/mujeeb/quizdev/internal/quizgen"
	"github.com/mujeeb/quizdev/internal/session"
	"github.com/mujeeb/quizdev/internal/store"
)

// mockGenerator implements quizgen.Generator for testing.
type mockGenerator struct {
	items []quizgen.Item
	err   error
	calls int
}

func (m *mockGenerator) Generate(_ context.Context, _ quizgen.Params, _ []quizgen.Item) ([]quizgen.Item, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	generated []store.QuizGeneratedEventData
	scored    []store.QuizScoredEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizGenerated(_ context.Context, data store.QuizGeneratedEventData) error {
	m.generated = append(m.generated, data)
	return nil
}
func (m *mockEventRepo) AppendQuizScored(_ context.Context, data store.QuizScoredEventData) error {
	m.scored = append(m.scored, data)
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) QuizStats(_ context.Context) (*store.QuizStats, error) {
	return &store.QuizStats{}, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testItems() []quizgen.Item {
	return []quizgen.Item{
		{
			Question:    "What color is the sky?",
			Kind:        quizgen.KindMultipleChoice,
			Options:     []string{"Blue", "Green", "Red", "Yellow"},
			Answer:      "Blue",
			Explanation: "Rayleigh scattering.",
		},
		{
			Question:    "Water boils at 100C at sea level.",
			Kind:        quizgen.KindTrueFalse,
			Answer:      "True",
			Explanation: "At standard pressure.",
		},
	}
}

func testParams() quizgen.Params {
	return quizgen.Params{
		Count:      2,
		Kind:       quizgen.KindMultipleChoice,
		Difficulty: quizgen.DifficultyMedium,
		Language:   quizgen.LanguageEnglish,
		Subject:    content.Topic{Name: "Physics"},
	}
}

func testQuizScreen(gen *mockGenerator) (*QuizScreen, *mockEventRepo, *session.Session) {
	repo := &mockEventRepo{}
	sess := session.New()
	q := New(gen, repo, sess, testParams())
	return q, repo, sess
}

func runGeneration(t *testing.T, q *QuizScreen) quizReadyMsg {
	t.Helper()
	cmd := q.Init()
	if cmd == nil {
		t.Fatal("expected a generation command from Init")
	}
	msg, ok := cmd().(quizReadyMsg)
	if !ok {
		t.Fatal("expected a quizReadyMsg from the generation command")
	}
	return msg
}

func TestQuizScreen_GenerationApplies(t *testing.T) {
	gen := &mockGenerator{items: testItems()}
	q, repo, sess := testQuizScreen(gen)

	msg := runGeneration(t, q)
	q.Update(msg)

	if q.loading {
		t.Error("expected loading to clear")
	}
	if len(sess.Items) != 2 {
		t.Fatalf("session items = %d, want 2", len(sess.Items))
	}
	if len(q.choices) != 2 {
		t.Fatalf("choices = %d, want 2", len(q.choices))
	}
	// True/False items always get the fixed pair.
	if len(q.choices[1].Options) != 2 || q.choices[1].Options[0] != "True" {
		t.Errorf("true/false options = %v", q.choices[1].Options)
	}
	if q.shortfall != 0 {
		t.Errorf("shortfall = %d, want 0", q.shortfall)
	}

	if len(repo.generated) != 1 {
		t.Fatalf("generated events = %d, want 1", len(repo.generated))
	}
	ev := repo.generated[0]
	if ev.Requested != 2 || ev.Accepted != 2 {
		t.Errorf("event requested/accepted = %d/%d, want 2/2", ev.Requested, ev.Accepted)
	}
	if ev.Source != "topic" {
		t.Errorf("event source = %q, want topic", ev.Source)
	}
}

func TestQuizScreen_GenerationErrorKeepsState(t *testing.T) {
	gen := &mockGenerator{items: testItems()}
	q, repo, sess := testQuizScreen(gen)
	q.Update(runGeneration(t, q))

	// Second batch fails: the answered quiz must survive.
	sess.SetAnswer(0, "Blue")
	gen.err = &llm.ErrUnavailable{}
	q.Update(runGeneration(t, q))

	if q.errMsg == "" {
		t.Error("expected an error message")
	}
	if len(sess.Items) != 2 {
		t.Errorf("session items = %d, want prior quiz intact", len(sess.Items))
	}
	if sess.Answers[0] != "Blue" {
		t.Errorf("answer = %q, want prior answer intact", sess.Answers[0])
	}
	if len(repo.generated) != 1 {
		t.Errorf("generated events = %d, want 1 (failed batch not recorded)", len(repo.generated))
	}
}

func TestQuizScreen_ShortfallAfterDedup(t *testing.T) {
	items := testItems()
	gen := &mockGenerator{items: items}
	q, _, sess := testQuizScreen(gen)
	sess.History = append(sess.History, items[0])

	q.Update(runGeneration(t, q))

	if len(sess.Items) != 1 {
		t.Fatalf("session items = %d, want 1 after dedup", len(sess.Items))
	}
	if q.shortfall != 1 {
		t.Errorf("shortfall = %d, want 1", q.shortfall)
	}
}

func TestQuizScreen_AnswerAndSubmit(t *testing.T) {
	gen := &mockGenerator{items: testItems()}
	q, repo, sess := testQuizScreen(gen)
	q.Update(runGeneration(t, q))

	// Pick option 1 ("Blue") on the first question.
	q.Update(keyPress('1'))
	if sess.Answers[0] != "Blue" {
		t.Errorf("answer[0] = %q, want Blue", sess.Answers[0])
	}

	// Move right, leave the second unanswered, submit.
	q.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if q.index != 1 {
		t.Errorf("index = %d, want 1", q.index)
	}
	_, cmd := q.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected a replace command on submit")
	}

	if sess.Phase != session.PhaseScored {
		t.Errorf("phase = %v, want scored", sess.Phase)
	}
	if len(repo.scored) != 1 {
		t.Fatalf("scored events = %d, want 1", len(repo.scored))
	}
	if repo.scored[0].Score != 1 || repo.scored[0].Total != 2 {
		t.Errorf("scored event = %d/%d, want 1/2", repo.scored[0].Score, repo.scored[0].Total)
	}
}

func TestQuizScreen_RetryOnError(t *testing.T) {
	gen := &mockGenerator{err: &llm.ErrUnavailable{}}
	q, _, _ := testQuizScreen(gen)
	q.Update(runGeneration(t, q))

	if q.errMsg == "" {
		t.Fatal("expected an error message")
	}

	gen.err = nil
	gen.items = testItems()
	_, cmd := q.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a retry command on R")
	}
	q.Update(cmd())

	if q.errMsg != "" {
		t.Errorf("error message = %q, want cleared", q.errMsg)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}
