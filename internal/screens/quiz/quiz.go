package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/llm"
	"github.com/mujeeb/quizdev/internal/quizgen"
	"github.com/mujeeb/quizdev/internal/router"
	"github.com/mujeeb/quizdev/internal/screen"
	"github.com/mujeeb/quizdev/internal/screens/results"
	"github.com/mujeeb/quizdev/internal/session"
	"github.com/mujeeb/quizdev/internal/store"
	"github.com/mujeeb/quizdev/internal/ui/components"
	"github.com/mujeeb/quizdev/internal/ui/layout"
)

// QuizScreen runs one quiz round: generate, answer, submit.
type QuizScreen struct {
	generator quizgen.Generator
	eventRepo store.EventRepo
	sess      *session.Session
	params    quizgen.Params

	loading   bool
	errMsg    string
	index     int
	choices   []components.Choice
	shortfall int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen that generates a batch on entry.
func New(generator quizgen.Generator, eventRepo store.EventRepo, sess *session.Session, params quizgen.Params) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		eventRepo: eventRepo,
		sess:      sess,
		params:    params,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.startGeneration()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if q.loading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "↑↓/1-4", Description: "Answer"},
		{Key: "S", Description: "Submit"},
		{Key: "G", Description: "New batch"},
		{Key: "Esc", Description: "Back"},
	}
}

// startGeneration snapshots the history on the update loop and kicks
// off the provider call in a command. The session itself is only
// touched back on the update loop, when the result message arrives.
func (q *QuizScreen) startGeneration() tea.Cmd {
	q.loading = true
	q.errMsg = ""

	history := make([]quizgen.Item, len(q.sess.History))
	copy(history, q.sess.History)
	params := q.params
	gen := q.generator

	return func() tea.Msg {
		items, err := gen.Generate(context.Background(), params, history)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		fresh := quizgen.FilterSeen(items, history)
		return quizReadyMsg{Items: fresh, Generated: len(items)}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return q.handleReady(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	q.loading = false

	if msg.Err != nil {
		// The prior quiz state is untouched: nothing was applied.
		q.errMsg = describeError(msg.Err)
		return q, nil
	}

	q.sess.ApplyGeneration(msg.Items)
	q.shortfall = q.params.Count - len(msg.Items)
	q.index = 0

	q.choices = make([]components.Choice, len(msg.Items))
	for i, item := range msg.Items {
		options := item.Options
		if item.Kind == quizgen.KindTrueFalse {
			options = quizgen.TrueFalseOptions
		}
		q.choices[i] = components.NewChoice(options)
	}

	if q.eventRepo != nil {
		_ = q.eventRepo.AppendQuizGenerated(context.Background(), store.QuizGeneratedEventData{
			SessionID:  q.sess.ID,
			Source:     q.params.Subject.Source(),
			Kind:       string(q.params.Kind),
			Difficulty: string(q.params.Difficulty),
			Language:   string(q.params.Language),
			Requested:  q.params.Count,
			Accepted:   len(msg.Items),
		})
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		switch key {
		case "r", "R":
			return q, q.startGeneration()
		case "esc":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if q.loading {
		if key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	switch key {
	case "esc":
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if q.index > 0 {
			q.index--
		}
		return q, nil
	case "right", "l":
		if q.index < len(q.sess.Items)-1 {
			q.index++
		}
		return q, nil
	case "g", "G":
		return q, q.startGeneration()
	case "s", "S":
		return q.submit()
	}

	if q.index < len(q.choices) {
		var cmd tea.Cmd
		q.choices[q.index], cmd = q.choices[q.index].Update(msg)
		q.sess.SetAnswer(q.index, q.choices[q.index].Value())
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	result := q.sess.Submit()

	if q.eventRepo != nil {
		_ = q.eventRepo.AppendQuizScored(context.Background(), store.QuizScoredEventData{
			SessionID: q.sess.ID,
			Score:     result.Score,
			Total:     result.Total,
		})
	}

	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(result),
		}
	}
}

// answeredCount returns how many items currently carry an answer.
func (q *QuizScreen) answeredCount() int {
	n := 0
	for _, a := range q.sess.Answers {
		if a != session.Unanswered {
			n++
		}
	}
	return n
}

func describeError(err error) string {
	var unavail *llm.ErrUnavailable
	if errors.As(err, &unavail) {
		return "The generation service is unavailable. Press R to try again."
	}
	var malformed *quizgen.MalformedOutputError
	if errors.As(err, &malformed) {
		return "The model reply could not be used. Press R to try again."
	}
	var rate *llm.ErrRateLimit
	if errors.As(err, &rate) {
		return "Rate limited by the provider. Wait a moment, then press R."
	}
	return err.Error()
}
