package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mujeeb/quizdev/internal/content"
	"github.com/mujeeb/quizdev/internal/llm"
)

const mcReply = `[
  {
    "question": "Which structure gives O(1) average lookup?",
    "options": ["Hash table", "Linked list", "Stack", "Queue"],
    "answer": "Hash table",
    "explanation": "Hash tables index buckets directly by key hash."
  },
  {
    "question": "Which sort is stable?",
    "options": ["Merge sort", "Quick sort", "Heap sort", "Selection sort"],
    "answer": "Merge sort",
    "explanation": "Merge sort preserves the relative order of equal keys."
  }
]`

const tfReply = `[
  {
    "question": "A slice header copies its backing array when passed by value.",
    "answer": "False",
    "explanation": "Only the header is copied; the array is shared."
  }
]`

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mcReply)})
	gen := New(mock, DefaultConfig())

	p := topicParams()
	p.Count = 2

	items, err := gen.Generate(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Kind != KindMultipleChoice {
		t.Errorf("expected multiple-choice kind, got %q", items[0].Kind)
	}
	if items[0].Answer != "Hash table" {
		t.Errorf("expected reply order preserved, first answer %q", items[0].Answer)
	}
}

func TestGenerate_TrueFalse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tfReply)})
	gen := New(mock, DefaultConfig())

	p := topicParams()
	p.Kind = KindTrueFalse
	p.Count = 1

	items, err := gen.Generate(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Kind != KindTrueFalse {
		t.Errorf("expected true-false kind, got %q", items[0].Kind)
	}
	if len(items[0].Options) != 0 {
		t.Errorf("true-false item should carry no options, got %v", items[0].Options)
	}
}

func TestGenerate_InvalidParamsSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mcReply)})
	gen := New(mock, DefaultConfig())

	p := topicParams()
	p.Difficulty = ""

	_, err := gen.Generate(context.Background(), p, nil)
	var invalid *InvalidParamsError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParamsError, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider must not be called with invalid params, got %d calls", mock.CallCount())
	}
}

func TestGenerate_ProviderUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnavailable{Err: errors.New("connection refused")}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), topicParams(), nil)
	var unavail *llm.ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGenerate_InvalidResponseBecomesMalformed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: []byte("oops"), Err: errors.New("schema violation")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), topicParams(), nil)
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestGenerate_MalformedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"not": "an array"}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), topicParams(), nil)
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mcReply)})
	gen := New(mock, DefaultConfig())

	p := Params{
		Count:      2,
		Kind:       KindMultipleChoice,
		Difficulty: DifficultyHard,
		Language:   LanguageEnglish,
		Subject:    content.Taxonomy{Subject: "Statistics", Subfield: "Probability"},
	}
	history := []Item{mcItem("Old question?", "Old answer")}

	if _, err := gen.Generate(context.Background(), p, history); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly one provider call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.System == "" {
		t.Error("system prompt missing")
	}
	if req.Schema == nil {
		t.Error("reply schema missing")
	}
	if req.MaxTokens < DefaultConfig().MinTokens {
		t.Errorf("max tokens below floor: %d", req.MaxTokens)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected one user message, got %d", len(req.Messages))
	}

	msg := req.Messages[0].Content
	for _, want := range []string{"Statistics", "Probability", "Hard", "English", "Old question?"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}
