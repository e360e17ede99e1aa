package quizgen

import (
	"encoding/json"
	"errors"
	"testing"
)

func validMCJSON() json.RawMessage {
	return json.RawMessage(`[
		{
			"question": "What color is the sky on a clear day?",
			"options": ["Red", "Blue", "Green", "Yellow"],
			"answer": "Blue",
			"explanation": "Sunlight scatters in the atmosphere and blue scatters most."
		},
		{
			"question": "Which planet is known as the Red Planet?",
			"options": ["Venus", "Jupiter", "Mars", "Saturn"],
			"answer": "Mars",
			"explanation": "Iron oxide on the surface gives Mars its reddish color."
		}
	]`)
}

func validTFJSON() json.RawMessage {
	return json.RawMessage(`[
		{
			"question": "Gradient descent always finds the global minimum.",
			"answer": "False",
			"explanation": "It can converge to a local minimum for non-convex functions."
		}
	]`)
}

func TestParseItems_MultipleChoice(t *testing.T) {
	items, err := ParseItems(validMCJSON(), KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Question != "What color is the sky on a clear day?" {
		t.Errorf("unexpected question: %q", items[0].Question)
	}
	if items[0].Kind != KindMultipleChoice {
		t.Errorf("expected multiple-choice kind, got %q", items[0].Kind)
	}
	if items[0].Answer != "Blue" {
		t.Errorf("expected answer Blue, got %q", items[0].Answer)
	}
	if len(items[0].Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(items[0].Options))
	}
}

func TestParseItems_TrueFalse(t *testing.T) {
	items, err := ParseItems(validTFJSON(), KindTrueFalse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Answer != "False" {
		t.Errorf("expected answer False, got %q", items[0].Answer)
	}
	if items[0].Options != nil {
		t.Errorf("true-false item should carry no options, got %v", items[0].Options)
	}
}

func TestParseItems_EmptyArray(t *testing.T) {
	items, err := ParseItems(json.RawMessage(`[]`), KindMultipleChoice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestParseItems_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
	}{
		{"not JSON", `the model apologized instead`, KindMultipleChoice},
		{"object not array", `{"question": "x"}`, KindMultipleChoice},
		{"empty question", `[{"question": "", "options": ["a","b","c","d"], "answer": "a", "explanation": "e"}]`, KindMultipleChoice},
		{"missing explanation", `[{"question": "q", "options": ["a","b","c","d"], "answer": "a"}]`, KindMultipleChoice},
		{"three options", `[{"question": "q", "options": ["a","b","c"], "answer": "a", "explanation": "e"}]`, KindMultipleChoice},
		{"five options", `[{"question": "q", "options": ["a","b","c","d","e"], "answer": "a", "explanation": "e"}]`, KindMultipleChoice},
		{"duplicate options", `[{"question": "q", "options": ["a","a","c","d"], "answer": "a", "explanation": "e"}]`, KindMultipleChoice},
		{"answer not an option", `[{"question": "q", "options": ["a","b","c","d"], "answer": "z", "explanation": "e"}]`, KindMultipleChoice},
		{"tf answer not boolean", `[{"question": "q", "answer": "Maybe", "explanation": "e"}]`, KindTrueFalse},
		{"tf with options", `[{"question": "q", "options": ["True","False"], "answer": "True", "explanation": "e"}]`, KindTrueFalse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItems(json.RawMessage(tt.raw), tt.kind)
			var malformed *MalformedOutputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedOutputError, got %v", err)
			}
		})
	}
}

func TestParseItems_OneBadItemRejectsAll(t *testing.T) {
	raw := json.RawMessage(`[
		{"question": "fine", "options": ["a","b","c","d"], "answer": "a", "explanation": "e"},
		{"question": "broken", "options": ["a","b"], "answer": "a", "explanation": "e"}
	]`)
	items, err := ParseItems(raw, KindMultipleChoice)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if items != nil {
		t.Errorf("expected no partial result, got %d items", len(items))
	}
}
