package quizgen

import (
	"encoding/json"
	"fmt"
)

// MalformedOutputError indicates the generation reply could not be
// parsed into the expected item structure. The whole reply is rejected:
// there is no partial acceptance and no fallback parse.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed generation output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// itemOutput is the raw reply shape before validation.
type itemOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// ParseItems parses a raw generation reply as a sequence of quiz items
// of the given kind. An empty array is a valid (empty) result. Any
// structural defect in any item rejects the whole reply with
// MalformedOutputError.
func ParseItems(raw json.RawMessage, kind Kind) ([]Item, error) {
	var outputs []itemOutput
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return nil, &MalformedOutputError{Err: err}
	}

	items := make([]Item, 0, len(outputs))
	for i, out := range outputs {
		item, err := validateItem(out, kind)
		if err != nil {
			return nil, &MalformedOutputError{Err: fmt.Errorf("item %d: %w", i, err)}
		}
		items = append(items, item)
	}

	return items, nil
}

func validateItem(out itemOutput, kind Kind) (Item, error) {
	if out.Question == "" {
		return Item{}, fmt.Errorf("question is empty")
	}
	if out.Explanation == "" {
		return Item{}, fmt.Errorf("explanation is empty")
	}

	switch kind {
	case KindMultipleChoice:
		if len(out.Options) != OptionCount {
			return Item{}, fmt.Errorf("expected %d options, got %d", OptionCount, len(out.Options))
		}
		seen := make(map[string]bool, OptionCount)
		answerListed := false
		for _, opt := range out.Options {
			if opt == "" {
				return Item{}, fmt.Errorf("option is empty")
			}
			if seen[opt] {
				return Item{}, fmt.Errorf("duplicate option %q", opt)
			}
			seen[opt] = true
			if opt == out.Answer {
				answerListed = true
			}
		}
		if !answerListed {
			return Item{}, fmt.Errorf("answer %q is not among the options", out.Answer)
		}

	case KindTrueFalse:
		if len(out.Options) != 0 {
			return Item{}, fmt.Errorf("true-false item must not carry options")
		}
		if out.Answer != "True" && out.Answer != "False" {
			return Item{}, fmt.Errorf("answer must be \"True\" or \"False\", got %q", out.Answer)
		}

	default:
		return Item{}, fmt.Errorf("unknown question kind %q", kind)
	}

	return Item{
		Question:    out.Question,
		Kind:        kind,
		Options:     out.Options,
		Answer:      out.Answer,
		Explanation: out.Explanation,
	}, nil
}
