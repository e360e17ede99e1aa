package quizgen

import (
	"fmt"
	"strings"

	"github.com/mujeeb/quizdev/internal/content"
)

// MaxCount is the upper bound on questions per generation request.
const MaxCount = 50

// Params is the immutable configuration for one generation request.
type Params struct {
	// Count is the number of questions requested, 1..MaxCount.
	Count int

	// Kind selects multiple-choice or true-false questions.
	Kind Kind

	// Difficulty is Easy, Medium or Hard.
	Difficulty Difficulty

	// Language is the language the items should be written in.
	Language Language

	// Subject is the resolved subject matter: document text, a taxonomy
	// pair, or a free topic.
	Subject content.Descriptor
}

// InvalidParamsError reports which required parameters were left unset
// or out of range. Generation is never attempted while it is non-nil.
type InvalidParamsError struct {
	Fields []string
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("missing or invalid quiz parameters: %s", strings.Join(e.Fields, ", "))
}

// Validate checks every required parameter and collects all problems
// into a single InvalidParamsError, so the user sees the full list at
// once.
func (p Params) Validate() error {
	var bad []string

	if p.Count < 1 || p.Count > MaxCount {
		bad = append(bad, "count")
	}

	switch p.Kind {
	case KindMultipleChoice, KindTrueFalse:
	default:
		bad = append(bad, "type")
	}

	switch p.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		bad = append(bad, "difficulty")
	}

	switch p.Language {
	case LanguageEnglish, LanguageUrdu:
	default:
		bad = append(bad, "language")
	}

	switch s := p.Subject.(type) {
	case content.Document:
		// Empty extracted text is a valid subject.
	case content.Taxonomy:
		if s.Subject == "" {
			bad = append(bad, "subject")
		}
		if s.Subfield == "" {
			bad = append(bad, "sub-field")
		}
	case content.Topic:
		if strings.TrimSpace(s.Name) == "" {
			bad = append(bad, "topic")
		}
	default:
		bad = append(bad, "subject")
	}

	if len(bad) > 0 {
		return &InvalidParamsError{Fields: bad}
	}
	return nil
}
