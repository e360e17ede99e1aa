// Package quizgen turns quiz parameters into validated quiz items using
// a hosted language model: it builds the instruction prompt, parses the
// structured reply, and filters out items already seen in the session.
package quizgen

// Kind is the question style of a quiz.
type Kind string

const (
	KindMultipleChoice Kind = "Multiple-Choice"
	KindTrueFalse      Kind = "True-False"
)

// Difficulty is the requested difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Language is the language quiz items are written in.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageUrdu    Language = "Urdu"
)

// OptionCount is the number of answer options a multiple-choice item carries.
const OptionCount = 4

// Item is one question unit.
type Item struct {
	// Question is the question text shown to the user. Never empty.
	Question string

	// Kind is the answer affordance: pick one of four options, or True/False.
	Kind Kind

	// Options holds exactly four distinct choices. Populated only for
	// multiple-choice items.
	Options []string

	// Answer is the correct answer. For multiple-choice it equals one of
	// Options; for true-false it is "True" or "False".
	Answer string

	// Explanation says why the answer is correct. Shown after scoring.
	Explanation string
}

// Equal reports structural equality over all populated fields. This is
// the identity used for deduplication: a rephrased question with the
// same answer is a different item.
func (it Item) Equal(other Item) bool {
	if it.Question != other.Question ||
		it.Kind != other.Kind ||
		it.Answer != other.Answer ||
		it.Explanation != other.Explanation {
		return false
	}
	if len(it.Options) != len(other.Options) {
		return false
	}
	for i := range it.Options {
		if it.Options[i] != other.Options[i] {
			return false
		}
	}
	return true
}

// TrueFalseOptions is the fixed affordance for true-false items.
var TrueFalseOptions = []string{"True", "False"}
