package session

import "github.com/mujeeb/quizdev/internal/quizgen"

// ItemResult is the per-item outcome of a submission.
type ItemResult struct {
	Question      string
	YourAnswer    string // Unanswered if the user skipped the item
	CorrectAnswer string
	Correct       bool
	Explanation   string
}

// Result is the outcome of scoring one quiz.
type Result struct {
	Items []ItemResult
	Score int // count of correct answers
	Total int // count of items
}

// Score compares answers to the recorded correct answers using exact,
// case-sensitive string equality. Unanswered items count as incorrect.
// Pure: identical inputs yield identical results and nothing is
// mutated. Answers beyond len(items) are ignored; missing answers are
// treated as Unanswered.
func Score(items []quizgen.Item, answers []string) Result {
	result := Result{
		Items: make([]ItemResult, len(items)),
		Total: len(items),
	}

	for i, item := range items {
		given := Unanswered
		if i < len(answers) {
			given = answers[i]
		}

		correct := given == item.Answer
		if correct {
			result.Score++
		}

		result.Items[i] = ItemResult{
			Question:      item.Question,
			YourAnswer:    given,
			CorrectAnswer: item.Answer,
			Correct:       correct,
			Explanation:   item.Explanation,
		}
	}

	return result
}
