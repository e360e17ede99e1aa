package quiz

import "github.com/mujeeb/quizdev/internal/quizgen"

// quizReadyMsg is sent when a generation attempt finishes. Items holds
// the post-filter batch; Generated is the count the model returned
// before deduplication.
type quizReadyMsg struct {
	Items     []quizgen.Item
	Generated int
	Err       error
}
