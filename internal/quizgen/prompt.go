package quizgen

import (
	"fmt"
	"strings"

	"github.com/mujeeb/quizdev/internal/content"
)

const systemPrompt = `You are a quiz author generating practice questions for self-study.

Rules:
- Generate exactly the requested number of questions in the requested language.
- Every question must be answerable from the given subject matter alone and match the requested difficulty.
- For Multiple-Choice: each question has exactly 4 distinct answer options, exactly one of which is correct. Distractors should be plausible, not random.
- For True-False: each question is a single statement and the answer is the literal string "True" or "False".
- Every question carries a brief explanation of why its answer is correct.
- Do not repeat, restate or trivially rephrase any question from the "already asked" list.
- Reply with a JSON array of question objects and nothing else.`

// buildUserMessage renders one generation request. Pure and
// deterministic: the same params and history always produce the same
// string.
func buildUserMessage(p Params, history []Item, maxHistory int) string {
	var b strings.Builder

	b.WriteString("Generate quiz questions with these parameters:\n")
	fmt.Fprintf(&b, "- Number of questions: %d\n", p.Count)
	fmt.Fprintf(&b, "- Type of quiz: %s\n", p.Kind)
	fmt.Fprintf(&b, "- Difficulty level: %s\n", p.Difficulty)
	fmt.Fprintf(&b, "- Language: %s\n", p.Language)

	switch s := p.Subject.(type) {
	case content.Taxonomy:
		fmt.Fprintf(&b, "- Subject: %s\n", s.Subject)
		fmt.Fprintf(&b, "- Sub-field: %s\n", s.Subfield)
		fmt.Fprintf(&b, "\nThe questions should cover a range of topics within %s.\n", s.Subfield)
	case content.Topic:
		fmt.Fprintf(&b, "- Topic: %s\n", s.Name)
		fmt.Fprintf(&b, "\nThe questions should cover a range of topics within %s.\n", s.Name)
	case content.Document:
		b.WriteString("\nThe questions should cover a range of topics within the following content:\n\n")
		b.WriteString(s.Text)
		b.WriteString("\n")
	}

	b.WriteString("\nAlready asked in this session (do not repeat):\n")
	b.WriteString(buildHistory(history, maxHistory))
	b.WriteString("\n")

	return b.String()
}

// buildHistory formats prior questions for the prompt, keeping only the
// most recent max entries. Returns "None" when the history is empty.
func buildHistory(history []Item, max int) string {
	if len(history) == 0 {
		return "None"
	}

	if max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}

	var b strings.Builder
	for i, it := range history {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Question)
	}
	return strings.TrimRight(b.String(), "\n")
}
