package quizgen

import (
	"strings"
	"testing"

	"github.com/mujeeb/quizdev/internal/content"
)

func topicParams() Params {
	return Params{
		Count:      5,
		Kind:       KindMultipleChoice,
		Difficulty: DifficultyMedium,
		Language:   LanguageEnglish,
		Subject:    content.Topic{Name: "Graph Theory"},
	}
}

func TestBuildUserMessage_Deterministic(t *testing.T) {
	history := []Item{mcItem("old?", "Blue")}
	a := buildUserMessage(topicParams(), history, 100)
	b := buildUserMessage(topicParams(), history, 100)
	if a != b {
		t.Error("identical inputs produced different prompts")
	}
}

func TestBuildUserMessage_Parameters(t *testing.T) {
	msg := buildUserMessage(topicParams(), nil, 100)

	for _, want := range []string{
		"Number of questions: 5",
		"Type of quiz: Multiple-Choice",
		"Difficulty level: Medium",
		"Language: English",
		"Topic: Graph Theory",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_TaxonomySubject(t *testing.T) {
	p := topicParams()
	p.Subject = content.Taxonomy{Subject: "Statistics", Subfield: "Probability"}

	msg := buildUserMessage(p, nil, 100)
	if !strings.Contains(msg, "Subject: Statistics") {
		t.Errorf("prompt missing subject line:\n%s", msg)
	}
	if !strings.Contains(msg, "Sub-field: Probability") {
		t.Errorf("prompt missing sub-field line:\n%s", msg)
	}
}

func TestBuildUserMessage_DocumentText(t *testing.T) {
	p := topicParams()
	p.Subject = content.Document{Text: "Entropy measures uncertainty."}

	msg := buildUserMessage(p, nil, 100)
	if !strings.Contains(msg, "Entropy measures uncertainty.") {
		t.Errorf("prompt missing document text:\n%s", msg)
	}
}

func TestBuildUserMessage_EmptyHistory(t *testing.T) {
	msg := buildUserMessage(topicParams(), nil, 100)
	if !strings.Contains(msg, "Already asked in this session (do not repeat):\nNone") {
		t.Errorf("empty history should render as None:\n%s", msg)
	}
}

func TestBuildUserMessage_HistoryNumbered(t *testing.T) {
	history := []Item{
		mcItem("first?", "Blue"),
		mcItem("second?", "Green"),
	}
	msg := buildUserMessage(topicParams(), history, 100)
	if !strings.Contains(msg, "1. first?") || !strings.Contains(msg, "2. second?") {
		t.Errorf("history not rendered as numbered list:\n%s", msg)
	}
}

func TestBuildHistory_CapsAtMax(t *testing.T) {
	history := []Item{
		mcItem("one?", "Blue"),
		mcItem("two?", "Blue"),
		mcItem("three?", "Blue"),
	}
	rendered := buildHistory(history, 2)
	if strings.Contains(rendered, "one?") {
		t.Errorf("oldest entry should be dropped:\n%s", rendered)
	}
	if !strings.Contains(rendered, "two?") || !strings.Contains(rendered, "three?") {
		t.Errorf("most recent entries should be kept:\n%s", rendered)
	}
}
