package session

import (
	"reflect"
	"testing"

	"github.com/mujeeb/quizdev/internal/quizgen"
)

func skyItem() quizgen.Item {
	return quizgen.Item{
		Question:    "What color is the sky?",
		Kind:        quizgen.KindMultipleChoice,
		Options:     []string{"Blue", "Red", "Green", "Yellow"},
		Answer:      "Blue",
		Explanation: "Rayleigh scattering favors shorter wavelengths.",
	}
}

func tfItem() quizgen.Item {
	return quizgen.Item{
		Question:    "The sky is blue.",
		Kind:        quizgen.KindTrueFalse,
		Answer:      "True",
		Explanation: "On a clear day, yes.",
	}
}

func TestScore_CorrectAnswer(t *testing.T) {
	result := Score([]quizgen.Item{skyItem()}, []string{"Blue"})
	if result.Score != 1 || result.Total != 1 {
		t.Errorf("expected 1/1, got %d/%d", result.Score, result.Total)
	}
	if !result.Items[0].Correct {
		t.Error("expected item marked correct")
	}
	if result.Items[0].Explanation == "" {
		t.Error("explanation should be carried through")
	}
}

func TestScore_WrongAnswer(t *testing.T) {
	result := Score([]quizgen.Item{skyItem()}, []string{"Red"})
	if result.Score != 0 || result.Total != 1 {
		t.Errorf("expected 0/1, got %d/%d", result.Score, result.Total)
	}
	item := result.Items[0]
	if item.Correct {
		t.Error("expected item marked incorrect")
	}
	if item.YourAnswer != "Red" || item.CorrectAnswer != "Blue" {
		t.Errorf("expected given/correct pair preserved, got %q/%q", item.YourAnswer, item.CorrectAnswer)
	}
}

func TestScore_CaseSensitive(t *testing.T) {
	result := Score([]quizgen.Item{skyItem()}, []string{"blue"})
	if result.Score != 0 {
		t.Errorf("comparison must be case-sensitive, got score %d", result.Score)
	}
}

func TestScore_UnansweredCountsIncorrect(t *testing.T) {
	result := Score([]quizgen.Item{skyItem(), tfItem()}, []string{Unanswered, "True"})
	if result.Score != 1 || result.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", result.Score, result.Total)
	}
	if result.Items[0].YourAnswer != Unanswered {
		t.Errorf("expected unanswered sentinel, got %q", result.Items[0].YourAnswer)
	}
}

func TestScore_ShortAnswerSlice(t *testing.T) {
	result := Score([]quizgen.Item{skyItem(), tfItem()}, []string{"Blue"})
	if result.Score != 1 || result.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", result.Score, result.Total)
	}
	if result.Items[1].YourAnswer != Unanswered {
		t.Errorf("missing answer should read as unanswered, got %q", result.Items[1].YourAnswer)
	}
}

func TestScore_EmptyQuiz(t *testing.T) {
	result := Score(nil, nil)
	if result.Score != 0 || result.Total != 0 {
		t.Errorf("expected 0/0, got %d/%d", result.Score, result.Total)
	}
	if len(result.Items) != 0 {
		t.Errorf("expected no item results, got %d", len(result.Items))
	}
}

func TestScore_Pure(t *testing.T) {
	items := []quizgen.Item{skyItem(), tfItem()}
	answers := []string{"Blue", "False"}
	itemsBefore := make([]quizgen.Item, len(items))
	copy(itemsBefore, items)
	answersBefore := make([]string, len(answers))
	copy(answersBefore, answers)

	first := Score(items, answers)
	second := Score(items, answers)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical results")
	}
	if !reflect.DeepEqual(items, itemsBefore) {
		t.Error("items mutated by scoring")
	}
	if !reflect.DeepEqual(answers, answersBefore) {
		t.Error("answers mutated by scoring")
	}
}
