package quizgen

import (
	"reflect"
	"testing"
)

func mcItem(question, answer string) Item {
	return Item{
		Question:    question,
		Kind:        KindMultipleChoice,
		Options:     []string{"Red", "Blue", "Green", "Yellow"},
		Answer:      answer,
		Explanation: "because",
	}
}

func TestFilterSeen_RemovesHistoryMatches(t *testing.T) {
	x := mcItem("Sky color?", "Blue")
	y := mcItem("Grass color?", "Green")

	filtered := FilterSeen([]Item{x, y}, []Item{x})
	if len(filtered) != 1 {
		t.Fatalf("expected 1 item, got %d", len(filtered))
	}
	if !filtered[0].Equal(y) {
		t.Errorf("expected %q to survive, got %q", y.Question, filtered[0].Question)
	}
}

func TestFilterSeen_PreservesOrder(t *testing.T) {
	a := mcItem("a?", "Blue")
	b := mcItem("b?", "Green")
	c := mcItem("c?", "Red")

	filtered := FilterSeen([]Item{a, b, c}, []Item{b})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 items, got %d", len(filtered))
	}
	if filtered[0].Question != "a?" || filtered[1].Question != "c?" {
		t.Errorf("order not preserved: %q, %q", filtered[0].Question, filtered[1].Question)
	}
}

func TestFilterSeen_DoesNotMutateHistory(t *testing.T) {
	history := []Item{mcItem("h?", "Blue")}
	snapshot := make([]Item, len(history))
	copy(snapshot, history)

	FilterSeen([]Item{mcItem("new?", "Green")}, history)

	if !reflect.DeepEqual(history, snapshot) {
		t.Error("history was mutated")
	}
}

func TestFilterSeen_Idempotent(t *testing.T) {
	x := mcItem("x?", "Blue")
	y := mcItem("y?", "Green")
	history := []Item{x}

	filtered := FilterSeen([]Item{x, y}, history)

	// Everything removed in the first pass stays removed: filtering the
	// rejected complement against the same history yields nothing.
	rejected := []Item{x}
	again := FilterSeen(rejected, history)
	if len(again) != 0 {
		t.Errorf("expected rejected items to stay rejected, got %d", len(again))
	}

	// And the survivors pass through unchanged on a second filter.
	twice := FilterSeen(filtered, history)
	if !reflect.DeepEqual(twice, filtered) {
		t.Error("survivors changed on second filter")
	}
}

func TestItemEqual_FullRecord(t *testing.T) {
	base := mcItem("Sky color?", "Blue")

	rephrased := base
	rephrased.Question = "What color is the sky?"
	if base.Equal(rephrased) {
		t.Error("differing question text should not be equal")
	}

	differentExplanation := base
	differentExplanation.Explanation = "scattering"
	if base.Equal(differentExplanation) {
		t.Error("differing explanation should not be equal")
	}

	differentOptions := base
	differentOptions.Options = []string{"Red", "Blue", "Green", "Purple"}
	if base.Equal(differentOptions) {
		t.Error("differing options should not be equal")
	}

	same := mcItem("Sky color?", "Blue")
	if !base.Equal(same) {
		t.Error("identical items should be equal")
	}
}

func TestItemEqual_TrueFalseNoOptions(t *testing.T) {
	a := Item{Question: "q", Kind: KindTrueFalse, Answer: "True", Explanation: "e"}
	b := Item{Question: "q", Kind: KindTrueFalse, Answer: "True", Explanation: "e"}
	if !a.Equal(b) {
		t.Error("identical true-false items should be equal")
	}

	b.Answer = "False"
	if a.Equal(b) {
		t.Error("differing answer should not be equal")
	}
}
