package setup

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/content"
	"github.com/mujeeb/quizdev/internal/quizgen"
)

func TestParamsForm_TabCyclesFocus(t *testing.T) {
	f := newParamsForm()
	if f.focus != fieldCount {
		t.Fatalf("initial focus = %d, want count", f.focus)
	}

	tab := tea.KeyPressMsg{Code: tea.KeyTab}
	for _, want := range []int{fieldKind, fieldDifficulty, fieldLanguage, fieldGenerate, fieldCount} {
		f, _ = f.Update(tab)
		if f.focus != want {
			t.Fatalf("focus after tab = %d, want %d", f.focus, want)
		}
	}

	f, _ = f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if f.focus != fieldGenerate {
		t.Errorf("focus after shift+tab = %d, want generate", f.focus)
	}
}

func TestParamsForm_OnGenerate(t *testing.T) {
	f := newParamsForm()
	if f.onGenerate() {
		t.Error("fresh form should not focus the generate button")
	}
	f.focus = fieldGenerate
	if !f.onGenerate() {
		t.Error("expected onGenerate with generate focused")
	}
}

func TestParamsForm_EmptyFormReportsAllFields(t *testing.T) {
	f := newParamsForm()
	_, err := f.params(content.Topic{Name: "Bayes theorem"})
	if err == nil {
		t.Fatal("expected validation error from an empty form")
	}

	var inv *quizgen.InvalidParamsError
	if !errors.As(err, &inv) {
		t.Fatalf("error type = %T, want *quizgen.InvalidParamsError", err)
	}
	if len(inv.Fields) < 4 {
		t.Errorf("reported fields = %v, want count, type, difficulty and language", inv.Fields)
	}
}

func TestParamsForm_FilledFormProducesParams(t *testing.T) {
	f := newParamsForm()
	f.count.Model.SetValue("5")
	f.kind.SetChosen(string(quizgen.KindTrueFalse))
	f.difficulty.SetChosen(string(quizgen.DifficultyMedium))
	f.language.SetChosen(string(quizgen.LanguageEnglish))

	p, err := f.params(content.Topic{Name: "Bayes theorem"})
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	if p.Count != 5 {
		t.Errorf("count = %d, want 5", p.Count)
	}
	if p.Kind != quizgen.KindTrueFalse {
		t.Errorf("kind = %q", p.Kind)
	}
	if p.Difficulty != quizgen.DifficultyMedium {
		t.Errorf("difficulty = %q", p.Difficulty)
	}
	if p.Language != quizgen.LanguageEnglish {
		t.Errorf("language = %q", p.Language)
	}
	if p.Subject.Source() != "topic" {
		t.Errorf("subject source = %q, want topic", p.Subject.Source())
	}
}
