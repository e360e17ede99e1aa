package setup

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/content"
	"github.com/mujeeb/quizdev/internal/quizgen"
	"github.com/mujeeb/quizdev/internal/ui/components"
)

// Form field order: count, kind, difficulty, language, generate.
const (
	fieldCount = iota
	fieldKind
	fieldDifficulty
	fieldLanguage
	fieldGenerate
	fieldEnd
)

// paramsForm is the parameter entry portion of the wizard. Nothing is
// preselected: every field must be chosen explicitly before generation.
type paramsForm struct {
	focus      int
	count      components.TextInput
	kind       components.Choice
	difficulty components.Choice
	language   components.Choice
}

func newParamsForm() paramsForm {
	return paramsForm{
		count:      components.NewTextInput("1-50", true, 2),
		kind:       components.NewChoice([]string{string(quizgen.KindMultipleChoice), string(quizgen.KindTrueFalse)}),
		difficulty: components.NewChoice([]string{string(quizgen.DifficultyEasy), string(quizgen.DifficultyMedium), string(quizgen.DifficultyHard)}),
		language:   components.NewChoice([]string{string(quizgen.LanguageEnglish), string(quizgen.LanguageUrdu)}),
	}
}

// onGenerate reports whether the Generate button currently has focus.
func (f paramsForm) onGenerate() bool {
	return f.focus == fieldGenerate
}

func (f paramsForm) Update(msg tea.Msg) (paramsForm, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			f.focus = (f.focus + 1) % fieldEnd
			return f, nil
		case "shift+tab":
			f.focus = (f.focus + fieldEnd - 1) % fieldEnd
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldCount:
		f.count, cmd = f.count.Update(msg)
	case fieldKind:
		f.kind, cmd = f.kind.Update(msg)
	case fieldDifficulty:
		f.difficulty, cmd = f.difficulty.Update(msg)
	case fieldLanguage:
		f.language, cmd = f.language.Update(msg)
	}
	return f, cmd
}

// params builds and validates the generation parameters from the
// current form state. Unfilled fields come through as zero values so
// Validate reports them all.
func (f paramsForm) params(subject content.Descriptor) (quizgen.Params, error) {
	count, err := f.count.NumericValue()
	if err != nil {
		count = 0
	}

	p := quizgen.Params{
		Count:      count,
		Kind:       quizgen.Kind(f.kind.Value()),
		Difficulty: quizgen.Difficulty(f.difficulty.Value()),
		Language:   quizgen.Language(f.language.Value()),
		Subject:    subject,
	}
	if err := p.Validate(); err != nil {
		return quizgen.Params{}, err
	}
	return p, nil
}
