package quizgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/mujeeb/quizdev/internal/content"
)

func TestParamsValidate_Valid(t *testing.T) {
	tests := []struct {
		name    string
		subject content.Descriptor
	}{
		{"topic", content.Topic{Name: "Compilers"}},
		{"taxonomy", content.Taxonomy{Subject: "Mathematics", Subfield: "Calculus"}},
		{"document", content.Document{Text: "some extracted text"}},
		{"empty document", content.Document{Text: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{
				Count:      10,
				Kind:       KindTrueFalse,
				Difficulty: DifficultyEasy,
				Language:   LanguageUrdu,
				Subject:    tt.subject,
			}
			if err := p.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParamsValidate_Invalid(t *testing.T) {
	valid := Params{
		Count:      5,
		Kind:       KindMultipleChoice,
		Difficulty: DifficultyHard,
		Language:   LanguageEnglish,
		Subject:    content.Topic{Name: "Databases"},
	}

	tests := []struct {
		name      string
		mutate    func(*Params)
		wantField string
	}{
		{"zero count", func(p *Params) { p.Count = 0 }, "count"},
		{"count over bound", func(p *Params) { p.Count = MaxCount + 1 }, "count"},
		{"unset kind", func(p *Params) { p.Kind = "" }, "type"},
		{"unset difficulty", func(p *Params) { p.Difficulty = "" }, "difficulty"},
		{"unset language", func(p *Params) { p.Language = "" }, "language"},
		{"nil subject", func(p *Params) { p.Subject = nil }, "subject"},
		{"blank topic", func(p *Params) { p.Subject = content.Topic{Name: "   "} }, "topic"},
		{"taxonomy without subfield", func(p *Params) {
			p.Subject = content.Taxonomy{Subject: "Statistics"}
		}, "sub-field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			var invalid *InvalidParamsError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidParamsError, got %v", err)
			}
			if !strings.Contains(strings.Join(invalid.Fields, ","), tt.wantField) {
				t.Errorf("expected field %q reported, got %v", tt.wantField, invalid.Fields)
			}
		})
	}
}

func TestParamsValidate_CollectsAllProblems(t *testing.T) {
	p := Params{}
	err := p.Validate()

	var invalid *InvalidParamsError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParamsError, got %v", err)
	}
	if len(invalid.Fields) < 4 {
		t.Errorf("expected every unset field reported, got %v", invalid.Fields)
	}
}
