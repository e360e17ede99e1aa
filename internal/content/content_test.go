package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSubjects(t *testing.T) {
	subjects := Subjects()
	if len(subjects) != 4 {
		t.Fatalf("expected 4 subjects, got %d", len(subjects))
	}
	if subjects[0] != "Machine Learning" {
		t.Errorf("expected display order preserved, first subject %q", subjects[0])
	}
}

func TestSubfields(t *testing.T) {
	got := Subfields("Statistics")
	want := []string{"Descriptive", "Probability", "Inferential"}
	if len(got) != len(want) {
		t.Fatalf("expected %d subfields, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subfield %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubfields_UnknownSubject(t *testing.T) {
	if got := Subfields("Alchemy"); got != nil {
		t.Errorf("expected nil for unknown subject, got %v", got)
	}
}

func TestSubfields_CallerCannotMutateCatalog(t *testing.T) {
	first := Subfields("Mathematics")
	first[0] = "mutated"

	second := Subfields("Mathematics")
	if second[0] != "Linear Algebra" {
		t.Errorf("catalog mutated through returned slice: %q", second[0])
	}
}

func TestExtractFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("gradient descent walks downhill"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Text != "gradient descent walks downhill" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestExtractFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("empty document must be valid, got %v", err)
	}
	if doc.Text != "" {
		t.Errorf("expected empty text, got %q", doc.Text)
	}
}

func TestExtractFile_Missing(t *testing.T) {
	if _, err := ExtractFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDescriptorSources(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want string
	}{
		{Document{Text: "x"}, "document"},
		{Taxonomy{Subject: "Statistics", Subfield: "Probability"}, "taxonomy"},
		{Topic{Name: "Kalman filters"}, "topic"},
	}
	for _, tt := range tests {
		if got := tt.d.Source(); got != tt.want {
			t.Errorf("Source() = %q, want %q", got, tt.want)
		}
	}
}
