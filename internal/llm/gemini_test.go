package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-1.5-flash"},
		{"gemini-pro", "gemini-1.5-pro"},
		{"gemini-1.5-flash", "gemini-1.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question":    map[string]any{"type": "string"},
				"answer":      map[string]any{"type": "string", "enum": []any{"True", "False"}},
				"explanation": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "answer"},
		},
	}

	schema := toGeminiSchema(def)

	if schema.Type != genai.TypeArray {
		t.Fatalf("expected array type, got %v", schema.Type)
	}
	item := schema.Items
	if item == nil || item.Type != genai.TypeObject {
		t.Fatalf("expected object items, got %v", item)
	}
	if len(item.Required) != 2 {
		t.Errorf("expected 2 required fields, got %v", item.Required)
	}

	answer, ok := item.Properties["answer"]
	if !ok {
		t.Fatal("expected answer property")
	}
	if len(answer.Enum) != 2 || answer.Enum[0] != "True" {
		t.Errorf("expected True/False enum, got %v", answer.Enum)
	}

	options, ok := item.Properties["options"]
	if !ok {
		t.Fatal("expected options property")
	}
	if options.Type != genai.TypeArray || options.Items == nil || options.Items.Type != genai.TypeString {
		t.Errorf("expected string-array options, got %v", options)
	}
}
