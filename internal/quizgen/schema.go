package quizgen

import "github.com/mujeeb/quizdev/internal/llm"

// ItemsSchema returns the JSON schema for a generation reply of the
// given kind: an array of question objects whose required fields depend
// on the question style.
func ItemsSchema(kind Kind) *llm.Schema {
	if kind == KindTrueFalse {
		return trueFalseSchema
	}
	return multipleChoiceSchema
}

var multipleChoiceSchema = &llm.Schema{
	Name:        "quiz-items-mc",
	Description: "A list of multiple-choice quiz questions with answers and explanations",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The quiz question text",
				},
				"options": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "string",
					},
					"description": "Exactly 4 distinct answer options",
				},
				"answer": map[string]any{
					"type":        "string",
					"description": "The correct answer; must equal one of the options",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A brief explanation of why the answer is correct",
				},
			},
			"required":             []any{"question", "options", "answer", "explanation"},
			"additionalProperties": false,
		},
	},
}

var trueFalseSchema = &llm.Schema{
	Name:        "quiz-items-tf",
	Description: "A list of true/false quiz statements with answers and explanations",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The true/false statement",
				},
				"answer": map[string]any{
					"type":        "string",
					"enum":        []any{"True", "False"},
					"description": "The correct answer, literally \"True\" or \"False\"",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A brief explanation of why the answer is correct",
				},
			},
			"required":             []any{"question", "answer", "explanation"},
			"additionalProperties": false,
		},
	},
}
