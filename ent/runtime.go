// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mujeeb/quizdev/ent/llmrequestevent"
	"github.com/mujeeb/quizdev/ent/quizevent"
	"github.com/mujeeb/quizdev/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSource is the schema descriptor for source field.
	quizeventDescSource := quizeventFields[2].Descriptor()
	// quizevent.DefaultSource holds the default value on creation for the source field.
	quizevent.DefaultSource = quizeventDescSource.Default.(string)
	// quizeventDescKind is the schema descriptor for kind field.
	quizeventDescKind := quizeventFields[3].Descriptor()
	// quizevent.DefaultKind holds the default value on creation for the kind field.
	quizevent.DefaultKind = quizeventDescKind.Default.(string)
	// quizeventDescDifficulty is the schema descriptor for difficulty field.
	quizeventDescDifficulty := quizeventFields[4].Descriptor()
	// quizevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	quizevent.DefaultDifficulty = quizeventDescDifficulty.Default.(string)
	// quizeventDescLanguage is the schema descriptor for language field.
	quizeventDescLanguage := quizeventFields[5].Descriptor()
	// quizevent.DefaultLanguage holds the default value on creation for the language field.
	quizevent.DefaultLanguage = quizeventDescLanguage.Default.(string)
	// quizeventDescRequested is the schema descriptor for requested field.
	quizeventDescRequested := quizeventFields[6].Descriptor()
	// quizevent.DefaultRequested holds the default value on creation for the requested field.
	quizevent.DefaultRequested = quizeventDescRequested.Default.(int)
	// quizeventDescAccepted is the schema descriptor for accepted field.
	quizeventDescAccepted := quizeventFields[7].Descriptor()
	// quizevent.DefaultAccepted holds the default value on creation for the accepted field.
	quizevent.DefaultAccepted = quizeventDescAccepted.Default.(int)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[8].Descriptor()
	// quizevent.DefaultScore holds the default value on creation for the score field.
	quizevent.DefaultScore = quizeventDescScore.Default.(int)
	// quizeventDescTotal is the schema descriptor for total field.
	quizeventDescTotal := quizeventFields[9].Descriptor()
	// quizevent.DefaultTotal holds the default value on creation for the total field.
	quizevent.DefaultTotal = quizeventDescTotal.Default.(int)
}
