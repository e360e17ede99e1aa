package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a recorded LLM call, as read back from the store.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// QuizGeneratedEventData records a generation that loaded items into a session.
type QuizGeneratedEventData struct {
	SessionID  string
	Source     string // document, taxonomy, topic
	Kind       string
	Difficulty string
	Language   string
	Requested  int
	Accepted   int
}

// QuizScoredEventData records a scored submission.
type QuizScoredEventData struct {
	SessionID string
	Score     int
	Total     int
}

// QuizStats aggregates recorded quiz activity across all sessions.
type QuizStats struct {
	QuizzesGenerated int
	ItemsRequested   int
	ItemsAccepted    int
	QuizzesScored    int
	CorrectAnswers   int
	ScoredItems      int
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a generation-service call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizGenerated records items being accepted into a session.
	AppendQuizGenerated(ctx context.Context, data QuizGeneratedEventData) error

	// AppendQuizScored records a scored submission.
	AppendQuizScored(ctx context.Context, data QuizScoredEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// QuizStats aggregates quiz generation and scoring activity.
	QuizStats(ctx context.Context) (*QuizStats, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
