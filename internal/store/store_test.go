package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.EventRepo() == nil {
		t.Fatal("expected non-nil event repo")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-1.5-flash",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    850,
		Success:      true,
		RequestBody:  `{"prompt":"..."}`,
		ResponseBody: `[{"question":"..."}]`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if e.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", e.Provider)
	}
	if e.Model != "gemini-1.5-flash" {
		t.Errorf("model = %q", e.Model)
	}
	if e.Purpose != "quiz-gen" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.InputTokens != 120 || e.OutputTokens != 480 {
		t.Errorf("tokens = %d/%d, want 120/480", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("expected success = true")
	}
	if e.Sequence == 0 {
		t.Error("expected assigned sequence")
	}
	if e.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestQueryLLMEventsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz-gen", "quiz-gen", "schema-check"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock",
			Model:    "mock",
			Purpose:  purpose,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("events out of order: seq[%d]=%d, seq[%d]=%d",
				i-1, events[i-1].Sequence, i, events[i].Sequence)
		}
	}

	// Purpose filter.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("filtered count = %d, want 2", len(events))
	}

	// Limit.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("limited count = %d, want 1", len(events))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "quiz-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil event")
	}
	if got.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", got.ErrorMessage)
	}

	// Missing ID returns nil without error.
	missing, err := repo.GetLLMEvent(ctx, events[0].ID+1000)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestQuizStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Empty store: all zeros, no error.
	stats, err := repo.QuizStats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if stats.QuizzesGenerated != 0 || stats.QuizzesScored != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	gens := []QuizGeneratedEventData{
		{SessionID: "s1", Source: "topic", Kind: "Multiple Choice", Difficulty: "Hard", Language: "English", Requested: 5, Accepted: 5},
		{SessionID: "s1", Source: "taxonomy", Kind: "True or False", Difficulty: "Easy", Language: "English", Requested: 10, Accepted: 7},
	}
	for i, g := range gens {
		if err := repo.AppendQuizGenerated(ctx, g); err != nil {
			t.Fatalf("append generated %d: %v", i, err)
		}
	}
	if err := repo.AppendQuizScored(ctx, QuizScoredEventData{SessionID: "s1", Score: 4, Total: 5}); err != nil {
		t.Fatalf("append scored: %v", err)
	}
	if err := repo.AppendQuizScored(ctx, QuizScoredEventData{SessionID: "s1", Score: 0, Total: 0}); err != nil {
		t.Fatalf("append scored empty: %v", err)
	}

	stats, err = repo.QuizStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.QuizzesGenerated != 2 {
		t.Errorf("quizzes generated = %d, want 2", stats.QuizzesGenerated)
	}
	if stats.ItemsRequested != 15 {
		t.Errorf("items requested = %d, want 15", stats.ItemsRequested)
	}
	if stats.ItemsAccepted != 12 {
		t.Errorf("items accepted = %d, want 12", stats.ItemsAccepted)
	}
	if stats.QuizzesScored != 2 {
		t.Errorf("quizzes scored = %d, want 2", stats.QuizzesScored)
	}
	if stats.CorrectAnswers != 4 {
		t.Errorf("correct answers = %d, want 4", stats.CorrectAnswers)
	}
	if stats.ScoredItems != 5 {
		t.Errorf("scored items = %d, want 5", stats.ScoredItems)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-1.5-flash", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 800, Success: true},
		{Provider: "gemini", Model: "gemini-1.5-flash", Purpose: "quiz-gen", InputTokens: 300, OutputTokens: 600, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "extract", InputTokens: 50, OutputTokens: 20, LatencyMs: 400, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// Ordered by purpose: "extract" then "quiz-gen".
	if byPurpose[0].Purpose != "extract" || byPurpose[0].Calls != 1 {
		t.Errorf("purpose[0] = %+v", byPurpose[0])
	}
	qg := byPurpose[1]
	if qg.Purpose != "quiz-gen" || qg.Calls != 2 {
		t.Fatalf("purpose[1] = %+v", qg)
	}
	if qg.InputTokens != 400 || qg.OutputTokens != 1000 {
		t.Errorf("quiz-gen tokens = %d/%d, want 400/1000", qg.InputTokens, qg.OutputTokens)
	}
	if qg.AvgLatencyMs != 1000 {
		t.Errorf("quiz-gen avg latency = %d, want 1000", qg.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
	if byModel[0].Model != "gemini-1.5-flash" || byModel[0].Calls != 2 {
		t.Errorf("model[0] = %+v", byModel[0])
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}
	if err := repo.AppendQuizGenerated(ctx, QuizGeneratedEventData{SessionID: "s1", Source: "topic", Kind: "Multiple Choice", Difficulty: "Easy", Language: "English", Requested: 3, Accepted: 3}); err != nil {
		t.Fatalf("append generated: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true}); err != nil {
		t.Fatalf("append llm 2: %v", err)
	}

	// LLM events at sequence 1 and 3; the quiz event took 2.
	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Sequence != 3 || events[1].Sequence != 1 {
		t.Errorf("sequences = %d, %d, want 3, 1", events[0].Sequence, events[1].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "quiz_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
