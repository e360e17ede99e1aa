package store

import (
	"context"
	"fmt"

	"github.com/mujeeb/quizdev/ent/quizevent"
)

func (r *eventRepo) AppendQuizGenerated(ctx context.Context, data QuizGeneratedEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(quizevent.ActionGenerated).
		SetSource(data.Source).
		SetKind(data.Kind).
		SetDifficulty(data.Difficulty).
		SetLanguage(data.Language).
		SetRequested(data.Requested).
		SetAccepted(data.Accepted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz generated event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendQuizScored(ctx context.Context, data QuizScoredEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(quizevent.ActionScored).
		SetScore(data.Score).
		SetTotal(data.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz scored event: %w", err)
	}

	return nil
}

func (r *eventRepo) QuizStats(ctx context.Context) (*QuizStats, error) {
	// One pass over quiz_events, splitting the sums by action.
	row := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE WHEN action = 'generated' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN action = 'generated' THEN requested ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN action = 'generated' THEN accepted ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN action = 'scored' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN action = 'scored' THEN score ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN action = 'scored' THEN total ELSE 0 END), 0)
		FROM quiz_events`)

	var s QuizStats
	if err := row.Scan(
		&s.QuizzesGenerated, &s.ItemsRequested, &s.ItemsAccepted,
		&s.QuizzesScored, &s.CorrectAnswers, &s.ScoredItems,
	); err != nil {
		return nil, fmt.Errorf("query quiz stats: %w", err)
	}
	return &s, nil
}
