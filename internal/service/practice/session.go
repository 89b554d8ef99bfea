package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/pkg/ctxutil"
)

// SaveSession stores a finished game. Answers with typed text are rescored
// so Correct always follows the pass threshold; answers without text keep
// the client's verdict. Counts and percentage are derived server-side.
func (s *Service) SaveSession(ctx context.Context, input SaveSessionInput) (*domain.PracticeSession, error) {
	if err := input.Validate(s.cfg.MaxAnswers); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	answers := make([]domain.Answer, 0, len(input.Answers))
	for _, a := range input.Answers {
		answers = append(answers, s.scoreAnswer(a))
	}

	session, err := s.sessions.Create(ctx, domain.NewPracticeSession(userID, input.GameType, answers, s.now()))
	if err != nil {
		return nil, fmt.Errorf("practice.SaveSession: %w", err)
	}

	s.log.InfoContext(ctx, "session saved",
		slog.String("game_type", session.GameType.String()),
		slog.Int("correct", session.Correct),
		slog.Int("total", session.Total),
	)
	return session, nil
}

// ListSessions returns the learner's saved sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) (*SessionPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	sessions, total, err := s.sessions.ListByUser(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("practice.ListSessions: %w", err)
	}
	return &SessionPage{Sessions: sessions, Total: total}, nil
}

func (s *Service) scoreAnswer(a AnswerInput) domain.Answer {
	word := domain.NormalizeText(a.Word)
	typed := strings.TrimSpace(a.Typed)

	if typed == "" {
		score := 0.0
		if a.Correct {
			score = 1
		}
		return domain.Answer{Word: word, Correct: a.Correct, Score: score}
	}

	res := s.assessor.Assess(typed, word)
	return domain.Answer{Word: word, Typed: typed, Correct: res.Passed, Score: res.Score}
}
