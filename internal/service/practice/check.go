package practice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/pkg/ctxutil"
)

// CheckAnswer scores a typed attempt against the target word and stores it
// in the learner's history.
func (s *Service) CheckAnswer(ctx context.Context, input CheckAnswerInput) (*CheckResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	word := domain.NormalizeText(input.Word)
	typed := strings.TrimSpace(input.Typed)
	assessment := s.assessor.Assess(typed, word)

	entry, err := s.history.Create(ctx, domain.HistoryEntry{
		ID:         uuid.New(),
		UserID:     userID,
		Word:       word,
		Recognized: typed,
		Score:      &assessment.Score,
		Source:     domain.AttemptTyped,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("practice.CheckAnswer: %w", err)
	}

	s.metrics.RecordAnswer(ctx, domain.AttemptTyped.String(), assessment.Score, assessment.Passed)

	s.log.DebugContext(ctx, "answer checked",
		slog.String("word", word),
		slog.Float64("score", assessment.Score),
		slog.Bool("passed", assessment.Passed),
	)

	return &CheckResult{Entry: entry, Assessment: assessment}, nil
}
