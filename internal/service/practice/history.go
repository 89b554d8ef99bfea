package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/pkg/ctxutil"
)

// ListHistory returns the learner's attempts, newest first.
func (s *Service) ListHistory(ctx context.Context, filter domain.HistoryFilter) (*HistoryPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.Source != "" && !filter.Source.IsValid() {
		return nil, domain.NewValidationError("source", "must be typed or recording")
	}

	entries, total, err := s.history.List(ctx, userID, filter.Normalized())
	if err != nil {
		return nil, fmt.Errorf("practice.ListHistory: %w", err)
	}
	return &HistoryPage{Entries: entries, Total: total}, nil
}

// ClearHistory deletes every attempt of the learner and the recordings they
// referenced. Recording cleanup failures are logged, not returned: the
// history rows are already gone and the cleanup command sweeps leftovers.
func (s *Service) ClearHistory(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, keys, err := s.history.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("practice.ClearHistory: %w", err)
	}

	if len(keys) > 0 && s.audio != nil {
		if err := s.audio.Delete(ctx, keys...); err != nil {
			s.log.WarnContext(ctx, "recording cleanup failed",
				slog.Int("keys", len(keys)),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "history cleared", slog.Int("entries", n), slog.Int("recordings", len(keys)))
	return n, nil
}

// GetProgress summarizes the learner's history for the feedback screen.
func (s *Service) GetProgress(ctx context.Context) (*domain.Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.history.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("practice.GetProgress stats: %w", err)
	}

	recent, _, err := s.history.List(ctx, userID, domain.HistoryFilter{Limit: domain.RecentActivityLimit})
	if err != nil {
		return nil, fmt.Errorf("practice.GetProgress recent: %w", err)
	}

	p := domain.NewProgress(stats, recent)
	return &p, nil
}
