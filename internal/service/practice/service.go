// Package practice scores answers and keeps the learner's practice record:
// attempt history, finished game sessions and the progress summary.
package practice

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/config"
	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/observe"
	"github.com/heartmarshall/speakup-backend/internal/pronounce"
)

type historyRepo interface {
	Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	List(ctx context.Context, userID uuid.UUID, f domain.HistoryFilter) ([]domain.HistoryEntry, int, error)
	Stats(ctx context.Context, userID uuid.UUID) (domain.HistoryStats, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, []string, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s domain.PracticeSession) (*domain.PracticeSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PracticeSession, int, error)
}

// audioStore removes recordings when history is cleared.
type audioStore interface {
	Delete(ctx context.Context, keys ...string) error
}

// Service implements practice operations.
type Service struct {
	log      *slog.Logger
	history  historyRepo
	sessions sessionRepo
	audio    audioStore
	assessor *pronounce.Assessor
	metrics  *observe.Metrics
	cfg      config.PracticeConfig
	now      func() time.Time
}

// NewService creates a new practice service. audio may be nil when object
// storage is disabled.
func NewService(
	logger *slog.Logger,
	history historyRepo,
	sessions sessionRepo,
	audio audioStore,
	metrics *observe.Metrics,
	cfg config.PracticeConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "practice"),
		history:  history,
		sessions: sessions,
		audio:    audio,
		assessor: pronounce.NewAssessor(
			pronounce.WithPassThreshold(cfg.PassThreshold),
			pronounce.WithPhoneticCheck(cfg.PhoneticCheck),
		),
		metrics: metrics,
		cfg:     cfg,
		now:     time.Now,
	}
}

// PassThreshold returns the score an answer needs to count as correct.
func (s *Service) PassThreshold() float64 {
	return s.assessor.PassThreshold()
}
