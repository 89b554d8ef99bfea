// Package recording stores voice attempts and sends them to the remote
// prediction service for analysis.
package recording

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/config"
	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/observe"
)

type historyRepo interface {
	Create(ctx context.Context, e domain.HistoryEntry) (*domain.HistoryEntry, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.HistoryEntry, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.HistoryEntry, error)
	UpdateScore(ctx context.Context, userID, id uuid.UUID, score float64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type audioStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Get(ctx context.Context, key string) ([]byte, string, error)
	Delete(ctx context.Context, keys ...string) error
	PresignedURL(ctx context.Context, key string) (string, error)
}

type predictor interface {
	Predict(ctx context.Context, clips []domain.AudioClip) (*domain.PredictionBatch, error)
}

// Service implements recording operations. audio and predictor are nil when
// the corresponding integration is disabled.
type Service struct {
	log       *slog.Logger
	history   historyRepo
	tx        txManager
	audio     audioStore
	predictor predictor
	metrics   *observe.Metrics
	maxUpload int64
	maxBatch  int
	now       func() time.Time
}

// NewService creates a new recording service.
func NewService(
	logger *slog.Logger,
	history historyRepo,
	tx txManager,
	audio audioStore,
	predictor predictor,
	metrics *observe.Metrics,
	storageCfg config.StorageConfig,
	practiceCfg config.PracticeConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "recording"),
		history:   history,
		tx:        tx,
		audio:     audio,
		predictor: predictor,
		metrics:   metrics,
		maxUpload: storageCfg.MaxUploadBytes,
		maxBatch:  practiceCfg.MaxAnalyzeBatch,
		now:       time.Now,
	}
}
