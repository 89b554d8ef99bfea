package recording

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/pkg/ctxutil"
)

const (
	msgComplete      = "Pronunciation analysis complete!"
	msgNoPredictions = "No predictions could be made"

	noPredictionsHint = "The server could not analyze your recordings. Please try recording again with better audio quality."
	timeoutHint       = "The server took too long to process your recordings. Please try again."
	formatHint        = "There was an issue with the audio format. Please ensure you're using a supported format (WAV recommended)."
)

// AnalyzeResult is the prediction batch together with the learner-facing
// message and the number of history entries that received a score.
type AnalyzeResult struct {
	Batch   *domain.PredictionBatch
	Updated int
	Message string
}

// Analyze sends the selected recordings to the prediction service in one
// batch and stores probability_correct as the score of every entry the
// service could judge.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (_ *AnalyzeResult, err error) {
	if s.audio == nil || s.predictor == nil {
		return nil, fmt.Errorf("recording.Analyze: prediction disabled: %w", domain.ErrUnavailable)
	}
	if err := input.Validate(s.maxBatch); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	clips, err := s.loadClips(ctx, userID, input.EntryIDs)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	batch, err := s.predictor.Predict(ctx, clips)
	if err != nil {
		s.metrics.RecordPrediction(ctx, time.Since(start), 0, len(clips), err)
		return nil, fmt.Errorf("recording.Analyze: %w", err)
	}

	scores := make(map[uuid.UUID]float64, len(batch.Results))
	for i, p := range batch.Results {
		if !p.Succeeded() {
			if p.Error != "" {
				s.log.DebugContext(ctx, "prediction failed", slog.String("filename", p.Filename), slog.String("error", p.Error))
			}
			continue
		}
		clip, ok := matchClip(clips, p.Filename, i)
		if !ok {
			s.log.WarnContext(ctx, "prediction for unknown file", slog.String("filename", p.Filename))
			continue
		}
		scores[clip.EntryID] = p.ProbabilityCorrect
	}

	// All scores of a batch are written or none are.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for id, score := range scores {
			if err := s.history.UpdateScore(ctx, userID, id, score); err != nil {
				return fmt.Errorf("update %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordPrediction(ctx, time.Since(start), 0, len(clips), err)
		return nil, fmt.Errorf("recording.Analyze: %w", err)
	}
	updated := len(scores)

	s.metrics.RecordPrediction(ctx, time.Since(start), updated, len(clips)-updated, nil)

	s.log.InfoContext(ctx, "recordings analyzed",
		slog.Int("files", len(clips)),
		slog.Int("scored", updated),
		slog.String("success_rate", batch.SuccessRate),
	)

	return &AnalyzeResult{
		Batch:   batch,
		Updated: updated,
		Message: analysisMessage(batch),
	}, nil
}

func (s *Service) loadClips(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.AudioClip, error) {
	entries, err := s.history.GetByIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("recording.Analyze: %w", err)
	}
	if len(entries) != len(ids) {
		return nil, fmt.Errorf("recording.Analyze: %d of %d recordings: %w", len(entries), len(ids), domain.ErrNotFound)
	}

	clips := make([]domain.AudioClip, 0, len(entries))
	for i, e := range entries {
		if !e.HasAudio() {
			return nil, domain.NewValidationError("entry_ids", "entry "+e.ID.String()+" has no recording")
		}

		data, contentType, err := s.audio.Get(ctx, *e.AudioKey)
		if err != nil {
			return nil, fmt.Errorf("recording.Analyze load %s: %w", e.ID, err)
		}

		clips = append(clips, domain.AudioClip{
			EntryID:     e.ID,
			Filename:    fmt.Sprintf("%s_recording_%d%s", e.Word, i+1, extension(*e.AudioKey)),
			ContentType: contentType,
			Data:        data,
		})
	}
	return clips, nil
}

// matchClip finds the clip a result belongs to by filename, falling back to
// the result's position when the service renamed the file.
func matchClip(clips []domain.AudioClip, filename string, idx int) (domain.AudioClip, bool) {
	for _, c := range clips {
		if c.Filename == filename {
			return c, true
		}
	}
	if filename == "" && idx < len(clips) {
		return clips[idx], true
	}
	return domain.AudioClip{}, false
}

func analysisMessage(b *domain.PredictionBatch) string {
	if b.SuccessfulPredictions > 0 {
		return msgComplete
	}
	return failureMessage(b.FirstError())
}

// failureMessage turns the first per-file error of a batch without any
// verdict into a message a child's parent can act on.
func failureMessage(errMsg string) string {
	lower := strings.ToLower(errMsg)
	switch {
	case errMsg == "" || errMsg == msgNoPredictions:
		return noPredictionsHint
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out"):
		return timeoutHint
	case strings.Contains(lower, "format") || strings.Contains(lower, "codec"):
		return formatHint
	default:
		return "Server prediction failed: " + errMsg
	}
}
