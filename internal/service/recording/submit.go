package recording

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/pkg/ctxutil"
)

// Submit stores a voice attempt and records it in history. The entry starts
// with score 0; Analyze fills in the predicted score.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (_ *domain.HistoryEntry, err error) {
	if s.audio == nil {
		return nil, fmt.Errorf("recording.Submit: storage disabled: %w", domain.ErrUnavailable)
	}
	if err := input.Validate(s.maxUpload); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	defer func() { s.metrics.RecordUpload(ctx, err) }()

	entryID := uuid.New()
	key := objectKey(userID, entryID, extension(input.Filename))

	if err := s.audio.Put(ctx, key, input.ContentType, input.Body, input.Size); err != nil {
		return nil, fmt.Errorf("recording.Submit upload: %w", err)
	}

	score := 0.0
	entry, err := s.history.Create(ctx, domain.HistoryEntry{
		ID:        entryID,
		UserID:    userID,
		Word:      domain.NormalizeText(input.Word),
		Score:     &score,
		Source:    domain.AttemptRecording,
		AudioKey:  &key,
		CreatedAt: s.now(),
	})
	if err != nil {
		if delErr := s.audio.Delete(ctx, key); delErr != nil {
			s.log.WarnContext(ctx, "orphaned recording",
				slog.String("key", key),
				slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("recording.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "recording stored",
		slog.String("entry_id", entryID.String()),
		slog.String("word", entry.Word),
		slog.Int64("bytes", input.Size),
	)
	return entry, nil
}

// AudioURL returns a time-limited playback URL for a recording.
func (s *Service) AudioURL(ctx context.Context, entryID uuid.UUID) (string, error) {
	if s.audio == nil {
		return "", fmt.Errorf("recording.AudioURL: storage disabled: %w", domain.ErrUnavailable)
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	entry, err := s.history.GetByID(ctx, userID, entryID)
	if err != nil {
		return "", fmt.Errorf("recording.AudioURL: %w", err)
	}
	if !entry.HasAudio() {
		return "", fmt.Errorf("recording.AudioURL: entry has no recording: %w", domain.ErrNotFound)
	}

	url, err := s.audio.PresignedURL(ctx, *entry.AudioKey)
	if err != nil {
		return "", fmt.Errorf("recording.AudioURL: %w", err)
	}
	return url, nil
}
