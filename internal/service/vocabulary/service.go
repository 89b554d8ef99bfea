// Package vocabulary serves the practice word list.
package vocabulary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// wordRepo defines the word repository interface needed by vocabulary service.
type wordRepo interface {
	List(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error)
	GetByText(ctx context.Context, text string) (*domain.Word, error)
}

// Service implements vocabulary lookups.
type Service struct {
	log   *slog.Logger
	words wordRepo
}

// NewService creates a new vocabulary service instance.
func NewService(logger *slog.Logger, words wordRepo) *Service {
	return &Service{
		log:   logger.With("service", "vocabulary"),
		words: words,
	}
}

// ListWords returns the practice words in display order. An empty difficulty
// lists every word.
func (s *Service) ListWords(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error) {
	if difficulty != "" && !difficulty.IsValid() {
		return nil, domain.NewValidationError("difficulty", "must be one of easy, medium, hard")
	}

	words, err := s.words.List(ctx, difficulty)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ListWords: %w", err)
	}
	return words, nil
}

// GetWord returns the word matching text after normalization.
func (s *Service) GetWord(ctx context.Context, text string) (*domain.Word, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	w, err := s.words.GetByText(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.GetWord: %w", err)
	}
	return w, nil
}
