// Package seeder loads the practice vocabulary into the words table.
package seeder

import (
	"context"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

// WordRepo is the write side of the vocabulary store. Implemented by word.Repo.
type WordRepo interface {
	// Upsert inserts or updates words keyed by their normalized text and
	// returns the number of rows written.
	Upsert(ctx context.Context, words []domain.Word) (int, error)
}
