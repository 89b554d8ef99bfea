package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary item a child practices. Text is the normalized form
// used for scoring and lookups; Display is what the app shows.
type Word struct {
	ID         uuid.UUID
	Text       string
	Display    string
	Difficulty Difficulty
	Phonetic   string
	Hint       string
	ImageURL   *string
	AudioURL   *string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
