package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// HistoryEntry records one attempt at a word.
type HistoryEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Word       string
	Recognized string
	// Score is in [0,1]. Nil means the attempt has not been scored yet.
	Score     *float64
	Source    AttemptSource
	AudioKey  *string
	CreatedAt time.Time
}

// HasAudio reports whether a recording is attached to the entry.
func (e *HistoryEntry) HasAudio() bool {
	return e.AudioKey != nil && *e.AudioKey != ""
}

// IsCorrect reports whether the entry counts as a correct answer: it has a
// positive score that reaches threshold.
func (e *HistoryEntry) IsCorrect(threshold float64) bool {
	return e.Score != nil && *e.Score > 0 && *e.Score >= threshold
}

// HistoryFilter narrows a history listing. Zero values mean "no filter".
type HistoryFilter struct {
	Word   string
	Source AttemptSource
	Since  *time.Time
	Limit  int
	Offset int
}

// Normalized returns a copy with Word normalized and Limit/Offset clamped.
func (f HistoryFilter) Normalized() HistoryFilter {
	f.Word = NormalizeText(f.Word)
	if f.Limit <= 0 {
		f.Limit = DefaultHistoryLimit
	}
	if f.Limit > MaxHistoryLimit {
		f.Limit = MaxHistoryLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// HistoryStats holds per-user history aggregates computed in SQL.
type HistoryStats struct {
	Total   int
	Correct int
	Voice   int
}
