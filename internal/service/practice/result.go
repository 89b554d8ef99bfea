package practice

import (
	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/pronounce"
)

// CheckResult is the stored attempt together with its feedback.
type CheckResult struct {
	Entry      *domain.HistoryEntry
	Assessment pronounce.Assessment
}

// HistoryPage is one page of history entries.
type HistoryPage struct {
	Entries []domain.HistoryEntry
	Total   int
}

// SessionPage is one page of saved sessions.
type SessionPage struct {
	Sessions []domain.PracticeSession
	Total    int
}
