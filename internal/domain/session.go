package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Answer is a single word result inside a practice session.
type Answer struct {
	Word    string
	Typed   string
	Correct bool
	Score   float64
}

// PracticeSession is a finished round of a game, saved with its answers.
type PracticeSession struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	GameType   GameType
	Answers    []Answer
	Correct    int
	Total      int
	Percentage int
	CreatedAt  time.Time
}

// NewPracticeSession builds a session and derives Correct, Total and
// Percentage from answers.
func NewPracticeSession(userID uuid.UUID, gameType GameType, answers []Answer, now time.Time) PracticeSession {
	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}

	return PracticeSession{
		ID:         uuid.New(),
		UserID:     userID,
		GameType:   gameType,
		Answers:    answers,
		Correct:    correct,
		Total:      len(answers),
		Percentage: Percentage(correct, len(answers)),
		CreatedAt:  now,
	}
}

// Percentage returns round(part/total*100), or 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
