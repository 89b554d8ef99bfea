package domain

import "math"

// RecentActivityLimit is the number of newest entries shown in a progress summary.
const RecentActivityLimit = 5

// Progress is the learner-facing summary shown on the feedback screen.
type Progress struct {
	WordsTried     int
	CorrectAnswers int
	VoicePractice  int
	SuccessRate    int
	Stars          int
	Encouragement  string
	Recent         []HistoryEntry
}

// NewProgress derives the summary from aggregated stats and the newest
// history entries. At most five recent entries are kept.
func NewProgress(stats HistoryStats, recent []HistoryEntry) Progress {
	rate := Percentage(stats.Correct, stats.Total)

	if len(recent) > RecentActivityLimit {
		recent = recent[:RecentActivityLimit]
	}
	if recent == nil {
		recent = []HistoryEntry{}
	}

	return Progress{
		WordsTried:     stats.Total,
		CorrectAnswers: stats.Correct,
		VoicePractice:  stats.Voice,
		SuccessRate:    rate,
		Stars:          StarRating(rate),
		Encouragement:  Encouragement(rate),
		Recent:         recent,
	}
}

// StarRating maps a 0..100 success rate onto 1..5 stars. Even a learner with
// no correct answers gets one star.
func StarRating(rate int) int {
	stars := int(math.Ceil(float64(rate) / 20))
	return min(5, max(1, stars))
}

// Encouragement returns the message matching a 0..100 success rate.
func Encouragement(rate int) string {
	switch {
	case rate >= 80:
		return "You're a superstar!"
	case rate >= 60:
		return "Great job! Keep it up!"
	case rate >= 40:
		return "Good work! Practice makes perfect!"
	case rate >= 20:
		return "Keep trying! You're getting better!"
	default:
		return "Every expert was once a beginner!"
	}
}
