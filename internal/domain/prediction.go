package domain

import (
	"math"

	"github.com/google/uuid"
)

// AudioClip is one recording sent for analysis.
type AudioClip struct {
	EntryID     uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

// Prediction is the remote verdict for one uploaded clip.
type Prediction struct {
	Filename           string
	Label              PredictionLabel
	Confidence         float64
	ProbabilityCorrect float64
	Error              string
}

// Succeeded reports whether the service produced a verdict for the clip with
// a usable probability.
func (p Prediction) Succeeded() bool {
	return p.Error == "" && p.Label != "" && ValidProbability(p.ProbabilityCorrect)
}

// ValidProbability reports whether v is a finite value in [0,1], the range a
// history score may take.
func ValidProbability(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// PredictionBatch is the response for a multi-file analysis request.
type PredictionBatch struct {
	// SuccessRate is passed through as reported by the service.
	SuccessRate           string
	TotalFiles            int
	SuccessfulPredictions int
	Results               []Prediction
}

// FirstError returns the first per-file error, or "" if none.
func (b *PredictionBatch) FirstError() string {
	for _, r := range b.Results {
		if r.Error != "" {
			return r.Error
		}
	}
	return ""
}
