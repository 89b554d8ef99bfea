package predict

import (
	"strconv"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

const errInvalidProbability = "invalid probability_correct "

type apiResponse struct {
	SuccessRate           any         `json:"success_rate"`
	TotalFiles            int         `json:"total_files"`
	SuccessfulPredictions int         `json:"successful_predictions"`
	Results               []apiResult `json:"results"`
}

type apiResult struct {
	Filename           string  `json:"filename"`
	Prediction         string  `json:"prediction"`
	Confidence         float64 `json:"confidence"`
	ProbabilityCorrect float64 `json:"probability_correct"`
	Error              string  `json:"error"`
}

func mapResponse(resp apiResponse) *domain.PredictionBatch {
	batch := &domain.PredictionBatch{
		SuccessRate:           successRate(resp.SuccessRate),
		TotalFiles:            resp.TotalFiles,
		SuccessfulPredictions: resp.SuccessfulPredictions,
		Results:               make([]domain.Prediction, 0, len(resp.Results)),
	}
	for _, r := range resp.Results {
		p := domain.Prediction{
			Filename:           r.Filename,
			Label:              domain.PredictionLabel(r.Prediction),
			Confidence:         r.Confidence,
			ProbabilityCorrect: r.ProbabilityCorrect,
			Error:              r.Error,
		}
		// A verdict whose probability cannot be stored as a score is a failure.
		if p.Error == "" && p.Label != "" && !domain.ValidProbability(p.ProbabilityCorrect) {
			p.Error = errInvalidProbability + strconv.FormatFloat(p.ProbabilityCorrect, 'g', -1, 64)
			if batch.SuccessfulPredictions > 0 {
				batch.SuccessfulPredictions--
			}
		}
		batch.Results = append(batch.Results, p)
	}
	return batch
}

// successRate is reported either as a preformatted string ("75.0%") or a number.
func successRate(v any) string {
	switch rate := v.(type) {
	case nil:
		return ""
	case string:
		return rate
	case float64:
		return formatPercent(rate)
	default:
		return ""
	}
}
