package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/service/recording"
)

// multipartOverhead covers form boundaries and the word field on top of the
// audio payload.
const multipartOverhead = 64 << 10

type recordingService interface {
	Submit(ctx context.Context, input recording.SubmitInput) (*domain.HistoryEntry, error)
	Analyze(ctx context.Context, input recording.AnalyzeInput) (*recording.AnalyzeResult, error)
	AudioURL(ctx context.Context, entryID uuid.UUID) (string, error)
}

// RecordingHandler serves voice uploads, analysis and playback.
type RecordingHandler struct {
	svc       recordingService
	log       *slog.Logger
	maxUpload int64
	threshold float64
}

// NewRecordingHandler creates a RecordingHandler. maxUpload bounds the audio
// part of an upload; threshold decides the correct flag on returned entries.
func NewRecordingHandler(svc recordingService, logger *slog.Logger, maxUpload int64, threshold float64) *RecordingHandler {
	return &RecordingHandler{
		svc:       svc,
		log:       logger.With("handler", "recording"),
		maxUpload: maxUpload,
		threshold: threshold,
	}
}

type analyzeRequest struct {
	EntryIDs []uuid.UUID `json:"entryIds"`
}

type predictionResponse struct {
	Filename           string  `json:"filename"`
	Prediction         string  `json:"prediction,omitempty"`
	Confidence         float64 `json:"confidence"`
	ProbabilityCorrect float64 `json:"probability_correct"`
	Error              string  `json:"error,omitempty"`
}

type analyzeResponse struct {
	SuccessRate           string               `json:"success_rate"`
	TotalFiles            int                  `json:"total_files"`
	SuccessfulPredictions int                  `json:"successful_predictions"`
	Results               []predictionResponse `json:"results"`
	Updated               int                  `json:"updated"`
	Message               string               `json:"message"`
}

// Upload handles POST /api/recordings as multipart/form-data with fields
// "word" and "file".
func (h *RecordingHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxUpload + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "recording is too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("body", "expected multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	entry, err := h.svc.Submit(r.Context(), recording.SubmitInput{
		Word:        r.FormValue("word"),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHistoryEntryResponse(entry, h.threshold))
}

// Analyze handles POST /api/recordings/analyze.
func (h *RecordingHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Analyze(r.Context(), recording.AnalyzeInput{EntryIDs: req.EntryIDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results := make([]predictionResponse, 0, len(res.Batch.Results))
	for _, p := range res.Batch.Results {
		results = append(results, predictionResponse{
			Filename:           p.Filename,
			Prediction:         p.Label.String(),
			Confidence:         p.Confidence,
			ProbabilityCorrect: p.ProbabilityCorrect,
			Error:              p.Error,
		})
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		SuccessRate:           res.Batch.SuccessRate,
		TotalFiles:            res.Batch.TotalFiles,
		SuccessfulPredictions: res.Batch.SuccessfulPredictions,
		Results:               results,
		Updated:               res.Updated,
		Message:               res.Message,
	})
}

// Audio handles GET /api/recordings/{id}/audio.
func (h *RecordingHandler) Audio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	url, err := h.svc.AudioURL(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
