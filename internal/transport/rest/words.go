package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/speakup-backend/internal/domain"
)

type vocabularyService interface {
	ListWords(ctx context.Context, difficulty domain.Difficulty) ([]domain.Word, error)
	GetWord(ctx context.Context, text string) (*domain.Word, error)
}

// WordHandler serves the practice vocabulary.
type WordHandler struct {
	svc vocabularyService
	log *slog.Logger
}

func NewWordHandler(svc vocabularyService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

type wordResponse struct {
	Word       string  `json:"word"`
	Display    string  `json:"display"`
	Difficulty string  `json:"difficulty"`
	Phonetic   string  `json:"phonetic,omitempty"`
	Hint       string  `json:"hint,omitempty"`
	Image      *string `json:"image,omitempty"`
	Audio      *string `json:"audio,omitempty"`
}

// List handles GET /api/words?difficulty=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.ListWords(r.Context(), domain.Difficulty(r.URL.Query().Get("difficulty")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]wordResponse, 0, len(words))
	for i := range words {
		resp = append(resp, toWordResponse(&words[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": resp})
}

// Get handles GET /api/words/{word}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	word, err := h.svc.GetWord(r.Context(), mux.Vars(r)["word"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordResponse(word))
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		Word:       w.Text,
		Display:    w.Display,
		Difficulty: w.Difficulty.String(),
		Phonetic:   w.Phonetic,
		Hint:       w.Hint,
		Image:      w.ImageURL,
		Audio:      w.AudioURL,
	}
}
