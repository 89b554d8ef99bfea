package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/speakup-backend/internal/domain"
	"github.com/heartmarshall/speakup-backend/internal/service/practice"
)

type practiceService interface {
	CheckAnswer(ctx context.Context, input practice.CheckAnswerInput) (*practice.CheckResult, error)
	ListHistory(ctx context.Context, filter domain.HistoryFilter) (*practice.HistoryPage, error)
	ClearHistory(ctx context.Context) (int, error)
	SaveSession(ctx context.Context, input practice.SaveSessionInput) (*domain.PracticeSession, error)
	ListSessions(ctx context.Context, input practice.ListSessionsInput) (*practice.SessionPage, error)
	GetProgress(ctx context.Context) (*domain.Progress, error)
	PassThreshold() float64
}

// PracticeHandler serves answer checking, history, sessions and progress.
type PracticeHandler struct {
	svc practiceService
	log *slog.Logger
}

func NewPracticeHandler(svc practiceService, logger *slog.Logger) *PracticeHandler {
	return &PracticeHandler{svc: svc, log: logger.With("handler", "practice")}
}

type checkRequest struct {
	Word  string `json:"word"`
	Typed string `json:"typed"`
}

type checkResponse struct {
	Entry       historyEntryResponse `json:"entry"`
	Score       float64              `json:"score"`
	Passed      bool                 `json:"passed"`
	SoundsAlike bool                 `json:"soundsAlike"`
	Stars       int                  `json:"stars"`
}

type historyEntryResponse struct {
	ID         string    `json:"id"`
	Word       string    `json:"word"`
	Recognized string    `json:"recognized,omitempty"`
	Score      *float64  `json:"score"`
	Correct    bool      `json:"correct"`
	Source     string    `json:"source"`
	HasAudio   bool      `json:"hasAudio"`
	Timestamp  time.Time `json:"timestamp"`
}

type answerRequest struct {
	Word    string `json:"word"`
	Typed   string `json:"typed"`
	Correct bool   `json:"correct"`
}

type saveSessionRequest struct {
	GameType string          `json:"gameType"`
	Answers  []answerRequest `json:"answers"`
}

type answerResponse struct {
	Word    string  `json:"word"`
	Typed   string  `json:"typed,omitempty"`
	Correct bool    `json:"correct"`
	Score   float64 `json:"score"`
}

type sessionResponse struct {
	ID         string           `json:"id"`
	GameType   string           `json:"gameType"`
	Score      int              `json:"score"`
	TotalWords int              `json:"totalWords"`
	Percentage int              `json:"percentage"`
	Answers    []answerResponse `json:"answers"`
	Timestamp  time.Time        `json:"timestamp"`
}

type progressResponse struct {
	WordsTried     int                    `json:"wordsTried"`
	CorrectAnswers int                    `json:"correctAnswers"`
	VoicePractice  int                    `json:"voicePractice"`
	SuccessRate    int                    `json:"successRate"`
	Stars          int                    `json:"stars"`
	Encouragement  string                 `json:"encouragement"`
	Recent         []historyEntryResponse `json:"recent"`
}

// Check handles POST /api/practice/check.
func (h *PracticeHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.CheckAnswer(r.Context(), practice.CheckAnswerInput{Word: req.Word, Typed: req.Typed})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkResponse{
		Entry:       h.toEntry(res.Entry),
		Score:       res.Assessment.Score,
		Passed:      res.Assessment.Passed,
		SoundsAlike: res.Assessment.SoundsAlike,
		Stars:       res.Assessment.Stars,
	})
}

// ListHistory handles GET /api/history?word=&source=&since=&limit=&offset=.
func (h *PracticeHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.HistoryFilter{
		Word:   q.Get("word"),
		Source: domain.AttemptSource(q.Get("source")),
	}

	var err error
	if filter.Limit, filter.Offset, err = paging(q); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if s := q.Get("since"); s != "" {
		since, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("since", "must be an RFC 3339 timestamp"))
			return
		}
		filter.Since = &since
	}

	page, err := h.svc.ListHistory(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries := make([]historyEntryResponse, 0, len(page.Entries))
	for i := range page.Entries {
		entries = append(entries, h.toEntry(&page.Entries[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries, "total": page.Total})
}

// ClearHistory handles DELETE /api/history.
func (h *PracticeHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ClearHistory(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

// SaveSession handles POST /api/sessions.
func (h *PracticeHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	var req saveSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	answers := make([]practice.AnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, practice.AnswerInput{Word: a.Word, Typed: a.Typed, Correct: a.Correct})
	}

	s, err := h.svc.SaveSession(r.Context(), practice.SaveSessionInput{
		GameType: domain.GameType(req.GameType),
		Answers:  answers,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(s))
}

// ListSessions handles GET /api/sessions?limit=&offset=.
func (h *PracticeHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := paging(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.ListSessions(r.Context(), practice.ListSessionsInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sessions := make([]sessionResponse, 0, len(page.Sessions))
	for i := range page.Sessions {
		sessions = append(sessions, toSessionResponse(&page.Sessions[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": sessions, "total": page.Total})
}

// Progress handles GET /api/progress.
func (h *PracticeHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recent := make([]historyEntryResponse, 0, len(p.Recent))
	for i := range p.Recent {
		recent = append(recent, h.toEntry(&p.Recent[i]))
	}
	writeJSON(w, http.StatusOK, progressResponse{
		WordsTried:     p.WordsTried,
		CorrectAnswers: p.CorrectAnswers,
		VoicePractice:  p.VoicePractice,
		SuccessRate:    p.SuccessRate,
		Stars:          p.Stars,
		Encouragement:  p.Encouragement,
		Recent:         recent,
	})
}

func (h *PracticeHandler) toEntry(e *domain.HistoryEntry) historyEntryResponse {
	return toHistoryEntryResponse(e, h.svc.PassThreshold())
}

func toHistoryEntryResponse(e *domain.HistoryEntry, threshold float64) historyEntryResponse {
	return historyEntryResponse{
		ID:         e.ID.String(),
		Word:       e.Word,
		Recognized: e.Recognized,
		Score:      e.Score,
		Correct:    e.IsCorrect(threshold),
		Source:     e.Source.String(),
		HasAudio:   e.HasAudio(),
		Timestamp:  e.CreatedAt,
	}
}

func toSessionResponse(s *domain.PracticeSession) sessionResponse {
	answers := make([]answerResponse, 0, len(s.Answers))
	for _, a := range s.Answers {
		answers = append(answers, answerResponse{Word: a.Word, Typed: a.Typed, Correct: a.Correct, Score: a.Score})
	}
	return sessionResponse{
		ID:         s.ID.String(),
		GameType:   s.GameType.String(),
		Score:      s.Correct,
		TotalWords: s.Total,
		Percentage: s.Percentage,
		Answers:    answers,
		Timestamp:  s.CreatedAt,
	}
}

// paging parses limit and offset; missing values are zero and left to the
// service defaults.
func paging(q url.Values) (limit, offset int, err error) {
	if limit, err = intParam(q, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = intParam(q, "offset"); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func intParam(q url.Values, name string) (int, error) {
	s := q.Get(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return v, nil
}
