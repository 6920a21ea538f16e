package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bnema/baccarat-tracker/internal/adapters/jsonview"
	"github.com/bnema/baccarat-tracker/internal/application"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/go-chi/chi/v5"
)

type addOutcomeRequest struct {
	Outcome string `json:"outcome"`
}

type addOutcomeResponse struct {
	Outcome string `json:"outcome"`
	Total   int    `json:"total"`
}

type undoResponse struct {
	Removed string `json:"removed"`
}

type statsResponse struct {
	Session          string `json:"session"`
	MinForPrediction int    `json:"min_for_prediction"`
	Ready            bool   `json:"ready"`
	jsonview.Stats
}

type predictionResponse struct {
	Session string `json:"session"`
	Total   int    `json:"total"`
	jsonview.Prediction
}

type sessionsResponse struct {
	Sessions []string `json:"sessions"`
}

type Handler struct {
	tracker *application.Tracker
	logger  *slog.Logger
}

func NewHandler(tracker *application.Tracker, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{tracker: tracker, logger: logger}
}

func sessionKey(r *http.Request) domain.SessionKey {
	return domain.SessionKey(chi.URLParam(r, "key"))
}

func (h *Handler) AddOutcome(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[addOutcomeRequest](r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.tracker.AddText(r.Context(), sessionKey(r), payload.Outcome)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, addOutcomeResponse{Outcome: result.Symbol.String(), Total: result.Total})
}

func (h *Handler) Undo(w http.ResponseWriter, r *http.Request) {
	removed, err := h.tracker.Undo(r.Context(), sessionKey(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, undoResponse{Removed: removed.String()})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.tracker.Reset(r.Context(), sessionKey(r)); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	report, err := h.tracker.Stats(r.Context(), sessionKey(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Session:          string(report.Key),
		MinForPrediction: report.MinForPrediction,
		Ready:            report.Ready(),
		Stats:            jsonview.FromStats(report.Stats),
	})
}

func (h *Handler) Prediction(w http.ResponseWriter, r *http.Request) {
	report, err := h.tracker.Predict(r.Context(), sessionKey(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, predictionResponse{
		Session:    string(report.Key),
		Total:      report.Total,
		Prediction: jsonview.FromPrediction(report.Prediction),
	})
}

func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
	keys, err := h.tracker.Sessions(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := sessionsResponse{Sessions: make([]string, 0, len(keys))}
	for _, key := range keys {
		out.Sessions = append(out.Sessions, string(key))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail maps domain errors onto status codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var insufficient *domain.InsufficientDataError
	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusUnprocessableEntity, jsonview.FromInsufficient(insufficient))
	case errors.Is(err, domain.ErrUnrecognizedInput):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrEmptyHistory):
		writeError(w, http.StatusConflict, err)
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
