package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"vantageassess/internal/service"
)

// SessionHandler handles questionnaire session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

type answerRequest struct {
	Value json.RawMessage `json:"value"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessionSvc.Start(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Answer handles PUT /v1/sessions/{id}/answers/{category}/{questionId}
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req answerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "value is required (use null to clear)")
		return
	}

	state, err := h.sessionSvc.Answer(r.Context(), vars["id"], vars["category"], vars["questionId"], req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Next handles POST /v1/sessions/{id}/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessionSvc.Next(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Back handles POST /v1/sessions/{id}/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessionSvc.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Finish handles POST /v1/sessions/{id}/finish
func (h *SessionHandler) Finish(w http.ResponseWriter, r *http.Request) {
	report, err := h.sessionSvc.Finish(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Report handles GET /v1/sessions/{id}/report
func (h *SessionHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.sessionSvc.Report(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Abandon handles DELETE /v1/sessions/{id}
func (h *SessionHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionSvc.Abandon(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
