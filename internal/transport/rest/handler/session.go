package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest/middleware"
)

const defaultSessionPage = 20

// SessionHandler serves recorded sessions and the dashboard
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// List godoc
// @Summary The caller's sessions, newest first
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "max sessions (default 20)"
// @Success 200 {array} model.Session
// @Router /v1/sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultSessionPage
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	sessions, err := h.sessionSvc.ListByUser(r.Context(), middleware.GetUserID(r.Context()), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// Get godoc
// @Summary One recorded session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Success 200 {object} model.Session
// @Failure 404 {object} map[string]string
// @Router /v1/sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.GetSession(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Dashboard godoc
// @Summary Practice summary for the dashboard
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.DashboardSummary
// @Router /v1/dashboard [get]
func (h *SessionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.sessionSvc.Dashboard(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
