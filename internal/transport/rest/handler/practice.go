package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"practicecoach/internal/model"
	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest/middleware"
)

// PracticeHandler drives practice runs
type PracticeHandler struct {
	practiceSvc *service.PracticeService
	logger      *zap.Logger
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(practiceSvc *service.PracticeService, logger *zap.Logger) *PracticeHandler {
	return &PracticeHandler{practiceSvc: practiceSvc, logger: logger}
}

// Start godoc
// @Summary Start a practice run
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.StartPracticeRequest true "kind, count and filter"
// @Success 201 {object} model.StartPracticeResponse
// @Failure 404 {object} map[string]string "no questions available"
// @Router /v1/practice [post]
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartPracticeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.practiceSvc.Start(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		h.fail(w, "start", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Get godoc
// @Summary Current state of a practice run
// @Tags practice
// @Produce json
// @Security ApiKeyAuth
// @Param runId path string true "run id"
// @Success 200 {object} model.PracticeRun
// @Router /v1/practice/{runId} [get]
func (h *PracticeHandler) Get(w http.ResponseWriter, r *http.Request) {
	run, err := h.practiceSvc.Run(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["runId"])
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// Submit godoc
// @Summary Submit an answer for analysis
// @Tags practice
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param runId path string true "run id"
// @Param body body model.SubmitAnswerRequest true "answer"
// @Success 200 {object} model.SubmitAnswerResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string "analysis failed, please retry"
// @Router /v1/practice/{runId}/answers [post]
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.practiceSvc.Submit(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["runId"], &req)
	if err != nil {
		h.fail(w, "submit", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Complete godoc
// @Summary Finish a practice run and record its aggregate
// @Tags practice
// @Produce json
// @Security ApiKeyAuth
// @Param runId path string true "run id"
// @Success 200 {object} model.FinishPracticeResponse
// @Router /v1/practice/{runId}/complete [post]
func (h *PracticeHandler) Complete(w http.ResponseWriter, r *http.Request) {
	resp, err := h.practiceSvc.Finish(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["runId"])
	if err != nil {
		h.fail(w, "complete", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PracticeHandler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Debug("practice request failed", zap.String("op", op), zap.Error(err))
	writeServiceError(w, err)
}
