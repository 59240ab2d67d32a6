package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"practicecoach/internal/model"
	"practicecoach/internal/service"
)

// AnalysisHandler exposes one-off answer analysis and the score tiers
type AnalysisHandler struct {
	practiceSvc *service.PracticeService
	logger      *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(practiceSvc *service.PracticeService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{practiceSvc: practiceSvc, logger: logger}
}

// Level godoc
// @Summary Performance tier for a score
// @Tags analysis
// @Produce json
// @Param score query int true "score 0-100"
// @Success 200 {object} model.PerformanceLevel
// @Failure 400 {object} map[string]string
// @Router /v1/analysis/level [get]
func (h *AnalysisHandler) Level(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil || score < 0 || score > 100 {
		writeError(w, http.StatusBadRequest, "score must be an integer between 0 and 100")
		return
	}
	writeJSON(w, http.StatusOK, service.PerformanceLevelFor(score))
}

// Analyze godoc
// @Summary Analyze an answer to any corpus question
// @Tags analysis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.AnalyzeRequest true "question id and answer"
// @Success 200 {object} model.AnalysisResult
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /v1/analysis [post]
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.practiceSvc.AnalyzeAnswer(r.Context(), &req)
	if err != nil {
		h.logger.Debug("analysis rejected", zap.String("questionId", req.QuestionID), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
