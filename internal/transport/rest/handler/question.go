package handler

import (
	"net/http"
	"strconv"

	"practicecoach/internal/model"
	"practicecoach/internal/service"
)

// QuestionHandler serves the question corpus
type QuestionHandler struct {
	bank         *service.QuestionBank
	defaultCount int
	maxCount     int
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(bank *service.QuestionBank, defaultCount, maxCount int) *QuestionHandler {
	return &QuestionHandler{bank: bank, defaultCount: defaultCount, maxCount: maxCount}
}

func filterFromQuery(r *http.Request) model.QuestionFilter {
	q := r.URL.Query()
	return model.QuestionFilter{
		Type:       q.Get("type"),
		Difficulty: q.Get("difficulty"),
		Subject:    q.Get("subject"),
		Category:   q.Get("category"),
	}
}

// countFromQuery returns the requested count, the default when absent, or false when malformed
func (h *QuestionHandler) countFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return h.defaultCount, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "count must be a non-negative integer")
		return 0, false
	}
	if n > h.maxCount {
		n = h.maxCount
	}
	return n, true
}

// List godoc
// @Summary List questions matching a filter
// @Tags questions
// @Produce json
// @Param type query string false "HR, Technical or Aptitude"
// @Param difficulty query string false "Easy, Medium, Hard or Advanced"
// @Param subject query string false "DBMS, C, OOPs or DS"
// @Param category query string false "category"
// @Success 200 {array} model.Question
// @Router /v1/questions [get]
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bank.GetQuestions(filterFromQuery(r)))
}

// Shuffled godoc
// @Summary Random selection of matching questions
// @Tags questions
// @Produce json
// @Param count query int false "number of questions"
// @Success 200 {array} model.Question
// @Router /v1/questions/shuffled [get]
func (h *QuestionHandler) Shuffled(w http.ResponseWriter, r *http.Request) {
	count, ok := h.countFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.bank.GetShuffledQuestions(count, filterFromQuery(r)))
}

// Stats godoc
// @Summary Corpus counts by type and difficulty
// @Tags questions
// @Produce json
// @Success 200 {object} model.QuestionStats
// @Router /v1/questions/stats [get]
func (h *QuestionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bank.GetQuestionStats())
}

// Emails godoc
// @Summary List email-writing questions
// @Tags questions
// @Produce json
// @Param difficulty query string false "Easy, Medium or Hard"
// @Success 200 {array} model.EmailQuestion
// @Router /v1/questions/email [get]
func (h *QuestionHandler) Emails(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bank.GetEmailQuestions(filterFromQuery(r)))
}

// ShuffledEmails godoc
// @Summary Random selection of email-writing questions
// @Tags questions
// @Produce json
// @Param count query int false "number of questions"
// @Success 200 {array} model.EmailQuestion
// @Router /v1/questions/email/shuffled [get]
func (h *QuestionHandler) ShuffledEmails(w http.ResponseWriter, r *http.Request) {
	count, ok := h.countFromQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.bank.GetShuffledEmailQuestions(count, filterFromQuery(r)))
}
