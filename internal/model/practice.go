package model

import "time"

// PracticeRun is the in-flight state of one practice flow, kept in Redis
type PracticeRun struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	SessionID   string         `json:"sessionId"`
	Recorded    bool           `json:"recorded"` // false when the session could not be created remotely
	Kind        SessionKind    `json:"kind"`
	Filter      QuestionFilter `json:"filter"`
	QuestionIDs []string       `json:"questionIds"`
	Scores      map[string]int `json:"scores"`    // questionId -> overall score
	Durations   map[string]int `json:"durations"` // questionId -> seconds
	StartedAt   time.Time      `json:"startedAt"`
}

// Answered reports whether questionID already has a score
func (r *PracticeRun) Answered(questionID string) bool {
	_, ok := r.Scores[questionID]
	return ok
}

// Contains reports whether questionID belongs to this run
func (r *PracticeRun) Contains(questionID string) bool {
	for _, id := range r.QuestionIDs {
		if id == questionID {
			return true
		}
	}
	return false
}

// StartPracticeRequest is the request body for starting a practice run
type StartPracticeRequest struct {
	Kind   SessionKind    `json:"kind"`
	Count  int            `json:"count"`
	Filter QuestionFilter `json:"filter"`
}

// StartPracticeResponse carries the run handle and its questions
type StartPracticeResponse struct {
	RunID          string           `json:"runId"`
	SessionID      string           `json:"sessionId,omitempty"`
	Questions      []*Question      `json:"questions,omitempty"`
	EmailQuestions []*EmailQuestion `json:"emailQuestions,omitempty"`
}

// SubmitAnswerRequest is the request body for answering one question
type SubmitAnswerRequest struct {
	QuestionID  string `json:"questionId"`
	Answer      string `json:"answer"`
	DurationSec int    `json:"durationSec"`
}

// SubmitAnswerResponse returns the analysis and run progress
type SubmitAnswerResponse struct {
	Analysis  *AnalysisResult `json:"analysis"`
	Answered  int             `json:"answered"`
	Remaining int             `json:"remaining"`
}

// FinishPracticeResponse is returned when a run is completed
type FinishPracticeResponse struct {
	RunID     string           `json:"runId"`
	SessionID string           `json:"sessionId,omitempty"`
	Recorded  bool             `json:"recorded"`
	Aggregate SessionAggregate `json:"aggregate"`
}

// AnalyzeRequest is the body for a one-off analysis outside a practice run
type AnalyzeRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}
