package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"practicecoach/internal/cache"
	"practicecoach/internal/config"
	"practicecoach/internal/model"
)

// Analyzer scores one answer; AnalysisService is the production implementation
type Analyzer interface {
	Analyze(ctx context.Context, answer string, question model.QuestionLike) (*model.AnalysisResult, error)
}

// PracticeService drives a practice run: pick questions, analyze answers, record the session
type PracticeService struct {
	bank        *QuestionBank
	analyzer    Analyzer
	sessions    *SessionService
	runs        cache.PracticeCache
	broadcaster Broadcaster
	config      config.PracticeConfig
	logger      *zap.Logger
}

// NewPracticeService creates a new practice service
func NewPracticeService(
	bank *QuestionBank,
	analyzer Analyzer,
	sessions *SessionService,
	runs cache.PracticeCache,
	cfg config.PracticeConfig,
	logger *zap.Logger,
) *PracticeService {
	return &PracticeService{
		bank:        bank,
		analyzer:    analyzer,
		sessions:    sessions,
		runs:        runs,
		broadcaster: nopBroadcaster{},
		config:      cfg,
		logger:      logger.Named("practice"),
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *PracticeService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start selects questions for a new run and opens its session
func (s *PracticeService) Start(ctx context.Context, userID string, req *model.StartPracticeRequest) (*model.StartPracticeResponse, error) {
	if !req.Kind.Valid() {
		return nil, invalid(fmt.Sprintf("unknown session type %q", req.Kind))
	}
	count := req.Count
	switch {
	case count < 0:
		return nil, invalid("count cannot be negative")
	case count == 0:
		count = s.config.DefaultQuestionCount
	case count > s.config.MaxQuestionCount:
		count = s.config.MaxQuestionCount
	}

	filter := req.Filter
	if req.Kind == model.SessionTechnical && filter.Type == "" {
		filter.Type = string(model.QuestionTypeTechnical)
	}

	resp := &model.StartPracticeResponse{}
	var ids []string
	if req.Kind == model.SessionEmail {
		resp.EmailQuestions = s.bank.GetShuffledEmailQuestions(count, filter)
		for _, q := range resp.EmailQuestions {
			ids = append(ids, q.ID)
		}
	} else {
		resp.Questions = s.bank.GetShuffledQuestions(count, filter)
		for _, q := range resp.Questions {
			ids = append(ids, q.ID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoQuestions
	}

	run := &model.PracticeRun{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        req.Kind,
		Filter:      filter,
		QuestionIDs: ids,
		Scores:      map[string]int{},
		Durations:   map[string]int{},
		StartedAt:   time.Now(),
	}

	meta := map[string]string{"runId": run.ID}
	if filter.Difficulty != "" {
		meta["difficulty"] = filter.Difficulty
	}
	if filter.Type != "" {
		meta["type"] = filter.Type
	}
	session, err := s.sessions.CreateSession(ctx, userID, req.Kind, meta)
	if err != nil {
		// practice continues in memory; nothing will be recorded for this run
		s.logger.Warn("session not recorded", zap.String("runId", run.ID), zap.Error(err))
	} else {
		run.SessionID = session.ID
		run.Recorded = true
	}

	if err := s.runs.Set(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to store practice run: %w", err)
	}

	resp.RunID = run.ID
	resp.SessionID = run.SessionID
	s.broadcaster.SendToUser(userID, EventPracticeStarted, map[string]interface{}{
		"runId":     run.ID,
		"questions": len(ids),
	})
	s.logger.Info("practice started",
		zap.String("runId", run.ID),
		zap.String("kind", string(req.Kind)),
		zap.Int("questions", len(ids)),
	)
	return resp, nil
}

// Submit analyzes one answer of the run
func (s *PracticeService) Submit(ctx context.Context, userID, runID string, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	run, err := s.loadRun(ctx, userID, runID)
	if err != nil {
		return nil, err
	}
	if !run.Contains(req.QuestionID) {
		return nil, invalid("question is not part of this practice run")
	}
	if run.Answered(req.QuestionID) {
		return nil, invalid("question already answered")
	}

	question, result, err := s.analyze(ctx, req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, ErrAnalysisUnavailable) {
			s.broadcaster.SendToUser(userID, EventAnswerFailed, map[string]interface{}{
				"runId":      run.ID,
				"questionId": req.QuestionID,
				"error":      ErrAnalysisUnavailable.Error(),
			})
		}
		return nil, err
	}

	duration := req.DurationSec
	if duration < 0 {
		duration = 0
	}
	run.Scores[req.QuestionID] = result.OverallScore
	run.Durations[req.QuestionID] = duration
	if err := s.runs.Set(ctx, run); err != nil {
		s.logger.Error("failed to update practice run", zap.String("runId", run.ID), zap.Error(err))
	}

	s.broadcaster.SendToUser(userID, EventAnswerAnalyzed, map[string]interface{}{
		"runId":      run.ID,
		"questionId": req.QuestionID,
		"analysis":   result,
	})

	if run.Recorded {
		record := model.NewAnswerRecord(question, req.QuestionID, req.Answer, duration, result)
		if err := s.sessions.SaveAnswer(ctx, run.SessionID, record); err != nil {
			s.logger.Warn("answer not recorded", zap.String("sessionId", run.SessionID), zap.Error(err))
		}
	}

	return &model.SubmitAnswerResponse{
		Analysis:  result,
		Answered:  len(run.Scores),
		Remaining: len(run.QuestionIDs) - len(run.Scores),
	}, nil
}

// AnalyzeAnswer scores an answer outside any run
func (s *PracticeService) AnalyzeAnswer(ctx context.Context, req *model.AnalyzeRequest) (*model.AnalysisResult, error) {
	_, result, err := s.analyze(ctx, req.QuestionID, req.Answer)
	return result, err
}

// analyze checks the answer locally before any network call
func (s *PracticeService) analyze(ctx context.Context, questionID, answer string) (model.QuestionLike, *model.AnalysisResult, error) {
	if err := s.validateAnswer(answer); err != nil {
		return nil, nil, err
	}
	question, ok := s.bank.Find(questionID)
	if !ok {
		return nil, nil, ErrNotFound
	}
	result, err := s.analyzer.Analyze(ctx, answer, question)
	if err != nil {
		return nil, nil, err
	}
	return question, result, nil
}

func (s *PracticeService) validateAnswer(answer string) error {
	words := len(strings.Fields(answer))
	if words == 0 {
		return invalid("answer cannot be empty")
	}
	if words < s.config.MinAnswerWords {
		return invalid(fmt.Sprintf("answer is too short: %d words, at least %d required", words, s.config.MinAnswerWords))
	}
	return nil
}

// Finish computes the aggregate, completes the session and discards the run
func (s *PracticeService) Finish(ctx context.Context, userID, runID string) (*model.FinishPracticeResponse, error) {
	run, err := s.loadRun(ctx, userID, runID)
	if err != nil {
		return nil, err
	}

	agg := Aggregate(run)
	if run.Recorded {
		if err := s.sessions.CompleteSession(ctx, run.SessionID, agg); err != nil {
			s.logger.Warn("session completion not recorded", zap.String("sessionId", run.SessionID), zap.Error(err))
		}
	}
	if err := s.runs.Delete(ctx, run.ID); err != nil {
		s.logger.Warn("failed to delete practice run", zap.String("runId", run.ID), zap.Error(err))
	}

	resp := &model.FinishPracticeResponse{
		RunID:     run.ID,
		SessionID: run.SessionID,
		Recorded:  run.Recorded,
		Aggregate: agg,
	}
	s.broadcaster.SendToUser(userID, EventPracticeCompleted, resp)
	s.logger.Info("practice completed",
		zap.String("runId", run.ID),
		zap.Int("answered", agg.CompletedQuestions),
		zap.Float64("averageScore", agg.AverageScore),
	)
	return resp, nil
}

// Run returns the current state of a run
func (s *PracticeService) Run(ctx context.Context, userID, runID string) (*model.PracticeRun, error) {
	return s.loadRun(ctx, userID, runID)
}

func (s *PracticeService) loadRun(ctx context.Context, userID, runID string) (*model.PracticeRun, error) {
	run, err := s.runs.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, ErrNotFound
	}
	if run.UserID != userID {
		return nil, ErrForbidden
	}
	if run.Scores == nil {
		run.Scores = map[string]int{}
	}
	if run.Durations == nil {
		run.Durations = map[string]int{}
	}
	return run, nil
}

// Aggregate is the rounded mean score, summed duration and answer count of a run
func Aggregate(run *model.PracticeRun) model.SessionAggregate {
	agg := model.SessionAggregate{CompletedQuestions: len(run.Scores)}
	if len(run.Scores) == 0 {
		return agg
	}
	sum := 0
	for _, score := range run.Scores {
		sum += score
	}
	for _, d := range run.Durations {
		agg.TotalDuration += d
	}
	agg.AverageScore = math.Round(float64(sum) / float64(len(run.Scores)))
	return agg
}
