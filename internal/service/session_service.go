package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"practicecoach/internal/metrics"
	"practicecoach/internal/model"
	"practicecoach/internal/repository"
)

const recentSessions = 5

// SessionService records practice sessions and serves them back for the dashboard.
// It does not police the created -> answered -> completed ordering; callers do.
type SessionService struct {
	repo   repository.SessionRepo
	logger *zap.Logger
	now    func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(repo repository.SessionRepo, logger *zap.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		logger: logger.Named("session"),
		now:    time.Now,
	}
}

// CreateSession allocates a new session with no answers
func (s *SessionService) CreateSession(ctx context.Context, userID string, kind model.SessionKind, meta map[string]string) (*model.Session, error) {
	if !kind.Valid() {
		return nil, invalid(fmt.Sprintf("unknown session type %q", kind))
	}

	session := &model.Session{
		UserID:    userID,
		Kind:      kind,
		Status:    model.SessionCreated,
		StartedAt: s.now(),
		Answers:   []model.AnswerRecord{},
		Metadata:  meta,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, s.persistenceError("create", err)
	}
	return session, nil
}

// SaveAnswer appends one answer bundle to the session
func (s *SessionService) SaveAnswer(ctx context.Context, sessionID string, record model.AnswerRecord) error {
	if err := s.repo.AppendAnswer(ctx, sessionID, record); err != nil {
		return s.persistenceError("append", err)
	}
	return nil
}

// CompleteSession finalizes the session with a precomputed aggregate
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string, agg model.SessionAggregate) error {
	if err := s.repo.Complete(ctx, sessionID, agg, s.now()); err != nil {
		return s.persistenceError("complete", err)
	}
	return nil
}

// GetSession returns a session owned by userID
func (s *SessionService) GetSession(ctx context.Context, userID, sessionID string) (*model.Session, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

// ListByUser returns the user's sessions, newest first; limit <= 0 means all
func (s *SessionService) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Session, error) {
	return s.repo.ListByUser(ctx, userID, int64(limit))
}

// Dashboard summarizes all of the user's sessions
func (s *SessionService) Dashboard(ctx context.Context, userID string) (*model.DashboardSummary, error) {
	sessions, err := s.repo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	return Summarize(sessions), nil
}

// Summarize builds dashboard figures from sessions sorted newest first.
// The average is over completed sessions only.
func Summarize(sessions []*model.Session) *model.DashboardSummary {
	summary := &model.DashboardSummary{
		TotalSessions: len(sessions),
		ByKind:        map[model.SessionKind]int{},
		Recent:        []*model.Session{},
	}

	var scoreSum float64
	for _, sess := range sessions {
		summary.ByKind[sess.Kind]++
		for _, a := range sess.Answers {
			summary.TotalPracticeSeconds += a.DurationSec
			if a.Score > summary.BestScore {
				summary.BestScore = a.Score
			}
		}
		if sess.Status == model.SessionCompleted {
			summary.CompletedSessions++
			scoreSum += sess.AverageScore
		}
	}
	if summary.CompletedSessions > 0 {
		summary.AverageScore = scoreSum / float64(summary.CompletedSessions)
	}

	n := len(sessions)
	if n > recentSessions {
		n = recentSessions
	}
	summary.Recent = append(summary.Recent, sessions[:n]...)
	return summary
}

func (s *SessionService) persistenceError(op string, err error) error {
	metrics.PersistenceFailures.WithLabelValues(op).Inc()
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
