package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"practicecoach/internal/config"
	"practicecoach/internal/corpus"
	"practicecoach/internal/model"
	"practicecoach/internal/service"
	"practicecoach/internal/transport/rest/middleware"
)

func newBank() *service.QuestionBank {
	return service.NewQuestionBank(corpus.All(), corpus.Emails(), rand.New(rand.NewSource(5)))
}

func TestQuestionHandlers(t *testing.T) {
	h := NewQuestionHandler(newBank(), 5, 10)

	tests := []struct {
		name   string
		target string
		fn     http.HandlerFunc
		status int
		count  int // -1 skips the length check
	}{
		{"list filtered", "/v1/questions?type=HR&difficulty=Easy", h.List, http.StatusOK, 5},
		{"list no match", "/v1/questions?type=HR&subject=DBMS", h.List, http.StatusOK, 0},
		{"shuffled default count", "/v1/questions/shuffled", h.Shuffled, http.StatusOK, 5},
		{"shuffled clamps", "/v1/questions/shuffled?count=999", h.Shuffled, http.StatusOK, 10},
		{"shuffled bad count", "/v1/questions/shuffled?count=abc", h.Shuffled, http.StatusBadRequest, -1},
		{"emails by difficulty", "/v1/questions/email?difficulty=Easy", h.Emails, http.StatusOK, 2},
		{"shuffled emails", "/v1/questions/email/shuffled?count=1", h.ShuffledEmails, http.StatusOK, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.fn(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if tt.count < 0 {
				return
			}
			var items []json.RawMessage
			if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
				t.Fatalf("response is not a JSON array: %s", rec.Body.String())
			}
			if len(items) != tt.count {
				t.Errorf("expected %d items, got %d", tt.count, len(items))
			}
		})
	}
}

func TestQuestionStats(t *testing.T) {
	h := NewQuestionHandler(newBank(), 5, 10)
	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/v1/questions/stats", nil))

	var stats model.QuestionStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total != len(corpus.All()) {
		t.Errorf("expected total %d, got %d", len(corpus.All()), stats.Total)
	}
}

func TestAnalysisLevel(t *testing.T) {
	h := NewAnalysisHandler(nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.Level(rec, httptest.NewRequest(http.MethodGet, "/v1/analysis/level?score=90", nil))
	var level model.PerformanceLevel
	json.Unmarshal(rec.Body.Bytes(), &level)
	if rec.Code != http.StatusOK || level.Label != "Excellent" {
		t.Errorf("score 90: %d %+v", rec.Code, level)
	}

	for _, q := range []string{"", "score=abc", "score=101", "score=-1"} {
		rec := httptest.NewRecorder()
		h.Level(rec, httptest.NewRequest(http.MethodGet, "/v1/analysis/level?"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%q: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err     error
		status  int
		message string
	}{
		{&service.ValidationError{Message: "answer cannot be empty"}, http.StatusBadRequest, "answer cannot be empty"},
		{service.ErrNoQuestions, http.StatusNotFound, "no questions available"},
		{fmt.Errorf("%w: proxy returned status 500", service.ErrAnalysisUnavailable), http.StatusBadGateway, "analysis failed, please retry"},
		{service.ErrNotFound, http.StatusNotFound, "not found"},
		{service.ErrForbidden, http.StatusForbidden, "forbidden"},
		{service.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{errors.New("mongo: connection refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeServiceError(rec, tt.err)

		var body map[string]string
		json.Unmarshal(rec.Body.Bytes(), &body)
		if rec.Code != tt.status || body["error"] != tt.message {
			t.Errorf("%v: got %d %q, want %d %q", tt.err, rec.Code, body["error"], tt.status, tt.message)
		}
	}
}

// in-memory stores for the practice flow

type memSessions struct {
	mu    sync.Mutex
	items map[string]*model.Session
}

func (m *memSessions) Create(ctx context.Context, s *model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = fmt.Sprintf("s%d", len(m.items)+1)
	cp := *s
	m.items[s.ID] = &cp
	return nil
}

func (m *memSessions) GetByID(ctx context.Context, id string) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessions) AppendAnswer(ctx context.Context, id string, a model.AnswerRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id].Answers = append(m.items[id].Answers, a)
	m.items[id].Status = model.SessionAnswered
	return nil
}

func (m *memSessions) Complete(ctx context.Context, id string, agg model.SessionAggregate, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.items[id]
	s.Status = model.SessionCompleted
	s.AverageScore = agg.AverageScore
	s.TotalDuration = agg.TotalDuration
	s.CompletedQuestions = agg.CompletedQuestions
	s.CompletedAt = &at
	return nil
}

func (m *memSessions) ListByUser(ctx context.Context, userID string, limit int64) ([]*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.Session{}
	for _, s := range m.items {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memRuns struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memRuns) Set(ctx context.Context, run *model.PracticeRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.Marshal(run)
	m.data[run.ID] = b
	return err
}

func (m *memRuns) Get(ctx context.Context, id string) (*model.PracticeRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	var run model.PracticeRun
	return &run, json.Unmarshal(b, &run)
}

func (m *memRuns) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

func practiceRouter(t *testing.T) *mux.Router {
	t.Helper()
	sessions := service.NewSessionService(&memSessions{items: map[string]*model.Session{}}, zap.NewNop())
	analysis := service.NewAnalysisService(config.AIConfig{}, zap.NewNop()) // offline mode
	practice := service.NewPracticeService(newBank(), analysis, sessions, &memRuns{data: map[string][]byte{}},
		config.PracticeConfig{MinAnswerWords: 20, DefaultQuestionCount: 3, MaxQuestionCount: 10, RunTTL: time.Hour},
		zap.NewNop())

	ph := NewPracticeHandler(practice, zap.NewNop())
	sh := NewSessionHandler(sessions)

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user := req.Header.Get("X-Test-User")
			next.ServeHTTP(w, req.WithContext(middleware.WithUser(req.Context(), user, model.RoleLearner)))
		})
	})
	r.HandleFunc("/v1/practice", ph.Start).Methods("POST")
	r.HandleFunc("/v1/practice/{runId}", ph.Get).Methods("GET")
	r.HandleFunc("/v1/practice/{runId}/answers", ph.Submit).Methods("POST")
	r.HandleFunc("/v1/practice/{runId}/complete", ph.Complete).Methods("POST")
	r.HandleFunc("/v1/sessions/{id}", sh.Get).Methods("GET")
	r.HandleFunc("/v1/dashboard", sh.Dashboard).Methods("GET")
	return r
}

func do(t *testing.T, h http.Handler, method, target, user string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("X-Test-User", user)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPracticeFlowOverHTTP(t *testing.T) {
	r := practiceRouter(t)

	rec := do(t, r, "POST", "/v1/practice", "u1", model.StartPracticeRequest{
		Kind:   model.SessionEmail,
		Count:  1,
		Filter: model.QuestionFilter{Difficulty: "Easy"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("start: %d %s", rec.Code, rec.Body.String())
	}
	var start model.StartPracticeResponse
	json.Unmarshal(rec.Body.Bytes(), &start)
	if len(start.EmailQuestions) != 1 {
		t.Fatalf("expected one email question, got %d", len(start.EmailQuestions))
	}
	q := start.EmailQuestions[0]

	rec = do(t, r, "POST", "/v1/practice/"+start.RunID+"/answers", "u1", model.SubmitAnswerRequest{QuestionID: q.ID, Answer: "too short"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short answer: expected 400, got %d", rec.Code)
	}

	rec = do(t, r, "GET", "/v1/practice/"+start.RunID, "intruder", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign run: expected 403, got %d", rec.Code)
	}

	answer := strings.Join(q.Metadata.KeyPoints, ". ") + ". " + strings.Repeat("Thank you for your time and consideration. ", 4)
	rec = do(t, r, "POST", "/v1/practice/"+start.RunID+"/answers", "u1", model.SubmitAnswerRequest{QuestionID: q.ID, Answer: answer, DurationSec: 120})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body.String())
	}
	var sub model.SubmitAnswerResponse
	json.Unmarshal(rec.Body.Bytes(), &sub)
	if sub.Remaining != 0 || sub.Analysis == nil || len(sub.Analysis.KeyPointsMissed) != 0 {
		t.Errorf("unexpected submit response %+v", sub)
	}

	rec = do(t, r, "POST", "/v1/practice/"+start.RunID+"/complete", "u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: %d %s", rec.Code, rec.Body.String())
	}
	var fin model.FinishPracticeResponse
	json.Unmarshal(rec.Body.Bytes(), &fin)
	if fin.Aggregate.CompletedQuestions != 1 || fin.Aggregate.TotalDuration != 120 {
		t.Errorf("unexpected aggregate %+v", fin.Aggregate)
	}

	rec = do(t, r, "GET", "/v1/sessions/"+start.SessionID, "u1", nil)
	var sess model.Session
	json.Unmarshal(rec.Body.Bytes(), &sess)
	if rec.Code != http.StatusOK || sess.Status != model.SessionCompleted || len(sess.Answers) != 1 {
		t.Errorf("session: %d %+v", rec.Code, sess)
	}

	rec = do(t, r, "GET", "/v1/dashboard", "u1", nil)
	var dash model.DashboardSummary
	json.Unmarshal(rec.Body.Bytes(), &dash)
	if dash.CompletedSessions != 1 || dash.TotalPracticeSeconds != 120 {
		t.Errorf("dashboard: %+v", dash)
	}
}

func TestPracticeStartNoQuestions(t *testing.T) {
	r := practiceRouter(t)
	rec := do(t, r, "POST", "/v1/practice", "u1", model.StartPracticeRequest{
		Kind:   model.SessionInterview,
		Filter: model.QuestionFilter{Type: "HR", Subject: "DBMS"},
	})
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "no questions available") {
		t.Errorf("expected 404 no questions available, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	r := practiceRouter(t)
	req := httptest.NewRequest("POST", "/v1/practice", strings.NewReader(`{"kind":"email","bogus":1}`))
	req.Header.Set("X-Test-User", "u1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
