package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"practicecoach/internal/config"
	"practicecoach/internal/model"
)

const verdictJSON = `{
  "overallScore": 78,
  "strengths": ["Clear greeting"],
  "areasForImprovement": ["Add a deadline"],
  "grammarAndStyle": ["Good punctuation"],
  "recommendations": ["Close with next steps"],
  "detailedFeedback": {
    "clarity": {"score": 80, "comment": "Easy to follow"},
    "professionalism": {"score": 75, "comment": "Polite"},
    "structure": {"score": 70, "comment": "Missing closing"},
    "tone": {"score": 85, "comment": "Friendly"},
    "completeness": {"score": 65, "comment": "One point missed"}
  },
  "keyPointsCovered": ["Polite greeting"],
  "keyPointsMissed": ["Clear request"],
  "sampleImprovement": "Dear team, ..."
}`

func testQuestion() *model.Question {
	return &model.Question{
		ID:              "t-1",
		Text:            "Write an email asking for leave.",
		Type:            model.QuestionTypeHR,
		Difficulty:      model.DifficultyEasy,
		SkillsEvaluated: []string{"Communication"},
		Metadata: model.QuestionMetadata{
			ExpectedAnswerLength: 50,
			KeyPoints:            []string{"Polite greeting", "Clear request"},
		},
	}
}

func newTestAnalysis(t *testing.T, handler http.HandlerFunc) (*AnalysisService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewAnalysisService(config.AIConfig{
		BaseURL:      srv.URL,
		Model:        "test-model",
		Temperature:  0.3,
		MaxTokens:    512,
		Timeout:      5 * time.Second,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	}, zap.NewNop())
	svc.sleep = func(context.Context, time.Duration) error { return nil }
	return svc, srv
}

func proxyReply(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"text": text})
}

func TestAnalyzeParsesFencedAndBareJSON(t *testing.T) {
	cases := map[string]string{
		"bare":   verdictJSON,
		"fenced": "```json\n" + verdictJSON + "\n```",
		"prose":  "Here is the evaluation:\n" + verdictJSON + "\nGood luck!",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/gemini-proxy" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				var req proxyRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("bad request body: %v", err)
				}
				if req.Model != "test-model" || !strings.Contains(req.Prompt, "Clear request") {
					t.Errorf("prompt missing rubric or model: %+v", req)
				}
				proxyReply(w, body)
			})

			res, err := svc.Analyze(context.Background(), "Dear manager, I would like leave.", testQuestion())
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if res.OverallScore != 78 {
				t.Errorf("expected score 78, got %d", res.OverallScore)
			}
			if res.DetailedFeedback.Tone.Score != 85 {
				t.Errorf("expected tone 85, got %d", res.DetailedFeedback.Tone.Score)
			}
			if res.PerformanceLevel.Label != "Good" {
				t.Errorf("expected Good, got %s", res.PerformanceLevel.Label)
			}
			if res.KeyPointsReconciled {
				t.Error("consistent key points should not be flagged as reconciled")
			}
		})
	}
}

func TestAnalyzeNon2xxIsUnavailable(t *testing.T) {
	var calls int32
	svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := svc.Analyze(context.Background(), "answer", testQuestion())
	if !errors.Is(err, ErrAnalysisUnavailable) {
		t.Fatalf("expected ErrAnalysisUnavailable, got %v", err)
	}
	if calls != 1 {
		t.Errorf("4xx must not be retried, got %d calls", calls)
	}
}

func TestAnalyzeRetriesServerErrors(t *testing.T) {
	var calls int32
	svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		proxyReply(w, verdictJSON)
	})

	res, err := svc.Analyze(context.Background(), "answer", testQuestion())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if res.OverallScore != 78 || calls != 3 {
		t.Errorf("score=%d calls=%d", res.OverallScore, calls)
	}
}

func TestAnalyzeGivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	if _, err := svc.Analyze(context.Background(), "answer", testQuestion()); !errors.Is(err, ErrAnalysisUnavailable) {
		t.Fatalf("expected ErrAnalysisUnavailable, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 1 call plus 2 retries, got %d", calls)
	}
}

func TestAnalyzeMalformedOutput(t *testing.T) {
	cases := map[string]string{
		"no json":      "I cannot grade this answer.",
		"out of range": strings.Replace(verdictJSON, `"overallScore": 78`, `"overallScore": 140`, 1),
		"wrong types":  `{"overallScore": "high"}`,
		"empty object": `{}`,
		"score only":   `{"overallScore": 85}`,
		"unrelated":    `Sure! {"note": "grading follows"}`,
		"missing tone": strings.Replace(verdictJSON, `"tone": {"score": 85, "comment": "Friendly"},`, "", 1),
		"null score":   strings.Replace(verdictJSON, `"clarity": {"score": 80,`, `"clarity": {"score": null,`, 1),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
				proxyReply(w, body)
			})
			if _, err := svc.Analyze(context.Background(), "answer", testQuestion()); !errors.Is(err, ErrAnalysisUnavailable) {
				t.Errorf("expected ErrAnalysisUnavailable, got %v", err)
			}
		})
	}
}

func TestAnalyzeAcceptsResponseField(t *testing.T) {
	svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": verdictJSON})
	})
	if _, err := svc.Analyze(context.Background(), "answer", testQuestion()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}

func TestAnalyzeSendsBearerKey(t *testing.T) {
	svc, _ := newTestAnalysis(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("expected bearer key, got %q", got)
		}
		proxyReply(w, verdictJSON)
	})
	svc.config.APIKey = "secret"
	if _, err := svc.Analyze(context.Background(), "answer", testQuestion()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}

func TestReconcileKeyPoints(t *testing.T) {
	rubric := []string{"Polite greeting", "Clear request", "Proposed dates"}
	res := &model.AnalysisResult{
		KeyPointsCovered: []string{"polite greeting.", "Mentions weather"},
		KeyPointsMissed:  []string{"Clear request"},
	}

	reconcileKeyPoints(res, rubric)

	if len(res.KeyPointsCovered) != 1 || res.KeyPointsCovered[0] != "Polite greeting" {
		t.Errorf("covered = %v", res.KeyPointsCovered)
	}
	if len(res.KeyPointsMissed) != 2 || res.KeyPointsMissed[1] != "Proposed dates" {
		t.Errorf("missed = %v", res.KeyPointsMissed)
	}
	if len(res.UnrecognizedKeyPoints) != 1 || res.UnrecognizedKeyPoints[0] != "Mentions weather" {
		t.Errorf("unrecognized = %v", res.UnrecognizedKeyPoints)
	}
	if !res.KeyPointsReconciled {
		t.Error("expected reconciled flag")
	}
}

func TestExtractJSONObjectHandlesBracesInStrings(t *testing.T) {
	text := "prefix {not json} then {\"a\": \"curly } inside\", \"b\": {\"c\": 1}} trailing"
	got, err := ExtractJSONObject(text)
	if err != nil {
		t.Fatalf("ExtractJSONObject: %v", err)
	}
	if got != `{"a": "curly } inside", "b": {"c": 1}}` {
		t.Errorf("unexpected object %q", got)
	}
}

func TestParseAnalysisSkipsObjectsThatAreNotVerdicts(t *testing.T) {
	text := "Note: {\"draft\": true}\n" + verdictJSON
	result, err := ParseAnalysis(text, []string{"Polite greeting", "Clear request"})
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if result.OverallScore != 78 || result.DetailedFeedback.Tone.Score != 85 {
		t.Errorf("unexpected verdict %+v", result)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	got := truncate("héllo wörld", 2)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate split a rune: %q", got)
	}
	if got != "h..." {
		t.Errorf("got %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
}

func TestPerformanceLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{80, "Very Good"},
		{79, "Good"},
		{70, "Good"},
		{69, "Satisfactory"},
		{60, "Satisfactory"},
		{59, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tt := range tests {
		if got := PerformanceLevelFor(tt.score); got.Label != tt.want {
			t.Errorf("PerformanceLevelFor(%d) = %s, want %s", tt.score, got.Label, tt.want)
		}
	}
}

func TestOfflineAnalysisHasFiveCriteria(t *testing.T) {
	svc := NewAnalysisService(config.AIConfig{}, zap.NewNop())

	res, err := svc.Analyze(context.Background(), "Dear manager, this is a polite greeting and a clear request for leave next week.", testQuestion())
	if err != nil {
		t.Fatalf("offline Analyze: %v", err)
	}
	if n := len(res.DetailedFeedback.Criteria()); n != 5 {
		t.Errorf("expected 5 criteria, got %d", n)
	}
	if err := res.Validate(); err != nil {
		t.Errorf("offline result invalid: %v", err)
	}
	if len(res.KeyPointsCovered)+len(res.KeyPointsMissed) != 2 {
		t.Errorf("key points should partition the rubric: %v / %v", res.KeyPointsCovered, res.KeyPointsMissed)
	}
	if len(res.KeyPointsCovered) != 2 {
		t.Errorf("expected both key points covered, got %v", res.KeyPointsCovered)
	}
}
