package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"practicecoach/internal/config"
	"practicecoach/internal/metrics"
	"practicecoach/internal/model"
)

// AnalysisService scores free-text answers through the text-generation proxy
type AnalysisService struct {
	config config.AIConfig
	client *http.Client
	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(cfg config.AIConfig, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger.Named("analysis"),
		sleep:  sleepCtx,
	}
}

// proxyRequest is the body accepted by the generation proxy
type proxyRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

type proxyResponse struct {
	Text     string `json:"text"`
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// statusError is a non-2xx reply from the proxy
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("proxy returned status %d: %s", e.code, e.body)
}

// errBadEnvelope marks replies that will not improve on retry
var errBadEnvelope = errors.New("bad proxy envelope")

// Analyze scores one answer against the question's rubric
func (s *AnalysisService) Analyze(ctx context.Context, answer string, question model.QuestionLike) (*model.AnalysisResult, error) {
	if !s.config.IsEnabled() {
		metrics.AnalysisRequests.WithLabelValues("offline").Inc()
		return s.offlineAnalyze(answer, question), nil
	}

	prompt := s.buildAnalysisPrompt(answer, question)
	text, err := s.callProxy(ctx, prompt)
	if err != nil {
		metrics.AnalysisRequests.WithLabelValues("proxy_error").Inc()
		s.logger.Warn("analysis proxy call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}

	result, err := ParseAnalysis(text, question.Rubric())
	if err != nil {
		metrics.AnalysisRequests.WithLabelValues("parse_error").Inc()
		s.logger.Warn("unparseable analysis response", zap.Error(err), zap.String("response", truncate(text, 300)))
		return nil, fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}

	metrics.AnalysisRequests.WithLabelValues("ok").Inc()
	return result, nil
}

// callProxy posts the prompt, retrying transport errors, 429 and 5xx with exponential backoff
func (s *AnalysisService) callProxy(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(proxyRequest{
		Model:       s.config.Model,
		Prompt:      prompt,
		Temperature: s.config.Temperature,
		MaxTokens:   s.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt <= s.config.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := s.config.RetryBackoff << (attempt - 1)
			s.logger.Debug("retrying analysis", zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(lastErr))
			if err := s.sleep(ctx, wait); err != nil {
				return "", err
			}
		}

		text, err := s.doRequest(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable(ctx, err) {
			break
		}
	}
	return "", lastErr
}

func (s *AnalysisService) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.ProxyEndpoint(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	s.logger.Debug("analysis proxy responded", zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &statusError{code: resp.StatusCode, body: truncate(string(raw), 200)}
	}

	var pr proxyResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return "", fmt.Errorf("%w: %v", errBadEnvelope, err)
	}
	if pr.Text != "" {
		return pr.Text, nil
	}
	if pr.Response != "" {
		return pr.Response, nil
	}
	if pr.Error != "" {
		return "", fmt.Errorf("%w: %s", errBadEnvelope, pr.Error)
	}
	return "", fmt.Errorf("%w: empty response", errBadEnvelope)
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	return !errors.Is(err, errBadEnvelope)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *AnalysisService) buildAnalysisPrompt(answer string, q model.QuestionLike) string {
	var rubric strings.Builder
	for i, kp := range q.Rubric() {
		fmt.Fprintf(&rubric, "%d. %s\n", i+1, kp)
	}

	return fmt.Sprintf(`You are an expert communication coach grading a practice answer. Return ONLY valid JSON matching this schema:
{
  "overallScore": integer 0 to 100,
  "strengths": ["observation"],
  "areasForImprovement": ["observation"],
  "grammarAndStyle": ["observation"],
  "recommendations": ["actionable tip"],
  "detailedFeedback": {
    "clarity": {"score": 0-100, "comment": "..."},
    "professionalism": {"score": 0-100, "comment": "..."},
    "structure": {"score": 0-100, "comment": "..."},
    "tone": {"score": 0-100, "comment": "..."},
    "completeness": {"score": 0-100, "comment": "..."}
  },
  "keyPointsCovered": ["key point copied verbatim from the list below"],
  "keyPointsMissed": ["key point copied verbatim from the list below"],
  "sampleImprovement": "optional improved version of the answer"
}

Question (%s): %s
Skills evaluated: %s
Key points a strong answer covers:
%s
Candidate's answer:
"""
%s
"""

Every key point must appear in exactly one of keyPointsCovered or keyPointsMissed.
Be specific and constructive. Do not include any text outside the JSON object.`,
		q.Level(), q.Prompt(), strings.Join(q.Skills(), ", "), rubric.String(), answer)
}

// ParseAnalysis extracts the verdict JSON from model output and reconciles it with the rubric.
// Objects that are not a complete verdict are skipped; if none is found the output is rejected.
func ParseAnalysis(text string, rubric []string) (*model.AnalysisResult, error) {
	objects := jsonObjects(text)
	if len(objects) == 0 {
		return nil, errors.New("no json object in response")
	}

	var lastErr error
	for _, obj := range objects {
		if lastErr = checkVerdictFields(obj); lastErr != nil {
			continue
		}
		var result model.AnalysisResult
		if err := json.Unmarshal([]byte(obj), &result); err != nil {
			return nil, fmt.Errorf("invalid analysis json: %w", err)
		}
		if err := result.Validate(); err != nil {
			return nil, err
		}

		reconcileKeyPoints(&result, rubric)
		result.PerformanceLevel = PerformanceLevelFor(result.OverallScore)
		return &result, nil
	}
	return nil, lastErr
}

// checkVerdictFields requires overallScore and a score for each of the five criteria
func checkVerdictFields(obj string) error {
	var shape struct {
		OverallScore     json.RawMessage            `json:"overallScore"`
		DetailedFeedback map[string]json.RawMessage `json:"detailedFeedback"`
	}
	if err := json.Unmarshal([]byte(obj), &shape); err != nil {
		return fmt.Errorf("invalid analysis json: %w", err)
	}
	if isMissing(shape.OverallScore) {
		return errors.New("analysis json has no overallScore")
	}
	for _, name := range criterionNames {
		raw, ok := shape.DetailedFeedback[name]
		if !ok || isMissing(raw) {
			return fmt.Errorf("analysis json has no %s feedback", name)
		}
		var criterion struct {
			Score json.RawMessage `json:"score"`
		}
		if err := json.Unmarshal(raw, &criterion); err != nil || isMissing(criterion.Score) {
			return fmt.Errorf("analysis json has no %s score", name)
		}
	}
	return nil
}

var criterionNames = []string{"clarity", "professionalism", "structure", "tone", "completeness"}

func isMissing(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// ExtractJSONObject returns the first balanced {...} in text, ignoring markdown fences
func ExtractJSONObject(text string) (string, error) {
	objects := jsonObjects(text)
	if len(objects) == 0 {
		return "", errors.New("no json object in response")
	}
	return objects[0], nil
}

// jsonObjects lists every well-formed top-level {...} in text, in order
func jsonObjects(text string) []string {
	text = stripFences(text)

	var out []string
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		next := start + 1
		if end := matchBrace(text, start); end > 0 {
			candidate := text[start : end+1]
			if json.Valid([]byte(candidate)) {
				out = append(out, candidate)
				next = end + 1
			}
		}
		i := strings.IndexByte(text[next:], '{')
		if i < 0 {
			break
		}
		start = next + i
	}
	return out
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		// drop the language tag line, e.g. ```json
		text = text[nl+1:]
	}
	if end := strings.LastIndex(text, "```"); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

// matchBrace returns the index of the brace closing text[open], honouring JSON strings
func matchBrace(text string, open int) int {
	depth := 0
	inString := false
	escaped := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// reconcileKeyPoints makes covered and missed partition the rubric.
// Points the model echoed that are not in the rubric are kept aside, and
// rubric points it omitted are counted as missed.
func reconcileKeyPoints(r *model.AnalysisResult, rubric []string) {
	if len(rubric) == 0 {
		return
	}
	canonical := make(map[string]string, len(rubric))
	for _, kp := range rubric {
		canonical[normalizePoint(kp)] = kp
	}

	seen := map[string]bool{}
	covered := []string{}
	var unknown []string
	for _, kp := range r.KeyPointsCovered {
		key := normalizePoint(kp)
		orig, ok := canonical[key]
		if !ok {
			unknown = append(unknown, kp)
			continue
		}
		if !seen[key] {
			covered = append(covered, orig)
			seen[key] = true
		}
	}
	for _, kp := range r.KeyPointsMissed {
		if _, ok := canonical[normalizePoint(kp)]; !ok {
			unknown = append(unknown, kp)
		}
	}

	missed := []string{}
	for _, kp := range rubric {
		if !seen[normalizePoint(kp)] {
			missed = append(missed, kp)
		}
	}

	changed := len(unknown) > 0 || !sameItems(covered, r.KeyPointsCovered) || !sameItems(missed, r.KeyPointsMissed)
	r.KeyPointsCovered = covered
	r.KeyPointsMissed = missed
	r.UnrecognizedKeyPoints = unknown
	r.KeyPointsReconciled = changed
}

func normalizePoint(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.Trim(s, " .;:-")), " "))
}

func sameItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if normalizePoint(a[i]) != normalizePoint(b[i]) {
			return false
		}
	}
	return true
}

var performanceTiers = []struct {
	min   int
	level model.PerformanceLevel
}{
	{90, model.PerformanceLevel{Label: "Excellent", Color: "#16a34a", Message: "Outstanding answer. Keep it up!"}},
	{80, model.PerformanceLevel{Label: "Very Good", Color: "#22c55e", Message: "Strong answer with minor room to polish."}},
	{70, model.PerformanceLevel{Label: "Good", Color: "#eab308", Message: "Solid answer. Work on the missed points."}},
	{60, model.PerformanceLevel{Label: "Satisfactory", Color: "#f97316", Message: "Acceptable, but needs more depth and structure."}},
}

var needsImprovement = model.PerformanceLevel{Label: "Needs Improvement", Color: "#dc2626", Message: "Review the feedback and try again."}

// PerformanceLevelFor maps a score to its tier; lower bounds are inclusive
func PerformanceLevelFor(score int) model.PerformanceLevel {
	for _, t := range performanceTiers {
		if score >= t.min {
			return t.level
		}
	}
	return needsImprovement
}

// offlineAnalyze is a deterministic heuristic used when no proxy is configured
func (s *AnalysisService) offlineAnalyze(answer string, q model.QuestionLike) *model.AnalysisResult {
	words := len(strings.Fields(answer))
	lower := strings.ToLower(answer)

	covered := []string{}
	missed := []string{}
	for _, kp := range q.Rubric() {
		if mentions(lower, kp) {
			covered = append(covered, kp)
		} else {
			missed = append(missed, kp)
		}
	}

	coverage := 0
	if n := len(q.Rubric()); n > 0 {
		coverage = len(covered) * 100 / n
	}
	length := words * 100 / 120
	if length > 100 {
		length = 100
	}
	score := (coverage*6 + length*4) / 10

	criterion := func(v int, comment string) model.CriterionScore {
		return model.CriterionScore{Score: v, Comment: comment}
	}

	result := &model.AnalysisResult{
		OverallScore:        score,
		Strengths:           []string{fmt.Sprintf("Answer is %d words long", words)},
		AreasForImprovement: []string{},
		GrammarAndStyle:     []string{},
		Recommendations:     []string{"Offline scoring: enable the analysis proxy for detailed feedback."},
		DetailedFeedback: model.DetailedFeedback{
			Clarity:         criterion(length, "Estimated from answer length."),
			Professionalism: criterion(score, "Not assessed offline."),
			Structure:       criterion(length, "Estimated from answer length."),
			Tone:            criterion(score, "Not assessed offline."),
			Completeness:    criterion(coverage, "Share of key points mentioned."),
		},
		KeyPointsCovered: covered,
		KeyPointsMissed:  missed,
	}
	for _, kp := range missed {
		result.AreasForImprovement = append(result.AreasForImprovement, "Address: "+kp)
	}
	result.PerformanceLevel = PerformanceLevelFor(score)
	return result
}

// mentions reports whether most significant words of point appear in text
func mentions(text, point string) bool {
	var significant, hits int
	for _, w := range strings.Fields(strings.ToLower(point)) {
		w = strings.Trim(w, ",.;:()")
		if len(w) < 4 {
			continue
		}
		significant++
		if strings.Contains(text, w) {
			hits++
		}
	}
	return significant > 0 && hits*2 >= significant
}

// truncate shortens s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
