package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"practicecoach/internal/model"
	"practicecoach/internal/repository"
)

var errStoreDown = errors.New("store unavailable")

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
	nextID   int
	failAll  bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*model.Session{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errStoreDown
	}
	r.nextID++
	s.ID = fmt.Sprintf("sess-%d", r.nextID)
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) AppendAnswer(ctx context.Context, id string, a model.AnswerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errStoreDown
	}
	s, ok := r.sessions[id]
	if !ok {
		return repository.ErrSessionNotFound
	}
	s.Answers = append(s.Answers, a)
	if s.Status == model.SessionCreated {
		s.Status = model.SessionAnswered
	}
	return nil
}

func (r *fakeSessionRepo) Complete(ctx context.Context, id string, agg model.SessionAggregate, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errStoreDown
	}
	s, ok := r.sessions[id]
	if !ok {
		return repository.ErrSessionNotFound
	}
	s.Status = model.SessionCompleted
	s.CompletedAt = &at
	s.AverageScore = agg.AverageScore
	s.TotalDuration = agg.TotalDuration
	s.CompletedQuestions = agg.CompletedQuestions
	return nil
}

func (r *fakeSessionRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Session{}
	for _, s := range r.sessions {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakePracticeCache struct {
	mu   sync.Mutex
	runs map[string]*model.PracticeRun
}

func newFakePracticeCache() *fakePracticeCache {
	return &fakePracticeCache{runs: map[string]*model.PracticeRun{}}
}

func (c *fakePracticeCache) Set(ctx context.Context, run *model.PracticeRun) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := *run
	cp.Scores = copyMap(run.Scores)
	cp.Durations = copyMap(run.Durations)
	c.runs[run.ID] = &cp
	return nil
}

func (c *fakePracticeCache) Get(ctx context.Context, id string) (*model.PracticeRun, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	run, ok := c.runs[id]
	if !ok {
		return nil, nil
	}
	cp := *run
	cp.Scores = copyMap(run.Scores)
	cp.Durations = copyMap(run.Durations)
	return &cp, nil
}

func (c *fakePracticeCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.runs, id)
	return nil
}

func copyMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// stubAnalyzer returns a fixed score and counts calls
type stubAnalyzer struct {
	score int
	err   error
	calls int
}

func (a *stubAnalyzer) Analyze(ctx context.Context, answer string, q model.QuestionLike) (*model.AnalysisResult, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return &model.AnalysisResult{
		OverallScore:     a.score,
		Strengths:        []string{"clear"},
		KeyPointsCovered: q.Rubric(),
		KeyPointsMissed:  []string{},
		PerformanceLevel: PerformanceLevelFor(a.score),
	}, nil
}

type sentEvent struct {
	userID, msgType string
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []sentEvent
}

func (b *recordingBroadcaster) SendToUser(userID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, sentEvent{userID, msgType})
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*model.UserProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*model.UserProfile{}}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *model.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.profiles {
		if existing.Email == strings.ToLower(p.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	if p.ID == "" {
		p.ID = "user-" + p.Email
	}
	p.Email = strings.ToLower(p.Email)
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.Email == strings.ToLower(email) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *model.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

type fakeProfileCache struct {
	profiles map[string]*model.UserProfile
}

func (c *fakeProfileCache) Set(ctx context.Context, p *model.UserProfile) error {
	cp := *p
	c.profiles[p.ID] = &cp
	return nil
}

func (c *fakeProfileCache) Get(ctx context.Context, id string) (*model.UserProfile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (c *fakeProfileCache) Delete(ctx context.Context, id string) error {
	delete(c.profiles, id)
	return nil
}

type fakeInstitutionRepo struct {
	items map[string]*model.Institution
}

func (r *fakeInstitutionRepo) Create(ctx context.Context, inst *model.Institution) error {
	inst.ID = "inst-" + inst.Name
	cp := *inst
	r.items[inst.ID] = &cp
	return nil
}

func (r *fakeInstitutionRepo) GetByID(ctx context.Context, id string) (*model.Institution, error) {
	inst, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return inst, nil
}

func (r *fakeInstitutionRepo) GetByName(ctx context.Context, name string) (*model.Institution, error) {
	for _, inst := range r.items {
		if inst.Name == name {
			return inst, nil
		}
	}
	return nil, nil
}

func (r *fakeInstitutionRepo) List(ctx context.Context, kind model.InstitutionKind) ([]*model.Institution, error) {
	out := []*model.Institution{}
	for _, inst := range r.items {
		if kind == "" || inst.Kind == kind {
			out = append(out, inst)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
