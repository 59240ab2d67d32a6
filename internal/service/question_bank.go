package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"practicecoach/internal/model"
)

// QuestionBank serves filtered and shuffled views of the static corpus
type QuestionBank struct {
	questions []model.Question
	emails    []model.EmailQuestion
	byID      map[string]model.QuestionLike

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewQuestionBank creates a bank over the given corpus. A nil rng is seeded from the clock.
func NewQuestionBank(questions []model.Question, emails []model.EmailQuestion, rng *rand.Rand) *QuestionBank {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &QuestionBank{
		questions: questions,
		emails:    emails,
		byID:      make(map[string]model.QuestionLike, len(questions)+len(emails)),
		rng:       rng,
	}
	for i := range b.questions {
		b.byID[b.questions[i].ID] = &b.questions[i]
	}
	for i := range b.emails {
		b.byID[b.emails[i].ID] = &b.emails[i]
	}
	return b
}

// GetQuestions returns copies of every question matching all set filter fields, case-insensitively
func (b *QuestionBank) GetQuestions(filter model.QuestionFilter) []*model.Question {
	out := []*model.Question{}
	for i := range b.questions {
		q := &b.questions[i]
		if matches(filter.Type, string(q.Type)) &&
			matches(filter.Difficulty, string(q.Difficulty)) &&
			matches(filter.Subject, string(q.Subject)) &&
			matches(filter.Category, q.Category) {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// GetShuffledQuestions returns up to count matching questions in uniformly random order
func (b *QuestionBank) GetShuffledQuestions(count int, filter model.QuestionFilter) []*model.Question {
	pool := b.GetQuestions(filter)
	b.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:clamp(count, len(pool))]
}

// GetEmailQuestions filters the email corpus. Type and Subject filters apply as for
// GetQuestions, so a Subject filter never matches an email question.
func (b *QuestionBank) GetEmailQuestions(filter model.QuestionFilter) []*model.EmailQuestion {
	out := []*model.EmailQuestion{}
	for i := range b.emails {
		q := &b.emails[i]
		if matches(filter.Type, q.Type) &&
			matches(filter.Difficulty, string(q.Difficulty)) &&
			matches(filter.Subject, "") &&
			matches(filter.Category, q.Category) {
			out = append(out, cloneEmailQuestion(q))
		}
	}
	return out
}

// GetShuffledEmailQuestions is GetShuffledQuestions over the email corpus
func (b *QuestionBank) GetShuffledEmailQuestions(count int, filter model.QuestionFilter) []*model.EmailQuestion {
	pool := b.GetEmailQuestions(filter)
	b.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:clamp(count, len(pool))]
}

// GetQuestionStats counts the general corpus by type and by difficulty
func (b *QuestionBank) GetQuestionStats() model.QuestionStats {
	stats := model.QuestionStats{
		Total:        len(b.questions),
		ByType:       map[string]int{},
		ByDifficulty: map[string]int{},
	}
	for _, q := range b.questions {
		stats.ByType[string(q.Type)]++
		stats.ByDifficulty[string(q.Difficulty)]++
	}
	return stats
}

// Find looks a question up by ID in either corpus
func (b *QuestionBank) Find(id string) (model.QuestionLike, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// shuffle is a Fisher-Yates pass over n elements
func (b *QuestionBank) shuffle(n int, swap func(i, j int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rng.Shuffle(n, swap)
}

func cloneQuestion(q *model.Question) *model.Question {
	c := *q
	c.SkillsEvaluated = append([]string(nil), q.SkillsEvaluated...)
	c.Metadata.KeyPoints = append([]string(nil), q.Metadata.KeyPoints...)
	return &c
}

func cloneEmailQuestion(q *model.EmailQuestion) *model.EmailQuestion {
	c := *q
	c.SkillsEvaluated = append([]string(nil), q.SkillsEvaluated...)
	c.Metadata.KeyPoints = append([]string(nil), q.Metadata.KeyPoints...)
	return &c
}

func matches(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

func clamp(count, available int) int {
	if count < 0 {
		return 0
	}
	if count > available {
		return available
	}
	return count
}
