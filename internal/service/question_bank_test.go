package service

import (
	"fmt"
	"math/rand"
	"testing"

	"practicecoach/internal/corpus"
	"practicecoach/internal/model"
)

func newTestBank(seed int64) *QuestionBank {
	return NewQuestionBank(corpus.All(), corpus.Emails(), rand.New(rand.NewSource(seed)))
}

func TestGetQuestionsFilters(t *testing.T) {
	bank := newTestBank(1)

	got := bank.GetQuestions(model.QuestionFilter{Type: "hr", Difficulty: "EASY"})
	if len(got) == 0 {
		t.Fatal("expected HR/Easy questions")
	}
	for _, q := range got {
		if q.Type != model.QuestionTypeHR || q.Difficulty != model.DifficultyEasy {
			t.Errorf("question %s does not match filter: %s/%s", q.ID, q.Type, q.Difficulty)
		}
	}

	tech := bank.GetQuestions(model.QuestionFilter{Type: "Technical", Subject: "dbms"})
	if len(tech) == 0 {
		t.Fatal("expected DBMS questions")
	}
	for _, q := range tech {
		if q.Subject != model.SubjectDBMS {
			t.Errorf("question %s has subject %s", q.ID, q.Subject)
		}
	}

	all := bank.GetQuestions(model.QuestionFilter{})
	if len(all) != len(corpus.All()) {
		t.Errorf("empty filter should return the whole corpus, got %d", len(all))
	}
}

func TestGetQuestionsNoMatchReturnsEmpty(t *testing.T) {
	bank := newTestBank(1)

	got := bank.GetQuestions(model.QuestionFilter{Type: "HR", Subject: "DBMS"})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}

	if n := len(bank.GetShuffledQuestions(5, model.QuestionFilter{Type: "Nope"})); n != 0 {
		t.Errorf("expected empty shuffle, got %d", n)
	}
}

func TestGetShuffledQuestionsClampsCount(t *testing.T) {
	bank := newTestBank(1)
	available := len(bank.GetQuestions(model.QuestionFilter{Type: "HR"}))

	got := bank.GetShuffledQuestions(100, model.QuestionFilter{Type: "HR"})
	if len(got) != available {
		t.Errorf("expected %d questions, got %d", available, len(got))
	}

	if n := len(bank.GetShuffledQuestions(3, model.QuestionFilter{Type: "HR"})); n != 3 {
		t.Errorf("expected 3 questions, got %d", n)
	}
	if n := len(bank.GetShuffledQuestions(-1, model.QuestionFilter{})); n != 0 {
		t.Errorf("expected 0 for negative count, got %d", n)
	}
}

func TestGetShuffledQuestionsDoesNotMutateCorpus(t *testing.T) {
	bank := newTestBank(7)
	before := bank.GetQuestions(model.QuestionFilter{})
	ids := make([]string, len(before))
	for i, q := range before {
		ids[i] = q.ID
	}

	for i := 0; i < 20; i++ {
		bank.GetShuffledQuestions(10, model.QuestionFilter{})
	}

	after := bank.GetQuestions(model.QuestionFilter{})
	for i, q := range after {
		if q.ID != ids[i] {
			t.Fatalf("corpus order changed at %d: %s != %s", i, q.ID, ids[i])
		}
	}
}

func TestShuffleIsUniform(t *testing.T) {
	const n = 10
	const trials = 50000

	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.Question{ID: fmt.Sprintf("q%d", i), Type: model.QuestionTypeHR, Difficulty: model.DifficultyEasy}
	}
	bank := NewQuestionBank(questions, nil, rand.New(rand.NewSource(42)))

	// counts[question][position]
	var counts [n][n]int
	for trial := 0; trial < trials; trial++ {
		for pos, q := range bank.GetShuffledQuestions(n, model.QuestionFilter{}) {
			var idx int
			fmt.Sscanf(q.ID, "q%d", &idx)
			counts[idx][pos]++
		}
	}

	expected := float64(trials) / n
	for q := 0; q < n; q++ {
		for pos := 0; pos < n; pos++ {
			dev := (float64(counts[q][pos]) - expected) / expected
			if dev > 0.06 || dev < -0.06 {
				t.Errorf("question %d at position %d: %d occurrences, expected about %.0f", q, pos, counts[q][pos], expected)
			}
		}
	}
}

func TestGetQuestionStats(t *testing.T) {
	bank := newTestBank(1)
	stats := bank.GetQuestionStats()

	if stats.Total != len(corpus.All()) {
		t.Errorf("expected total %d, got %d", len(corpus.All()), stats.Total)
	}
	sumType, sumDiff := 0, 0
	for _, v := range stats.ByType {
		sumType += v
	}
	for _, v := range stats.ByDifficulty {
		sumDiff += v
	}
	if sumType != stats.Total || sumDiff != stats.Total {
		t.Errorf("breakdowns do not add up: type=%d difficulty=%d total=%d", sumType, sumDiff, stats.Total)
	}
	if stats.ByType["HR"] == 0 || stats.ByType["Technical"] == 0 || stats.ByType["Aptitude"] == 0 {
		t.Errorf("missing type counts: %v", stats.ByType)
	}
}

func TestEmailQuestionsAndFind(t *testing.T) {
	bank := newTestBank(3)

	easy := bank.GetShuffledEmailQuestions(1, model.QuestionFilter{Difficulty: "easy"})
	if len(easy) != 1 {
		t.Fatalf("expected one easy email question, got %d", len(easy))
	}
	if easy[0].Difficulty != model.DifficultyEasy {
		t.Errorf("expected Easy, got %s", easy[0].Difficulty)
	}

	if got := bank.GetEmailQuestions(model.QuestionFilter{Subject: "DBMS"}); len(got) != 0 {
		t.Errorf("subject filter should exclude email questions, got %d", len(got))
	}
	if got := bank.GetEmailQuestions(model.QuestionFilter{Type: "writing (emails)"}); len(got) != len(corpus.Emails()) {
		t.Errorf("type filter should match all email questions, got %d", len(got))
	}

	q, ok := bank.Find(easy[0].ID)
	if !ok || q.Prompt() == "" {
		t.Errorf("expected Find to return %s", easy[0].ID)
	}
	if _, ok := bank.Find("missing"); ok {
		t.Error("expected Find to miss unknown id")
	}
}

func TestReturnedQuestionsAreCopies(t *testing.T) {
	bank := newTestBank(5)

	q := bank.GetQuestions(model.QuestionFilter{Type: "HR"})[0]
	original := q.Metadata.KeyPoints[0]
	q.Text = "changed"
	q.Metadata.KeyPoints[0] = "changed"
	q.SkillsEvaluated = append(q.SkillsEvaluated[:0], "changed")

	again := bank.GetQuestions(model.QuestionFilter{Type: "HR"})[0]
	if again.Text == "changed" || again.Metadata.KeyPoints[0] != original || again.SkillsEvaluated[0] == "changed" {
		t.Errorf("mutating a result changed the corpus: %+v", again)
	}
	found, _ := bank.Find(again.ID)
	if found.Rubric()[0] != original {
		t.Errorf("Find sees mutated rubric %v", found.Rubric())
	}

	e := bank.GetShuffledEmailQuestions(1, model.QuestionFilter{})[0]
	e.Metadata.KeyPoints[0] = "changed"
	for _, other := range bank.GetEmailQuestions(model.QuestionFilter{}) {
		if other.ID == e.ID && other.Metadata.KeyPoints[0] == "changed" {
			t.Error("mutating an email result changed the corpus")
		}
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	a := newTestBank(99).GetShuffledQuestions(10, model.QuestionFilter{})
	b := newTestBank(99).GetShuffledQuestions(10, model.QuestionFilter{})
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different order at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
