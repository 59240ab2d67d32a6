// Package corpus holds the static practice-question bank shipped with the server.
package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"practicecoach/internal/model"
)

// Combo is a (type, difficulty) pair the UI offers as a selectable filter
type Combo struct {
	Type       string
	Difficulty model.Difficulty
}

// SelectableCombos must each match at least one corpus entry
var SelectableCombos = []Combo{
	{string(model.QuestionTypeHR), model.DifficultyEasy},
	{string(model.QuestionTypeHR), model.DifficultyMedium},
	{string(model.QuestionTypeHR), model.DifficultyHard},
	{string(model.QuestionTypeTechnical), model.DifficultyEasy},
	{string(model.QuestionTypeTechnical), model.DifficultyMedium},
	{string(model.QuestionTypeTechnical), model.DifficultyHard},
	{string(model.QuestionTypeTechnical), model.DifficultyAdvanced},
	{string(model.QuestionTypeAptitude), model.DifficultyEasy},
	{string(model.QuestionTypeAptitude), model.DifficultyMedium},
	{string(model.QuestionTypeAptitude), model.DifficultyHard},
	{model.EmailQuestionType, model.DifficultyEasy},
	{model.EmailQuestionType, model.DifficultyMedium},
	{model.EmailQuestionType, model.DifficultyHard},
}

// All returns a copy of the HR, Technical and Aptitude questions
func All() []model.Question {
	out := make([]model.Question, 0, len(hrQuestions)+len(technicalQuestions)+len(aptitudeQuestions))
	for _, set := range [][]model.Question{hrQuestions, technicalQuestions, aptitudeQuestions} {
		for _, q := range set {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// Emails returns a copy of the email-writing questions
func Emails() []model.EmailQuestion {
	out := make([]model.EmailQuestion, 0, len(emailQuestions))
	for _, q := range emailQuestions {
		c := q
		c.SkillsEvaluated = append([]string(nil), q.SkillsEvaluated...)
		c.Metadata.KeyPoints = append([]string(nil), q.Metadata.KeyPoints...)
		out = append(out, c)
	}
	return out
}

func cloneQuestion(q model.Question) model.Question {
	c := q
	c.SkillsEvaluated = append([]string(nil), q.SkillsEvaluated...)
	c.Metadata.KeyPoints = append([]string(nil), q.Metadata.KeyPoints...)
	return c
}

// Pack is a supplementary set of questions loaded from YAML
type Pack struct {
	Version   string                `yaml:"version"`
	Questions []model.Question      `yaml:"questions"`
	Emails    []model.EmailQuestion `yaml:"emails"`
}

// LoadPack parses a YAML question pack
func LoadPack(r io.Reader) (*Pack, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("failed to parse question pack: %w", err)
	}
	for i := range p.Emails {
		if p.Emails[i].Type == "" {
			p.Emails[i].Type = model.EmailQuestionType
		}
	}
	return &p, nil
}

// LoadPackFile reads a YAML pack from disk. An empty path yields an empty pack.
func LoadPackFile(path string) (*Pack, error) {
	if path == "" {
		return &Pack{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open question pack: %w", err)
	}
	defer f.Close()
	return LoadPack(f)
}

// Build merges the built-in corpus with an optional pack and validates the result
func Build(pack *Pack) ([]model.Question, []model.EmailQuestion, error) {
	questions := All()
	emails := Emails()
	if pack != nil {
		questions = append(questions, pack.Questions...)
		emails = append(emails, pack.Emails...)
	}
	if err := Validate(questions, emails); err != nil {
		return nil, nil, err
	}
	return questions, emails, nil
}

// Validate checks ID uniqueness across both corpora, required fields and known enums
func Validate(questions []model.Question, emails []model.EmailQuestion) error {
	seen := make(map[string]struct{}, len(questions)+len(emails))
	var problems []string

	check := func(id, text string, difficulty model.Difficulty, keyPoints []string) {
		if id == "" {
			problems = append(problems, fmt.Sprintf("question %q has no id", text))
			return
		}
		if _, dup := seen[id]; dup {
			problems = append(problems, "duplicate id "+id)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(text) == "" {
			problems = append(problems, id+": empty text")
		}
		if !validDifficulty(difficulty) {
			problems = append(problems, fmt.Sprintf("%s: unknown difficulty %q", id, difficulty))
		}
		if len(keyPoints) == 0 {
			problems = append(problems, id+": no key points")
		}
	}

	for _, q := range questions {
		check(q.ID, q.Text, q.Difficulty, q.Metadata.KeyPoints)
		switch q.Type {
		case model.QuestionTypeHR, model.QuestionTypeAptitude:
			if q.Subject != "" {
				problems = append(problems, q.ID+": subject is only valid on Technical questions")
			}
		case model.QuestionTypeTechnical:
			if !validSubject(q.Subject) {
				problems = append(problems, fmt.Sprintf("%s: unknown subject %q", q.ID, q.Subject))
			}
		default:
			problems = append(problems, fmt.Sprintf("%s: unknown type %q", q.ID, q.Type))
		}
		if hasDuplicates(q.SkillsEvaluated) {
			problems = append(problems, q.ID+": duplicate skills")
		}
	}
	for _, q := range emails {
		check(q.ID, q.Text, q.Difficulty, q.Metadata.KeyPoints)
		if q.Type != model.EmailQuestionType {
			problems = append(problems, fmt.Sprintf("%s: email question has type %q", q.ID, q.Type))
		}
		if hasDuplicates(q.SkillsEvaluated) {
			problems = append(problems, q.ID+": duplicate skills")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid corpus: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validDifficulty(d model.Difficulty) bool {
	switch d {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard, model.DifficultyAdvanced:
		return true
	}
	return false
}

func validSubject(s model.Subject) bool {
	switch s {
	case model.SubjectDBMS, model.SubjectC, model.SubjectOOPs, model.SubjectDS:
		return true
	}
	return false
}

func hasDuplicates(items []string) bool {
	seen := make(map[string]struct{}, len(items))
	for _, s := range items {
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}
