package model

// QuestionType defines the category of a practice question
type QuestionType string

const (
	QuestionTypeHR        QuestionType = "HR"
	QuestionTypeTechnical QuestionType = "Technical"
	QuestionTypeAptitude  QuestionType = "Aptitude"
)

// EmailQuestionType is the single type carried by email-writing prompts
const EmailQuestionType = "Writing (Emails)"

// Difficulty of a question. Technical flows may use Advanced in place of Hard.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyHard     Difficulty = "Hard"
	DifficultyAdvanced Difficulty = "Advanced"
)

// Subject is only set on Technical questions
type Subject string

const (
	SubjectDBMS Subject = "DBMS"
	SubjectC    Subject = "C"
	SubjectOOPs Subject = "OOPs"
	SubjectDS   Subject = "DS"
)

// QuestionMetadata holds grading hints attached to every question
type QuestionMetadata struct {
	ExpectedAnswerLength int      `json:"expectedAnswerLength" bson:"expectedAnswerLength" yaml:"expectedAnswerLength"` // words, display only
	KeyPoints            []string `json:"keyPoints" bson:"keyPoints" yaml:"keyPoints"`                                  // rubric
}

// Question is an immutable corpus entry (HR, Technical, Aptitude)
type Question struct {
	ID              string           `json:"id" bson:"_id" yaml:"id"`
	Text            string           `json:"text" bson:"text" yaml:"text"`
	Type            QuestionType     `json:"type" bson:"type" yaml:"type"`
	Difficulty      Difficulty       `json:"difficulty" bson:"difficulty" yaml:"difficulty"`
	Subject         Subject          `json:"subject,omitempty" bson:"subject,omitempty" yaml:"subject,omitempty"`
	Category        string           `json:"category,omitempty" bson:"category,omitempty" yaml:"category,omitempty"`
	SkillsEvaluated []string         `json:"skillsEvaluated" bson:"skillsEvaluated" yaml:"skillsEvaluated"`
	Metadata        QuestionMetadata `json:"metadata" bson:"metadata" yaml:"metadata"`
}

// EmailQuestion is an email-writing prompt. It mirrors Question but is kept separate.
type EmailQuestion struct {
	ID              string           `json:"id" bson:"_id" yaml:"id"`
	Text            string           `json:"text" bson:"text" yaml:"text"`
	Type            string           `json:"type" bson:"type" yaml:"type"`
	Difficulty      Difficulty       `json:"difficulty" bson:"difficulty" yaml:"difficulty"`
	Category        string           `json:"category,omitempty" bson:"category,omitempty" yaml:"category,omitempty"`
	Scenario        string           `json:"scenario,omitempty" bson:"scenario,omitempty" yaml:"scenario,omitempty"`
	SkillsEvaluated []string         `json:"skillsEvaluated" bson:"skillsEvaluated" yaml:"skillsEvaluated"`
	Metadata        QuestionMetadata `json:"metadata" bson:"metadata" yaml:"metadata"`
}

// QuestionFilter narrows a corpus lookup. Empty fields impose no constraint.
type QuestionFilter struct {
	Type       string `json:"type,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Subject    string `json:"subject,omitempty"`
	Category   string `json:"category,omitempty"`
}

// QuestionStats is a derived breakdown of the corpus
type QuestionStats struct {
	Total        int            `json:"total"`
	ByType       map[string]int `json:"byType"`
	ByDifficulty map[string]int `json:"byDifficulty"`
}

// QuestionLike is what the analysis client needs from either question record
type QuestionLike interface {
	Prompt() string
	Level() Difficulty
	Skills() []string
	Rubric() []string
}

func (q *Question) Prompt() string { return q.Text }

func (q *Question) Level() Difficulty { return q.Difficulty }

func (q *Question) Skills() []string { return q.SkillsEvaluated }

func (q *Question) Rubric() []string { return q.Metadata.KeyPoints }

func (q *EmailQuestion) Prompt() string {
	if q.Scenario == "" {
		return q.Text
	}
	return q.Text + "\nScenario: " + q.Scenario
}

func (q *EmailQuestion) Level() Difficulty { return q.Difficulty }

func (q *EmailQuestion) Skills() []string { return q.SkillsEvaluated }

func (q *EmailQuestion) Rubric() []string { return q.Metadata.KeyPoints }
