package model

import "time"

// SessionKind tags which practice flow produced a session
type SessionKind string

const (
	SessionInterview SessionKind = "interview"
	SessionIELTS     SessionKind = "ielts"
	SessionTechnical SessionKind = "technical"
	SessionEmail     SessionKind = "email"
)

// Valid reports whether k is a known session kind
func (k SessionKind) Valid() bool {
	switch k {
	case SessionInterview, SessionIELTS, SessionTechnical, SessionEmail:
		return true
	}
	return false
}

type SessionStatus string

const (
	SessionCreated   SessionStatus = "created"
	SessionAnswered  SessionStatus = "answered"
	SessionCompleted SessionStatus = "completed"
)

// Session is one user's recorded attempt at a sequence of questions
type Session struct {
	ID                 string            `json:"id" bson:"_id"`
	UserID             string            `json:"userId" bson:"userId"`
	Kind               SessionKind       `json:"sessionType" bson:"sessionType"`
	Status             SessionStatus     `json:"status" bson:"status"`
	StartedAt          time.Time         `json:"startedAt" bson:"startedAt"`
	CompletedAt        *time.Time        `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	Answers            []AnswerRecord    `json:"answers" bson:"answers"`
	AverageScore       float64           `json:"averageScore" bson:"averageScore"`
	TotalDuration      int               `json:"totalDuration" bson:"totalDuration"` // seconds
	CompletedQuestions int               `json:"completedQuestions" bson:"completedQuestions"`
	Metadata           map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// SessionAggregate is computed by the caller when a session finishes
type SessionAggregate struct {
	AverageScore       float64 `json:"averageScore" bson:"averageScore"`
	TotalDuration      int     `json:"totalDuration" bson:"totalDuration"`
	CompletedQuestions int     `json:"completedQuestions" bson:"completedQuestions"`
}
