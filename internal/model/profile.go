package model

import "time"

type Role string

const (
	RoleLearner Role = "learner"
	RoleCoach   Role = "coach"
	RoleAdmin   Role = "admin"
)

// UserProfile is stored in the user_profiles collection
type UserProfile struct {
	ID            string            `json:"id" bson:"_id"`
	Email         string            `json:"email" bson:"email"`
	DisplayName   string            `json:"displayName" bson:"displayName"`
	PasswordHash  string            `json:"-" bson:"passwordHash"`
	Role          Role              `json:"role" bson:"role"`
	InstitutionID string            `json:"institutionId,omitempty" bson:"institutionId,omitempty"`
	Preferences   map[string]string `json:"preferences,omitempty" bson:"preferences,omitempty"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt" bson:"updatedAt"`
}

type InstitutionKind string

const (
	InstitutionSchool   InstitutionKind = "school"
	InstitutionBusiness InstitutionKind = "business"
)

// Institution is a school or business that licenses seats
type Institution struct {
	ID           string          `json:"id" bson:"_id"`
	Name         string          `json:"name" bson:"name"`
	Kind         InstitutionKind `json:"kind" bson:"kind"`
	ContactEmail string          `json:"contactEmail" bson:"contactEmail"`
	Seats        int             `json:"seats" bson:"seats"`
	OwnerID      string          `json:"ownerId" bson:"ownerId"`
	CreatedAt    time.Time       `json:"createdAt" bson:"createdAt"`
}

// DashboardSummary aggregates a user's sessions for the dashboard and progress pages
type DashboardSummary struct {
	TotalSessions        int                 `json:"totalSessions"`
	CompletedSessions    int                 `json:"completedSessions"`
	AverageScore         float64             `json:"averageScore"`
	BestScore            int                 `json:"bestScore"`
	TotalPracticeSeconds int                 `json:"totalPracticeSeconds"`
	ByKind               map[SessionKind]int `json:"byKind"`
	Recent               []*Session          `json:"recent"`
}

// UpdateProfileRequest carries the editable profile fields; nil leaves a field unchanged
type UpdateProfileRequest struct {
	DisplayName   *string           `json:"displayName,omitempty"`
	InstitutionID *string           `json:"institutionId,omitempty"`
	Preferences   map[string]string `json:"preferences,omitempty"`
}

// CreateInstitutionRequest is the request body for registering an institution
type CreateInstitutionRequest struct {
	Name         string          `json:"name"`
	Kind         InstitutionKind `json:"kind"`
	ContactEmail string          `json:"contactEmail"`
	Seats        int             `json:"seats"`
}
