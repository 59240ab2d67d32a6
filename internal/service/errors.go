package service

import "errors"

var (
	// ErrNoQuestions means a filter combination matched nothing in the corpus
	ErrNoQuestions = errors.New("no questions available")
	// ErrAnalysisUnavailable covers proxy failures and unparseable model output
	ErrAnalysisUnavailable = errors.New("analysis failed, please retry")
	// ErrPersistence wraps document-store failures
	ErrPersistence = errors.New("failed to persist session")
	ErrValidation  = errors.New("validation failed")

	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError carries a message meant for the user
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
