package usecase

import "errors"

var (
	ErrUnknownField         = errors.New("unknown form field")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
	ErrAlreadySubmitted     = errors.New("form already submitted")
	ErrSessionNotFound      = errors.New("session not found")
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// SubmissionError reports that a valid submission could not be delivered.
// The form keeps its fields so the user can retry.
type SubmissionError struct {
	Err       error
	Retryable bool
}

func (e *SubmissionError) Error() string {
	return "contact submission failed: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func IsSubmissionError(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se)
}
