package entity

import (
	"time"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// ContactFields lists the form fields in render order.
var ContactFields = []string{FieldName, FieldEmail, FieldPhone, FieldMessage}

type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Get returns the value of the named field and whether the field exists.
func (s ContactSubmission) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return s.Name, true
	case FieldEmail:
		return s.Email, true
	case FieldPhone:
		return s.Phone, true
	case FieldMessage:
		return s.Message, true
	}
	return "", false
}

// Set assigns value to the named field. It reports false for unknown fields.
func (s *ContactSubmission) Set(field, value string) bool {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldPhone:
		s.Phone = value
	case FieldMessage:
		s.Message = value
	default:
		return false
	}
	return true
}

type FormStatus string

const (
	FormIdle       FormStatus = "idle"
	FormSubmitting FormStatus = "submitting"
	FormSubmitted  FormStatus = "submitted"
)

// ContactMessage is what leaves the service once a submission passed validation.
type ContactMessage struct {
	ID          string            `json:"id"`
	Submission  ContactSubmission `json:"submission"`
	SubmittedAt time.Time         `json:"submitted_at"`
}
