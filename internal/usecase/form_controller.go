package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

// FormState is a read-only snapshot of a FormController for the view.
type FormState struct {
	ID        string                   `json:"id"`
	Status    entity.FormStatus        `json:"status"`
	Fields    entity.ContactSubmission `json:"fields"`
	Errors    ValidationResult         `json:"errors"`
	LastError string                   `json:"last_error,omitempty"`
}

// FormController owns one contact form: its fields, per-field errors and
// the Idle -> Submitting -> Submitted status.
type FormController struct {
	mu sync.Mutex

	id      string
	fields  entity.ContactSubmission
	errors  ValidationResult
	status  entity.FormStatus
	lastErr error

	sender ContactSender
	logger *zap.Logger
	now    func() time.Time
}

func NewFormController(id string, sender ContactSender, logger *zap.Logger) *FormController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormController{
		id:     id,
		errors: ValidationResult{},
		status: entity.FormIdle,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

func (c *FormController) ID() string {
	return c.id
}

// UpdateField sets a field and clears that field's error, leaving the others.
// The form is read-only while a submission is in flight.
func (c *FormController) UpdateField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == entity.FormSubmitting {
		return ErrSubmissionInProgress
	}
	if !c.fields.Set(field, value) {
		return ErrUnknownField
	}
	delete(c.errors, field)
	return nil
}

// Submit validates the current fields and, when they pass, hands them to the
// sender. Validation failures leave the form Idle and untouched and are
// returned both as the result and as a DomainError. A sender failure or a
// cancelled ctx returns the form to Idle with its fields intact.
func (c *FormController) Submit(ctx context.Context) (ValidationResult, error) {
	c.mu.Lock()

	switch c.status {
	case entity.FormSubmitting:
		c.mu.Unlock()
		return nil, ErrSubmissionInProgress
	case entity.FormSubmitted:
		c.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}

	result := ValidateContactSubmission(c.fields)
	c.errors = result.clone()
	if !result.OK() {
		c.mu.Unlock()
		return result, result.Err()
	}

	c.status = entity.FormSubmitting
	c.lastErr = nil
	msg := entity.ContactMessage{
		ID:          uuid.New().String(),
		Submission:  c.fields,
		SubmittedAt: c.now(),
	}
	c.mu.Unlock()

	err := c.sender.SendContact(ctx, msg)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Error("contact form submission failed",
			zap.String("form_id", c.id),
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
		c.status = entity.FormIdle
		c.lastErr = &SubmissionError{
			Err:       err,
			Retryable: !errors.Is(err, context.Canceled),
		}
		return result, c.lastErr
	}

	c.logger.Info("contact form submitted",
		zap.String("form_id", c.id),
		zap.String("message_id", msg.ID),
	)
	c.status = entity.FormSubmitted
	c.fields = entity.ContactSubmission{}
	c.errors = ValidationResult{}
	return result, nil
}

func (c *FormController) Status() entity.FormStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *FormController) Fields() entity.ContactSubmission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

func (c *FormController) Errors() ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.clone()
}

// LastError is the most recent delivery failure, nil after a success.
func (c *FormController) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *FormController) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := FormState{
		ID:     c.id,
		Status: c.status,
		Fields: c.fields,
		Errors: c.errors.clone(),
	}
	if c.lastErr != nil {
		state.LastError = c.lastErr.Error()
	}
	return state
}
