package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
)

// ContactFormUseCase hands out one FormController per visitor and routes
// field edits and submits to it.
type ContactFormUseCase struct {
	Forms  *SessionStore[*FormController]
	Sender ContactSender
	Logger *zap.Logger
}

func NewContactFormUseCase(sender ContactSender, logger *zap.Logger) *ContactFormUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactFormUseCase{
		Forms:  NewSessionStore[*FormController](),
		Sender: sender,
		Logger: logger,
	}
}

func (uc *ContactFormUseCase) Open() FormState {
	form := NewFormController(uuid.New().String(), uc.Sender, uc.Logger)
	uc.Forms.Put(form.ID(), form)
	uc.Logger.Debug("contact form opened", zap.String("form_id", form.ID()))
	return form.State()
}

func (uc *ContactFormUseCase) Get(id string) (FormState, error) {
	form, err := uc.Forms.Get(id)
	if err != nil {
		return FormState{}, err
	}
	return form.State(), nil
}

func (uc *ContactFormUseCase) UpdateField(id, field, value string) (FormState, error) {
	form, err := uc.Forms.Get(id)
	if err != nil {
		return FormState{}, err
	}
	if err := form.UpdateField(field, value); err != nil {
		return FormState{}, err
	}
	return form.State(), nil
}

func (uc *ContactFormUseCase) Submit(ctx context.Context, id string) (FormState, ValidationResult, error) {
	form, err := uc.Forms.Get(id)
	if err != nil {
		return FormState{}, nil, err
	}
	result, err := form.Submit(ctx)
	return form.State(), result, err
}

// SubmitOnce runs a complete submission through a throwaway controller.
func (uc *ContactFormUseCase) SubmitOnce(ctx context.Context, s entity.ContactSubmission) (ValidationResult, error) {
	form := NewFormController(uuid.New().String(), uc.Sender, uc.Logger)
	for _, field := range entity.ContactFields {
		v, _ := s.Get(field)
		if err := form.UpdateField(field, v); err != nil {
			return nil, err
		}
	}
	return form.Submit(ctx)
}

func (uc *ContactFormUseCase) Close(id string) bool {
	return uc.Forms.Delete(id)
}
