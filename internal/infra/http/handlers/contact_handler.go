package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/aprilandbutter/storefront/internal/entity"
	"github.com/aprilandbutter/storefront/internal/infra/http/middleware"
	"github.com/aprilandbutter/storefront/internal/usecase"
)

const SubmittedMessage = "Thank you for reaching out. We'll get back to you within 24 hours."

type ContactHandler struct {
	UC     *usecase.ContactFormUseCase
	Logger *zap.Logger
}

func NewContactHandler(uc *usecase.ContactFormUseCase, logger *zap.Logger) *ContactHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactHandler{UC: uc, Logger: logger}
}

type SubmitResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message,omitempty"`
	Errors    usecase.ValidationResult `json:"errors,omitempty"`
	Retryable bool                     `json:"retryable,omitempty"`
	Form      *usecase.FormState       `json:"form,omitempty"`
}

type UpdateFieldRequest struct {
	Value string `json:"value"`
}

// Submit handles POST /contact: a full submission in one request.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input entity.ContactSubmission
	if err := decodeJSON(w, r, &input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	result, err := h.UC.SubmitOnce(r.Context(), input)
	h.writeSubmitResult(w, result, err, nil)
}

// OpenForm handles POST /contact/forms.
func (h *ContactHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.UC.Open())
}

func (h *ContactHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	state, err := h.UC.Get(chi.URLParam(r, "formID"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// UpdateField handles PATCH /contact/forms/{formID}/fields/{field}.
func (h *ContactHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	state, err := h.UC.UpdateField(chi.URLParam(r, "formID"), chi.URLParam(r, "field"), req.Value)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// SubmitForm handles POST /contact/forms/{formID}/submit. The request
// context is the cancellation token: a client that disconnects abandons the send.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	state, result, err := h.UC.Submit(r.Context(), chi.URLParam(r, "formID"))
	if errors.Is(err, usecase.ErrSessionNotFound) {
		writeUseCaseError(w, err)
		return
	}
	h.writeSubmitResult(w, result, err, &state)
}

func (h *ContactHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	if !h.UC.Close(chi.URLParam(r, "formID")) {
		writeUseCaseError(w, usecase.ErrSessionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContactHandler) writeSubmitResult(w http.ResponseWriter, result usecase.ValidationResult, err error, state *usecase.FormState) {
	var subErr *usecase.SubmissionError

	switch {
	case err == nil:
		middleware.RecordContactSubmission(middleware.SubmissionAccepted)
		writeJSON(w, http.StatusCreated, SubmitResponse{
			Success: true,
			Message: SubmittedMessage,
			Form:    state,
		})

	case !result.OK():
		middleware.RecordContactSubmission(middleware.SubmissionInvalid)
		writeJSON(w, http.StatusUnprocessableEntity, SubmitResponse{
			Success: false,
			Message: "Please correct the highlighted fields.",
			Errors:  result,
			Form:    state,
		})

	case errors.As(err, &subErr):
		middleware.RecordContactSubmission(middleware.SubmissionFailed)
		h.Logger.Warn("contact submission not delivered", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, SubmitResponse{
			Success:   false,
			Message:   "We couldn't send your message. Please try again.",
			Retryable: subErr.Retryable,
			Form:      state,
		})

	default:
		middleware.RecordContactSubmission(middleware.SubmissionRejected)
		writeUseCaseError(w, err)
	}
}
