package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aprilandbutter/storefront/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

const maxBodyBytes = 64 << 10

// decodeJSON reads at most maxBodyBytes of r's body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError maps use case errors onto HTTP status codes.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	var techErr *usecase.TechnicalError

	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		writeErrorResponse(w, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
	case errors.Is(err, usecase.ErrUnknownField):
		writeErrorResponse(w, http.StatusBadRequest, "UNKNOWN_FIELD", err.Error())
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		writeErrorResponse(w, http.StatusConflict, "SUBMISSION_IN_PROGRESS", err.Error())
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		writeErrorResponse(w, http.StatusConflict, "ALREADY_SUBMITTED", err.Error())
	case errors.As(err, &domainErr):
		writeErrorResponse(w, http.StatusUnprocessableEntity, domainErr.Code, domainErr.Message)
	case errors.As(err, &techErr):
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Code, techErr.Message)
	default:
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "unexpected error")
	}
}
