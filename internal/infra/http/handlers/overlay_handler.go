package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprilandbutter/storefront/internal/infra/http/middleware"
	"github.com/aprilandbutter/storefront/internal/usecase"
)

type OverlayHandler struct {
	UC *usecase.OverlayUseCase
}

func NewOverlayHandler(uc *usecase.OverlayUseCase) *OverlayHandler {
	return &OverlayHandler{UC: uc}
}

type QueryRequest struct {
	Query string `json:"query"`
}

// Open handles POST /overlay/sessions, fired when the overlay becomes visible.
func (h *OverlayHandler) Open(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.UC.Open())
}

func (h *OverlayHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.UC.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Save handles POST /overlay/sessions/{sessionID}/saves/{slug}.
func (h *OverlayHandler) Save(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	out, err := h.UC.Save(chi.URLParam(r, "sessionID"), slug)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	label := "other"
	if _, ok := h.UC.Catalog.FindBySlug(slug); ok {
		label = slug
	}
	middleware.RecordProductSave(label)

	writeJSON(w, http.StatusOK, out)
}

func (h *OverlayHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	view, err := h.UC.SetQuery(chi.URLParam(r, "sessionID"), req.Query)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Close handles DELETE /overlay/sessions/{sessionID}: close button, backdrop click or ESC.
func (h *OverlayHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Close(chi.URLParam(r, "sessionID")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
