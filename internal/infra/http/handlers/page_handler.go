package handlers

import (
	"net/http"

	"github.com/aprilandbutter/storefront/internal/entity"
)

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) ContactInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"contact_info": entity.ContactInfo()})
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"values": entity.AboutValues()})
}

// VisitUs has no page of its own yet.
func (h *PageHandler) VisitUs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}
