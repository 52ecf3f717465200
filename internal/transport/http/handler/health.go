package handler

import (
	"net/http"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// HealthHandler handles the health-check endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	if action == "ping" {
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
		return
	}
	writeError(w, r, domain.NewFault(domain.ErrBadRequest, "unknown health-check action %q", action), domain.KindResource)
}
