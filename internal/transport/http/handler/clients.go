package handler

import (
	"net/http"

	"github.com/go-baas-api/internal/application/client"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ClientHandler handles client CRUD and patch endpoints.
type ClientHandler struct {
	svc client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler { return &ClientHandler{svc: svc} }

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateClientRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	cl, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	writeJSON(w, http.StatusCreated, toClientView(cl))
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	views := make([]*ClientView, len(clients))
	for i := range clients {
		views[i] = toClientView(&clients[i])
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	cl, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(cl))
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateClientRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	cl, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(cl))
}

func (h *ClientHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var op domain.PatchOperation
	if err := decode(r, &op); err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	cl, err := h.svc.Patch(r.Context(), chi.URLParam(r, "id"), op)
	if err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	writeJSON(w, http.StatusOK, toClientView(cl))
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, domain.KindClient)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
