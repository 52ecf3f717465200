package handler

import (
	"net/http"

	"github.com/go-baas-api/internal/application/address"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// AddressHandler handles addresses nested under /clients/{id}/addresses.
type AddressHandler struct {
	svc address.Service
}

func NewAddressHandler(svc address.Service) *AddressHandler { return &AddressHandler{svc: svc} }

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.PostalAddress
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	a, err := h.svc.Create(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.svc.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "addressId"))
	if err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AddressHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var op domain.PatchOperation
	if err := decode(r, &op); err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	a, err := h.svc.Patch(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "addressId"), op)
	if err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "addressId")); err != nil {
		writeError(w, r, err, domain.KindAddress)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
