package handler

import (
	"net/http"

	"github.com/go-baas-api/internal/application/customer"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CustomerHandler handles customer CRUD and patch endpoints.
type CustomerHandler struct {
	svc customer.Service
}

func NewCustomerHandler(svc customer.Service) *CustomerHandler { return &CustomerHandler{svc: svc} }

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	c, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerView(c))
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	views := make([]*CustomerView, len(customers))
	for i := range customers {
		views[i] = toCustomerView(&customers[i])
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerView(c))
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCustomerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerView(c))
}

func (h *CustomerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var op domain.PatchOperation
	if err := decode(r, &op); err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	c, err := h.svc.Patch(r.Context(), chi.URLParam(r, "id"), op)
	if err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerView(c))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, domain.KindCustomer)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
