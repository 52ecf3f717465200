package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/validate"
	"github.com/go-baas-api/internal/transport/http/middleware"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders err as a normalized error body for the resource kind.
func writeError(w http.ResponseWriter, r *http.Request, err error, kind domain.Kind) {
	middleware.WriteError(w, r, err, kind)
}

// decode reads a JSON body into dst, rejecting unknown fields, and validates it.
// Immutable fields are absent from update DTOs, so sending one is an error.
func decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewFault(domain.ErrBadRequest, "invalid request body: %v", err)
	}
	return validate.Struct(dst)
}
