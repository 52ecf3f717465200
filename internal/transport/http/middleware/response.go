package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/errnorm"
)

// writeJSONError writes a JSON-encoded error response with the correct Content-Type.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// WriteError normalizes err for kind, stamps it with the request path and
// writes it with its own HTTP status. Gateway failures are already logged at
// warn or error under the same id, so the request line here is debug only.
func WriteError(w http.ResponseWriter, r *http.Request, err error, kind domain.Kind) {
	e := errnorm.Normalize(err, kind).WithPath(r.URL.Path)
	slog.Default().LogAttrs(r.Context(), slog.LevelDebug, "request failed",
		slog.String("error_id", e.ID()),
		slog.Int("code", e.Code()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.HTTPStatus())
	_ = json.NewEncoder(w).Encode(e)
}
