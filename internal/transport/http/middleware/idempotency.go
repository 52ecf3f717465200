package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/validate"
)

// IdempotencyKeyHeader must accompany every create request.
const IdempotencyKeyHeader = "Idempotency-Key"

// RequireIdempotencyKey rejects requests whose Idempotency-Key header is
// missing or is not 1-255 printable ASCII characters. Keys are logged but not
// stored, so a repeated key is not replayed.
func RequireIdempotencyKey(kind domain.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyKeyHeader)
			if err := validate.Var(IdempotencyKeyHeader, key, "required,max=255,printascii"); err != nil {
				WriteError(w, r, domain.NewFault(domain.ErrInvalidIdempotencyKey,
					"%s header must be 1 to 255 printable ASCII characters", IdempotencyKeyHeader), kind)
				return
			}
			slog.Default().DebugContext(r.Context(), "idempotency key", "key", key, "path", r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}
}
