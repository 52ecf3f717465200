package http

import (
	"context"
	"net/http"

	"github.com/go-baas-api/internal/application/address"
	"github.com/go-baas-api/internal/application/client"
	"github.com/go-baas-api/internal/application/customer"
	"github.com/go-baas-api/internal/config"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/transport/http/handler"
	appmiddleware "github.com/go-baas-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	if cfg.TrustProxyHeaders {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", appmiddleware.IdempotencyKeyHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	createRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.CreateRateLimit), cfg.CreateRateBurst)

	customerSvc := customer.NewService(customer.ServiceDeps{
		Store:     deps.CustomerStore,
		Publisher: deps.Publisher,
		Logger:    deps.Logger,
	})
	// addresses look their parent up through clientSvc, which in turn
	// cascades deletes to addressSvc
	var clientSvc client.Service
	addressSvc := address.NewService(address.ServiceDeps{
		Store: deps.AddressStore,
		Clients: address.ClientFinderFunc(func(ctx context.Context, clientID string) (*domain.Client, error) {
			return clientSvc.Get(ctx, clientID)
		}),
		Publisher: deps.Publisher,
		Logger:    deps.Logger,
	})
	clientSvc = client.NewService(client.ServiceDeps{
		Store:     deps.ClientStore,
		Addresses: addressSvc,
		Publisher: deps.Publisher,
		Logger:    deps.Logger,
		HashCost:  deps.PasswordCost,
	})

	healthH := handler.NewHealthHandler()
	customerH := handler.NewCustomerHandler(customerSvc)
	clientH := handler.NewClientHandler(clientSvc)
	addressH := handler.NewAddressHandler(addressSvc)

	creating := func(kind domain.Kind) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return createRL.Limit(appmiddleware.RequireIdempotencyKey(kind)(next))
		}
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.Route("/customers", func(r chi.Router) {
			r.With(creating(domain.KindCustomer)).Post("/", customerH.Create)
			r.Get("/", customerH.List)
			r.Get("/{id}", customerH.Get)
			r.Put("/{id}", customerH.Update)
			r.Patch("/{id}", customerH.Patch)
			r.Delete("/{id}", customerH.Delete)
		})

		r.Route("/clients", func(r chi.Router) {
			r.With(creating(domain.KindClient)).Post("/", clientH.Create)
			r.Get("/", clientH.List)
			r.Get("/{id}", clientH.Get)
			r.Put("/{id}", clientH.Update)
			r.Patch("/{id}", clientH.Patch)
			r.Delete("/{id}", clientH.Delete)

			r.Route("/{id}/addresses", func(r chi.Router) {
				r.With(creating(domain.KindAddress)).Post("/", addressH.Create)
				r.Get("/", addressH.List)
				r.Get("/{addressId}", addressH.Get)
				r.Patch("/{addressId}", addressH.Patch)
				r.Delete("/{addressId}", addressH.Delete)
			})
		})
	})

	return r
}
