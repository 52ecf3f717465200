package http

import (
	"log/slog"

	"github.com/go-baas-api/internal/application/gateway"
	"github.com/go-baas-api/internal/domain"
)

// Deps holds the backing stores and collaborators the router wires into the
// per-kind services. Each store is chosen by configuration in cmd/api.
type Deps struct {
	CustomerStore gateway.Store[domain.Customer]
	ClientStore   gateway.Store[domain.Client]
	AddressStore  gateway.Store[domain.Address]
	Publisher     gateway.Publisher // nil logs events only
	Logger        *slog.Logger
	// PasswordCost is the bcrypt cost for client passwords; zero uses the default.
	PasswordCost int
}
