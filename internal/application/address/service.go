package address

import (
	"context"
	"log/slog"

	"github.com/go-baas-api/internal/application/gateway"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/errnorm"
	"github.com/go-baas-api/internal/pkg/patch"
)

// Service manages addresses nested under a client.
type Service interface {
	Create(ctx context.Context, clientID string, in domain.PostalAddress) (*domain.Address, error)
	List(ctx context.Context, clientID string) ([]domain.Address, error)
	Get(ctx context.Context, clientID, addressID string) (*domain.Address, error)
	Patch(ctx context.Context, clientID, addressID string, op domain.PatchOperation) (*domain.Address, error)
	Delete(ctx context.Context, clientID, addressID string) error
	// RemoveForClient deletes every address filed under clientID without
	// checking the client, which is usually gone already.
	RemoveForClient(ctx context.Context, clientID string) error
}

// clientFinder resolves the parent client; its errors are already normalized.
type clientFinder interface {
	Get(ctx context.Context, clientID string) (*domain.Client, error)
}

// ClientFinderFunc adapts a function to the parent-client lookup.
type ClientFinderFunc func(ctx context.Context, clientID string) (*domain.Client, error)

func (f ClientFinderFunc) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	return f(ctx, clientID)
}

type ServiceDeps struct {
	Store     gateway.Store[domain.Address]
	Clients   clientFinder
	Publisher gateway.Publisher
	Logger    *slog.Logger
}

type service struct {
	gw      *gateway.Gateway[domain.Address]
	clients clientFinder
}

func NewService(deps ServiceDeps) Service {
	return &service{
		gw: gateway.New(gateway.Options[domain.Address]{
			Kind:      domain.KindAddress,
			Store:     deps.Store,
			Fields:    Fields(),
			Publisher: deps.Publisher,
			Logger:    deps.Logger,
		}),
		clients: deps.Clients,
	}
}

func Fields() patch.Fields[domain.Address] {
	return patch.Fields[domain.Address]{
		"name":    patch.String(func(a *domain.Address) *string { return &a.Name }, "name", "max=128"),
		"line1":   patch.String(func(a *domain.Address) *string { return &a.Line1 }, "line1", "required,max=128"),
		"line2":   patch.String(func(a *domain.Address) *string { return &a.Line2 }, "line2", "max=128"),
		"city":    patch.String(func(a *domain.Address) *string { return &a.City }, "city", "required,max=128"),
		"state":   patch.String(func(a *domain.Address) *string { return &a.State }, "state", "required,usstate"),
		"zipCode": patch.String(func(a *domain.Address) *string { return &a.ZipCode }, "zipCode", "required,zipcode"),
	}
}

func (s *service) Create(ctx context.Context, clientID string, in domain.PostalAddress) (*domain.Address, error) {
	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return nil, err
	}
	return s.gw.Create(ctx, domain.Address{ClientID: clientID, PostalAddress: in})
}

func (s *service) List(ctx context.Context, clientID string) ([]domain.Address, error) {
	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return nil, err
	}
	all, err := s.gw.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Address, 0, len(all))
	for _, a := range all {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, clientID, addressID string) (*domain.Address, error) {
	if err := s.owned(ctx, clientID, addressID); err != nil {
		return nil, err
	}
	return s.gw.FindOne(ctx, addressID)
}

func (s *service) Patch(ctx context.Context, clientID, addressID string, op domain.PatchOperation) (*domain.Address, error) {
	if err := s.owned(ctx, clientID, addressID); err != nil {
		return nil, err
	}
	return s.gw.PatchField(ctx, addressID, op)
}

func (s *service) Delete(ctx context.Context, clientID, addressID string) error {
	if err := s.owned(ctx, clientID, addressID); err != nil {
		return err
	}
	return s.gw.Remove(ctx, addressID)
}

func (s *service) RemoveForClient(ctx context.Context, clientID string) error {
	all, err := s.gw.FindAll(ctx)
	if err != nil {
		return err
	}
	var first error
	for _, a := range all {
		if a.ClientID != clientID {
			continue
		}
		if err := s.gw.Remove(ctx, a.ID); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// owned checks that the client exists and that the address belongs to it.
// An address filed under another client is reported as not found.
func (s *service) owned(ctx context.Context, clientID, addressID string) error {
	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return err
	}
	a, err := s.gw.FindOne(ctx, addressID)
	if err != nil {
		return err
	}
	if a.ClientID != clientID {
		return errnorm.Normalize(
			domain.NewFault(domain.ErrNotFound, "Address w/ id=%s Not Found for client %s", addressID, clientID),
			domain.KindAddress)
	}
	return nil
}
