package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-baas-api/internal/application/gateway"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/errnorm"
	"github.com/go-baas-api/internal/pkg/patch"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateClientRequest) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, clientID string) (*domain.Client, error)
	Update(ctx context.Context, clientID string, req domain.UpdateClientRequest) (*domain.Client, error)
	Patch(ctx context.Context, clientID string, op domain.PatchOperation) (*domain.Client, error)
	Delete(ctx context.Context, clientID string) error
}

// addressRemover drops the addresses filed under a deleted client.
type addressRemover interface {
	RemoveForClient(ctx context.Context, clientID string) error
}

type ServiceDeps struct {
	Store     gateway.Store[domain.Client]
	Addresses addressRemover // optional
	Publisher gateway.Publisher
	Logger    *slog.Logger
	// HashCost defaults to bcrypt.DefaultCost.
	HashCost int
}

type service struct {
	gw        *gateway.Gateway[domain.Client]
	addresses addressRemover
	log       *slog.Logger
	hashCost  int
}

func NewService(deps ServiceDeps) Service {
	cost := deps.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		gw: gateway.New(gateway.Options[domain.Client]{
			Kind:      domain.KindClient,
			Store:     deps.Store,
			Fields:    Fields(),
			Consent:   func(c domain.Client) bool { return c.Terms },
			Publisher: deps.Publisher,
			Logger:    deps.Logger,
		}),
		addresses: deps.Addresses,
		log:       logger,
		hashCost:  cost,
	}
}

// Fields lists the client fields a PATCH may replace. Company and terms are
// fixed at registration and the password only changes through PUT, where it
// is hashed.
func Fields() patch.Fields[domain.Client] {
	return patch.Fields[domain.Client]{
		"firstName": patch.String(func(c *domain.Client) *string { return &c.FirstName }, "firstName", "required,max=128"),
		"lastName":  patch.String(func(c *domain.Client) *string { return &c.LastName }, "lastName", "required,max=128"),
		"email":     patch.String(func(c *domain.Client) *string { return &c.Email }, "email", "required,email"),
		"phone":     patch.String(func(c *domain.Client) *string { return &c.Phone }, "phone", "required,phone"),
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateClientRequest) (*domain.Client, error) {
	c := domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Email:     req.Email,
		Phone:     req.Phone,
		Terms:     req.Terms,
		CreatedAt: time.Now().UTC(),
	}
	if c.Terms {
		hash, err := s.hash(req.Password)
		if err != nil {
			return nil, err
		}
		c.PasswordHash = hash
	}
	return s.gw.Create(ctx, c)
}

func (s *service) List(ctx context.Context) ([]domain.Client, error) {
	return s.gw.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.gw.FindOne(ctx, clientID)
}

func (s *service) Update(ctx context.Context, clientID string, req domain.UpdateClientRequest) (*domain.Client, error) {
	return s.gw.Update(ctx, clientID, func(c *domain.Client) error {
		if req.FirstName != nil {
			c.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			c.LastName = *req.LastName
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Password != nil {
			hash, err := s.hashRaw(*req.Password)
			if err != nil {
				return err
			}
			c.PasswordHash = hash
		}
		return nil
	})
}

func (s *service) Patch(ctx context.Context, clientID string, op domain.PatchOperation) (*domain.Client, error) {
	return s.gw.PatchField(ctx, clientID, op)
}

// Delete removes the client, then its addresses. The client is gone once
// Remove succeeds, so a failed address cleanup is logged rather than returned.
func (s *service) Delete(ctx context.Context, clientID string) error {
	if err := s.gw.Remove(ctx, clientID); err != nil {
		return err
	}
	if s.addresses == nil {
		return nil
	}
	if err := s.addresses.RemoveForClient(ctx, clientID); err != nil {
		s.log.Warn("could not remove addresses of deleted client", "client_id", clientID, "err", err)
	}
	return nil
}

// hash is used outside the gateway, so its failure is normalized here.
func (s *service) hash(password string) (string, error) {
	h, err := s.hashRaw(password)
	if err != nil {
		return "", errnorm.Normalize(err, domain.KindClient)
	}
	return h, nil
}

func (s *service) hashRaw(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", domain.NewFault(domain.ErrInternal, "hash password: %v", err)
	}
	return string(b), nil
}
