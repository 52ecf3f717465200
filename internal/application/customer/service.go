package customer

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-baas-api/internal/application/gateway"
	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/patch"
	"github.com/go-baas-api/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, customerID string) (*domain.Customer, error)
	Update(ctx context.Context, customerID string, req domain.UpdateCustomerRequest) (*domain.Customer, error)
	Patch(ctx context.Context, customerID string, op domain.PatchOperation) (*domain.Customer, error)
	Delete(ctx context.Context, customerID string) error
}

type ServiceDeps struct {
	Store     gateway.Store[domain.Customer]
	Publisher gateway.Publisher
	Logger    *slog.Logger
}

type service struct {
	gw *gateway.Gateway[domain.Customer]
}

func NewService(deps ServiceDeps) Service {
	return &service{gw: gateway.New(gateway.Options[domain.Customer]{
		Kind:      domain.KindCustomer,
		Store:     deps.Store,
		Fields:    Fields(),
		Consent:   func(c domain.Customer) bool { return c.Terms },
		Publisher: deps.Publisher,
		Logger:    deps.Logger,
	})}
}

// Fields lists the customer fields a PATCH may replace. The SSN is immutable.
func Fields() patch.Fields[domain.Customer] {
	return patch.Fields[domain.Customer]{
		"firstName":   patch.String(func(c *domain.Customer) *string { return &c.FirstName }, "firstName", "required,max=128"),
		"middleName":  patch.String(func(c *domain.Customer) *string { return &c.MiddleName }, "middleName", "max=128"),
		"lastName":    patch.String(func(c *domain.Customer) *string { return &c.LastName }, "lastName", "required,max=128"),
		"suffix":      patch.String(func(c *domain.Customer) *string { return &c.Suffix }, "suffix", "max=24"),
		"email":       patch.String(func(c *domain.Customer) *string { return &c.Email }, "email", "required,email"),
		"phoneNumber": patch.String(func(c *domain.Customer) *string { return &c.PhoneNumber }, "phoneNumber", "required,phone"),
		"metadata":    patch.String(func(c *domain.Customer) *string { return &c.Metadata }, "metadata", "omitempty,json"),
		"status":      setStatus,
	}
}

func setStatus(c *domain.Customer, value any) error {
	s, ok := value.(string)
	if !ok {
		return domain.NewFault(domain.ErrBadRequest, "Field %q expects a string", "status")
	}
	if err := validate.Var("status", s, "oneof=Pending Active Blocked"); err != nil {
		return err
	}
	c.Status = domain.CustomerStatus(s)
	return nil
}

func (s *service) Create(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	c := domain.Customer{
		FirstName:      req.FirstName,
		MiddleName:     req.MiddleName,
		LastName:       req.LastName,
		Suffix:         req.Suffix,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		SSN:            req.SSN,
		Metadata:       req.Metadata,
		Status:         domain.CustomerPending,
		Terms:          req.Terms,
		MailingAddress: req.MailingAddress,
		CreatedAt:      time.Now().UTC(),
	}
	if req.PhysicalAddress != nil {
		c.PhysicalAddress = *req.PhysicalAddress
	}
	return s.gw.Create(ctx, c)
}

func (s *service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.gw.FindAll(ctx)
}

func (s *service) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.gw.FindOne(ctx, customerID)
}

func (s *service) Update(ctx context.Context, customerID string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	return s.gw.Update(ctx, customerID, func(c *domain.Customer) error {
		overlay(&c.FirstName, req.FirstName)
		overlay(&c.MiddleName, req.MiddleName)
		overlay(&c.LastName, req.LastName)
		overlay(&c.Suffix, req.Suffix)
		overlay(&c.Email, req.Email)
		overlay(&c.PhoneNumber, req.PhoneNumber)
		overlay(&c.Metadata, req.Metadata)
		if req.Status != nil {
			c.Status = domain.CustomerStatus(*req.Status)
		}
		if req.PhysicalAddress != nil {
			c.PhysicalAddress = *req.PhysicalAddress
		}
		if req.MailingAddress != nil {
			c.MailingAddress = req.MailingAddress
		}
		return nil
	})
}

func (s *service) Patch(ctx context.Context, customerID string, op domain.PatchOperation) (*domain.Customer, error) {
	return s.gw.PatchField(ctx, customerID, op)
}

func (s *service) Delete(ctx context.Context, customerID string) error {
	return s.gw.Remove(ctx, customerID)
}

func overlay[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
