// Package gateway orchestrates CRUD and patch operations for one resource kind
// over an injected backing store. Every error it returns is a *domain.Error.
package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/errnorm"
	"github.com/go-baas-api/internal/pkg/id"
	"github.com/go-baas-api/internal/pkg/patch"
)

// Store is the contract every backing store implements: the in-memory map,
// the core-bank simulator client and the DynamoDB repository.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	// Insert fails with a wrapped domain.ErrConflict when the unique key is taken.
	Insert(ctx context.Context, r T) error
	Put(ctx context.Context, r T) error
	Delete(ctx context.Context, id string) error
}

// Publisher receives lifecycle events. Publish failures are logged, never returned.
type Publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Options configures a Gateway.
type Options[T any] struct {
	Kind      domain.Kind
	Store     Store[T]
	Fields    patch.Fields[T]
	Consent   func(T) bool // nil means no consent is required
	Publisher Publisher
	Logger    *slog.Logger
}

type Gateway[T domain.Resource[T]] struct {
	kind      domain.Kind
	store     Store[T]
	fields    patch.Fields[T]
	consent   func(T) bool
	publisher Publisher
	log       *slog.Logger
}

func New[T domain.Resource[T]](opts Options[T]) *Gateway[T] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pub := opts.Publisher
	if pub == nil {
		pub = NewLogPublisher(logger)
	}
	return &Gateway[T]{
		kind:      opts.Kind,
		store:     opts.Store,
		fields:    opts.Fields,
		consent:   opts.Consent,
		publisher: pub,
		log:       logger.With("kind", string(opts.Kind)),
	}
}

// Kind returns the resource kind served by g.
func (g *Gateway[T]) Kind() domain.Kind { return g.kind }

// Create rejects resources without consent, assigns fresh identifiers and
// inserts r. A taken unique key is reported as an invalid registration.
func (g *Gateway[T]) Create(ctx context.Context, r T) (*T, error) {
	if g.consent != nil && !g.consent(r) {
		return nil, g.fail(ctx, "create", domain.NewFault(domain.ErrInvalidRegistration, "Please accept the terms of service"))
	}
	r = r.WithIdentity(id.NewUUID(), id.NewUUID())
	if err := g.store.Insert(ctx, r); err != nil {
		return nil, g.fail(ctx, "create", err)
	}
	g.log.Debug("created resource", "id", r.ResourceID())
	g.emit(ctx, domain.EventCreated, r.ResourceID())
	return &r, nil
}

// FindAll returns every stored resource.
func (g *Gateway[T]) FindAll(ctx context.Context) ([]T, error) {
	items, err := g.store.List(ctx)
	if err != nil {
		return nil, g.fail(ctx, "findAll", err)
	}
	g.log.Debug("fetched resources", "count", len(items))
	return items, nil
}

func (g *Gateway[T]) FindOne(ctx context.Context, resourceID string) (*T, error) {
	r, err := g.store.Get(ctx, resourceID)
	if err != nil {
		return nil, g.fail(ctx, "findOne", err)
	}
	return r, nil
}

// Update overlays the caller's changes onto the stored resource. overlay only
// touches the fields the request provided.
func (g *Gateway[T]) Update(ctx context.Context, resourceID string, overlay func(*T) error) (*T, error) {
	r, err := g.store.Get(ctx, resourceID)
	if err != nil {
		return nil, g.fail(ctx, "update", err)
	}
	if err := overlay(r); err != nil {
		return nil, g.fail(ctx, "update", err)
	}
	if err := g.store.Put(ctx, *r); err != nil {
		return nil, g.fail(ctx, "update", err)
	}
	g.emit(ctx, domain.EventUpdated, resourceID)
	return r, nil
}

// PatchField replaces a single field through the patch engine.
func (g *Gateway[T]) PatchField(ctx context.Context, resourceID string, op domain.PatchOperation) (*T, error) {
	r, err := patch.Apply[T](ctx, g.store, g.fields, resourceID, op)
	if err != nil {
		return nil, g.fail(ctx, "patch", err)
	}
	g.log.Debug("patched resource", "id", resourceID, "path", op.Path)
	g.emit(ctx, domain.EventUpdated, resourceID)
	return r, nil
}

func (g *Gateway[T]) Remove(ctx context.Context, resourceID string) error {
	if err := g.store.Delete(ctx, resourceID); err != nil {
		return g.fail(ctx, "remove", err)
	}
	g.emit(ctx, domain.EventDeleted, resourceID)
	return nil
}

// fail is the single normalization point for errors leaving the gateway.
func (g *Gateway[T]) fail(ctx context.Context, op string, err error) *domain.Error {
	e := errnorm.Normalize(err, g.kind)
	level := slog.LevelWarn
	if e.HTTPStatus() >= 500 {
		level = slog.LevelError
	}
	g.log.Log(ctx, level, "operation failed",
		"op", op, "error_id", e.ID(), "code", e.Code(), "message", e.Message())
	return e
}

func (g *Gateway[T]) emit(ctx context.Context, typ, resourceID string) {
	ev := domain.Event{
		Type:       typ,
		Kind:       g.kind,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC().Format(domain.TimestampLayout),
	}
	if err := g.publisher.Publish(ctx, ev); err != nil {
		g.log.Warn("could not publish event", "type", typ, "id", resourceID, "err", err)
	}
}
