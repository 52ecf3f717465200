// Package patch applies single-field REPLACE operations to stored resources.
package patch

import (
	"context"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/pkg/validate"
)

// Collection is the part of a backing store the engine needs.
type Collection[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
	Put(ctx context.Context, r T) error
}

// Setter assigns a decoded JSON value to one field of r.
type Setter[T any] func(r *T, value any) error

// Fields is the declared set of patchable fields of a resource kind, keyed by
// their wire name.
type Fields[T any] map[string]Setter[T]

// Apply replaces the field named by op.Path on the resource stored under id,
// writes it back and returns the updated resource. Applying the same operation
// twice leaves the resource in the same state as applying it once.
func Apply[T any](ctx context.Context, coll Collection[T], fields Fields[T], id string, op domain.PatchOperation) (*T, error) {
	r, err := coll.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if op.Op != domain.PatchReplace {
		return nil, domain.NewFault(domain.ErrUnsupportedOperation,
			"Patch operation %q is not supported, only %s", op.Op, domain.PatchReplace)
	}
	set, ok := fields[op.Path]
	if !ok {
		return nil, domain.NewFault(domain.ErrUnknownField, "Field %q cannot be patched", op.Path)
	}
	if err := set(r, op.Value); err != nil {
		return nil, err
	}
	if err := coll.Put(ctx, *r); err != nil {
		return nil, err
	}
	return r, nil
}

// String builds a setter for a string field. tag is an optional validator
// expression the new value must satisfy.
func String[T any](field func(*T) *string, name, tag string) Setter[T] {
	return func(r *T, value any) error {
		s, ok := value.(string)
		if !ok {
			return domain.NewFault(domain.ErrBadRequest, "Field %q expects a string", name)
		}
		if tag != "" {
			if err := validate.Var(name, s, tag); err != nil {
				return err
			}
		}
		*field(r) = s
		return nil
	}
}

// Bool builds a setter for a boolean field.
func Bool[T any](field func(*T) *bool, name string) Setter[T] {
	return func(r *T, value any) error {
		b, ok := value.(bool)
		if !ok {
			return domain.NewFault(domain.ErrBadRequest, "Field %q expects a boolean", name)
		}
		*field(r) = b
		return nil
	}
}
