// Package memstore is the in-process backing store: one map per resource kind,
// owned by the Store value and injected into the gateway.
package memstore

import (
	"context"
	"sync"

	"github.com/go-baas-api/internal/domain"
)

// Store is a collection of resources keyed by id with a secondary index on the
// resource's unique key. The mutex keeps the maps memory-safe; it does not
// serialize read-modify-write sequences made by callers.
type Store[T domain.Keyed] struct {
	noun   string
	mu     sync.RWMutex
	items  map[string]T
	unique map[string]string // unique key -> id
}

// New creates an empty store. noun is used in not-found messages ("Customer").
func New[T domain.Keyed](noun string) *Store[T] {
	return &Store[T]{
		noun:   noun,
		items:  make(map[string]T),
		unique: make(map[string]string),
	}
}

// Len returns the number of stored resources.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// List returns a snapshot of every stored resource in no particular order.
func (s *Store[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	for _, v := range s.items {
		out = append(out, v)
	}
	return out, nil
}

// Get returns a copy of the resource stored under id.
func (s *Store[T]) Get(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	if !ok {
		return nil, s.notFound(id)
	}
	return &v, nil
}

// Insert adds r. The unique-key check and the insert happen under one lock, so
// two concurrent inserts with the same key cannot both succeed.
func (s *Store[T]) Insert(_ context.Context, r T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[r.ResourceID()]; ok {
		return domain.NewFault(domain.ErrConflict, "%s w/ id=%s already exists", s.noun, r.ResourceID())
	}
	if k := r.UniqueKey(); k != "" {
		if _, taken := s.unique[k]; taken {
			return domain.NewFault(domain.ErrConflict, "Email %s is already registered", k)
		}
		s.unique[k] = r.ResourceID()
	}
	s.items[r.ResourceID()] = r
	return nil
}

// Put replaces an existing resource, keeping the unique index in step.
func (s *Store[T]) Put(_ context.Context, r T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := r.ResourceID()
	prev, ok := s.items[id]
	if !ok {
		return s.notFound(id)
	}
	if k := r.UniqueKey(); k != prev.UniqueKey() {
		if owner, taken := s.unique[k]; k != "" && taken && owner != id {
			return domain.NewFault(domain.ErrConflict, "Email %s is already registered", k)
		}
		delete(s.unique, prev.UniqueKey())
		if k != "" {
			s.unique[k] = id
		}
	}
	s.items[id] = r
	return nil
}

// Delete removes the resource stored under id.
func (s *Store[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[id]
	if !ok {
		return s.notFound(id)
	}
	delete(s.unique, v.UniqueKey())
	delete(s.items, id)
	return nil
}

func (s *Store[T]) notFound(id string) error {
	return domain.NewFault(domain.ErrNotFound, "%s w/ id=%s Not Found", s.noun, id)
}
