package domain

// Keyed is implemented by every stored resource.
// UniqueKey returns the value that must be unique across the collection,
// or "" when the kind has no uniqueness constraint.
type Keyed interface {
	ResourceID() string
	UniqueKey() string
}

// Resource is a Keyed value that can be stamped with generated identifiers.
type Resource[T any] interface {
	Keyed
	WithIdentity(id, branchID string) T
}

// Event is a resource lifecycle notification.
type Event struct {
	Type       string `json:"type"`
	Kind       Kind   `json:"kind"`
	ResourceID string `json:"resourceId"`
	OccurredAt string `json:"occurredAt"`
}

const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)
