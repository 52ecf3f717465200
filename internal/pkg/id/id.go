package id

import (
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs are lexicographically sortable by
// creation time, which keeps error correlation ids ordered in the logs.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// NewUUID generates a random (v4) UUID for resource and branch identifiers.
func NewUUID() string {
	return uuid.NewString()
}
