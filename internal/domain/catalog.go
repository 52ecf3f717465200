package domain

import (
	"fmt"
	"net/http"
)

// Kind names a resource kind served by the gateway. It selects the error
// catalog used when a fault is normalized.
type Kind string

const (
	KindCustomer Kind = "customer"
	KindClient   Kind = "client"
	KindAddress  Kind = "address"
	KindResource Kind = "resource"
)

// ErrorDescriptor is one immutable entry of the error catalog.
type ErrorDescriptor struct {
	HTTPStatus int
	Code       int
	Name       string
}

// Entries shared by every kind.
var (
	InvalidIdempotencyKey = ErrorDescriptor{HTTPStatus: http.StatusBadRequest, Code: 1001, Name: "Invalid Idempotency-Key"}
	BadRequest            = ErrorDescriptor{HTTPStatus: http.StatusBadRequest, Code: 1002, Name: "Bad Request"}
)

// Catalog holds the per-kind error descriptors.
type Catalog struct {
	InvalidRegistration ErrorDescriptor
	Unauthorized        ErrorDescriptor
	Forbidden           ErrorDescriptor
	NotFound            ErrorDescriptor
	InternalError       ErrorDescriptor
	UnknownError        ErrorDescriptor
}

var catalogs = map[Kind]Catalog{
	KindResource: {
		InvalidRegistration: ErrorDescriptor{http.StatusBadRequest, 3001, "Invalid Registration"},
		Unauthorized:        ErrorDescriptor{http.StatusUnauthorized, 3002, "Unauthorized"},
		Forbidden:           ErrorDescriptor{http.StatusForbidden, 3003, "Forbidden"},
		NotFound:            ErrorDescriptor{http.StatusNotFound, 3004, "Resource Not Found"},
		InternalError:       ErrorDescriptor{http.StatusInternalServerError, 3010, "Internal Resource Error"},
		UnknownError:        ErrorDescriptor{http.StatusInternalServerError, 3011, "Unknown Resource Error"},
	},
	KindCustomer: nounCatalog("Customer", 2000),
	KindClient:   nounCatalog("Client", 4000),
	KindAddress:  nounCatalog("Address", 5000),
}

// nounCatalog lays out a kind's descriptors at fixed offsets from base.
func nounCatalog(noun string, base int) Catalog {
	return Catalog{
		InvalidRegistration: ErrorDescriptor{http.StatusBadRequest, base + 1, fmt.Sprintf("Invalid %s Registration", noun)},
		Unauthorized:        ErrorDescriptor{http.StatusUnauthorized, base + 2, fmt.Sprintf("%s is Unauthorized", noun)},
		Forbidden:           ErrorDescriptor{http.StatusForbidden, base + 3, fmt.Sprintf("%s is Forbidden", noun)},
		NotFound:            ErrorDescriptor{http.StatusNotFound, base + 4, fmt.Sprintf("%s Not Found", noun)},
		InternalError:       ErrorDescriptor{http.StatusInternalServerError, base + 10, fmt.Sprintf("Internal %s Error", noun)},
		UnknownError:        ErrorDescriptor{http.StatusInternalServerError, base + 11, fmt.Sprintf("Unknown %s Error", noun)},
	}
}

// CatalogFor returns the catalog for k, falling back to the generic resource
// catalog for unknown kinds.
func CatalogFor(k Kind) Catalog {
	if c, ok := catalogs[k]; ok {
		return c
	}
	return catalogs[KindResource]
}

// Descriptors lists every catalog entry, shared ones included.
func Descriptors() []ErrorDescriptor {
	out := []ErrorDescriptor{InvalidIdempotencyKey, BadRequest}
	for _, c := range catalogs {
		out = append(out, c.InvalidRegistration, c.Unauthorized, c.Forbidden, c.NotFound, c.InternalError, c.UnknownError)
	}
	return out
}
