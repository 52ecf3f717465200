// Package errnorm converts arbitrary faults into the closed error taxonomy
// carried by *domain.Error.
package errnorm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-baas-api/internal/domain"
	"github.com/tidwall/gjson"
)

// UndefinedMessage is used when the fault is not an error value at all.
const UndefinedMessage = "Undefined Error"

// Normalize maps fault onto exactly one *domain.Error using the catalog of kind.
// It never panics and never returns nil. An existing *domain.Error anywhere in
// the wrap chain is returned unchanged.
func Normalize(fault any, kind domain.Kind) (out *domain.Error) {
	cat := domain.CatalogFor(kind)
	defer func() {
		if r := recover(); r != nil {
			out = domain.NewError(cat.UnknownError, fmt.Sprintf("%v", r), nil)
		}
	}()

	err, ok := fault.(error)
	if !ok || err == nil {
		return domain.NewError(cat.UnknownError, UndefinedMessage, nil)
	}

	var de *domain.Error
	if errors.As(err, &de) && de != nil {
		return de
	}

	var te *domain.TransportError
	if errors.As(err, &te) && te != nil {
		return fromTransport(te, cat)
	}

	if desc, ok := fromSentinel(err, cat); ok {
		return domain.NewError(desc, err.Error(), err)
	}

	return domain.NewError(cat.UnknownError, err.Error(), err)
}

func fromTransport(te *domain.TransportError, cat domain.Catalog) *domain.Error {
	switch {
	case te.Response != nil:
		return domain.NewError(statusDescriptor(te.Response.StatusCode, cat), upstreamMessage(te), te)
	case te.Sent:
		return domain.NewError(cat.InternalError, fmt.Sprintf("No response from core bank for %s %s", te.Method, te.URL), te)
	default:
		return domain.NewError(cat.UnknownError, fmt.Sprintf("Request to core bank could not be sent: %v", te.Err), te)
	}
}

// statusDescriptor is the fixed upstream status table.
func statusDescriptor(status int, cat domain.Catalog) domain.ErrorDescriptor {
	switch status {
	case http.StatusBadRequest:
		return domain.BadRequest
	case http.StatusUnauthorized:
		return cat.Unauthorized
	case http.StatusForbidden:
		return cat.Forbidden
	case http.StatusNotFound:
		return cat.NotFound
	case http.StatusInternalServerError:
		return cat.InternalError
	default:
		return cat.UnknownError
	}
}

// upstreamMessage prefers the upstream body's "message" field, which may be a
// string or a list of validation messages.
func upstreamMessage(te *domain.TransportError) string {
	msg := gjson.GetBytes(te.Response.Body, "message")
	switch {
	case msg.IsArray() && len(msg.Array()) > 0:
		return msg.Array()[0].String()
	case msg.Type == gjson.String && msg.String() != "":
		return msg.String()
	}
	return fmt.Sprintf("Core bank responded %d to %s %s", te.Response.StatusCode, te.Method, te.URL)
}

func fromSentinel(err error, cat domain.Catalog) (domain.ErrorDescriptor, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidIdempotencyKey):
		return domain.InvalidIdempotencyKey, true
	case errors.Is(err, domain.ErrInvalidRegistration), errors.Is(err, domain.ErrConflict):
		return cat.InvalidRegistration, true
	case errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrUnsupportedOperation),
		errors.Is(err, domain.ErrUnknownField):
		return domain.BadRequest, true
	case errors.Is(err, domain.ErrUnauthorized):
		return cat.Unauthorized, true
	case errors.Is(err, domain.ErrForbidden):
		return cat.Forbidden, true
	case errors.Is(err, domain.ErrNotFound):
		return cat.NotFound, true
	case errors.Is(err, domain.ErrInternal):
		return cat.InternalError, true
	}
	return domain.ErrorDescriptor{}, false
}
