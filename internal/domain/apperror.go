package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-baas-api/internal/pkg/id"
)

// TimestampLayout is the ISO-8601 layout used for error timestamps.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Error is the single client-visible error type. Descriptor fields are copied
// at construction and never recomputed; the value is immutable afterwards.
type Error struct {
	desc      ErrorDescriptor
	id        string
	timestamp string
	path      string
	message   string
	cause     error
}

// NewError builds an Error from a catalog descriptor. cause may be nil.
func NewError(desc ErrorDescriptor, message string, cause error) *Error {
	return &Error{
		desc:      desc,
		id:        id.New(),
		timestamp: time.Now().UTC().Format(TimestampLayout),
		message:   message,
		cause:     cause,
	}
}

func (e *Error) ID() string                  { return e.id }
func (e *Error) Code() int                   { return e.desc.Code }
func (e *Error) HTTPStatus() int             { return e.desc.HTTPStatus }
func (e *Error) Name() string                { return e.desc.Name }
func (e *Error) Descriptor() ErrorDescriptor { return e.desc }
func (e *Error) Timestamp() string           { return e.timestamp }
func (e *Error) Path() string                { return e.path }
func (e *Error) Message() string             { return e.message }
func (e *Error) Unwrap() error               { return e.cause }

func (e *Error) Error() string {
	return fmt.Sprintf("code=%d, status=%d, message=%s", e.desc.Code, e.desc.HTTPStatus, e.message)
}

// WithPath returns a copy of e carrying the request path. e is left untouched.
func (e *Error) WithPath(path string) *Error {
	cp := *e
	cp.path = path
	return &cp
}

type errorBody struct {
	ID         string `json:"id"`
	Code       int    `json:"code"`
	Name       string `json:"name"`
	HTTPStatus int    `json:"httpStatus"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path,omitempty"`
	Message    string `json:"message"`
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorBody{
		ID:         e.id,
		Code:       e.desc.Code,
		Name:       e.desc.Name,
		HTTPStatus: e.desc.HTTPStatus,
		Timestamp:  e.timestamp,
		Path:       e.path,
		Message:    e.message,
	})
}

// UpstreamResponse is the part of an upstream HTTP reply kept for error mapping.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// TransportError marks a failed call to the upstream core-bank service.
// Sent is false when the request could not be built or dispatched at all;
// Response is nil when the request went out but no reply arrived.
type TransportError struct {
	Method   string
	URL      string
	Sent     bool
	Response *UpstreamResponse
	Err      error
}

func (e *TransportError) Error() string {
	switch {
	case e.Response != nil:
		return fmt.Sprintf("%s %s: upstream responded %d", e.Method, e.URL, e.Response.StatusCode)
	case e.Sent:
		return fmt.Sprintf("%s %s: no response: %v", e.Method, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s %s: request not sent: %v", e.Method, e.URL, e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }
