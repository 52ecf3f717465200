package errnorm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-baas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panicky struct{}

func (panicky) Error() string { panic("Error() exploded") }

func TestNormalize_Totality(t *testing.T) {
	cat := domain.CatalogFor(domain.KindCustomer)
	already := domain.NewError(cat.NotFound, "Customer w/ id=1 Not Found", nil)

	cases := []struct {
		name  string
		fault any
		code  int
	}{
		{"already normalized", already, 2004},
		{"wrapped normalized", fmt.Errorf("ctx: %w", already), 2004},
		{"transport 404", &domain.TransportError{Sent: true, Response: &domain.UpstreamResponse{StatusCode: 404}}, 2004},
		{"transport no response", &domain.TransportError{Sent: true, Err: errors.New("reset")}, 2010},
		{"transport not sent", &domain.TransportError{Err: errors.New("bad url")}, 2011},
		{"generic error", errors.New("boom"), 2011},
		{"string", "boom", 2011},
		{"int", 42, 2011},
		{"nil", nil, 2011},
		{"typed nil normalized", (*domain.Error)(nil), 2011},
		{"panicking error", panicky{}, 2011},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got *domain.Error
			require.NotPanics(t, func() { got = Normalize(tc.fault, domain.KindCustomer) })
			require.NotNil(t, got)
			assert.Equal(t, tc.code, got.Code())
		})
	}
}

func TestNormalize_PassThroughIsIdentity(t *testing.T) {
	e := domain.NewError(domain.BadRequest, "bad", nil)
	assert.Same(t, e, Normalize(e, domain.KindClient))
}

func TestNormalize_NonErrorIsUndefined(t *testing.T) {
	got := Normalize(struct{}{}, domain.KindClient)
	assert.Equal(t, UndefinedMessage, got.Message())
	assert.Equal(t, 4011, got.Code())
}

func TestNormalize_GenericErrorKeepsMessageAndCause(t *testing.T) {
	cause := errors.New("disk on fire")
	got := Normalize(cause, domain.KindAddress)
	assert.Equal(t, 5011, got.Code())
	assert.Equal(t, "disk on fire", got.Message())
	assert.ErrorIs(t, got, cause)
}

func TestNormalize_UpstreamStatusTable(t *testing.T) {
	cases := map[int]int{
		400: 1002,
		401: 4002,
		403: 4003,
		404: 4004,
		500: 4010,
		502: 4011,
		418: 4011,
	}
	for status, code := range cases {
		te := &domain.TransportError{Method: "GET", URL: "http://sim/clients", Sent: true,
			Response: &domain.UpstreamResponse{StatusCode: status}}
		assert.Equal(t, code, Normalize(te, domain.KindClient).Code(), "status %d", status)
	}
}

func TestNormalize_UpstreamMessage(t *testing.T) {
	resp := func(body string) *domain.TransportError {
		return &domain.TransportError{Method: "POST", URL: "http://sim/customers", Sent: true,
			Response: &domain.UpstreamResponse{StatusCode: 400, Body: []byte(body)}}
	}

	assert.Equal(t, "email must be an email",
		Normalize(resp(`{"message":["email must be an email","ssn is required"]}`), domain.KindCustomer).Message())
	assert.Equal(t, "Customer not found",
		Normalize(resp(`{"message":"Customer not found"}`), domain.KindCustomer).Message())
	assert.Equal(t, "Core bank responded 400 to POST http://sim/customers",
		Normalize(resp(`<html>oops</html>`), domain.KindCustomer).Message())
}

func TestNormalize_Sentinels(t *testing.T) {
	cases := []struct {
		sentinel error
		code     int
	}{
		{domain.ErrInvalidIdempotencyKey, 1001},
		{domain.ErrBadRequest, 1002},
		{domain.ErrUnsupportedOperation, 1002},
		{domain.ErrUnknownField, 1002},
		{domain.ErrInvalidRegistration, 2001},
		{domain.ErrConflict, 2001},
		{domain.ErrUnauthorized, 2002},
		{domain.ErrForbidden, 2003},
		{domain.ErrNotFound, 2004},
		{domain.ErrInternal, 2010},
	}
	for _, tc := range cases {
		err := domain.NewFault(tc.sentinel, "msg for %v", tc.sentinel)
		got := Normalize(err, domain.KindCustomer)
		assert.Equal(t, tc.code, got.Code(), tc.sentinel.Error())
		assert.Equal(t, err.Error(), got.Message())
		assert.ErrorIs(t, got, tc.sentinel)
	}
}
