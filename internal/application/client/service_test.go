package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-baas-api/internal/domain"
	"github.com/go-baas-api/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newSvc() (Service, *memstore.Store[domain.Client]) {
	store := memstore.New[domain.Client]("Client")
	return NewService(ServiceDeps{
		Store:    store,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		HashCost: bcrypt.MinCost,
	}), store
}

func createReq() domain.CreateClientRequest {
	return domain.CreateClientRequest{
		FirstName: "Ada", LastName: "Lovelace", Company: "Analytical", Email: "ada@x.com",
		Phone: "512-555-0100", Password: "s3cret!", Terms: true,
	}
}

func code(t *testing.T, err error) int {
	t.Helper()
	var de *domain.Error
	require.True(t, errors.As(err, &de), "want *domain.Error, got %T", err)
	return de.Code()
}

func TestCreate_HashesPassword(t *testing.T) {
	svc, _ := newSvc()
	c, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", c.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("s3cret!")))
}

func TestCreate_NoTerms_UsesClientCatalog(t *testing.T) {
	svc, store := newSvc()
	req := createReq()
	req.Terms = false
	_, err := svc.Create(context.Background(), req)
	assert.Equal(t, 4001, code(t, err))
	assert.Zero(t, store.Len())
}

func TestCreate_PasswordTooLongForBcrypt(t *testing.T) {
	svc, store := newSvc()
	req := createReq()
	req.Password = string(make([]byte, 80))
	_, err := svc.Create(context.Background(), req)
	assert.Equal(t, 4010, code(t, err))
	assert.Zero(t, store.Len())
}

func TestUpdate_RehashesPassword(t *testing.T) {
	svc, _ := newSvc()
	c, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	pw := "n3w-pass"
	got, err := svc.Update(context.Background(), c.ID, domain.UpdateClientRequest{Password: &pw})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte(pw)))
	assert.Equal(t, "Analytical", got.Company)
}

func TestPatch_CompanyIsImmutable(t *testing.T) {
	svc, _ := newSvc()
	c, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	_, err = svc.Patch(context.Background(), c.ID, domain.PatchOperation{Op: domain.PatchReplace, Path: "company", Value: "Other"})
	assert.Equal(t, 1002, code(t, err))
	_, err = svc.Patch(context.Background(), c.ID, domain.PatchOperation{Op: domain.PatchReplace, Path: "password", Value: "x"})
	assert.Equal(t, 1002, code(t, err))
}

func TestPatch_TermsCannotBeWithdrawn(t *testing.T) {
	svc, _ := newSvc()
	c, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	_, err = svc.Patch(context.Background(), c.ID, domain.PatchOperation{Op: domain.PatchReplace, Path: "terms", Value: false})
	assert.Equal(t, 1002, code(t, err))

	got, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, got.Terms)
}

func TestGet_Unknown(t *testing.T) {
	svc, _ := newSvc()
	_, err := svc.Get(context.Background(), "nope")
	assert.Equal(t, 4004, code(t, err))
}

type mockAddresses struct{ mock.Mock }

func (m *mockAddresses) RemoveForClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

func newSvcWithAddresses(addrs *mockAddresses) (Service, *memstore.Store[domain.Client]) {
	store := memstore.New[domain.Client]("Client")
	return NewService(ServiceDeps{
		Store:     store,
		Addresses: addrs,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		HashCost:  bcrypt.MinCost,
	}), store
}

func TestDelete_RemovesAddresses(t *testing.T) {
	addrs := new(mockAddresses)
	svc, store := newSvcWithAddresses(addrs)
	c, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	addrs.On("RemoveForClient", mock.Anything, c.ID).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	assert.Equal(t, 0, store.Len())
	addrs.AssertExpectations(t)
}

func TestDelete_AddressCleanupFailure_IsNotReturned(t *testing.T) {
	addrs := new(mockAddresses)
	svc, _ := newSvcWithAddresses(addrs)
	c, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	addrs.On("RemoveForClient", mock.Anything, c.ID).Return(errors.New("store down"))

	assert.NoError(t, svc.Delete(context.Background(), c.ID))
}

func TestDelete_UnknownClient_SkipsAddresses(t *testing.T) {
	addrs := new(mockAddresses)
	svc, _ := newSvcWithAddresses(addrs)

	err := svc.Delete(context.Background(), "nope")
	assert.Equal(t, 4004, code(t, err))
	addrs.AssertNotCalled(t, "RemoveForClient", mock.Anything, mock.Anything)
}
