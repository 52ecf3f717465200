package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-baas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockClientSvc struct{ mock.Mock }

func (m *mockClientSvc) Create(ctx context.Context, req domain.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if c, _ := args.Get(0).(*domain.Client); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientSvc) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *mockClientSvc) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if c, _ := args.Get(0).(*domain.Client); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientSvc) Update(ctx context.Context, clientID string, req domain.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req)
	if c, _ := args.Get(0).(*domain.Client); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientSvc) Patch(ctx context.Context, clientID string, op domain.PatchOperation) (*domain.Client, error) {
	args := m.Called(ctx, clientID, op)
	if c, _ := args.Get(0).(*domain.Client); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClientSvc) Delete(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

func TestClientGet_HidesPasswordHash(t *testing.T) {
	svc := &mockClientSvc{}
	svc.On("Get", mock.Anything, "c1").Return(&domain.Client{ID: "c1", PasswordHash: "$2a$10$secret"}, nil)
	h := NewClientHandler(svc)
	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/clients/c1", nil), "c1")
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")
	assert.NotContains(t, rr.Body.String(), "passwordHash")
}

func TestClientUpdate_RejectsCompany(t *testing.T) {
	svc := &mockClientSvc{}
	h := NewClientHandler(svc)
	r := withChiID(httptest.NewRequest(http.MethodPut, "/v1/clients/c1",
		bytes.NewBufferString(`{"company":"Other"}`)), "c1")
	rr := httptest.NewRecorder()
	h.Update(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientUpdate_PassesOverlay(t *testing.T) {
	svc := &mockClientSvc{}
	svc.On("Update", mock.Anything, "c1", mock.MatchedBy(func(req domain.UpdateClientRequest) bool {
		return req.Phone != nil && *req.Phone == "512-555-0199" && req.Email == nil
	})).Return(&domain.Client{ID: "c1", Phone: "512-555-0199"}, nil)
	h := NewClientHandler(svc)
	payload, _ := json.Marshal(map[string]string{"phone": "512-555-0199"})
	r := withChiID(httptest.NewRequest(http.MethodPut, "/v1/clients/c1", bytes.NewReader(payload)), "c1")
	rr := httptest.NewRecorder()
	h.Update(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
