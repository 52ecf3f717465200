package dynamo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-baas-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }

func TestBuildUpdateExpr_SingleField(t *testing.T) {
	ue, err := buildUpdateExpr(map[string]types.AttributeValue{"email": s("a@b.com")})
	require.NoError(t, err)
	assert.Equal(t, "SET #f0 = :v0", ue.Expr)
	assert.Equal(t, map[string]string{"#f0": "email"}, ue.Names)
	assert.Equal(t, s("a@b.com"), ue.Values[":v0"])
}

func TestBuildUpdateExpr_MultipleFields_Deterministic(t *testing.T) {
	item := map[string]types.AttributeValue{
		"lastName":  s("Doe"),
		"email":     s("a@b.com"),
		"firstName": s("Jane"),
	}
	ue1, err := buildUpdateExpr(item)
	require.NoError(t, err)
	ue2, err := buildUpdateExpr(item)
	require.NoError(t, err)

	assert.Equal(t, ue1.Expr, ue2.Expr)
	assert.Equal(t, "email", ue1.Names["#f0"])
	assert.Equal(t, "firstName", ue1.Names["#f1"])
	assert.Equal(t, "lastName", ue1.Names["#f2"])
	assert.Equal(t, "SET #f0 = :v0, #f1 = :v1, #f2 = :v2", ue1.Expr)
}

func TestBuildUpdateExpr_EmptyMap_ReturnsError(t *testing.T) {
	_, err := buildUpdateExpr(map[string]types.AttributeValue{})
	assert.ErrorContains(t, err, "no fields to update")
}

func TestIsConditionFailed(t *testing.T) {
	wrapped := fmt.Errorf("put: %w", &types.ConditionalCheckFailedException{})
	assert.True(t, isConditionFailed(wrapped))
	assert.False(t, isConditionFailed(errors.New("throttled")))
	assert.False(t, isConditionFailed(nil))
}

func TestStorageErr_WrapsInternalAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := storageErr("scan", "customers", cause)

	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage scan failed on table customers", err.Error())
}
