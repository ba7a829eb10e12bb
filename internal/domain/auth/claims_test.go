package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, _, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestIdentityFromContext(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id":     int64(42),
		"email":       "manager@example.com",
		"role":        "manager",
		"employee_id": int64(7),
		"jti":         "token-id",
	})

	identity, err := IdentityFromContext(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "manager@example.com", identity.Email)
	assert.Equal(t, user.RoleManager, identity.Role)
	require.NotNil(t, identity.EmployeeID)
	assert.Equal(t, int64(7), *identity.EmployeeID)
	assert.Equal(t, "token-id", identity.TokenID)
	assert.True(t, identity.Privileged())
}

func TestIdentityWithoutEmployeeLink(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id": int64(42),
		"email":   "worker@example.com",
		"role":    "employee",
	})

	identity, err := IdentityFromContext(ctx)
	require.NoError(t, err)

	assert.Nil(t, identity.EmployeeID)
	assert.False(t, identity.Privileged())
}

func TestIdentityInvalidRole(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id": int64(42),
		"role":    "superuser",
	})

	_, err := IdentityFromContext(ctx)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIdentityMissingToken(t *testing.T) {
	_, err := IdentityFromContext(context.Background())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{"int64", int64(9), 9, true},
		{"float64 from json decoding", float64(9), 9, true},
		{"string rejected", "9", 0, false},
		{"nil rejected", nil, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := claimInt64(c.input)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}
