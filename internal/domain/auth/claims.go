package auth

import (
	"context"
	"encoding/json"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

// IdentityFromContext decodes the verified JWT claims placed on the request
// context by jwtauth into a caller Identity.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	userID, ok := claimInt64(claims["user_id"])
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	roleStr, ok := claims["role"].(string)
	if !ok || !user.Role(roleStr).IsValid() {
		return Identity{}, ErrInvalidToken
	}

	identity := Identity{
		UserID: userID,
		Email:  email,
		Role:   user.Role(roleStr),
	}

	if employeeID, ok := claimInt64(claims["employee_id"]); ok {
		identity.EmployeeID = &employeeID
	}
	if jti, ok := claims["jti"].(string); ok {
		identity.TokenID = jti
	}

	return identity, nil
}

// claimInt64 tolerates the numeric representations JWT decoding produces.
func claimInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
