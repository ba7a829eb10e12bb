package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// AdminOnly requires the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != user.RoleAdmin {
			response.Forbidden(w, user.ErrAdminAccessRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires the manager or admin role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || !role.Privileged() {
			response.Forbidden(w, user.ErrManagerAccessRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
