package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	appJWT "github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

func newTestRouter(jwtService appJWT.Service) *chi.Mux {
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService))

		r.Get("/any", ok)
		r.With(RequireManager).Get("/manager", ok)
		r.With(AdminOnly).Get("/admin", ok)
	})
	return r
}

func tokenFor(t *testing.T, jwtService appJWT.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(1, "test@example.com", role, nil)
	require.NoError(t, err)
	return token
}

func request(router *chi.Mux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	jwtService := appJWT.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService)

	t.Run("missing token", func(t *testing.T) {
		rec := request(router, "/any", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := request(router, "/any", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		rec := request(router, "/any", tokenFor(t, jwtService, user.RoleEmployee))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("token signed with wrong key", func(t *testing.T) {
		other := appJWT.NewJWTService("another-secret-entirely", "1h")
		rec := request(router, "/any", tokenFor(t, other, user.RoleEmployee))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token accepted via cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/any", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: tokenFor(t, jwtService, user.RoleEmployee)})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRevokedToken(t *testing.T) {
	jwtService := appJWT.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService)

	token := tokenFor(t, jwtService, user.RoleEmployee)

	rec := request(router, "/any", token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Revoke by decoding the jti out of the token itself.
	decoded, err := jwtService.JWTAuth().Decode(token)
	require.NoError(t, err)
	jti, ok := decoded.Get("jti")
	require.True(t, ok)
	jwtService.RevokeToken(jti.(string))

	rec = request(router, "/any", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGates(t *testing.T) {
	jwtService := appJWT.NewJWTService(testSecret, "1h")
	router := newTestRouter(jwtService)

	cases := []struct {
		name string
		path string
		role user.Role
		want int
	}{
		{"employee blocked from manager route", "/manager", user.RoleEmployee, http.StatusForbidden},
		{"manager allowed on manager route", "/manager", user.RoleManager, http.StatusOK},
		{"admin allowed on manager route", "/manager", user.RoleAdmin, http.StatusOK},
		{"employee blocked from admin route", "/admin", user.RoleEmployee, http.StatusForbidden},
		{"manager blocked from admin route", "/admin", user.RoleManager, http.StatusForbidden},
		{"admin allowed on admin route", "/admin", user.RoleAdmin, http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := request(router, c.path, tokenFor(t, jwtService, c.role))
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
