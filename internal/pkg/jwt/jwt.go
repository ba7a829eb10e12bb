package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(userID int64, email string, role user.Role, employeeID *int64) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	AuthCookie(token string, expiresAt int64) *http.Cookie
	ClearAuthCookie() *http.Cookie
	RevokeToken(jti string)
	IsTokenRevoked(jti string) bool
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
	revokedTokens  map[string]int64
	mu             sync.RWMutex
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:  make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, role user.Role, employeeID *int64) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// AuthCookie carries the access token for browser clients; API clients may
// send the same token in the Authorization header instead.
func (j *JWTService) AuthCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearAuthCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "jwt",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(jti string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[jti] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}
