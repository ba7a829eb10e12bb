package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	authService "github.com/staffhub/staffhub-backend-go/internal/service/auth"
	appJWT "github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService  appJWT.Service
	authService authService.AuthService
}

func NewAuthHandler(jwtService appJWT.Service, service authService.AuthService) AuthHandler {
	return &authHandlerImpl{
		jwtService:  jwtService,
		authService: service,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.AuthCookie(result.Token, result.ExpiresAt))
	response.SuccessWithMessage(w, "Login successful", result)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.ClearAuthCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.ToResponse(u))
}
