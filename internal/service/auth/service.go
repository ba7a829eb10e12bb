package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (user.User, error)
}

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service) AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login implements AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := s.UserRepository.UpdateLastLogin(ctx, u.ID); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to record login: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(u),
	}, nil
}

// Logout implements AuthService by revoking the caller's token id.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return err
	}
	if identity.TokenID != "" {
		s.jwtService.RevokeToken(identity.TokenID)
	}
	return nil
}

// Me implements AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (user.User, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return user.User{}, err
	}
	return s.UserRepository.GetByID(ctx, identity.UserID)
}
