package user

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.User, error)
	Get(ctx context.Context, id int64) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error)
	Delete(ctx context.Context, id int64) error
}

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

// Create implements UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleEmployee
	}

	return s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		EmployeeID:   req.EmployeeID,
	})
}

// Get implements UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.User, error) {
	return s.UserRepository.GetByID(ctx, id)
}

// List implements UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.User, error) {
	return s.UserRepository.List(ctx)
}

// Update implements UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.EmployeeID != nil {
		u.EmployeeID = req.EmployeeID
	}

	return s.UserRepository.Update(ctx, u)
}

// Delete implements UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.UserRepository.Delete(ctx, id)
}
