package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Privileged reports whether r may act on records owned by other employees.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
