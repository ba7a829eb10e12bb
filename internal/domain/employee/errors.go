package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmailExists          = errors.New("employee email already registered")
	ErrEmployeeNumberExists = errors.New("employee number already in use")
	ErrNoLinkedEmployee     = errors.New("user account has no linked employee profile")
)
