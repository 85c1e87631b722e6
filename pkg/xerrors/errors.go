package xerrors

import "errors"

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrNotFound       = errors.New("not found")
)

// Registration / Login
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
)

// Account state
var (
	ErrAccountBlocked     = errors.New("account blocked")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrAccountDeleted     = errors.New("account deleted")
)

// Token
var (
	ErrInvalidToken = errors.New("invalid token")
)
