package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked due to multiple failed login attempts")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenMalformed     = errors.New("invalid token")
	ErrMissingToken       = errors.New("missing token")
	ErrForbidden          = errors.New("forbidden")
	ErrIdentityNotFound   = errors.New("identity not found")
)
