package identity

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailTaken            = errors.New("email is already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrAccountDisabled       = errors.New("user account is disabled")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsecureKeyNotAllowed = errors.New("insecure field encryption key is only allowed in development")
)
