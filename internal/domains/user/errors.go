package user

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Business rule errors
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")

	// Authentication errors. Deliberately a single value for both
	// "no such email" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrUsernameAlreadyExists):
		return 409
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	default:
		return 500
	}
}
