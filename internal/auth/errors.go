package auth

import "errors"

// The fixed error taxonomy the login screen knows how to phrase.
// Anything else falls through to the generic message.
var (
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrEmailInUse       = errors.New("email already registered")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrWeakPassword     = errors.New("password too short")
)

// Message maps an authentication error to its user-facing text.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrWrongCredentials):
		return "Wrong email or password"
	case errors.Is(err, ErrEmailInUse):
		return "This email is already registered"
	case errors.Is(err, ErrInvalidEmail):
		return "That email address is not valid"
	case errors.Is(err, ErrWeakPassword):
		return "Password must be at least 6 characters"
	default:
		return "Something went wrong. Try again."
	}
}
