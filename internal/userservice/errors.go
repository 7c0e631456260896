package userservice

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnavailable means the user store could not be reached.
	ErrUnavailable = errors.New("user store unavailable")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrRegistrationFailed is any other registration failure.
	ErrRegistrationFailed = errors.New("registration failed")
)
