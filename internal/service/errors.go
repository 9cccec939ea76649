package service

import "errors"

// Error taxonomy shared between the services and the HTTP surface.
var (
	// ErrUnauthenticated means no resolved user backs the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTaskNotFound covers both a missing task and a task owned by another
	// user. The two cases are deliberately indistinguishable so nobody can
	// probe which IDs exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrValidation marks malformed input, e.g. an unparsable deadline.
	ErrValidation = errors.New("invalid input")
)
