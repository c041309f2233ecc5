package repo

import "errors"

var (
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)
