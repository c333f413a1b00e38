package domain

import "errors"

var (
	// ErrEmailTaken reports a violation of the global email uniqueness
	// constraint. Deactivated rows count too.
	ErrEmailTaken = errors.New("email already taken")

	// ErrNotFound reports that no active row matched the given id.
	ErrNotFound = errors.New("user not found")

	// ErrNoFields reports an update request that carries nothing to change.
	ErrNoFields = errors.New("no fields to update")
)
