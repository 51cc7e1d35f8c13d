package user

import (
	"errors"
	"fmt"
)

// ErrNotExists is the explicit absence signal returned by repositories when a
// lookup matches no user. Services translate it into the caller-facing errors
// below; it never leaves the package untranslated.
var ErrNotExists = errors.New("user does not exist")

// ValidationError reports missing or malformed input, detected before any
// store access.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DuplicateError reports a uniqueness violation on cpf or login.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %s already registered", e.Field, e.Value)
}

// NotFoundError reports that the referenced user does not exist.
type NotFoundError struct {
	Field string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %s %s not found", e.Field, e.Value)
}

// DependencyError wraps a failure of a collaborator (store, hasher, signer).
// Handlers must render it as a generic failure; the wrapped cause is for logs
// only.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *DependencyError) Unwrap() error { return e.Err }
