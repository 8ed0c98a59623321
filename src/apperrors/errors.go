package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError: missing or malformed input. The caller re-prompts.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// NotFoundError: a referenced artifact, exhibition, space or user is absent.
type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

func NotFound(entity string, id interface{}) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// PermissionError: the actor's role does not allow the operation.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

func Permission(format string, args ...interface{}) error {
	return &PermissionError{Message: fmt.Sprintf(format, args...)}
}

func IsPermission(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

// PersistenceError: the database write or read failed. The operation has no
// effect and is safe to retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
