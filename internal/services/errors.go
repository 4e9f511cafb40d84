package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPasswordTooLong is returned when a password cannot be hashed with bcrypt.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes and cannot be hashed")

// NotFoundError reports that the addressed entity, or a required parent, does not exist.
type NotFoundError struct {
	Entity string
	Field  string
	Value  any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s %v not found", e.Entity, e.Field, e.Value)
}

func notFound(entity string, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, Field: "ID", Value: id}
}

// Reference is a foreign key carried by a write payload.
type Reference struct {
	Entity string `json:"entity"`
	Field  string `json:"field"`
	ID     int    `json:"id"`
}

func (r Reference) String() string {
	return fmt.Sprintf("%s %d", r.Entity, r.ID)
}

// InvalidReferenceError lists the foreign keys of a payload that point at missing rows.
type InvalidReferenceError struct {
	Entity     string
	References []Reference
}

func (e *InvalidReferenceError) Error() string {
	names := make([]string, len(e.References))
	for i, ref := range e.References {
		names[i] = ref.String()
	}
	return fmt.Sprintf("invalid %s references: %s not found", e.Entity, strings.Join(names, ", "))
}

// StorageError wraps a failure raised by the store. Its message is the store's own.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// outcome labels an error for metrics.
func outcome(err error) string {
	var (
		nf  *NotFoundError
		ref *InvalidReferenceError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &nf):
		return "not_found"
	case errors.As(err, &ref), errors.Is(err, ErrPasswordTooLong):
		return "rejected"
	default:
		return "storage_failure"
	}
}
