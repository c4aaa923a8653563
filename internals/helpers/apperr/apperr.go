// Package apperr holds the error values services return to the HTTP layer.
//
// Services never build HTTP responses themselves. They return one of these
// types and helper.ErrorHandler turns it into a status code and JSON body.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateKey is reported by repositories when a write hits a unique
// constraint in storage.
var ErrDuplicateKey = errors.New("duplicate key")

// NotFoundError is returned when an entity looked up by id does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %v not found.", e.Entity, e.ID)
}

func NotFound(entity string, id any) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// AlreadyExistsError signals a uniqueness rule enforced by the application
// (duplicate email, duplicate CI, duplicate site name+address...).
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string { return e.Message }

func AlreadyExists(format string, args ...any) error {
	return &AlreadyExistsError{Message: fmt.Sprintf(format, args...)}
}

// BadRequestError is malformed or unacceptable input.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func BadRequest(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError carries per-field messages from struct validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsAlreadyExists(err error) bool {
	var ae *AlreadyExistsError
	return errors.As(err, &ae)
}
