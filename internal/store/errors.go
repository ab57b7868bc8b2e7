package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError lists the form fields that failed validation.
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
	return "missing information: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(err error) error {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	ve := &ValidationError{Fields: make(map[string]string, len(errs))}
	for k, v := range errs {
		ve.Fields[k] = v.Error()
	}
	return ve
}

type notFoundError struct {
	id string
}

func (e notFoundError) Error() string { return "routine item not found: " + e.id }

func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

func errNotFound(id string) error { return notFoundError{id: id} }
