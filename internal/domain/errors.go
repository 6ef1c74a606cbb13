package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// StoreError wraps a failure reported by the data store. Error returns the
// store's own text unchanged so it can be surfaced to clients as-is.
type StoreError struct {
	Op  string
	Err error
}

func (e StoreError) Error() string {
	if e.Err == nil {
		if e.Op == "" {
			return "store error"
		}
		return e.Op + " failed"
	}
	return e.Err.Error()
}

func (e StoreError) Unwrap() error { return e.Err }

// WrapStore tags err as a StoreError for op. Domain errors pass through.
func WrapStore(op string, err error) error {
	if err == nil || IsNotFound(err) || IsValidation(err) || IsStore(err) {
		return err
	}
	return StoreError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}
