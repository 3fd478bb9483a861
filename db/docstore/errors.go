package docstore

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidField = errors.New("invalid profile field")
)

type NotFoundError struct {
	Collection string
	Key        string
}

type InvalidFieldError struct {
	Field string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Collection, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid profile field: %s", e.Field)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}
