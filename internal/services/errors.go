package services

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every ResourceNotFoundError via errors.Is.
var ErrNotFound = errors.New("resource not found")

// ResourceNotFoundError reports that no client exists for ID.
type ResourceNotFoundError struct {
	ID int64
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("id not found: %d", e.ID)
}

func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(id int64) error {
	return &ResourceNotFoundError{ID: id}
}
