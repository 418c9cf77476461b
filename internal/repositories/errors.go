package repositories

import "errors"

var (
	// ErrNotFound is returned when a write targets a client id that does not exist.
	ErrNotFound = errors.New("client not found")

	// ErrInvalidSort is returned when a page request orders by an unknown field.
	ErrInvalidSort = errors.New("invalid sort field")

	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
