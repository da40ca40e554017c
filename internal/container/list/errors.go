package list

import "errors"

var (
	// ErrSoleNodeProtected is returned when a pop would remove the last node.
	ErrSoleNodeProtected = errors.New("list: cannot remove the sole node")

	// ErrNotFound is returned when InsertAfter cannot find its target.
	ErrNotFound = errors.New("list: data not found")

	// ErrAllocationFailed is returned when a push would exceed the length bound.
	ErrAllocationFailed = errors.New("list: allocation failed")

	// ErrNoList is returned by any call made after Destroy.
	ErrNoList = errors.New("list: list destroyed")
)
