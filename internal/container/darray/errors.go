package darray

import "errors"

var (
	// ErrAllocationFailed is returned when the array cannot grow, either
	// because the capacity bound is reached or the runtime refused the buffer.
	ErrAllocationFailed = errors.New("darray: allocation failed")

	// ErrEmpty is returned by Pop on an array with no elements.
	ErrEmpty = errors.New("darray: array is empty")

	// ErrIndexOutOfRange is returned for negative indices, indices past the
	// live elements (At, Set, Ref, EraseAt) or past the capacity bound (InsertAt).
	ErrIndexOutOfRange = errors.New("darray: index out of range")

	// ErrDestroyed is returned by any call made after Destroy.
	ErrDestroyed = errors.New("darray: array destroyed")
)
