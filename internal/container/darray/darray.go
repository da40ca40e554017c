// Package darray provides a growable, contiguous array of fixed-size elements.
//
// An Array owns a single buffer sized to its capacity and keeps its capacity,
// length and item size next to it. Operations that can grow the array (Push,
// InsertAt) may move that buffer to a new allocation. Addresses obtained with
// Ref before such a call are stale afterwards and must be fetched again;
// Generation changes every time the buffer moves.
//
// An Array is not safe for concurrent use.
package darray

import (
	"fmt"
	"unsafe"
)

const (
	// DefaultCapacity is the capacity of a freshly created array.
	DefaultCapacity = 1

	// DefaultGrowthFactor is applied when an append finds the array full.
	DefaultGrowthFactor = 2

	// MaxCapacity is the largest capacity an array may grow to.
	// Indices at or past it are rejected before any growth arithmetic.
	MaxCapacity = 1<<31 - 1

	// MaxBytes bounds the size of one buffer. For element types wider than
	// one byte it lowers the effective capacity below MaxCapacity.
	MaxBytes = 1 << 30
)

// Option configures an Array at creation.
type Option func(*options)

type options struct {
	maxCapacity int
	onGrow      func(oldCap, newCap int)
}

// WithMaxCapacity lowers the capacity bound for one array.
// Values outside [DefaultCapacity, MaxCapacity] are ignored.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n >= DefaultCapacity && n <= MaxCapacity {
			o.maxCapacity = n
		}
	}
}

// WithGrowHook registers fn to be called after every reallocation.
func WithGrowHook(fn func(oldCap, newCap int)) Option {
	return func(o *options) {
		o.onGrow = fn
	}
}

// Array is a growable array of T. The zero value is an empty array with
// default options; New sets the initial capacity and applies options.
type Array[T any] struct {
	buf        []T // len(buf) is the capacity
	length     int
	generation uint64
	destroyed  bool
	opts       options
}

// New creates an empty array with capacity DefaultCapacity.
func New[T any](opts ...Option) *Array[T] {
	o := options{maxCapacity: MaxCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &Array[T]{
		buf:  make([]T, DefaultCapacity),
		opts: o,
	}
}

// Destroy releases the buffer. Every later call on the array fails with
// ErrDestroyed; Count and Cap report zero.
func (a *Array[T]) Destroy() {
	if a == nil {
		return
	}
	a.buf = nil
	a.length = 0
	a.destroyed = true
}

// Count returns the number of live elements.
func (a *Array[T]) Count() int {
	if a == nil || a.destroyed {
		return 0
	}
	return a.length
}

// Cap returns the number of elements the current buffer can hold.
func (a *Array[T]) Cap() int {
	if a == nil || a.destroyed {
		return 0
	}
	return len(a.buf)
}

// ItemSize returns the size of one element in bytes. It never changes.
func (a *Array[T]) ItemSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Limit returns the capacity bound: the configured maximum capacity, lowered
// so that a full buffer stays within MaxBytes.
func (a *Array[T]) Limit() int {
	limit := MaxCapacity
	if a != nil && a.opts.maxCapacity > 0 {
		limit = a.opts.maxCapacity
	}
	if size := a.ItemSize(); size > 1 {
		limit = min(limit, int(MaxBytes/size))
	}
	return limit
}

// Generation returns how many times the buffer has been reallocated.
func (a *Array[T]) Generation() uint64 {
	return a.generation
}

// Push appends item, doubling the capacity first if the array is full.
func (a *Array[T]) Push(item T) error {
	if err := a.check(); err != nil {
		return err
	}

	if a.length == len(a.buf) {
		if err := a.grow(a.length); err != nil {
			return err
		}
	}

	a.buf[a.length] = item
	a.length++
	return nil
}

// Pop removes the last element and returns it. Its slot is zeroed.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if err := a.check(); err != nil {
		return zero, err
	}
	if a.length == 0 {
		return zero, ErrEmpty
	}

	a.length--
	item := a.buf[a.length]
	a.buf[a.length] = zero
	return item, nil
}

// InsertAt places item at index, shifting elements at index and above one
// slot to the right.
//
// Inserting past the current length is allowed: the length becomes index+1
// and the slots in between hold whatever the buffer held there. Callers must
// not read meaning into them.
func (a *Array[T]) InsertAt(item T, index int) error {
	if err := a.check(); err != nil {
		return err
	}
	if limit := a.Limit(); index < 0 || index >= limit {
		return fmt.Errorf("%w: insert at %d (limit %d)", ErrIndexOutOfRange, index, limit)
	}

	// Highest slot written by this call.
	slot := max(index, a.length)
	if slot >= len(a.buf) {
		if err := a.grow(slot); err != nil {
			return err
		}
	}

	if index < a.length {
		// copy handles the overlapping ranges.
		copy(a.buf[index+1:a.length+1], a.buf[index:a.length])
	}
	a.buf[index] = item
	a.length = max(index+1, a.length+1)
	return nil
}

// EraseAt removes the element at index, shifting later elements one slot to
// the left. The capacity is kept.
func (a *Array[T]) EraseAt(index int) error {
	if err := a.check(); err != nil {
		return err
	}
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: erase at %d (length %d)", ErrIndexOutOfRange, index, a.length)
	}

	if index != a.length-1 {
		copy(a.buf[index:a.length-1], a.buf[index+1:a.length])
	}
	// The last slot is now a duplicate.
	_, err := a.Pop()
	return err
}

// At returns the element at index.
func (a *Array[T]) At(index int) (T, error) {
	var zero T
	if err := a.checkIndex(index); err != nil {
		return zero, err
	}
	return a.buf[index], nil
}

// Set overwrites the element at index.
func (a *Array[T]) Set(index int, item T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.buf[index] = item
	return nil
}

// Ref returns the address of the element at index.
// The pointer is only valid until the next Push or InsertAt that grows the
// array; compare Generation before and after to tell.
func (a *Array[T]) Ref(index int) (*T, error) {
	if err := a.checkIndex(index); err != nil {
		return nil, err
	}
	return &a.buf[index], nil
}

func (a *Array[T]) check() error {
	if a == nil || a.destroyed {
		return ErrDestroyed
	}
	return nil
}

func (a *Array[T]) checkIndex(index int) error {
	if err := a.check(); err != nil {
		return err
	}
	if index < 0 || index >= a.length {
		return fmt.Errorf("%w: index %d (length %d)", ErrIndexOutOfRange, index, a.length)
	}
	return nil
}

// grow reallocates so that slot fits in the buffer.
func (a *Array[T]) grow(slot int) error {
	oldCap := len(a.buf)
	limit := a.Limit()
	newCap, ok := nextCapacity(oldCap, slot, limit)
	if !ok {
		return fmt.Errorf("%w: slot %d exceeds limit %d", ErrAllocationFailed, slot, limit)
	}
	if err := a.realloc(newCap); err != nil {
		return err
	}
	if a.opts.onGrow != nil {
		a.opts.onGrow(oldCap, newCap)
	}
	return nil
}

// realloc moves the live elements into a fresh buffer of newCap slots.
// Running out of memory is fatal in Go, so callers keep newCap within Limit;
// the recover only covers make rejecting the length.
func (a *Array[T]) realloc(newCap int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: capacity %d: %v", ErrAllocationFailed, newCap, r)
		}
	}()

	buf := make([]T, newCap)
	copy(buf, a.buf[:a.length])
	a.buf = buf
	a.generation++
	return nil
}

// nextCapacity returns the smallest capacity reachable from capacity that
// holds slot. The multiplier grows by two each round (x2, x4, x6, ...), so a
// plain append doubles and a far index is reached in a handful of rounds.
// The result is clamped to limit; ok is false when even limit is too small.
func nextCapacity(capacity, slot, limit int) (newCap int, ok bool) {
	newCap = max(capacity, DefaultCapacity)
	for step := 0; slot >= newCap; {
		if newCap >= limit {
			return 0, false
		}
		step += DefaultGrowthFactor
		if newCap > limit/step {
			newCap = limit
		} else {
			newCap *= step
		}
	}
	return newCap, true
}
