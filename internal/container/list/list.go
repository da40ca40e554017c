// Package list implements a singly linked list of references.
//
// A list is never empty while it exists: New creates it with a head node and
// PopFront/PopBack refuse to remove the last remaining node, which serves as
// the list's anchor. Destroy is the only way to drop every node; afterwards
// the list is absent and all calls report ErrNoList.
//
// Nodes hold a *T and never own the value behind it. Find and InsertAfter
// compare those pointers by identity, not by value.
//
// A List is not safe for concurrent use.
package list

// Releaser is implemented by data that wants to be told when a destructive
// pop or Destroy drops it.
type Releaser interface {
	Release()
}

// Node is one element of a List.
type Node[T any] struct {
	Data *T
	next *Node[T]
}

// Next returns the following node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Option configures a List at creation.
type Option func(*options)

type options struct {
	maxLen int
}

// WithMaxLen bounds the number of nodes. Pushes past the bound fail with
// ErrAllocationFailed. Zero or negative means unbounded.
func WithMaxLen(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLen = n
		}
	}
}

// List is a singly linked list anchored at its head node.
type List[T any] struct {
	head   *Node[T]
	length int
	opts   options
}

// New creates a list whose single node holds data.
func New[T any](data *T, opts ...Option) *List[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &List[T]{
		head:   &Node[T]{Data: data},
		length: 1,
		opts:   o,
	}
}

// Destroy drops every node. With freeData set, each node's data is released
// as well. The list is absent afterwards.
func (l *List[T]) Destroy(freeData bool) {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		release(n, freeData)
		n = next
	}
	l.head = nil
	l.length = 0
}

// Len returns the number of nodes; zero only once the list is destroyed.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Front returns the head node.
func (l *List[T]) Front() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// Back returns the tail node. It walks the whole list.
func (l *List[T]) Back() *Node[T] {
	if l == nil || l.head == nil {
		return nil
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}

// PushFront makes a new node holding data the head.
func (l *List[T]) PushFront(data *T) error {
	node, err := l.newNode(data)
	if err != nil {
		return err
	}
	node.next = l.head
	l.head = node
	l.length++
	return nil
}

// PopFront removes the head and promotes its successor.
// It fails with ErrSoleNodeProtected when the head is the only node.
func (l *List[T]) PopFront(freeData bool) error {
	if err := l.check(); err != nil {
		return err
	}
	if l.head.next == nil {
		return ErrSoleNodeProtected
	}

	old := l.head
	l.head = old.next
	release(old, freeData)
	l.length--
	return nil
}

// PushBack appends a node holding data at the tail.
func (l *List[T]) PushBack(data *T) error {
	node, err := l.newNode(data)
	if err != nil {
		return err
	}
	l.Back().next = node
	l.length++
	return nil
}

// PopBack removes the tail node.
// It fails with ErrSoleNodeProtected when the head is the only node.
func (l *List[T]) PopBack(freeData bool) error {
	if err := l.check(); err != nil {
		return err
	}
	if l.head.next == nil {
		return ErrSoleNodeProtected
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	release(prev.next, freeData)
	prev.next = nil
	l.length--
	return nil
}

// Find returns the first node whose Data is the same pointer as data,
// or nil if there is none.
func (l *List[T]) Find(data *T) *Node[T] {
	if l == nil {
		return nil
	}
	n := l.head
	for n != nil && n.Data != data {
		n = n.next
	}
	return n
}

// InsertAfter places a node holding insert right after the node holding find.
func (l *List[T]) InsertAfter(insert, find *T) error {
	if err := l.check(); err != nil {
		return err
	}
	target := l.Find(find)
	if target == nil {
		return ErrNotFound
	}

	node, err := l.newNode(insert)
	if err != nil {
		return err
	}
	node.next = target.next
	target.next = node
	l.length++
	return nil
}

func (l *List[T]) check() error {
	if l == nil || l.head == nil {
		return ErrNoList
	}
	return nil
}

func (l *List[T]) newNode(data *T) (*Node[T], error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if l.opts.maxLen > 0 && l.length >= l.opts.maxLen {
		return nil, ErrAllocationFailed
	}
	return &Node[T]{Data: data}, nil
}

// release unlinks n and, when asked, lets its data clean up.
func release[T any](n *Node[T], freeData bool) {
	if freeData && n.Data != nil {
		if r, ok := any(n.Data).(Releaser); ok {
			r.Release()
		}
	}
	n.Data = nil
	n.next = nil
}
