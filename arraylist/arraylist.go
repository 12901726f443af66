// Package arraylist provides a growable array of an arbitrary element type with indexed insertion
// and removal and an in-place quicksort.
//
// A List is not safe for concurrent use. Callers that share a List between goroutines must
// synchronize access themselves.
package arraylist

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCapacity is the capacity of a list created by New.
const DefaultCapacity = 10

var (
	// ErrInvalidCapacity is returned by WithCapacity for a negative capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrOutOfRange is matched by every *IndexError.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty is returned by First and Last on an empty list.
	ErrEmpty = errors.New("empty list")
)

// IndexError reports an index that is outside the valid range of an operation.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", err.Op, err.Index, err.Len)
}

func (err *IndexError) Unwrap() error { return ErrOutOfRange }

// List is a sequence of elements backed by a single buffer. The buffer doubles in size whenever an
// element is added to a full list and is never shrunk.
//
// The zero value is an empty list with capacity 0.
type List[T any] struct {
	data []T // len(data) is the capacity, slots at and after n are always zero
	n    int
}

// New returns an empty list with capacity DefaultCapacity.
func New[T any]() *List[T] {
	return &List[T]{data: make([]T, DefaultCapacity)}
}

// WithCapacity returns an empty list with the given capacity, which must not be negative.
func WithCapacity[T any](capacity int) (*List[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &List[T]{data: make([]T, capacity)}, nil
}

// Of returns a list holding a copy of elems.
func Of[T any](elems ...T) *List[T] {
	l := &List[T]{data: make([]T, max(len(elems), DefaultCapacity))}
	l.n = copy(l.data, elems)
	return l
}

// Add appends v to the end of the list.
func (l *List[T]) Add(v T) {
	l.growIfFull()
	l.data[l.n] = v
	l.n++
}

// Insert places v at index i and shifts all elements at and after i one position to the right. An
// index equal to Len appends.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > l.n {
		return &IndexError{"insert", i, l.n}
	}
	l.growIfFull()
	copy(l.data[i+1:l.n+1], l.data[i:l.n])
	l.data[i] = v
	l.n++
	return nil
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if err := l.check("get", i); err != nil {
		var zero T
		return zero, err
	}
	return l.data[i], nil
}

// Set replaces the element at index i and returns the previous one.
func (l *List[T]) Set(i int, v T) (T, error) {
	if err := l.check("set", i); err != nil {
		var zero T
		return zero, err
	}
	old := l.data[i]
	l.data[i] = v
	return old, nil
}

// First returns the first element, or ErrEmpty if there is none.
func (l *List[T]) First() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.data[0], nil
}

// Last returns the last element, or ErrEmpty if there is none.
func (l *List[T]) Last() (T, error) {
	if l.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.data[l.n-1], nil
}

// RemoveAt removes and returns the element at index i. All elements after i move one position to
// the left.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if err := l.check("remove", i); err != nil {
		var zero T
		return zero, err
	}
	v := l.data[i]
	copy(l.data[i:l.n-1], l.data[i+1:l.n])
	var zero T
	l.data[l.n-1] = zero
	l.n--
	return v, nil
}

// Clear removes all elements. The capacity stays the same.
func (l *List[T]) Clear() {
	clear(l.data[:l.n])
	l.n = 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// Cap returns the capacity of the backing buffer.
func (l *List[T]) Cap() int { return len(l.data) }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.n == 0 }

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	ret := make([]T, l.n)
	copy(ret, l.data[:l.n])
	return ret
}

// String formats the list as a bracketed, comma separated sequence, e.g. "[a, b, c]". Both List
// and *List format this way.
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.data[:l.n] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[T]) check(op string, i int) error {
	if i < 0 || i >= l.n {
		return &IndexError{op, i, l.n}
	}
	return nil
}

func (l *List[T]) growIfFull() {
	if l.n < len(l.data) {
		return
	}
	data := make([]T, max(2*len(l.data), 1))
	copy(data, l.data)
	l.data = data
}
