package listqueue

import "github.com/pkg/errors"

var (
	// ErrInvalidInstance is returned for operations on a nil or destroyed queue.
	ErrInvalidInstance = errors.New("listqueue: invalid instance")
	// ErrEmpty is returned when removing from a queue without elements.
	ErrEmpty = errors.New("listqueue: queue is empty")
	// ErrExhausted is returned when an insert would exceed the element budget.
	ErrExhausted = errors.New("listqueue: element budget exhausted")
)
