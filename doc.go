// Package listqueue provides ListQueue, a singly-linked sequence of strings
// used as a queue with deque-like insertion.
//
// Values can be inserted at either end in constant time and removed from the
// head in constant time. Reverse relinks the existing elements in linear time
// and Sort orders them with a stable merge sort over the chain. Neither
// reordering operation allocates or releases elements.
//
// Failures are reported through return values. The bool-returning methods
// (InsertHead, InsertTail, RemoveHead) mirror the error-returning ones
// (PushHead, PushTail, PopHead), whose errors match ErrInvalidInstance,
// ErrEmpty or ErrExhausted via errors.Is. A failed operation leaves the queue
// unchanged.
//
// The queue is meant for a single owner. It performs no internal locking.
package listqueue
