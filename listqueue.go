package listqueue

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/timzifer/listqueue/internal/chain"
	"github.com/timzifer/listqueue/internal/telemetry"
)

// Metrics counts the operations of one or more queues. See WithMetrics.
type Metrics = telemetry.Metrics

// Stats is a snapshot of Metrics.
type Stats = telemetry.Stats

// NewMetrics returns an empty metrics set.
func NewMetrics() *Metrics {
	return telemetry.NewMetrics()
}

// ListQueue is a singly-linked sequence of strings with O(1) insertion at both
// ends and O(1) removal at the head.
//
// A nil *ListQueue behaves as an absent instance: Size reports 0, Reverse and
// Sort do nothing, and every other operation fails with ErrInvalidInstance.
//
// ListQueue is not safe for concurrent use. Callers sharing a queue between
// goroutines must guard every call with their own lock.
type ListQueue struct {
	head *chain.Element
	// tail aliases the last element reachable from head.
	tail      *chain.Element
	size      int
	maxLen    int
	destroyed bool

	logger  logrus.FieldLogger
	metrics *telemetry.Metrics
}

// New creates an empty queue. Values passed via WithInitial are appended in
// order; those beyond the WithMaxLen budget are dropped.
func New(options ...Option) *ListQueue {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	q := &ListQueue{
		maxLen:  opts.maxLen,
		logger:  opts.logger,
		metrics: opts.metrics,
	}
	for _, v := range opts.initial {
		if err := q.PushTail(v); err != nil {
			break
		}
	}
	return q
}

// Size returns the number of elements, or 0 for a nil or destroyed queue.
func (q *ListQueue) Size() int {
	if !q.valid() {
		return 0
	}
	return q.size
}

// InsertHead prepends value and reports whether it was stored.
func (q *ListQueue) InsertHead(value string) bool {
	return q.PushHead(value) == nil
}

// InsertTail appends value and reports whether it was stored.
func (q *ListQueue) InsertTail(value string) bool {
	return q.PushTail(value) == nil
}

// PushHead prepends value. On error the queue is left unchanged.
func (q *ListQueue) PushHead(value string) error {
	if err := q.reserve("insert_head"); err != nil {
		return err
	}

	e := chain.NewElement(value).Link(q.head)
	q.head = e
	if q.tail == nil {
		q.tail = e
	}
	q.size++
	q.metrics.Insert()
	return nil
}

// PushTail appends value. On error the queue is left unchanged.
func (q *ListQueue) PushTail(value string) error {
	if err := q.reserve("insert_tail"); err != nil {
		return err
	}

	e := chain.NewElement(value)
	if q.tail == nil {
		q.head = e
	} else {
		q.tail.Link(e)
	}
	q.tail = e
	q.size++
	q.metrics.Insert()
	return nil
}

// RemoveHead detaches the head element and reports whether one was removed.
//
// If dst is non-nil, up to len(dst)-1 bytes of the removed value are copied
// into it followed by a 0 byte, and the number of copied bytes is returned.
// Longer values are truncated silently. A zero-length dst receives nothing.
func (q *ListQueue) RemoveHead(dst []byte) (n int, ok bool) {
	value, err := q.PopHead()
	if err != nil {
		return 0, false
	}
	if len(dst) == 0 {
		return 0, true
	}

	n = copy(dst[:len(dst)-1], value)
	dst[n] = 0
	return n, true
}

// PopHead detaches the head element and returns its value.
func (q *ListQueue) PopHead() (string, error) {
	if err := q.check("remove_head"); err != nil {
		return "", err
	}
	if q.size == 0 {
		return "", q.fail("remove_head", errors.WithStack(ErrEmpty))
	}

	head := q.head
	q.head = head.Unlink()
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	q.metrics.Remove()
	return head.Value, nil
}

// PeekHead returns the value at the head without removing it.
func (q *ListQueue) PeekHead() (string, bool) {
	if !q.valid() || q.head == nil {
		return "", false
	}
	return q.head.Value, true
}

// PeekTail returns the value at the tail without removing it.
func (q *ListQueue) PeekTail() (string, bool) {
	if !q.valid() || q.tail == nil {
		return "", false
	}
	return q.tail.Value, true
}

// Values returns a copy of the stored values in head-to-tail order.
func (q *ListQueue) Values() []string {
	if !q.valid() || q.size == 0 {
		return nil
	}

	result := make([]string, 0, q.size)
	for e := q.head; e != nil; e = e.Next() {
		result = append(result, e.Value)
	}
	return result
}

// Reverse reverses the element order in place by relinking the existing
// elements.
func (q *ListQueue) Reverse() {
	if !q.valid() || q.size < 2 {
		return
	}

	q.head, q.tail = chain.Reverse(q.head), q.head
	q.metrics.Reverse()
}

// Sort orders the elements ascending by byte-wise string comparison. Equal
// values keep their relative order. No element is allocated or released.
func (q *ListQueue) Sort() {
	if !q.valid() || q.size < 2 {
		return
	}

	finish := q.metrics.TraceSort()
	defer finish()

	q.head = chain.Sort(q.head)
	q.tail = chain.Last(q.head)
}

// Destroy releases every element. Afterwards the queue reports a size of 0
// and rejects further operations with ErrInvalidInstance.
func (q *ListQueue) Destroy() {
	if !q.valid() {
		return
	}

	for e := q.head; e != nil; {
		e = e.Unlink()
	}
	q.head = nil
	q.tail = nil
	q.size = 0
	q.destroyed = true
}

func (q *ListQueue) valid() bool {
	return q != nil && !q.destroyed
}

func (q *ListQueue) check(op string) error {
	if q == nil {
		return errors.Wrapf(ErrInvalidInstance, "%s on nil queue", op)
	}
	if q.destroyed {
		return q.fail(op, errors.Wrapf(ErrInvalidInstance, "%s on destroyed queue", op))
	}
	return nil
}

func (q *ListQueue) reserve(op string) error {
	if err := q.check(op); err != nil {
		return err
	}
	if q.maxLen > 0 && q.size >= q.maxLen {
		return q.fail(op, errors.Wrapf(ErrExhausted, "%s with %d of %d elements", op, q.size, q.maxLen))
	}
	return nil
}

func (q *ListQueue) fail(op string, err error) error {
	q.metrics.Fail()
	q.logger.WithFields(logrus.Fields{
		"op":    op,
		"size":  q.size,
		"error": err,
	}).Debug("listqueue operation failed")
	return err
}
