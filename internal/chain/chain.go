package chain

// Element is one link of a singly-linked chain of strings.
type Element struct {
	Value string
	next  *Element
}

// NewElement returns an unlinked element holding value.
func NewElement(value string) *Element {
	return &Element{Value: value}
}

// Next returns the element following e, or nil if e is last.
func (e *Element) Next() *Element {
	return e.next
}

// Link makes next the successor of e and returns e.
func (e *Element) Link(next *Element) *Element {
	e.next = next
	return e
}

// Unlink detaches e from its successor and returns the former successor.
func (e *Element) Unlink() *Element {
	next := e.next
	e.next = nil
	return next
}

// Last walks from head to the final element. It returns nil for an empty chain.
func Last(head *Element) *Element {
	if head == nil {
		return nil
	}
	for head.next != nil {
		head = head.next
	}
	return head
}

// Len counts the elements reachable from head.
func Len(head *Element) int {
	n := 0
	for e := head; e != nil; e = e.next {
		n++
	}
	return n
}

// Reverse relinks the chain in place and returns the new head, which is the
// former last element. No element is created or dropped.
func Reverse(head *Element) *Element {
	var prev *Element
	for head != nil {
		next := head.next
		head.next = prev
		prev = head
		head = next
	}
	return prev
}

// Sort orders the chain ascending by byte-wise comparison of Value and
// returns the new head. Equal values keep their relative order.
func Sort(head *Element) *Element {
	if head == nil || head.next == nil {
		return head
	}

	left, right := split(head)
	return Merge(Sort(left), Sort(right))
}

// split cuts the chain after its midpoint. For odd lengths the left half is
// the longer one.
func split(head *Element) (left, right *Element) {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right = slow.next
	slow.next = nil
	return head, right
}

// Merge combines two ascending chains into one. On equal values the element
// from a is taken first.
func Merge(a, b *Element) *Element {
	var head *Element
	link := &head
	for a != nil && b != nil {
		if b.Value < a.Value {
			*link = b
			b = b.next
		} else {
			*link = a
			a = a.next
		}
		link = &(*link).next
	}

	if a != nil {
		*link = a
	} else {
		*link = b
	}
	return head
}
