package linkedlist

import (
	"errors"
	"fmt"
	"math"
)

const (
	// NotFound is the index reported by a failed Search.
	NotFound = math.MaxInt
)

var (
	// ErrNullArgument is returned when called on a nil list.
	ErrNullArgument = errors.New("list is nil")
	// ErrMemory is returned when a node could not be allocated.
	ErrMemory = errors.New("could not allocate list node")
	// ErrIndex is returned when an index is out of range for the current size.
	ErrIndex = errors.New("index out of range")
	// ErrDataNotFound is returned when no node holds the searched value.
	ErrDataNotFound = errors.New("data not found")
)

// Node is a single list element. A node owns its successor; prev is a lookup only.
type Node struct {
	Value uint32
	prev  *Node
	next  *Node
}

// Next returns the following node or nil for the last one.
func (n *Node) Next() *Node {
	return n.next
}

// Prev returns the preceding node or nil for the first one.
func (n *Node) Prev() *Node {
	return n.prev
}

// NodeAllocator returns a new unlinked node holding v.
type NodeAllocator func(v uint32) (*Node, error)

type Option func(*List)

// WithNodeAllocator replaces the default node allocation.
func WithNodeAllocator(alloc NodeAllocator) Option {
	return func(l *List) {
		if alloc != nil {
			l.alloc = alloc
		}
	}
}

// List is a doubly linked list of uint32 values addressed by zero based index.
// The zero value is an empty list. It is not safe for concurrent use.
type List struct {
	head  *Node
	alloc NodeAllocator
}

func New(opts ...Option) *List {
	l := &List{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Head returns the first node or nil if the list is empty.
func (l *List) Head() *Node {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List) newNode(v uint32) (*Node, error) {
	if l.alloc == nil {
		return &Node{Value: v}, nil
	}

	n, err := l.alloc(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMemory, err)
	}
	if n == nil {
		return nil, ErrMemory
	}
	n.Value, n.prev, n.next = v, nil, nil
	return n, nil
}

// Insert adds value so that it ends up at position index.
// Valid indexes are [0, Size()], where Size() appends.
func (l *List) Insert(value uint32, index int) error {
	if l == nil {
		return ErrNullArgument
	}
	if index < 0 {
		return fmt.Errorf("%w: cannot insert at %d", ErrIndex, index)
	}

	if index == 0 {
		n, err := l.newNode(value)
		if err != nil {
			return err
		}
		n.next = l.head
		if l.head != nil {
			l.head.prev = n
		}
		l.head = n
		return nil
	}

	// find the node at index-1
	prev := l.head
	for i := 0; prev != nil && i < index-1; i++ {
		prev = prev.next
	}
	if prev == nil {
		return fmt.Errorf("%w: cannot insert at %d", ErrIndex, index)
	}

	n, err := l.newNode(value)
	if err != nil {
		return err
	}
	n.prev = prev
	n.next = prev.next
	if prev.next != nil {
		prev.next.prev = n
	}
	prev.next = n
	return nil
}

// Remove unlinks the node at index. Valid indexes are [0, Size()-1].
func (l *List) Remove(index int) error {
	if l == nil {
		return ErrNullArgument
	}
	if l.head == nil {
		return fmt.Errorf("%w: cannot remove from an empty list", ErrIndex)
	}
	if index < 0 {
		return fmt.Errorf("%w: cannot remove at %d", ErrIndex, index)
	}

	if index == 0 {
		old := l.head
		l.head = old.next
		if l.head != nil {
			l.head.prev = nil
		}
		old.next = nil
		return nil
	}

	target := l.head
	for i := 0; target != nil && i < index; i++ {
		target = target.next
	}
	if target == nil {
		return fmt.Errorf("%w: cannot remove at %d", ErrIndex, index)
	}

	target.prev.next = target.next
	if target.next != nil {
		target.next.prev = target.prev
	}
	target.prev, target.next = nil, nil
	return nil
}

// Search returns the position of the first node holding value.
// NotFound is returned alongside any error.
func (l *List) Search(value uint32) (int, error) {
	if l == nil {
		return NotFound, ErrNullArgument
	}

	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.Value == value {
			return i, nil
		}
		i++
	}
	return NotFound, ErrDataNotFound
}

// Size counts the nodes reachable from the head. A nil list has size zero.
func (l *List) Size() int {
	if l == nil {
		return 0
	}

	size := 0
	for n := l.head; n != nil; n = n.next {
		size++
	}
	return size
}

// Values returns the payloads in list order. An empty or nil list yields an empty, non nil slice.
func (l *List) Values() []uint32 {
	out := make([]uint32, 0)
	for n := l.Head(); n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// Destroy drops every node and leaves the list empty.
func (l *List) Destroy() error {
	if l == nil {
		return ErrNullArgument
	}

	n := l.head
	for n != nil {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head = nil
	return nil
}
