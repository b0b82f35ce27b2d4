package ringbuffer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// MaxCapacity is the largest capacity a RingBuffer can be allocated with.
	MaxCapacity = 1024
)

var (
	// ErrNullArgument is returned when the buffer, or its storage, is absent.
	ErrNullArgument = errors.New("ring buffer is nil")
	// ErrConfig is returned by New for a capacity outside (0, MaxCapacity].
	ErrConfig = errors.New("invalid ring buffer config")
	// ErrMemory is returned by New when the backing storage could not be allocated.
	ErrMemory = errors.New("could not allocate ring buffer storage")
	// ErrFull is returned by Add when there's no free slot left.
	ErrFull = errors.New("ring buffer is full")
	// ErrEmpty is returned by Remove when there's nothing to read.
	ErrEmpty = errors.New("ring buffer is empty")
)

// State describes how occupied the buffer is.
type State int

const (
	Empty State = iota
	Partial
	Full
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Partial:
		return "partial"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Allocator returns storage for n values.
type Allocator func(n int) ([]uint32, error)

type config struct {
	alloc Allocator
}

type Option func(*config)

// WithAllocator replaces the default make based storage allocation.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) {
		if alloc != nil {
			c.alloc = alloc
		}
	}
}

// RingBuffer is a fixed capacity FIFO of uint32 values. It is not safe for concurrent use.
type RingBuffer struct {
	buf   []uint32
	head  int // next write
	tail  int // next read
	count int
	state State
}

// New allocates an empty RingBuffer that holds up to capacity values.
func New(capacity int, opts ...Option) (*RingBuffer, error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: capacity %d is out of range (0, %d]", ErrConfig, capacity, MaxCapacity)
	}

	cfg := &config{alloc: makeStorage}
	for _, opt := range opts {
		opt(cfg)
	}

	buf, err := cfg.alloc(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMemory, err)
	}
	if len(buf) < capacity {
		return nil, fmt.Errorf("%w: got %d slots, want %d", ErrMemory, len(buf), capacity)
	}

	return &RingBuffer{
		buf:   buf[:capacity:capacity],
		state: Empty,
	}, nil
}

func makeStorage(n int) ([]uint32, error) {
	return make([]uint32, n), nil
}

// IsFull reports whether the buffer has no free slot.
// A nil or destroyed buffer returns ErrNullArgument.
func (r *RingBuffer) IsFull() (bool, error) {
	if r == nil || r.buf == nil {
		return false, ErrNullArgument
	}
	return r.state == Full, nil
}

// IsEmpty reports whether the buffer holds no value.
func (r *RingBuffer) IsEmpty() (bool, error) {
	if r == nil || r.buf == nil {
		return false, ErrNullArgument
	}
	return r.state == Empty, nil
}

// State returns the current occupancy state. A nil buffer is reported as Empty.
func (r *RingBuffer) State() State {
	if r == nil {
		return Empty
	}
	return r.state
}

// Capacity returns the number of slots, or zero once destroyed.
func (r *RingBuffer) Capacity() int {
	if r == nil {
		return 0
	}
	return len(r.buf)
}

// Size returns the number of values currently stored.
func (r *RingBuffer) Size() (int, error) {
	if r == nil || r.buf == nil {
		return 0, ErrNullArgument
	}
	return r.count, nil
}

// Add writes v at the head. A full buffer is left untouched and ErrFull is returned.
func (r *RingBuffer) Add(v uint32) error {
	if r == nil || r.buf == nil {
		return ErrNullArgument
	}
	if r.state == Full {
		return ErrFull
	}

	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	r.count++
	r.updateState()
	return nil
}

// Remove reads and returns the oldest value. An empty buffer returns ErrEmpty.
func (r *RingBuffer) Remove() (uint32, error) {
	if r == nil || r.buf == nil {
		return 0, ErrNullArgument
	}
	if r.state == Empty {
		return 0, ErrEmpty
	}

	v := r.buf[r.tail]
	r.buf[r.tail] = 0
	r.tail = (r.tail + 1) % len(r.buf)
	r.count--
	r.updateState()
	return v, nil
}

func (r *RingBuffer) updateState() {
	switch r.count {
	case 0:
		r.state = Empty
	case len(r.buf):
		r.state = Full
	default:
		r.state = Partial
	}
}

// Dump returns a copy of the stored values, oldest first.
func (r *RingBuffer) Dump() ([]uint32, error) {
	if r == nil || r.buf == nil {
		return nil, ErrNullArgument
	}

	out := make([]uint32, 0, r.count)
	for i := range r.count {
		out = append(out, r.buf[(r.tail+i)%len(r.buf)])
	}
	return out, nil
}

// WriteTo prints a banner followed by one stored value per line, oldest first.
// The output is meant for debugging and is not a stable format.
func (r *RingBuffer) WriteTo(w io.Writer) (int64, error) {
	values, err := r.Dump()
	if err != nil {
		return 0, err
	}

	line := make([]byte, 0, 64)
	line = append(line, "Circular buffer from tail to head:\n"...)
	var total int64
	for _, v := range values {
		line = strconv.AppendUint(line, uint64(v), 10)
		line = append(line, '\n')
		if len(line) < 512 {
			continue
		}
		n, err := w.Write(line)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write dump: %w", err)
		}
		line = line[:0]
	}

	n, err := w.Write(line)
	total += int64(n)
	if err != nil {
		return total, fmt.Errorf("write dump: %w", err)
	}
	return total, nil
}

// Destroy releases the backing storage. Any further call on r fails with ErrNullArgument.
// Destroying an already destroyed buffer returns ErrNullArgument.
func (r *RingBuffer) Destroy() error {
	if r == nil {
		return ErrNullArgument
	}

	hadStorage := r.buf != nil
	r.buf = nil
	r.head, r.tail, r.count = 0, 0, 0
	r.state = Empty
	if !hadStorage {
		return ErrNullArgument
	}
	return nil
}
