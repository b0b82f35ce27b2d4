package memdb

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/circlist/internal/ringbuffer"
	"github.com/hedisam/circlist/internal/store"
)

// RingStore serialises access to a single ring buffer.
// Every method holds mu for the whole ring buffer call.
type RingStore struct {
	rb        *ringbuffer.RingBuffer
	mu        sync.Mutex
	occupancy prometheus.Gauge
	name      string
}

func NewRingStore(opts ...Option) (*RingStore, error) {
	cfg := newConfig(opts)

	rb, err := ringbuffer.New(cfg.ringCapacity, cfg.ringOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not allocate ring buffer: %w", err)
	}

	return &RingStore{
		rb:        rb,
		occupancy: ringOccupancy.WithLabelValues(cfg.name),
		name:      cfg.name,
	}, nil
}

// Push adds v to the ring. ringbuffer.ErrFull is returned as is when there's no room.
func (s *RingStore) Push(_ context.Context, v uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.rb.Add(v)
	if err != nil {
		if errors.Is(err, ringbuffer.ErrFull) {
			ringRejectedAdds.Inc()
		}
		return err
	}

	ringAdds.Inc()
	s.occupancy.Inc()
	return nil
}

// Pop removes the oldest value. ringbuffer.ErrEmpty is returned as is when there's nothing to pop.
func (s *RingStore) Pop(_ context.Context) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.rb.Remove()
	if err != nil {
		if errors.Is(err, ringbuffer.ErrEmpty) {
			ringRejectedRemoves.Inc()
		}
		return 0, err
	}

	ringRemoves.Inc()
	s.occupancy.Dec()
	return v, nil
}

// Snapshot copies the ring contents, oldest first.
func (s *RingStore) Snapshot(_ context.Context) (*store.RingSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.rb.Dump()
	if err != nil {
		return nil, fmt.Errorf("dump ring buffer: %w", err)
	}

	return &store.RingSnapshot{
		Capacity: s.rb.Capacity(),
		Size:     len(values),
		State:    s.rb.State().String(),
		Values:   values,
	}, nil
}

// Close destroys the ring buffer and drops its occupancy series.
// Any later call, including a second Close, fails with ringbuffer.ErrNullArgument.
func (s *RingStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.rb.Destroy()
	if err != nil {
		return fmt.Errorf("destroy ring buffer: %w", err)
	}
	ringOccupancy.DeleteLabelValues(s.name)
	return nil
}
