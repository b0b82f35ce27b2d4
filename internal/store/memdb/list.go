package memdb

import (
	"context"
	"errors"
	"sync"

	"github.com/hedisam/circlist/internal/linkedlist"
	"github.com/hedisam/circlist/internal/store"
)

// ListStore serialises access to a single linked list.
type ListStore struct {
	list *linkedlist.List
	mu   sync.RWMutex
}

func NewListStore(opts ...Option) *ListStore {
	cfg := newConfig(opts)

	return &ListStore{
		list: linkedlist.New(cfg.listOpts...),
	}
}

// Insert places v at index. Errors from the list are returned unwrapped so callers can match them.
func (s *ListStore) Insert(_ context.Context, v uint32, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.list.Insert(v, index)
	if err != nil {
		if errors.Is(err, linkedlist.ErrIndex) {
			listIndexErrors.Inc()
		}
		return err
	}

	listInserts.Inc()
	return nil
}

// Delete removes the node at index.
func (s *ListStore) Delete(_ context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.list.Remove(index)
	if err != nil {
		if errors.Is(err, linkedlist.ErrIndex) {
			listIndexErrors.Inc()
		}
		return err
	}

	listRemoves.Inc()
	return nil
}

// Find returns the index of the first node holding v.
func (s *ListStore) Find(_ context.Context, v uint32) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list.Search(v)
}

// Snapshot copies the list payloads in order.
func (s *ListStore) Snapshot(_ context.Context) (*store.ListSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := s.list.Values()
	return &store.ListSnapshot{
		Size:   len(values),
		Values: values,
	}, nil
}

// Clear drops every node.
func (s *ListStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list.Destroy()
}
