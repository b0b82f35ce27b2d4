package memdb_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/circlist/internal/linkedlist"
	"github.com/hedisam/circlist/internal/ringbuffer"
	"github.com/hedisam/circlist/internal/store/memdb"
)

func TestNewRingStore(t *testing.T) {
	tests := map[string]struct {
		opts        []memdb.Option
		capacity    int
		expectedErr error
	}{
		"default capacity": {
			capacity: memdb.DefaultRingCapacity,
		},
		"custom capacity": {
			opts:     []memdb.Option{memdb.WithCapacity(16)},
			capacity: 16,
		},
		"invalid capacity": {
			opts:        []memdb.Option{memdb.WithCapacity(ringbuffer.MaxCapacity + 1)},
			expectedErr: ringbuffer.ErrConfig,
		},
		"allocation failure": {
			opts: []memdb.Option{memdb.WithRingOptions(ringbuffer.WithAllocator(func(int) ([]uint32, error) {
				return nil, errors.New("no memory")
			}))},
			expectedErr: ringbuffer.ErrMemory,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := memdb.NewRingStore(test.opts...)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)

			snapshot, err := s.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Equal(t, test.capacity, snapshot.Capacity)
			assert.Equal(t, "empty", snapshot.State)
		})
	}
}

func TestRingStore(t *testing.T) {
	ctx := context.Background()
	s, err := memdb.NewRingStore(memdb.WithCapacity(2))
	require.NoError(t, err)

	_, err = s.Pop(ctx)
	require.ErrorIs(t, err, ringbuffer.ErrEmpty)

	require.NoError(t, s.Push(ctx, 1))
	require.NoError(t, s.Push(ctx, 2))
	require.ErrorIs(t, s.Push(ctx, 3), ringbuffer.ErrFull)

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Size)
	assert.Equal(t, "full", snapshot.State)
	assert.Equal(t, []uint32{1, 2}, snapshot.Values)

	v, err := s.Pop(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)

	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Close(), ringbuffer.ErrNullArgument)
	require.ErrorIs(t, s.Push(ctx, 4), ringbuffer.ErrNullArgument)
	_, err = s.Snapshot(ctx)
	require.ErrorIs(t, err, ringbuffer.ErrNullArgument)
}

func TestRingStoreConcurrentAccess(t *testing.T) {
	const (
		capacity  = 32
		workers   = 8
		perWorker = 100
	)
	ctx := context.Background()
	s, err := memdb.NewRingStore(memdb.WithCapacity(capacity))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				if i%2 == 0 {
					_ = s.Push(ctx, uint32(w*perWorker+i))
				} else {
					_, _ = s.Pop(ctx)
				}
			}
		}()
	}
	wg.Wait()

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, snapshot.Size, capacity)
	assert.Len(t, snapshot.Values, snapshot.Size)
}

func TestListStore(t *testing.T) {
	ctx := context.Background()
	s := memdb.NewListStore()

	require.NoError(t, s.Insert(ctx, 17, 0))
	require.NoError(t, s.Insert(ctx, 100, 1))
	require.NoError(t, s.Insert(ctx, 117, 0))
	require.NoError(t, s.Insert(ctx, 1, 3))
	require.ErrorIs(t, s.Insert(ctx, 9, 9), linkedlist.ErrIndex)

	idx, err := s.Find(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = s.Find(ctx, 52)
	require.ErrorIs(t, err, linkedlist.ErrDataNotFound)
	assert.Equal(t, linkedlist.NotFound, idx)

	require.NoError(t, s.Delete(ctx, 0))
	require.NoError(t, s.Delete(ctx, 1))
	require.ErrorIs(t, s.Delete(ctx, 2), linkedlist.ErrIndex)

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snapshot.Size)
	assert.Equal(t, []uint32{17, 1}, snapshot.Values)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	snapshot, err = s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, snapshot.Size)
}
