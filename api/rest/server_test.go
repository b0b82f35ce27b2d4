package rest_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restapi "github.com/hedisam/circlist/api/rest"
	"github.com/hedisam/circlist/api/rest/mocks"
	"github.com/hedisam/circlist/internal/linkedlist"
	"github.com/hedisam/circlist/internal/ringbuffer"
	"github.com/hedisam/circlist/internal/store"
)

//go:generate moq -out mocks/ring_store.go -pkg mocks -skip-ensure . RingStore
//go:generate moq -out mocks/list_store.go -pkg mocks -skip-ensure . ListStore

func TestAddToRing(t *testing.T) {
	tests := map[string]struct {
		req                *restapi.AddToRingRequest
		storeErr           error
		expectedStoreCalls int
		expectedResp       *restapi.AddToRingResponse
		expectedErr        *restapi.Err
	}{
		"success": {
			req:                &restapi.AddToRingRequest{Value: 42},
			expectedStoreCalls: 1,
			expectedResp:       &restapi.AddToRingResponse{Ok: true},
		},
		"ring full": {
			req:                &restapi.AddToRingRequest{Value: 42},
			storeErr:           ringbuffer.ErrFull,
			expectedStoreCalls: 1,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusConflict,
				Message:    "Ring buffer is full, remove a value and retry",
			},
		},
		"store failure": {
			req:                &restapi.AddToRingRequest{Value: 42},
			storeErr:           ringbuffer.ErrNullArgument,
			expectedStoreCalls: 1,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusInternalServerError,
				Message:    "Could not add value to ring buffer",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			storeMock := &mocks.RingStoreMock{
				PushFunc: func(ctx context.Context, v uint32) error {
					assert.Equal(t, test.req.Value, v)
					return test.storeErr
				},
			}
			s := restapi.NewServer(logrus.New(), storeMock, nil)
			resp, err := s.AddToRing(context.Background(), test.req)
			assert.Equal(t, test.expectedStoreCalls, len(storeMock.PushCalls()))
			if test.expectedErr != nil {
				requireErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestRemoveFromRing(t *testing.T) {
	tests := map[string]struct {
		value        uint32
		storeErr     error
		expectedResp *restapi.RemoveFromRingResponse
		expectedErr  *restapi.Err
	}{
		"success": {
			value:        7,
			expectedResp: &restapi.RemoveFromRingResponse{Value: 7},
		},
		"ring empty": {
			storeErr: ringbuffer.ErrEmpty,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusNotFound,
				Message:    "Ring buffer is empty",
			},
		},
		"store failure": {
			storeErr: errors.New("dummy error"),
			expectedErr: &restapi.Err{
				StatusCode: http.StatusInternalServerError,
				Message:    "Could not remove value from ring buffer",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			storeMock := &mocks.RingStoreMock{
				PopFunc: func(ctx context.Context) (uint32, error) {
					return test.value, test.storeErr
				},
			}
			s := restapi.NewServer(logrus.New(), storeMock, nil)
			resp, err := s.RemoveFromRing(context.Background(), &restapi.RemoveFromRingRequest{})
			assert.Equal(t, 1, len(storeMock.PopCalls()))
			if test.expectedErr != nil {
				requireErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestGetRing(t *testing.T) {
	storeMock := &mocks.RingStoreMock{
		SnapshotFunc: func(ctx context.Context) (*store.RingSnapshot, error) {
			return &store.RingSnapshot{
				Capacity: 4,
				Size:     2,
				State:    "partial",
				Values:   []uint32{3, 4},
			}, nil
		},
	}
	s := restapi.NewServer(logrus.New(), storeMock, nil)
	resp, err := s.GetRing(context.Background(), &restapi.GetRingRequest{})
	require.NoError(t, err)
	assert.Equal(t, &restapi.GetRingResponse{
		Capacity: 4,
		Size:     2,
		State:    "partial",
		Values:   []uint32{3, 4},
	}, resp)
}

func TestInsertIntoList(t *testing.T) {
	tests := map[string]struct {
		req          *restapi.InsertIntoListRequest
		storeErr     error
		expectedResp *restapi.InsertIntoListResponse
		expectedErr  *restapi.Err
	}{
		"success": {
			req:          &restapi.InsertIntoListRequest{Index: 1, Value: 100},
			expectedResp: &restapi.InsertIntoListResponse{Ok: true},
		},
		"index out of range": {
			req:      &restapi.InsertIntoListRequest{Index: 5, Value: 100},
			storeErr: linkedlist.ErrIndex,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Index 5 is out of range",
			},
		},
		"allocation failure": {
			req:      &restapi.InsertIntoListRequest{Index: 0, Value: 100},
			storeErr: linkedlist.ErrMemory,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusInternalServerError,
				Message:    "Could not insert value into list",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			storeMock := &mocks.ListStoreMock{
				InsertFunc: func(ctx context.Context, v uint32, index int) error {
					assert.Equal(t, test.req.Value, v)
					assert.Equal(t, test.req.Index, index)
					return test.storeErr
				},
			}
			s := restapi.NewServer(logrus.New(), nil, storeMock)
			resp, err := s.InsertIntoList(context.Background(), test.req)
			assert.Equal(t, 1, len(storeMock.InsertCalls()))
			if test.expectedErr != nil {
				requireErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestRemoveFromList(t *testing.T) {
	tests := map[string]struct {
		req          *restapi.RemoveFromListRequest
		storeErr     error
		expectedResp *restapi.RemoveFromListResponse
		expectedErr  *restapi.Err
	}{
		"success": {
			req:          &restapi.RemoveFromListRequest{Index: 0},
			expectedResp: &restapi.RemoveFromListResponse{Ok: true},
		},
		"index out of range": {
			req:      &restapi.RemoveFromListRequest{Index: 99},
			storeErr: linkedlist.ErrIndex,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusBadRequest,
				Message:    "Index 99 is out of range",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			storeMock := &mocks.ListStoreMock{
				DeleteFunc: func(ctx context.Context, index int) error {
					assert.Equal(t, test.req.Index, index)
					return test.storeErr
				},
			}
			s := restapi.NewServer(logrus.New(), nil, storeMock)
			resp, err := s.RemoveFromList(context.Background(), test.req)
			assert.Equal(t, 1, len(storeMock.DeleteCalls()))
			if test.expectedErr != nil {
				requireErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestSearchList(t *testing.T) {
	tests := map[string]struct {
		req          *restapi.SearchListRequest
		storeIndex   int
		storeErr     error
		expectedResp *restapi.SearchListResponse
		expectedErr  *restapi.Err
	}{
		"found": {
			req:          &restapi.SearchListRequest{Value: 100},
			storeIndex:   1,
			expectedResp: &restapi.SearchListResponse{Index: 1},
		},
		"not found": {
			req:        &restapi.SearchListRequest{Value: 52},
			storeIndex: linkedlist.NotFound,
			storeErr:   linkedlist.ErrDataNotFound,
			expectedErr: &restapi.Err{
				StatusCode: http.StatusNotFound,
				Message:    "Value 52 not found",
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			storeMock := &mocks.ListStoreMock{
				FindFunc: func(ctx context.Context, v uint32) (int, error) {
					assert.Equal(t, test.req.Value, v)
					return test.storeIndex, test.storeErr
				},
			}
			s := restapi.NewServer(logrus.New(), nil, storeMock)
			resp, err := s.SearchList(context.Background(), test.req)
			assert.Equal(t, 1, len(storeMock.FindCalls()))
			if test.expectedErr != nil {
				requireErr(t, test.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedResp, resp)
		})
	}
}

func TestGetAndDestroyList(t *testing.T) {
	storeMock := &mocks.ListStoreMock{
		SnapshotFunc: func(ctx context.Context) (*store.ListSnapshot, error) {
			return &store.ListSnapshot{Size: 2, Values: []uint32{17, 1}}, nil
		},
		ClearFunc: func(ctx context.Context) error {
			return nil
		},
	}
	s := restapi.NewServer(logrus.New(), nil, storeMock)

	resp, err := s.GetList(context.Background(), &restapi.GetListRequest{})
	require.NoError(t, err)
	assert.Equal(t, &restapi.GetListResponse{Size: 2, Values: []uint32{17, 1}}, resp)

	destroyResp, err := s.DestroyList(context.Background(), &restapi.DestroyListRequest{})
	require.NoError(t, err)
	assert.True(t, destroyResp.Ok)
	assert.Equal(t, 1, len(storeMock.ClearCalls()))
}

func requireErr(t *testing.T, expected *restapi.Err, err error) {
	t.Helper()

	require.Error(t, err)
	castedErr := &restapi.Err{}
	if errors.As(err, &castedErr) {
		assert.Equal(t, expected, castedErr)
		return
	}
	assert.Equal(t, expected.Message, err.Error())
}
