package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/hedisam/circlist/internal/linkedlist"
	"github.com/hedisam/circlist/internal/ringbuffer"
	"github.com/hedisam/circlist/internal/store"
)

type RingStore interface {
	Push(ctx context.Context, v uint32) error
	Pop(ctx context.Context) (uint32, error)
	Snapshot(ctx context.Context) (*store.RingSnapshot, error)
}

type ListStore interface {
	Insert(ctx context.Context, v uint32, index int) error
	Delete(ctx context.Context, index int) error
	Find(ctx context.Context, v uint32) (int, error)
	Snapshot(ctx context.Context) (*store.ListSnapshot, error)
	Clear(ctx context.Context) error
}

type Server struct {
	logger    *logrus.Logger
	ringStore RingStore
	listStore ListStore
}

func NewServer(logger *logrus.Logger, ringStore RingStore, listStore ListStore) *Server {
	return &Server{
		logger:    logger,
		ringStore: ringStore,
		listStore: listStore,
	}
}

// Register wires every endpoint into mux.
func (s *Server) Register(mux *http.ServeMux) {
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/ring", s.GetRing)
	RegisterFunc(s.logger, mux, http.MethodPut, "/api/v1/ring/{value}", s.AddToRing)
	RegisterFunc(s.logger, mux, http.MethodDelete, "/api/v1/ring/tail", s.RemoveFromRing)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/list", s.GetList)
	RegisterFunc(s.logger, mux, http.MethodDelete, "/api/v1/list", s.DestroyList)
	RegisterFunc(s.logger, mux, http.MethodPut, "/api/v1/list/{index}/{value}", s.InsertIntoList)
	RegisterFunc(s.logger, mux, http.MethodDelete, "/api/v1/list/{index}", s.RemoveFromList)
	RegisterFunc(s.logger, mux, http.MethodGet, "/api/v1/list/search/{value}", s.SearchList)
}

func (s *Server) loggerFor(ctx context.Context) *logrus.Entry {
	return s.logger.WithContext(ctx).WithField("request_id", RequestID(ctx))
}

func (s *Server) GetRing(ctx context.Context, _ *GetRingRequest) (*GetRingResponse, error) {
	logger := s.loggerFor(ctx)

	snapshot, err := s.ringStore.Snapshot(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get ring buffer snapshot from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not read ring buffer")
	}

	return &GetRingResponse{
		Capacity: snapshot.Capacity,
		Size:     snapshot.Size,
		State:    snapshot.State,
		Values:   snapshot.Values,
	}, nil
}

func (s *Server) AddToRing(ctx context.Context, req *AddToRingRequest) (*AddToRingResponse, error) {
	logger := s.loggerFor(ctx).WithField("value", req.Value)

	err := s.ringStore.Push(ctx, req.Value)
	if err != nil {
		if errors.Is(err, ringbuffer.ErrFull) {
			logger.Warn("Ring buffer is full, rejecting value")
			return nil, NewErrf(http.StatusConflict, "Ring buffer is full, remove a value and retry")
		}
		logger.WithError(err).Error("Failed to add value to ring buffer")
		return nil, NewErrf(http.StatusInternalServerError, "Could not add value to ring buffer")
	}

	return &AddToRingResponse{
		Ok: true,
	}, nil
}

func (s *Server) RemoveFromRing(ctx context.Context, _ *RemoveFromRingRequest) (*RemoveFromRingResponse, error) {
	logger := s.loggerFor(ctx)

	v, err := s.ringStore.Pop(ctx)
	if err != nil {
		if errors.Is(err, ringbuffer.ErrEmpty) {
			logger.Warn("Ring buffer is empty, nothing to remove")
			return nil, NewErrf(http.StatusNotFound, "Ring buffer is empty")
		}
		logger.WithError(err).Error("Failed to remove value from ring buffer")
		return nil, NewErrf(http.StatusInternalServerError, "Could not remove value from ring buffer")
	}

	return &RemoveFromRingResponse{
		Value: v,
	}, nil
}

func (s *Server) GetList(ctx context.Context, _ *GetListRequest) (*GetListResponse, error) {
	logger := s.loggerFor(ctx)

	snapshot, err := s.listStore.Snapshot(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get list snapshot from store")
		return nil, NewErrf(http.StatusInternalServerError, "Could not read list")
	}

	return &GetListResponse{
		Size:   snapshot.Size,
		Values: snapshot.Values,
	}, nil
}

func (s *Server) InsertIntoList(ctx context.Context, req *InsertIntoListRequest) (*InsertIntoListResponse, error) {
	logger := s.loggerFor(ctx).WithFields(logrus.Fields{
		"index": req.Index,
		"value": req.Value,
	})

	err := s.listStore.Insert(ctx, req.Value, req.Index)
	if err != nil {
		if errors.Is(err, linkedlist.ErrIndex) {
			logger.Warn("Index out of range for list insert")
			return nil, NewErrf(http.StatusBadRequest, "Index %d is out of range", req.Index)
		}
		logger.WithError(err).Error("Failed to insert value into list")
		return nil, NewErrf(http.StatusInternalServerError, "Could not insert value into list")
	}

	return &InsertIntoListResponse{
		Ok: true,
	}, nil
}

func (s *Server) RemoveFromList(ctx context.Context, req *RemoveFromListRequest) (*RemoveFromListResponse, error) {
	logger := s.loggerFor(ctx).WithField("index", req.Index)

	err := s.listStore.Delete(ctx, req.Index)
	if err != nil {
		if errors.Is(err, linkedlist.ErrIndex) {
			logger.Warn("Index out of range for list remove")
			return nil, NewErrf(http.StatusBadRequest, "Index %d is out of range", req.Index)
		}
		logger.WithError(err).Error("Failed to remove value from list")
		return nil, NewErrf(http.StatusInternalServerError, "Could not remove value from list")
	}

	return &RemoveFromListResponse{
		Ok: true,
	}, nil
}

func (s *Server) SearchList(ctx context.Context, req *SearchListRequest) (*SearchListResponse, error) {
	logger := s.loggerFor(ctx).WithField("value", req.Value)

	idx, err := s.listStore.Find(ctx, req.Value)
	if err != nil {
		if errors.Is(err, linkedlist.ErrDataNotFound) {
			logger.Debug("Value not found in list")
			return nil, NewErrf(http.StatusNotFound, "Value %d not found", req.Value)
		}
		logger.WithError(err).Error("Failed to search list")
		return nil, NewErrf(http.StatusInternalServerError, "Could not search list")
	}

	return &SearchListResponse{
		Index: idx,
	}, nil
}

func (s *Server) DestroyList(ctx context.Context, _ *DestroyListRequest) (*DestroyListResponse, error) {
	logger := s.loggerFor(ctx)

	err := s.listStore.Clear(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to destroy list")
		return nil, NewErrf(http.StatusInternalServerError, "Could not destroy list")
	}

	return &DestroyListResponse{
		Ok: true,
	}, nil
}
