package rest

import "net/http"

// request and response types are defined below
// path fields are filled in by decodePath, they're never read from the body

type GetRingRequest struct{}

type GetRingResponse struct {
	Capacity int      `json:"capacity"`
	Size     int      `json:"size"`
	State    string   `json:"state"`
	Values   []uint32 `json:"values"`
}

type AddToRingRequest struct {
	Value uint32 `json:"-"`
}

func (r *AddToRingRequest) decodePath(req *http.Request) error {
	v, err := pathUint32(req, "value")
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

type AddToRingResponse struct {
	Ok bool `json:"ok"`
}

type RemoveFromRingRequest struct{}

type RemoveFromRingResponse struct {
	Value uint32 `json:"value"`
}

type GetListRequest struct{}

type GetListResponse struct {
	Size   int      `json:"size"`
	Values []uint32 `json:"values"`
}

type InsertIntoListRequest struct {
	Index int    `json:"-"`
	Value uint32 `json:"-"`
}

func (r *InsertIntoListRequest) decodePath(req *http.Request) error {
	idx, err := pathIndex(req, "index")
	if err != nil {
		return err
	}
	v, err := pathUint32(req, "value")
	if err != nil {
		return err
	}
	r.Index, r.Value = idx, v
	return nil
}

type InsertIntoListResponse struct {
	Ok bool `json:"ok"`
}

type RemoveFromListRequest struct {
	Index int `json:"-"`
}

func (r *RemoveFromListRequest) decodePath(req *http.Request) error {
	idx, err := pathIndex(req, "index")
	if err != nil {
		return err
	}
	r.Index = idx
	return nil
}

type RemoveFromListResponse struct {
	Ok bool `json:"ok"`
}

type SearchListRequest struct {
	Value uint32 `json:"-"`
}

func (r *SearchListRequest) decodePath(req *http.Request) error {
	v, err := pathUint32(req, "value")
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

type SearchListResponse struct {
	Index int `json:"index"`
}

type DestroyListRequest struct{}

type DestroyListResponse struct {
	Ok bool `json:"ok"`
}
