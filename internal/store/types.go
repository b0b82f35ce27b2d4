package store

// RingSnapshot is a point in time copy of a ring buffer.
type RingSnapshot struct {
	Capacity int      `json:"capacity"`
	Size     int      `json:"size"`
	State    string   `json:"state"`
	Values   []uint32 `json:"values"`
}

// ListSnapshot is a point in time copy of a linked list.
type ListSnapshot struct {
	Size   int      `json:"size"`
	Values []uint32 `json:"values"`
}
