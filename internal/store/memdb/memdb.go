package memdb

import (
	"github.com/google/uuid"

	"github.com/hedisam/circlist/internal/linkedlist"
	"github.com/hedisam/circlist/internal/ringbuffer"
)

const (
	// DefaultRingCapacity is used when no capacity option is given.
	DefaultRingCapacity = 100
)

type config struct {
	name         string
	ringCapacity int
	ringOpts     []ringbuffer.Option
	listOpts     []linkedlist.Option
}

type Option func(*config)

// WithName sets the store label reported with the ring occupancy gauge.
// Without it a random uuid is used.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithCapacity sets the ring buffer capacity. Validation happens in ringbuffer.New.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.ringCapacity = capacity
	}
}

// WithRingOptions forwards options to the underlying ring buffer.
func WithRingOptions(opts ...ringbuffer.Option) Option {
	return func(c *config) {
		c.ringOpts = append(c.ringOpts, opts...)
	}
}

// WithListOptions forwards options to the underlying linked list.
func WithListOptions(opts ...linkedlist.Option) Option {
	return func(c *config) {
		c.listOpts = append(c.listOpts, opts...)
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{ringCapacity: DefaultRingCapacity}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.name == "" {
		cfg.name = uuid.NewString()
	}
	return cfg
}
