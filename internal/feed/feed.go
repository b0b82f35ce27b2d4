package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/circlist/internal/ringbuffer"
	"github.com/hedisam/pipeline/chans"
)

type Pusher interface {
	Push(ctx context.Context, v uint32) error
}

type Popper interface {
	Pop(ctx context.Context) (uint32, error)
}

// Generate emits start, start+1, ... once per tick until ctx is done.
func Generate(ctx context.Context, tick time.Duration, start uint32) <-chan uint32 {
	out := make(chan uint32)

	go func() {
		defer close(out)

		t := time.NewTicker(tick)
		defer t.Stop()

		next := start
		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			if !chans.SendOrDone(ctx, out, next) {
				return
			}
			next++
		}
	}()

	return out
}

type Feeder struct {
	logger     *logrus.Logger
	pusher     Pusher
	newBackOff func() backoff.BackOff
}

type Option func(*Feeder)

// WithBackOff overrides the retry policy used while the ring buffer is full.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(f *Feeder) {
		if newBackOff != nil {
			f.newBackOff = newBackOff
		}
	}
}

func NewFeeder(logger *logrus.Logger, pusher Pusher, opts ...Option) *Feeder {
	f := &Feeder{
		logger:     logger,
		pusher:     pusher,
		newBackOff: newExponentialBackoffConfig,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run pushes every value received from in until in is closed or ctx is done.
// A value that still doesn't fit once the backoff gives up is dropped.
func (f *Feeder) Run(ctx context.Context, in <-chan uint32) {
	for v := range chans.ReceiveOrDoneSeq(ctx, in) {
		err := f.pushWithRetry(ctx, v)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			f.logger.WithField("value", v).WithError(err).Warn("Failed to feed value into ring buffer, dropping it")
			droppedValues.Inc()
			continue
		}
		fedValues.Inc()
	}
}

func (f *Feeder) pushWithRetry(ctx context.Context, v uint32) error {
	bk := backoff.WithContext(f.newBackOff(), ctx)
	err := backoff.Retry(func() error {
		err := f.pusher.Push(ctx, v)
		if err == nil {
			return nil
		}
		if errors.Is(err, ringbuffer.ErrFull) {
			f.logger.WithField("value", v).Debug("Ring buffer is full, retrying...")
			pushRetries.Inc()
			return err
		}
		return backoff.Permanent(fmt.Errorf("could not push value: %w", err))
	}, bk)
	if err != nil {
		return err
	}

	return nil
}

// Drain pops one value per tick and sends it downstream. Empty ticks are skipped.
func Drain(ctx context.Context, logger *logrus.Logger, popper Popper, tick time.Duration) <-chan uint32 {
	out := make(chan uint32)

	go func() {
		defer close(out)

		t := time.NewTicker(tick)
		defer t.Stop()

		for range chans.ReceiveOrDoneSeq(ctx, t.C) {
			v, err := popper.Pop(ctx)
			if err != nil {
				if errors.Is(err, ringbuffer.ErrEmpty) {
					logger.Debug("Nothing to drain yet")
					continue
				}
				logger.WithError(err).Error("Failed to drain ring buffer")
				return
			}

			if !chans.SendOrDone(ctx, out, v) {
				return
			}
			drainedValues.Inc()
		}
	}()

	return out
}

func newExponentialBackoffConfig() backoff.BackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
