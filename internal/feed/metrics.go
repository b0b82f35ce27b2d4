package feed

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/circlist/internal/custompromauto"
)

var (
	fedValues = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "feed_values_total",
		Help:      "Total number of values pushed into the ring buffer by the feeder",
	})
	droppedValues = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "feed_dropped_values_total",
		Help:      "Number of values the feeder gave up on",
	})
	pushRetries = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "feed_push_retries_total",
		Help:      "Number of push attempts retried because the ring buffer was full",
	})
	drainedValues = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "feed_drained_values_total",
		Help:      "Total number of values popped from the ring buffer by the drainer",
	})
)
