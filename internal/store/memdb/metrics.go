package memdb

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/circlist/internal/custompromauto"
)

var (
	ringAdds = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "ring_adds_total",
		Help:      "Total number of values added to the ring buffer",
	})
	ringRejectedAdds = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "ring_rejected_adds_total",
		Help:      "Total number of adds refused because the ring buffer was full",
	})
	ringRemoves = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "ring_removes_total",
		Help:      "Total number of values removed from the ring buffer",
	})
	ringRejectedRemoves = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "ring_rejected_removes_total",
		Help:      "Total number of removes refused because the ring buffer was empty",
	})
	ringOccupancy = custompromauto.Auto().NewGaugeVec(prometheus.GaugeOpts{
		Namespace: custompromauto.Namespace,
		Name:      "ring_occupancy",
		Help:      "Number of values currently held by each ring buffer store",
	}, []string{"store"})

	listInserts = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "list_inserts_total",
		Help:      "Total number of nodes inserted into the list",
	})
	listRemoves = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "list_removes_total",
		Help:      "Total number of nodes removed from the list",
	})
	listIndexErrors = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Namespace: custompromauto.Namespace,
		Name:      "list_index_errors_total",
		Help:      "Total number of list operations rejected with an out of range index",
	})
)
