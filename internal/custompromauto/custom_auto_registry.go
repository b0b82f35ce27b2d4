package custompromauto

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric registered by this module.
const Namespace = "circlist"

var registry *prometheus.Registry
var auto promauto.Factory

func init() {
	registry = prometheus.NewRegistry()
	auto = promauto.With(registry)
}

// Auto returns a factory registering into the module's private registry.
func Auto() promauto.Factory {
	return auto
}

// Registry is served on /metrics instead of the default registry.
func Registry() *prometheus.Registry {
	return registry
}
