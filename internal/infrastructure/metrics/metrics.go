package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewCounter registers the general counter vec on reg. The app passes
// prometheus.DefaultRegisterer; tests pass a fresh registry.
func NewCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petconnect",
			Name:      "general_counters",
		},
		[]string{"result"})
}
