package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the set of Prometheus collectors svcpart exposes when metrics
// are enabled: how long each partitioning call took, and whether it
// succeeded.
type Metrics struct {
	PartitionDuration *prometheus.HistogramVec
	PartitionTotal    *prometheus.CounterVec
}

// NewMetrics constructs and registers Metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PartitionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "svcpart",
			Name:      "partition_duration_seconds",
			Help:      "Time spent computing a partitioning, by algorithm.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
		PartitionTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "svcpart",
			Name:      "partition_total",
			Help:      "Partitioning calls, by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
	}
	reg.MustRegister(m.PartitionDuration, m.PartitionTotal)
	return m
}
