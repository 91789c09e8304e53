package numbering

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "number_allocation_retries_total",
			Help: "Total number of retried number allocations by entity kind",
		},
		[]string{"kind"},
	)

	allocationConflictCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "number_allocation_conflicts_total",
			Help: "Total number of allocations abandoned after the retry budget",
		},
		[]string{"kind"},
	)

	jobNumberSourceCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_number_source_total",
			Help: "Job number allocations by fallback ladder rung",
		},
		[]string{"source"},
	)
)

// countJobSource records which rung of the fallback ladder produced a job
// number. A rising tenant_counter or random rate means broken chains.
func countJobSource(source JobNumberSource) {
	jobNumberSourceCounter.WithLabelValues(string(source)).Inc()
}
