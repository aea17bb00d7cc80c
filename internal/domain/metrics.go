package domain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// eventsTotal counts inbound instrumentation events by kind.
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "covtrace_events_total",
		Help: "Instrumentation events received by kind",
	}, []string{"kind"})

	// stackRecoveriesTotal counts call stack repairs by reason.
	stackRecoveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "covtrace_stack_recoveries_total",
		Help: "Call stack mismatches recovered locally, by reason",
	}, []string{"reason"})

	// contractViolationsTotal counts rejected events by operation.
	contractViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "covtrace_contract_violations_total",
		Help: "Malformed instrumentation events rejected, by operation",
	}, []string{"operation"})

	// projectionsTotal counts projections by kind and result.
	projectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "covtrace_projections_total",
		Help: "Trace projections by kind and result",
	}, []string{"kind", "result"})

	// projectionRetainedCalls tracks how many finished calls survive a projection.
	projectionRetainedCalls = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "covtrace_projection_retained_calls",
		Help:    "Finished calls retained per projection",
		Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 1000},
	}, []string{"kind"})
)

const (
	recoveryDiscarded    = "discarded"
	recoveryRootFinished = "root_finished"
	recoveryEmptyStack   = "empty_stack"
	recoveryStaleFrame   = "stale_frame"
)
