// Package metrics holds the Prometheus instrumentation for the
// Verdant runtime. Metrics register on the default registerer under
// the "verdant" namespace; hosts that expose /metrics get them for
// free.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "verdant"

var (
	// ReactionRuns counts reaction body executions, initial and deferred.
	ReactionRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "observe",
		Name:      "reaction_runs_total",
		Help:      "Total number of reaction body executions.",
	})

	// ReactionPanics counts reaction bodies that panicked.
	ReactionPanics = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "observe",
		Name:      "reaction_panics_total",
		Help:      "Total number of reaction executions that panicked.",
	})

	// ScheduledRuns counts deferred runs enqueued by property writes.
	ScheduledRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "observe",
		Name:      "scheduled_runs_total",
		Help:      "Total number of deferred reaction runs enqueued.",
	})

	// QueueDepth tracks the deferred queue length after the most recent
	// enqueue or flush.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "observe",
		Name:      "queue_depth",
		Help:      "Deferred reaction queue depth.",
	})

	// PatchOps counts reconciler operations by kind.
	PatchOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vdom",
		Name:      "patch_ops_total",
		Help:      "Total reconciler operations applied, by operation.",
	}, []string{"op"})

	// Realizes counts description nodes realized into platform nodes.
	Realizes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vdom",
		Name:      "realized_nodes_total",
		Help:      "Total description nodes realized into platform nodes.",
	})

	// Mounts counts component instances mounted.
	Mounts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "component",
		Name:      "mounts_total",
		Help:      "Total component instances mounted.",
	})

	// Unmounts counts component instances unmounted.
	Unmounts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "component",
		Name:      "unmounts_total",
		Help:      "Total component instances unmounted.",
	})

	// RenderErrors counts component render functions that panicked.
	RenderErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "component",
		Name:      "render_errors_total",
		Help:      "Total component renders that panicked and were dropped.",
	})
)
