// Package metrics defines and registers all custom Prometheus metrics for the
// back-office API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

// TransitionsTotal counts applied status transitions.
// Label:
//   - to: the new shipment status
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of shipment status transitions applied.",
	},
	[]string{"to"},
)

// TransitionErrorsTotal counts rejected or failed transition attempts.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "conflict", "validation")
var TransitionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transition_errors_total",
		Help:      "Total number of shipment transition attempts that failed.",
	},
	[]string{"reason"},
)

// ShipmentsCreatedTotal counts newly created shipments.
// Labels:
//   - service_type: "on_board_courier" or "next_flight_out"
//   - source: "direct" or "quote"
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by service type and source.",
	},
	[]string{"service_type", "source"},
)

// ConversionsTotal counts quote conversion attempts.
// Label:
//   - result: "converted", "rejected" or "lost_race"
var ConversionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_conversions_total",
		Help:      "Total number of quote conversion attempts, by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of audit records waiting to be written.
var AuditQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit records pending in the writer queues.",
	},
)

// TransitionDuration measures how long a single transition takes end-to-end,
// including CAS persistence, history append and task generation.
// Label:
//   - to: the target shipment status, or "error" on failure
var TransitionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "transition_duration_seconds",
		Help:      "Duration of a shipment transition from request to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"to"},
)
