// Package metrics defines and registers all custom Prometheus metrics for the
// FoodDash client core. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init time via promauto; the
// CLI and the mock API expose them when a scrape endpoint is wired.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fooddash"

// CartMutationsTotal counts cart state transitions.
// Label:
//   - action: "add", "increase", "decrease", "remove", "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations, by action.",
	},
	[]string{"action"},
)

// CartConflictsTotal counts cross-restaurant conflict outcomes.
// Label:
//   - result: "raised", "confirmed", "rejected"
var CartConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_conflicts_total",
		Help:      "Total number of single-restaurant cart conflicts, by outcome.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionInvalidationsTotal counts forced logouts triggered by a 401 from any
// authenticated call.
var SessionInvalidationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of implicit logouts forced by rejected credentials.",
	},
)

// OrdersPlacedTotal counts successfully placed orders.
var OrdersPlacedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of orders placed successfully.",
	},
)

// APIRequestDuration measures outgoing API request latency.
// Labels:
//   - path: the logical endpoint path (no ids)
//   - outcome: "ok", "auth", "permission", "expired", "server", "network"
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of outgoing REST API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"path", "outcome"},
)
