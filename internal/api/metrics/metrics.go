// Package metrics defines and registers the custom Prometheus metrics for
// the marina API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time;
// the /metrics route is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marina"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// EntityWritesTotal counts successful write operations per entity type.
// Labels:
//   - entity: "user", "catway", or "reservation"
//   - op: "create", "update", "patch", or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful entity writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)
