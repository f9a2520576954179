// Package metrics defines and registers the custom Prometheus metrics for
// the benefits admission API. It is the single source of truth for metric
// names, labels, and help strings; registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "benefits"

// LoginsTotal counts login outcomes.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations (user, default role
// assignment, and token all succeeded).
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// AssociationsLinkedTotal counts join rows created.
// Label:
//   - relation: "applicant_benefit" or "application_benefit"
var AssociationsLinkedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "associations_linked_total",
		Help:      "Total number of benefit join rows inserted, by relation.",
	},
	[]string{"relation"},
)

// AssociationsUnlinkedTotal counts explicit pair removals.
// Label:
//   - relation: "applicant_benefit" or "application_benefit"
var AssociationsUnlinkedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "associations_unlinked_total",
		Help:      "Total number of benefit join rows removed by exact pair, by relation.",
	},
	[]string{"relation"},
)

// CascadeDeletesTotal counts application-level cascade sweeps performed
// before a parent entity is deleted.
// Label:
//   - relation: "applicant_benefit" or "application_benefit"
var CascadeDeletesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deletes_total",
		Help:      "Total number of cascade deletions of join rows, by relation.",
	},
	[]string{"relation"},
)
