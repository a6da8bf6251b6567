// Package metrics defines and registers all custom Prometheus metrics for
// the ALC console. It is the single source of truth for metric names,
// labels, and help strings; registration happens implicitly via promauto at
// package load.
package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "alc_console"

// ── Backend client metrics ───────────────────────────────────────────────────

// BackendRequestsTotal counts requests sent to the ERP backend.
// Labels:
//   - method: HTTP method
//   - resource: first path segment ("auth", "employees", "orders", …)
//   - status: HTTP status code, or "unreachable" when no response arrived
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the ERP backend.",
	},
	[]string{"method", "resource", "status"},
)

// BackendRequestDuration measures the round-trip time of backend calls.
// Label:
//   - resource: first path segment of the called endpoint
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of ERP backend round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected", or "unreachable"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionResolutionsTotal counts stored-credential resolutions.
// Label:
//   - result: "cache_hit", "resolved", or "discarded"
var SessionResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resolutions_total",
		Help:      "Total number of stored-credential profile resolutions.",
	},
	[]string{"result"},
)

// ── Guard metrics ────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard outcomes.
// Label:
//   - decision: "render", "redirect_login", "unauthorized", or "pending"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, by outcome.",
	},
	[]string{"decision"},
)

// ObserveBackendRequest records one backend round trip. A status of 0 means
// the request never got a response.
func ObserveBackendRequest(method, path string, status int, d time.Duration) {
	res := resourceOf(path)
	code := "unreachable"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	BackendRequestsTotal.WithLabelValues(method, res, code).Inc()
	BackendRequestDuration.WithLabelValues(res).Observe(d.Seconds())
}

// resourceOf reduces a request path to its first segment so record IDs never
// become label values.
func resourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}
