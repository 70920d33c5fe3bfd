// Package metrics defines and registers all custom Prometheus metrics for the
// LoanSewa web front end. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry via promauto at package load;
// the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "loansewa"

// ── Upstream loan API metrics ─────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the loan API.
// Labels:
//   - endpoint: logical endpoint name (e.g. "login", "applications")
//   - status: "ok", "upstream_error", or "transport_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests issued to the loan API.",
	},
	[]string{"endpoint", "status"},
)

// UpstreamRequestDuration measures loan API round-trip time per endpoint.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of loan API requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Page metrics ──────────────────────────────────────────────────────────────

// PagesRenderedTotal counts successfully rendered HTML pages.
// Label:
//   - page: template name (e.g. "dashboard", "admin_insights")
var PagesRenderedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pages_rendered_total",
		Help:      "Total number of HTML pages rendered, by template.",
	},
	[]string{"page"},
)

// SessionRedirectsTotal counts visits to protected pages without a valid
// session that were bounced to a login page.
// Label:
//   - realm: "user" or "admin"
var SessionRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_redirects_total",
		Help:      "Total number of unauthenticated requests redirected to login.",
	},
	[]string{"realm"},
)

// ── Admin action metrics ──────────────────────────────────────────────────────

// AdminActionsTotal counts review decisions and user deletions relayed to the
// loan API.
// Labels:
//   - action: "approve", "reject", or "delete_user"
//   - result: "ok" or "error"
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of admin actions forwarded to the loan API.",
	},
	[]string{"action", "result"},
)
