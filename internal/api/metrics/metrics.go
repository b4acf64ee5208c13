// Package metrics defines and registers all custom Prometheus metrics for
// the member service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the HTTP layer exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "member_api"

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

// TokenRejectionsTotal counts bearer tokens that carried a claimed identity
// but failed authentication.
// Label:
//   - reason: "unknown_subject" or "invalid_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// MemberCacheTotal counts member cache lookups.
// Label:
//   - result: "hit" or "miss"
var MemberCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "member_cache_total",
		Help:      "Total number of member cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// MembersCreatedTotal counts newly created member records.
var MembersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_created_total",
		Help:      "Total number of member records created.",
	},
)
