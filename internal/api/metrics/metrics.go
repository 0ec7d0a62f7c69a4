// Package metrics defines the custom Prometheus metrics of the account
// service. HTTP request metrics come from echoprometheus; the counters here
// cover what the request metrics cannot tell apart.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "account"

// Metrics groups the counters so tests can register them on a private registry.
type Metrics struct {
	// LoginAttemptsTotal counts submitted logins.
	// Label:
	//   - outcome: "authenticated", "disabled", "invalid" or "form_invalid"
	LoginAttemptsTotal *prometheus.CounterVec

	// ProfileUpdatesTotal counts profile edit submissions.
	// Label:
	//   - result: "saved", "invalid" or "error"
	ProfileUpdatesTotal *prometheus.CounterVec

	// SessionsCreatedTotal counts sessions established by a successful login.
	SessionsCreatedTotal prometheus.Counter
}

// New creates the metrics and registers them with reg. A nil reg uses the
// default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		LoginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Total number of login form submissions, by outcome.",
			},
			[]string{"outcome"},
		),
		ProfileUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "profile_updates_total",
				Help:      "Total number of profile edit submissions, by result.",
			},
			[]string{"result"},
		),
		SessionsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_created_total",
				Help:      "Total number of sessions created by a successful login.",
			},
		),
	}
}
