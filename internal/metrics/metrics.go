package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registerAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogr_register_attempts_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogr_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	logoutEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogr_logout_events_total",
		Help: "Number of logout attempts grouped by status.",
	}, []string{"status"})

	contentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogr_content_writes_total",
		Help: "Create/update/delete operations grouped by resource and op.",
	}, []string{"resource", "op"})
)

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registerAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncLogout increments the logout counter.
func IncLogout(status string) {
	logoutEvents.WithLabelValues(status).Inc()
}

// IncWrite increments the content write counter.
func IncWrite(resource, op string) {
	contentWrites.WithLabelValues(resource, op).Inc()
}
