package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart and auth activity counters.
type StorefrontMetrics struct {
	cartOps      *prometheus.CounterVec
	authAttempts *prometheus.CounterVec
	notices      *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	authAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Login/register/logout attempts by outcome.",
	}, []string{"action", "outcome"})
	notices := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notices_published_total",
		Help: "Transient notices published by severity.",
	}, []string{"severity"})
	reg.MustRegister(cartOps, authAttempts, notices)
	return &StorefrontMetrics{
		cartOps:      cartOps,
		authAttempts: authAttempts,
		notices:      notices,
	}
}

// IncCartOp increments the counter for the named cart operation.
func (m *StorefrontMetrics) IncCartOp(op string) {
	if m == nil || m.cartOps == nil {
		return
	}
	m.cartOps.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncAuth increments the auth attempt counter.
func (m *StorefrontMetrics) IncAuth(action, outcome string) {
	if m == nil || m.authAttempts == nil {
		return
	}
	m.authAttempts.WithLabelValues(normalizeLabel(action), normalizeLabel(outcome)).Inc()
}

// IncNotice increments the published-notice counter.
func (m *StorefrontMetrics) IncNotice(severity string) {
	if m == nil || m.notices == nil {
		return
	}
	m.notices.WithLabelValues(normalizeLabel(severity)).Inc()
}

func normalizeLabel(value string) string {
	label := strings.ToLower(strings.TrimSpace(value))
	if label == "" {
		return "unknown"
	}
	return strings.ReplaceAll(label, " ", "_")
}
