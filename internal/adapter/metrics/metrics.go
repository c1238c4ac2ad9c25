package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors for the credential flows.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	TokensIssued         *prometheus.CounterVec
	IssuanceOutcomes     *prometheus.CounterVec
	VerificationVerdicts *prometheus.CounterVec
	Redirects            *prometheus.CounterVec
	ActiveFlows          *prometheus.GaugeVec
	BalanceFetchDuration prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TokensIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oyunfor_auth_tokens_issued_total",
			Help: "Partner authorization tokens signed, by scope",
		}, []string{"scope"}),
		IssuanceOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oyunfor_credential_issuance_total",
			Help: "Credential issuance attempts, by outcome",
		}, []string{"outcome"}),
		VerificationVerdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oyunfor_credential_verification_total",
			Help: "Credential verifications, by verdict",
		}, []string{"verdict"}),
		Redirects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oyunfor_verification_redirects_total",
			Help: "Countdown redirects performed, by kind",
		}, []string{"kind"}),
		ActiveFlows: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "oyunfor_active_flow_sessions",
			Help: "Flow sessions currently mounted, by flow",
		}, []string{"flow"}),
		BalanceFetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "oyunfor_balance_fetch_duration_ms",
			Help:    "Duration of wallet balance snapshots in milliseconds",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
		gatherer: reg,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) IncTokenIssued(scope string) {
	if m == nil {
		return
	}
	m.TokensIssued.WithLabelValues(scope).Inc()
}

func (m *Metrics) IncIssuance(outcome string) {
	if m == nil {
		return
	}
	m.IssuanceOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncVerification(verdict string) {
	if m == nil {
		return
	}
	m.VerificationVerdicts.WithLabelValues(verdict).Inc()
}

func (m *Metrics) IncRedirect(external bool) {
	if m == nil {
		return
	}
	kind := "in_app"
	if external {
		kind = "external"
	}
	m.Redirects.WithLabelValues(kind).Inc()
}

func (m *Metrics) FlowMounted(flow string) {
	if m == nil {
		return
	}
	m.ActiveFlows.WithLabelValues(flow).Inc()
}

func (m *Metrics) FlowTornDown(flow string) {
	if m == nil {
		return
	}
	m.ActiveFlows.WithLabelValues(flow).Dec()
}

func (m *Metrics) ObserveBalanceFetch(started time.Time) {
	if m == nil {
		return
	}
	m.BalanceFetchDuration.Observe(float64(time.Since(started).Milliseconds()))
}
