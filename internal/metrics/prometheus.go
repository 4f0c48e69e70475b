package metrics

import (
	"net/http"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "duty_roster"

// PrometheusCollector implements contract.Metrics backed by Prometheus.
type PrometheusCollector struct {
	reg *prometheus.Registry

	resolutions      *prometheus.CounterVec
	resolutionPasses *prometheus.HistogramVec
	diagnostics      *prometheus.CounterVec
	generatedSlots   *prometheus.CounterVec
	leaveTransitions *prometheus.CounterVec
	cleanupRuns      *prometheus.CounterVec
}

var _ contract.Metrics = (*PrometheusCollector)(nil)

// NewPrometheus registers the roster metrics on a dedicated registry.
// namespace defaults to "duty_roster".
func NewPrometheus(namespace string) *PrometheusCollector {
	if namespace == "" {
		namespace = defaultNamespace
	}

	p := &PrometheusCollector{reg: prometheus.NewRegistry()}

	p.resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "runs_total",
		Help:      "Conflict resolution runs by trigger and outcome (converged, unresolved, exhausted).",
	}, []string{"trigger", "outcome"})

	p.resolutionPasses = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "passes",
		Help:      "Number of passes a resolution run needed.",
		Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
	}, []string{"trigger"})

	p.diagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "diagnostics_total",
		Help:      "Diagnostics emitted by kind (swap, replace, unresolved, duplicate, budget_exhausted).",
	}, []string{"kind"})

	p.generatedSlots = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "roster",
		Name:      "generated_slots_total",
		Help:      "Slots written by full roster generation per department.",
	}, []string{"department"})

	p.leaveTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leave",
		Name:      "transitions_total",
		Help:      "Leave request status transitions by target status.",
	}, []string{"status"})

	p.cleanupRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "leave",
		Name:      "cleanup_runs_total",
		Help:      "Expired leave cleanup runs by result (success, failure).",
	}, []string{"result"})

	p.reg.MustRegister(
		p.resolutions,
		p.resolutionPasses,
		p.diagnostics,
		p.generatedSlots,
		p.leaveTransitions,
		p.cleanupRuns,
	)

	return p
}

// Handler exposes the registry for scraping.
func (p *PrometheusCollector) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

func (p *PrometheusCollector) ObserveResolution(trigger string, result *roster.Result) {
	if result == nil {
		return
	}

	outcome := "converged"
	switch {
	case result.Exhausted:
		outcome = "exhausted"
	case !result.Converged:
		outcome = "unresolved"
	}

	p.resolutions.WithLabelValues(trigger, outcome).Inc()
	p.resolutionPasses.WithLabelValues(trigger).Observe(float64(result.Iterations))
	for _, d := range result.Diagnostics {
		p.diagnostics.WithLabelValues(string(d.Kind)).Inc()
	}
}

func (p *PrometheusCollector) AddGeneratedSlots(department string, count int) {
	p.generatedSlots.WithLabelValues(department).Add(float64(count))
}

func (p *PrometheusCollector) AddLeaveTransitions(status string, count int64) {
	if count <= 0 {
		return
	}
	p.leaveTransitions.WithLabelValues(status).Add(float64(count))
}

func (p *PrometheusCollector) IncCleanupRun(err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	p.cleanupRuns.WithLabelValues(result).Inc()
}
