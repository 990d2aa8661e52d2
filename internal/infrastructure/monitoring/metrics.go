package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// Metrics manages the Prometheus metrics of the risk service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	RiskAssessments   *prometheus.CounterVec
	RiskScores        prometheus.Histogram
	AssessmentLatency prometheus.Histogram

	OrchestrationRuns    *prometheus.CounterVec
	OrchestrationLatency prometheus.Histogram
	AgentTaskLatency     *prometheus.HistogramVec
	AgentTaskFailures    *prometheus.CounterVec

	IdempotencyReplays prometheus.Counter
}

// NewMetrics creates and registers the metrics on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates the metrics against the given registerer. Tests
// pass a private registry to avoid duplicate registration panics.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfo_shield_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mfo_shield_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RiskAssessments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfo_shield_risk_assessments_total",
				Help: "Total number of risk assessments.",
			},
			[]string{"risk_level", "result"},
		),
		RiskScores: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mfo_shield_risk_score",
				Help:    "Distribution of computed risk scores.",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		AssessmentLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mfo_shield_assessment_duration_seconds",
				Help:    "Latency of risk assessment processing.",
				Buckets: prometheus.DefBuckets,
			},
		),
		OrchestrationRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfo_shield_orchestration_runs_total",
				Help: "Total number of orchestration runs.",
			},
			[]string{"result"},
		),
		OrchestrationLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mfo_shield_orchestration_duration_seconds",
				Help:    "Latency of full orchestration runs.",
				Buckets: prometheus.DefBuckets,
			},
		),
		AgentTaskLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mfo_shield_agent_task_duration_seconds",
				Help:    "Latency of individual agent tasks.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"agent"},
		),
		AgentTaskFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mfo_shield_agent_task_failures_total",
				Help: "Total number of failed agent tasks.",
			},
			[]string{"agent"},
		),
		IdempotencyReplays: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "mfo_shield_idempotency_replays_total",
				Help: "Total number of rejected duplicate requests.",
			},
		),
	}
}

// RecordHTTPRequest records metrics for one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRiskAssessment records metrics for a completed risk assessment.
func (m *Metrics) RecordRiskAssessment(level string, result string, score float64, duration time.Duration) {
	m.RiskAssessments.WithLabelValues(level, result).Inc()
	m.AssessmentLatency.Observe(duration.Seconds())
	if result == "success" {
		m.RiskScores.Observe(score)
	}
}

// RecordOrchestrationRun records metrics for a completed orchestration run.
func (m *Metrics) RecordOrchestrationRun(result string, duration time.Duration) {
	m.OrchestrationRuns.WithLabelValues(result).Inc()
	m.OrchestrationLatency.Observe(duration.Seconds())
}

// RecordAgentTask records metrics for one agent task within a run.
func (m *Metrics) RecordAgentTask(agent constants.AgentID, duration time.Duration, failed bool) {
	m.AgentTaskLatency.WithLabelValues(string(agent)).Observe(duration.Seconds())
	if failed {
		m.AgentTaskFailures.WithLabelValues(string(agent)).Inc()
	}
}

// RecordIdempotencyReplay records a rejected duplicate request.
func (m *Metrics) RecordIdempotencyReplay() {
	m.IdempotencyReplays.Inc()
}
