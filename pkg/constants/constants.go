// Package constants defines system-wide constants for the MFO Shield Risk Service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Service Identity Constants
// ================================================================================

const (
	// ServiceName is the public service identifier reported by the health endpoint
	ServiceName = "MFO-Shield-Risk-API"

	// ServiceTracerName is the instrumentation name registered with the tracer provider
	ServiceTracerName = "mfo-shield"
)

// ================================================================================
// Risk Factor Constants
// ================================================================================

// RiskFactor represents a named risk indicator submitted for assessment
type RiskFactor string

const (
	// FactorOverduePayments counts payments past their due date
	FactorOverduePayments RiskFactor = "overdue_payments"

	// FactorLoanDefaults counts defaulted loan contracts
	FactorLoanDefaults RiskFactor = "loan_defaults"

	// FactorComplianceViolations counts recorded compliance breaches
	FactorComplianceViolations RiskFactor = "compliance_violations"

	// FactorRegulatoryFlags counts open regulator-raised flags
	FactorRegulatoryFlags RiskFactor = "regulatory_flags"
)

// KnownRiskFactors lists the scored factors in canonical order.
// Factors outside this list are ignored by the calculator.
var KnownRiskFactors = []RiskFactor{
	FactorOverduePayments,
	FactorLoanDefaults,
	FactorComplianceViolations,
	FactorRegulatoryFlags,
}

// RiskFactorWeights maps each scored factor to its fixed weight.
// The weights sum to 1.0 and must not be mutated at runtime.
var RiskFactorWeights = map[RiskFactor]float64{
	FactorOverduePayments:      0.30,
	FactorLoanDefaults:         0.25,
	FactorComplianceViolations: 0.25,
	FactorRegulatoryFlags:      0.20,
}

// ================================================================================
// Risk Score Constants
// ================================================================================

const (
	// RiskScoreMin is the lower clamp bound for computed risk scores
	RiskScoreMin = 0.0

	// RiskScoreMax is the upper clamp bound for computed risk scores
	RiskScoreMax = 100.0

	// RiskScoreCriticalThreshold is the inclusive lower bound of the CRITICAL band
	RiskScoreCriticalThreshold = 80.0

	// RiskScoreHighThreshold is the inclusive lower bound of the HIGH band
	RiskScoreHighThreshold = 60.0

	// RiskScoreMediumThreshold is the inclusive lower bound of the MEDIUM band
	RiskScoreMediumThreshold = 40.0

	// RiskScoreLowThreshold is the inclusive lower bound of the LOW band
	RiskScoreLowThreshold = 20.0
)

// ================================================================================
// Agent Constants
// ================================================================================

// AgentID identifies one of the orchestrated assessment agents
type AgentID string

const (
	// AgentIDRiskEngine is the risk analysis agent
	AgentIDRiskEngine AgentID = "risk_engine"

	// AgentIDDataFetcher is the external data retrieval agent
	AgentIDDataFetcher AgentID = "data_fetcher"

	// AgentIDComplianceCheck is the compliance rule evaluation agent
	AgentIDComplianceCheck AgentID = "compliance_check"

	// AgentIDReportBuilder is the report assembly agent
	AgentIDReportBuilder AgentID = "report_builder"
)

// AgentStatus represents the terminal state of a dispatched agent task
type AgentStatus string

const (
	// AgentStatusCompleted indicates the agent task produced its output
	AgentStatusCompleted AgentStatus = "completed"

	// AgentStatusFailed indicates the agent task returned an error
	AgentStatusFailed AgentStatus = "failed"
)

const (
	// DefaultAgentWorkDelay is the simulated processing time of each stub agent
	DefaultAgentWorkDelay = 100 * time.Millisecond
)

// ================================================================================
// Orchestration Job Constants
// ================================================================================

const (
	// DefaultJobID is assigned when a job spec omits job_id
	DefaultJobID = "mfo-job-default"

	// DefaultJobDescription is assigned when a job spec omits description
	DefaultJobDescription = "Risk assessment"

	// DefaultJobTimeoutSeconds is the recorded (not enforced) job timeout
	DefaultJobTimeoutSeconds = 60.0

	// JobStatusSuccess is the aggregate status of a completed orchestration run
	JobStatusSuccess = "success"
)

// ================================================================================
// Service Configuration Constants
// ================================================================================

const (
	// DefaultServicePort is the default HTTP service port
	DefaultServicePort = 8080

	// DefaultHealthCheckPath is the health check endpoint path
	DefaultHealthCheckPath = "/health"

	// DefaultReadinessCheckPath is the readiness check endpoint path
	DefaultReadinessCheckPath = "/ready"

	// DefaultLivenessCheckPath is the liveness check endpoint path
	DefaultLivenessCheckPath = "/live"

	// DefaultMetricsPath is the Prometheus metrics endpoint path
	DefaultMetricsPath = "/metrics"

	// DefaultRequestTimeout is the default per-request read/write timeout
	DefaultRequestTimeout = 15 * time.Second

	// DefaultShutdownTimeout is the graceful shutdown timeout
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultIdempotencyTTL is the replay-protection window for idempotency keys
	DefaultIdempotencyTTL = 5 * time.Minute
)

// ================================================================================
// Audit Event Type Constants
// ================================================================================

// AuditEventType represents different types of auditable events
type AuditEventType string

const (
	// EventTypeRiskAssessed represents completed risk assessment events
	EventTypeRiskAssessed AuditEventType = "risk_assessed"

	// EventTypeOrchestrationRun represents completed orchestration run events
	EventTypeOrchestrationRun AuditEventType = "orchestration_run"

	// EventTypeAgentTaskFailed represents failed agent task events
	EventTypeAgentTaskFailed AuditEventType = "agent_task_failed"
)

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode represents machine-readable application error codes
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates the request is malformed or missing required input
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested endpoint or resource does not exist
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeConflict indicates the request conflicts with one already processed
	ErrCodeConflict ErrorCode = "conflict"

	// ErrCodeServerError indicates an internal server error occurred
	ErrCodeServerError ErrorCode = "server_error"
)

// ================================================================================
// Logging Constants
// ================================================================================

// LogLevel represents the severity level of log messages
type LogLevel string

const (
	// LogLevelDebug is the most verbose logging level
	LogLevelDebug LogLevel = "debug"

	// LogLevelInfo is the standard informational logging level
	LogLevelInfo LogLevel = "info"

	// LogLevelWarn indicates potential issues
	LogLevelWarn LogLevel = "warn"

	// LogLevelError indicates errors that need attention
	LogLevelError LogLevel = "error"

	// LogLevelFatal indicates critical errors that cause service termination
	LogLevelFatal LogLevel = "fatal"
)

// ================================================================================
// Context Keys
// ================================================================================

// ContextKey represents keys used in context.Context
type ContextKey string

const (
	// ContextKeyRequestID is the key for request ID in context
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyTraceID is the key for distributed trace ID in context
	ContextKeyTraceID ContextKey = "trace_id"

	// ContextKeySpanID is the key for trace span ID in context
	ContextKeySpanID ContextKey = "span_id"

	// ContextKeySubjectID is the key for the assessed subject ID in context
	ContextKeySubjectID ContextKey = "subject_id"

	// ContextKeyJobID is the key for the orchestration job ID in context
	ContextKeyJobID ContextKey = "job_id"

	// ContextKeyClientIP is the key for client IP address in context
	ContextKeyClientIP ContextKey = "client_ip"

	// ContextKeyUserAgent is the key for HTTP User-Agent in context
	ContextKeyUserAgent ContextKey = "user_agent"
)
