// Package models defines the domain models for the MFO Shield Risk Service.
// This file contains the orchestration job models.
package models

import (
	"time"

	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/utils"
)

// JobSpec describes one orchestration job. Loosely-typed caller input is
// normalized into this shape before any agent is dispatched.
type JobSpec struct {
	JobID       string `json:"job_id"`
	Description string `json:"description"`

	// RiskData and ComplianceRules are opaque payloads carried for the agents.
	// The stub agents do not read them.
	RiskData        map[string]interface{} `json:"risk_data"`
	ComplianceRules map[string]interface{} `json:"compliance_rules"`

	// Timeout is the requested job timeout in seconds. It is recorded in the
	// normalized spec but not enforced.
	Timeout float64 `json:"timeout"`
}

// NormalizeJobSpec fills a JobSpec from a loosely-typed map, applying defaults
// for missing or mistyped entries. A nil map yields the fully-defaulted spec.
func NormalizeJobSpec(raw map[string]interface{}) *JobSpec {
	return &JobSpec{
		JobID:           utils.StringFromMap(raw, "job_id", constants.DefaultJobID),
		Description:     utils.StringFromMap(raw, "description", constants.DefaultJobDescription),
		RiskData:        utils.MapFromMap(raw, "risk_data"),
		ComplianceRules: utils.MapFromMap(raw, "compliance_rules"),
		Timeout:         utils.Float64FromMap(raw, "timeout", constants.DefaultJobTimeoutSeconds),
	}
}

// AgentOutcome is the terminal result of one dispatched agent task.
type AgentOutcome struct {
	Agent  constants.AgentID      `json:"agent"`
	Status constants.AgentStatus  `json:"status"`
	Output map[string]interface{} `json:"output"`
	Error  string                 `json:"error,omitempty"`
}

// NewCompletedOutcome records a successful agent task.
func NewCompletedOutcome(agent constants.AgentID, output map[string]interface{}) AgentOutcome {
	if output == nil {
		output = map[string]interface{}{}
	}
	return AgentOutcome{
		Agent:  agent,
		Status: constants.AgentStatusCompleted,
		Output: output,
	}
}

// NewFailedOutcome records a failed agent task. The output slot stays an empty
// map so aggregation never surfaces partial agent state.
func NewFailedOutcome(agent constants.AgentID, err error) AgentOutcome {
	outcome := AgentOutcome{
		Agent:  agent,
		Status: constants.AgentStatusFailed,
		Output: map[string]interface{}{},
	}
	if err != nil {
		outcome.Error = err.Error()
	}
	return outcome
}

// Succeeded reports whether the agent task completed.
func (o AgentOutcome) Succeeded() bool {
	return o.Status == constants.AgentStatusCompleted
}

// OrchestrationResult aggregates all agent outcomes of one job run.
// Status is "success" whenever the run itself completes; individual agent
// failures surface through their slot and AgentStatuses, not the job status.
type OrchestrationResult struct {
	JobID      string `json:"job_id"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`

	RiskAssessment   map[string]interface{} `json:"risk_assessment"`
	DataSource       map[string]interface{} `json:"data_source"`
	ComplianceStatus map[string]interface{} `json:"compliance_status"`
	Report           map[string]interface{} `json:"report"`

	AgentStatuses map[string]string `json:"agent_statuses"`
}

// NewOrchestrationResult maps agent outcomes onto their named result slots.
func NewOrchestrationResult(jobID string, elapsed time.Duration, outcomes []AgentOutcome) *OrchestrationResult {
	result := &OrchestrationResult{
		JobID:            jobID,
		Status:           constants.JobStatusSuccess,
		DurationMS:       elapsed.Round(time.Millisecond).Milliseconds(),
		RiskAssessment:   map[string]interface{}{},
		DataSource:       map[string]interface{}{},
		ComplianceStatus: map[string]interface{}{},
		Report:           map[string]interface{}{},
		AgentStatuses:    make(map[string]string, len(outcomes)),
	}

	for _, outcome := range outcomes {
		result.AgentStatuses[string(outcome.Agent)] = string(outcome.Status)

		switch outcome.Agent {
		case constants.AgentIDRiskEngine:
			result.RiskAssessment = outcome.Output
		case constants.AgentIDDataFetcher:
			result.DataSource = outcome.Output
		case constants.AgentIDComplianceCheck:
			result.ComplianceStatus = outcome.Output
		case constants.AgentIDReportBuilder:
			result.Report = outcome.Output
		}
	}

	return result
}

// FailedAgents returns how many outcomes did not complete.
func (r *OrchestrationResult) FailedAgents() int {
	failed := 0
	for _, status := range r.AgentStatuses {
		if status == string(constants.AgentStatusFailed) {
			failed++
		}
	}
	return failed
}
