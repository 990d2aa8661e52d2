package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/mfo-shield/internal/domain/models"
	"github.com/turtacn/mfo-shield/pkg/constants"
)

func TestRiskFactors_WithKnownDefaults(t *testing.T) {
	factors := models.RiskFactors{
		"overdue_payments": 50,
		"unknown_factor":   99,
	}

	echo := factors.WithKnownDefaults()

	assert.Len(t, echo, 4)
	assert.Equal(t, 50.0, echo["overdue_payments"])
	assert.Equal(t, 0.0, echo["loan_defaults"])
	assert.Equal(t, 0.0, echo["compliance_violations"])
	assert.Equal(t, 0.0, echo["regulatory_flags"])
	assert.NotContains(t, echo, "unknown_factor")
}

func TestNewRiskAssessment(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))

	a := models.NewRiskAssessment("client-42", 23.5, models.RiskLevelLow, models.RiskFactors{"overdue_payments": 50}, now)

	_, err := uuid.Parse(a.AssessmentID)
	require.NoError(t, err)
	assert.Equal(t, "client-42", a.SubjectID)
	assert.Equal(t, 23.5, a.RiskScore)
	assert.Equal(t, models.RiskLevelLow, a.RiskLevel)
	assert.Equal(t, time.UTC, a.Timestamp.Location())
	assert.Equal(t, 50.0, a.Details["overdue_payments"])
	assert.Len(t, a.Details, 4)

	b := models.NewRiskAssessment("client-42", 23.5, models.RiskLevelLow, nil, now)
	assert.NotEqual(t, a.AssessmentID, b.AssessmentID, "each assessment gets a fresh ID")
}

func TestNormalizeJobSpec_Defaults(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{"nil spec", nil},
		{"empty spec", map[string]interface{}{}},
		{"mistyped fields", map[string]interface{}{"job_id": 7, "timeout": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := models.NormalizeJobSpec(tt.raw)

			assert.Equal(t, "mfo-job-default", spec.JobID)
			assert.Equal(t, "Risk assessment", spec.Description)
			assert.Equal(t, 60.0, spec.Timeout)
			assert.NotNil(t, spec.RiskData)
			assert.NotNil(t, spec.ComplianceRules)
		})
	}
}

func TestNormalizeJobSpec_ExplicitValues(t *testing.T) {
	spec := models.NormalizeJobSpec(map[string]interface{}{
		"job_id":           "job-9",
		"description":      "quarterly review",
		"timeout":          30,
		"risk_data":        map[string]interface{}{"source": "ledger"},
		"compliance_rules": map[string]interface{}{"ruleset": "v2"},
	})

	assert.Equal(t, "job-9", spec.JobID)
	assert.Equal(t, "quarterly review", spec.Description)
	assert.Equal(t, 30.0, spec.Timeout)
	assert.Equal(t, "ledger", spec.RiskData["source"])
	assert.Equal(t, "v2", spec.ComplianceRules["ruleset"])
}

func TestAgentOutcomes(t *testing.T) {
	done := models.NewCompletedOutcome(constants.AgentIDRiskEngine, map[string]interface{}{"status": "completed"})
	assert.True(t, done.Succeeded())
	assert.Empty(t, done.Error)

	failed := models.NewFailedOutcome(constants.AgentIDDataFetcher, errors.New("upstream unreachable"))
	assert.False(t, failed.Succeeded())
	assert.Equal(t, "upstream unreachable", failed.Error)
	assert.NotNil(t, failed.Output)
	assert.Empty(t, failed.Output)
}

func TestNewOrchestrationResult_SlotMapping(t *testing.T) {
	outcomes := []models.AgentOutcome{
		models.NewCompletedOutcome(constants.AgentIDRiskEngine, map[string]interface{}{"agent_id": "risk_engine"}),
		models.NewFailedOutcome(constants.AgentIDDataFetcher, errors.New("boom")),
		models.NewCompletedOutcome(constants.AgentIDComplianceCheck, map[string]interface{}{"agent_id": "compliance_check"}),
		models.NewCompletedOutcome(constants.AgentIDReportBuilder, map[string]interface{}{"agent_id": "report_builder"}),
	}

	result := models.NewOrchestrationResult("job-1", 101500*time.Microsecond, outcomes)

	assert.Equal(t, "job-1", result.JobID)
	assert.Equal(t, "success", result.Status, "agent failures never change the job status")
	assert.EqualValues(t, 102, result.DurationMS, "duration is rounded to whole milliseconds")

	assert.Equal(t, "risk_engine", result.RiskAssessment["agent_id"])
	assert.Empty(t, result.DataSource, "failed agent slot collapses to an empty map")
	assert.Equal(t, "compliance_check", result.ComplianceStatus["agent_id"])
	assert.Equal(t, "report_builder", result.Report["agent_id"])

	assert.Equal(t, "completed", result.AgentStatuses["risk_engine"])
	assert.Equal(t, "failed", result.AgentStatuses["data_fetcher"])
	assert.Equal(t, 1, result.FailedAgents())
}
