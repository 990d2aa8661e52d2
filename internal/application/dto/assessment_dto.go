// Package dto defines the request and response shapes of the HTTP surface.
package dto

import (
	"github.com/turtacn/mfo-shield/internal/domain/models"
	"github.com/turtacn/mfo-shield/pkg/utils"
)

// RiskFactorsRequest is the body of POST /subjects/:subject_id/risk.
// Every factor is optional and defaults to zero; unknown body keys are
// ignored. Values are not range-checked here, the calculator clamps the
// final score instead.
type RiskFactorsRequest struct {
	OverduePayments      float64 `json:"overdue_payments"`
	LoanDefaults         float64 `json:"loan_defaults"`
	ComplianceViolations float64 `json:"compliance_violations"`
	RegulatoryFlags      float64 `json:"regulatory_flags"`
}

// ToFactors converts the request into the domain factor mapping.
func (r *RiskFactorsRequest) ToFactors() models.RiskFactors {
	return models.RiskFactors{
		"overdue_payments":      r.OverduePayments,
		"loan_defaults":         r.LoanDefaults,
		"compliance_violations": r.ComplianceViolations,
		"regulatory_flags":      r.RegulatoryFlags,
	}
}

// AssessmentResponse is the wire form of a completed risk assessment.
type AssessmentResponse struct {
	AssessmentID string             `json:"assessment_id"`
	SubjectID    string             `json:"subject_id"`
	RiskScore    float64            `json:"risk_score"`
	RiskLevel    string             `json:"risk_level"`
	Timestamp    string             `json:"timestamp"`
	Details      map[string]float64 `json:"details"`
}

// NewAssessmentResponse renders an assessment for the wire.
func NewAssessmentResponse(assessment *models.RiskAssessment) *AssessmentResponse {
	return &AssessmentResponse{
		AssessmentID: assessment.AssessmentID,
		SubjectID:    assessment.SubjectID,
		RiskScore:    assessment.RiskScore,
		RiskLevel:    string(assessment.RiskLevel),
		Timestamp:    utils.TimeToISO8601(assessment.Timestamp),
		Details:      assessment.Details,
	}
}
