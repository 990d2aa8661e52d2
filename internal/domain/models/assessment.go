// Package models defines the domain models for the MFO Shield Risk Service.
// This file contains the risk assessment domain model.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// RiskLevel represents the categorical risk band derived from a risk score.
type RiskLevel string

const (
	// RiskLevelMinimal covers scores below the LOW threshold.
	RiskLevelMinimal RiskLevel = "MINIMAL"

	// RiskLevelLow covers scores in [20, 40).
	RiskLevelLow RiskLevel = "LOW"

	// RiskLevelMedium covers scores in [40, 60).
	RiskLevelMedium RiskLevel = "MEDIUM"

	// RiskLevelHigh covers scores in [60, 80).
	RiskLevelHigh RiskLevel = "HIGH"

	// RiskLevelCritical covers scores of 80 and above.
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskFactors maps factor names to their submitted numeric values.
// Factor values are accepted as-is; the calculator ignores unknown names and
// treats missing ones as zero.
type RiskFactors map[string]float64

// WithKnownDefaults returns a copy restricted to the scored factors, with
// absent factors present as zero. This is the shape echoed back to callers.
func (f RiskFactors) WithKnownDefaults() RiskFactors {
	echo := make(RiskFactors, len(constants.KnownRiskFactors))
	for _, factor := range constants.KnownRiskFactors {
		echo[string(factor)] = f[string(factor)]
	}
	return echo
}

// RiskAssessment represents one completed scoring of a subject's risk factors.
// Assessments are request-scoped; nothing is persisted between calls.
type RiskAssessment struct {
	// AssessmentID is the unique identifier of this assessment, generated per call.
	AssessmentID string `json:"assessment_id"`

	// SubjectID identifies the assessed subject. It is an opaque caller-supplied string.
	SubjectID string `json:"subject_id"`

	// RiskScore is the weighted score, clamped to [0, 100] and rounded to 2 decimals.
	RiskScore float64 `json:"risk_score"`

	// RiskLevel is the categorical band the score falls into.
	RiskLevel RiskLevel `json:"risk_level"`

	// Timestamp is the UTC creation time of the assessment.
	Timestamp time.Time `json:"timestamp"`

	// Details echoes the scored factor values, with absent factors as zero.
	Details RiskFactors `json:"details"`
}

// NewRiskAssessment creates a RiskAssessment with a fresh assessment ID.
// The caller supplies the evaluation time.
func NewRiskAssessment(subjectID string, score float64, level RiskLevel, factors RiskFactors, now time.Time) *RiskAssessment {
	return &RiskAssessment{
		AssessmentID: uuid.NewString(),
		SubjectID:    subjectID,
		RiskScore:    score,
		RiskLevel:    level,
		Timestamp:    now.UTC(),
		Details:      factors.WithKnownDefaults(),
	}
}
