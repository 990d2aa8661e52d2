// Package service contains the pure domain services of the risk assessment
// core. Services here hold no I/O and no infrastructure dependencies.
package service

import (
	"github.com/turtacn/mfo-shield/internal/domain/models"
)

// RiskCalculatorService computes weighted risk scores and maps them to
// discrete risk levels.
type RiskCalculatorService interface {
	// CalculateScore returns the weighted sum of the known risk factors
	// present in the input, clamped to the valid score range. Unknown
	// keys are ignored and absent factors contribute nothing.
	CalculateScore(factors map[string]float64) float64

	// LevelForScore maps a score to its risk level band.
	LevelForScore(score float64) models.RiskLevel
}
