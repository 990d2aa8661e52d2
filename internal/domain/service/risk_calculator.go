package service

import (
	"github.com/turtacn/mfo-shield/internal/domain/models"
	"github.com/turtacn/mfo-shield/pkg/constants"
)

// Ensure it satisfies the interface in interfaces.go
var _ RiskCalculatorService = (*riskCalculatorService)(nil)

type riskCalculatorService struct{}

// NewRiskCalculatorService creates the default weighted-sum calculator.
func NewRiskCalculatorService() RiskCalculatorService {
	return &riskCalculatorService{}
}

func (s *riskCalculatorService) CalculateScore(factors map[string]float64) float64 {
	score := 0.0
	for _, factor := range constants.KnownRiskFactors {
		value, ok := factors[string(factor)]
		if !ok {
			continue
		}
		score += value * constants.RiskFactorWeights[factor]
	}

	if score < constants.RiskScoreMin {
		return constants.RiskScoreMin
	}
	if score > constants.RiskScoreMax {
		return constants.RiskScoreMax
	}
	return score
}

func (s *riskCalculatorService) LevelForScore(score float64) models.RiskLevel {
	switch {
	case score >= constants.RiskScoreCriticalThreshold:
		return models.RiskLevelCritical
	case score >= constants.RiskScoreHighThreshold:
		return models.RiskLevelHigh
	case score >= constants.RiskScoreMediumThreshold:
		return models.RiskLevelMedium
	case score >= constants.RiskScoreLowThreshold:
		return models.RiskLevelLow
	default:
		return models.RiskLevelMinimal
	}
}
