package agents

import (
	"context"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// RiskEngineAgent simulates the risk analysis stage of the pipeline.
type RiskEngineAgent struct {
	delay *WorkDelay
}

// NewRiskEngineAgent creates the risk engine stub.
func NewRiskEngineAgent(delay *WorkDelay) *RiskEngineAgent {
	return &RiskEngineAgent{delay: delay}
}

// ID returns the risk engine agent identifier.
func (a *RiskEngineAgent) ID() constants.AgentID {
	return constants.AgentIDRiskEngine
}

// Execute simulates the risk analysis and returns its report.
func (a *RiskEngineAgent) Execute(ctx context.Context) (map[string]interface{}, error) {
	if err := simulateWork(ctx, a.delay); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"agent_id":         "risk_engine",
		"risk_level":       "medium",
		"factors_analyzed": 5,
		"status":           "completed",
	}, nil
}
