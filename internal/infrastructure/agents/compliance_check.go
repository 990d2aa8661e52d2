package agents

import (
	"context"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// ComplianceCheckAgent simulates the compliance rule evaluation stage.
type ComplianceCheckAgent struct {
	delay *WorkDelay
}

// NewComplianceCheckAgent creates the compliance check stub.
func NewComplianceCheckAgent(delay *WorkDelay) *ComplianceCheckAgent {
	return &ComplianceCheckAgent{delay: delay}
}

// ID returns the compliance check agent identifier.
func (a *ComplianceCheckAgent) ID() constants.AgentID {
	return constants.AgentIDComplianceCheck
}

// Execute simulates the rule evaluation and returns its report.
func (a *ComplianceCheckAgent) Execute(ctx context.Context) (map[string]interface{}, error) {
	if err := simulateWork(ctx, a.delay); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"agent_id":      "compliance_check",
		"rules_checked": 8,
		"violations":    0,
		"status":        "passed",
	}, nil
}
