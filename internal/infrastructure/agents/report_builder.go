package agents

import (
	"context"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// ReportBuilderAgent simulates the report assembly stage.
type ReportBuilderAgent struct {
	delay *WorkDelay
}

// NewReportBuilderAgent creates the report builder stub.
func NewReportBuilderAgent(delay *WorkDelay) *ReportBuilderAgent {
	return &ReportBuilderAgent{delay: delay}
}

// ID returns the report builder agent identifier.
func (a *ReportBuilderAgent) ID() constants.AgentID {
	return constants.AgentIDReportBuilder
}

// Execute simulates the report assembly and returns its report.
func (a *ReportBuilderAgent) Execute(ctx context.Context) (map[string]interface{}, error) {
	if err := simulateWork(ctx, a.delay); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"agent_id":      "report_builder",
		"report_format": "pdf",
		"sections":      6,
		"status":        "generated",
	}, nil
}
