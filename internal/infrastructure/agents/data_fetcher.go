package agents

import (
	"context"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// DataFetcherAgent simulates the external data retrieval stage.
type DataFetcherAgent struct {
	delay *WorkDelay
}

// NewDataFetcherAgent creates the data fetcher stub.
func NewDataFetcherAgent(delay *WorkDelay) *DataFetcherAgent {
	return &DataFetcherAgent{delay: delay}
}

// ID returns the data fetcher agent identifier.
func (a *DataFetcherAgent) ID() constants.AgentID {
	return constants.AgentIDDataFetcher
}

// Execute simulates the data retrieval and returns its report.
func (a *DataFetcherAgent) Execute(ctx context.Context) (map[string]interface{}, error) {
	if err := simulateWork(ctx, a.delay); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"agent_id":        "data_fetcher",
		"sources_queried": 3,
		"records_fetched": 150,
		"status":          "completed",
	}, nil
}
