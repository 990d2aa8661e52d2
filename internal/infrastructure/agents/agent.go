// Package agents provides the assessment agents dispatched by the
// orchestrator. The current implementations are simulation stubs that
// stand in for the real risk engine integrations.
package agents

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/turtacn/mfo-shield/pkg/constants"
)

// Agent is one unit of work dispatched during an orchestration run.
type Agent interface {
	// ID returns the stable agent identifier.
	ID() constants.AgentID

	// Execute runs the agent task and returns its output document.
	// Implementations must honor context cancellation.
	Execute(ctx context.Context) (map[string]interface{}, error)
}

// WorkDelay holds the simulated processing time shared by the stub agents.
// It is safe for concurrent use; configuration hot reload updates it while
// runs are in flight.
type WorkDelay struct {
	nanos atomic.Int64
}

// NewWorkDelay creates a holder initialized to d.
func NewWorkDelay(d time.Duration) *WorkDelay {
	w := &WorkDelay{}
	w.Set(d)
	return w
}

// Get returns the current delay.
func (w *WorkDelay) Get() time.Duration {
	return time.Duration(w.nanos.Load())
}

// Set replaces the delay. Negative values are treated as zero.
func (w *WorkDelay) Set(d time.Duration) {
	if d < 0 {
		d = 0
	}
	w.nanos.Store(int64(d))
}

// DefaultSet returns the four stub agents in their canonical dispatch order.
func DefaultSet(delay *WorkDelay) []Agent {
	return []Agent{
		NewRiskEngineAgent(delay),
		NewDataFetcherAgent(delay),
		NewComplianceCheckAgent(delay),
		NewReportBuilderAgent(delay),
	}
}

// simulateWork blocks for the configured delay or until ctx is cancelled.
func simulateWork(ctx context.Context, delay *WorkDelay) error {
	d := delay.Get()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
