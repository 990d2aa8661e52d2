package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/turtacn/mfo-shield/internal/domain/models"
	"github.com/turtacn/mfo-shield/internal/infrastructure/agents"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// OrchestrationAppService runs the agent pipeline for one job at a time.
// Run keeps all per-run state in locals, so one instance is safe for
// concurrent runs.
type OrchestrationAppService interface {
	// Run normalizes the raw job specification, fans out the agents, and
	// returns the aggregated result. A failed agent never fails the run.
	Run(ctx context.Context, rawSpec map[string]interface{}) (*models.OrchestrationResult, error)
}

// orchestrationAppServiceImpl is the concrete implementation of OrchestrationAppService
type orchestrationAppServiceImpl struct {
	agents  []agents.Agent
	metrics *monitoring.Metrics
	tracing *monitoring.TracingManager
	audit   *logger.AuditLogger
	logger  logger.Logger
}

// NewOrchestrationAppService creates a new instance of OrchestrationAppService
func NewOrchestrationAppService(
	agentSet []agents.Agent,
	metrics *monitoring.Metrics,
	tracing *monitoring.TracingManager,
	log logger.Logger,
) OrchestrationAppService {
	return &orchestrationAppServiceImpl{
		agents:  agentSet,
		metrics: metrics,
		tracing: tracing,
		audit:   logger.NewAuditLogger(log),
		logger:  log.WithComponent("orchestration_service"),
	}
}

// Run executes the agent pipeline and aggregates the outcomes.
func (s *orchestrationAppServiceImpl) Run(ctx context.Context, rawSpec map[string]interface{}) (*models.OrchestrationResult, error) {
	// 1. Normalize the raw specification with documented defaults
	spec := models.NormalizeJobSpec(rawSpec)
	ctx = context.WithValue(ctx, constants.ContextKeyJobID, spec.JobID)

	ctx, span := s.tracing.StartSpanWithAttributes(ctx, "orchestration.run", map[string]interface{}{
		"job_id":      spec.JobID,
		"description": spec.Description,
	})
	defer span.End()

	s.logger.Info(ctx, "Orchestration run started",
		logger.String("job_id", spec.JobID),
		logger.Int("agents", len(s.agents)),
	)

	start := time.Now()
	outcomes := make([]models.AgentOutcome, len(s.agents))

	// 2. Fan out all agents together. Each goroutine captures its outcome
	// in its own slot and returns nil, so one failure never cancels the
	// sibling tasks.
	g, groupCtx := errgroup.WithContext(ctx)
	for i, agent := range s.agents {
		i, agent := i, agent // per-iteration copies; required while go.mod predates Go 1.22 loopvar semantics
		g.Go(func() error {
			agentStart := time.Now()
			output, err := agent.Execute(groupCtx)
			elapsed := time.Since(agentStart)

			s.metrics.RecordAgentTask(agent.ID(), elapsed, err != nil)

			if err != nil {
				s.logger.Warn(groupCtx, "Agent task failed",
					logger.String("agent_id", string(agent.ID())),
					logger.Error(err),
					logger.Duration("elapsed", elapsed),
				)
				s.audit.LogAgentFailure(groupCtx, spec.JobID, string(agent.ID()), err.Error())
				outcomes[i] = models.NewFailedOutcome(agent.ID(), err)
				return nil
			}

			outcomes[i] = models.NewCompletedOutcome(agent.ID(), output)
			return nil
		})
	}

	// Join point: no goroutine returns an error, Wait only synchronizes.
	_ = g.Wait()

	// 3. Aggregate in submission order
	elapsed := time.Since(start)
	result := models.NewOrchestrationResult(spec.JobID, elapsed, outcomes)

	// 4. Record observability signals
	s.metrics.RecordOrchestrationRun(result.Status, elapsed)
	s.audit.LogOrchestrationRun(ctx, spec.JobID, result.DurationMS, result.FailedAgents())
	s.tracing.SetSpanAttributes(ctx, map[string]interface{}{
		"duration_ms":   result.DurationMS,
		"failed_agents": result.FailedAgents(),
	})

	s.logger.Info(ctx, "Orchestration run completed",
		logger.String("job_id", spec.JobID),
		logger.Int64("duration_ms", result.DurationMS),
		logger.Int("failed_agents", result.FailedAgents()),
	)

	return result, nil
}
