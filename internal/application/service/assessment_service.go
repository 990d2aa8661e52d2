// Package service provides the application services that orchestrate the
// domain services, agents, and observability backends.
package service

import (
	"context"
	"math"
	"time"

	"github.com/turtacn/mfo-shield/internal/domain/models"
	domainService "github.com/turtacn/mfo-shield/internal/domain/service"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/pkg/errors"
	"github.com/turtacn/mfo-shield/pkg/logger"
	"github.com/turtacn/mfo-shield/pkg/utils"
)

// AssessmentAppService performs risk assessments for subjects.
type AssessmentAppService interface {
	// Assess computes the weighted risk score for the subject and returns
	// the completed assessment.
	Assess(ctx context.Context, subjectID string, factors models.RiskFactors) (*models.RiskAssessment, error)
}

// AssessmentOption customizes the assessment service.
type AssessmentOption func(*assessmentAppServiceImpl)

// WithClock replaces the time source, used by tests for fixed timestamps.
func WithClock(now func() time.Time) AssessmentOption {
	return func(s *assessmentAppServiceImpl) {
		s.now = now
	}
}

// assessmentAppServiceImpl is the concrete implementation of AssessmentAppService
type assessmentAppServiceImpl struct {
	calculator domainService.RiskCalculatorService
	metrics    *monitoring.Metrics
	audit      *logger.AuditLogger
	perf       *logger.PerformanceLogger
	logger     logger.Logger
	now        func() time.Time
}

// NewAssessmentAppService creates a new instance of AssessmentAppService
func NewAssessmentAppService(
	calculator domainService.RiskCalculatorService,
	metrics *monitoring.Metrics,
	log logger.Logger,
	opts ...AssessmentOption,
) AssessmentAppService {
	s := &assessmentAppServiceImpl{
		calculator: calculator,
		metrics:    metrics,
		audit:      logger.NewAuditLogger(log),
		perf:       logger.NewPerformanceLogger(log),
		logger:     log.WithComponent("assessment_service"),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Assess validates the subject, scores the factors, and builds the assessment.
func (s *assessmentAppServiceImpl) Assess(ctx context.Context, subjectID string, factors models.RiskFactors) (*models.RiskAssessment, error) {
	done := s.perf.StartOperation(ctx, "risk_assessment")
	start := time.Now()

	// 1. Validate the subject identifier
	if !utils.ValidateNotEmpty(subjectID) {
		s.logger.Warn(ctx, "Rejected assessment with blank subject_id")
		return nil, errors.ErrInvalidSubjectID()
	}

	// 2. Compute score and level. The level is derived from the exact
	// score; rounding applies to the reported value only.
	score := s.calculator.CalculateScore(factors)
	level := s.calculator.LevelForScore(score)
	rounded := math.Round(score*100) / 100

	// 3. Build the assessment with a fresh identifier and UTC timestamp
	assessment := models.NewRiskAssessment(subjectID, rounded, level, factors, s.now())

	// 4. Record observability signals
	s.metrics.RecordRiskAssessment(string(level), "success", rounded, time.Since(start))
	s.audit.LogRiskAssessment(ctx, assessment.AssessmentID, subjectID, rounded, string(level))
	done(logger.String("subject_id", subjectID))

	s.logger.Info(ctx, "Risk assessment completed",
		logger.String("assessment_id", assessment.AssessmentID),
		logger.String("subject_id", subjectID),
		logger.Float64("risk_score", rounded),
		logger.String("risk_level", string(level)),
	)

	return assessment, nil
}
