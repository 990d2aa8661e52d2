package handlers

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/mfo-shield/internal/application/dto"
	"github.com/turtacn/mfo-shield/internal/application/service"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/errors"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// RiskHandler serves the risk assessment endpoint.
type RiskHandler struct {
	assessmentService service.AssessmentAppService
	log               logger.Logger
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(assessmentService service.AssessmentAppService, log logger.Logger) *RiskHandler {
	return &RiskHandler{
		assessmentService: assessmentService,
		log:               log.WithComponent("risk_handler"),
	}
}

// AssessRisk handles POST /subjects/:subject_id/risk. An absent or empty
// body assesses with all factors at zero; any other body must decode as a
// JSON object with numeric factor values.
func (h *RiskHandler) AssessRisk(c *gin.Context) {
	subjectID := c.Param("subject_id")

	ctx := context.WithValue(c.Request.Context(), constants.ContextKeySubjectID, subjectID)
	c.Request = c.Request.WithContext(ctx)

	var req dto.RiskFactorsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		h.log.Warn(ctx, "Rejected undecodable request body",
			logger.String("subject_id", subjectID),
			logger.String("reason", err.Error()),
		)
		status, body := dto.RenderError(errors.ErrInvalidRequestBody())
		c.AbortWithStatusJSON(status, body)
		return
	}

	assessment, err := h.assessmentService.Assess(ctx, subjectID, req.ToFactors())
	if err != nil {
		if errors.ShouldLogError(err) {
			h.log.Error(ctx, "Risk assessment failed", err, logger.String("subject_id", subjectID))
		}
		status, body := dto.RenderError(err)
		c.AbortWithStatusJSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.NewAssessmentResponse(assessment))
}
