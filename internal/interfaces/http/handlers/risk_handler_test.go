package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/mfo-shield/internal/application/dto"
	"github.com/turtacn/mfo-shield/internal/application/service"
	"github.com/turtacn/mfo-shield/internal/domain/models"
	domainService "github.com/turtacn/mfo-shield/internal/domain/service"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

// MockAssessmentAppService is a mock for the AssessmentAppService
type MockAssessmentAppService struct {
	mock.Mock
}

func (m *MockAssessmentAppService) Assess(ctx context.Context, subjectID string, factors models.RiskFactors) (*models.RiskAssessment, error) {
	args := m.Called(ctx, subjectID, factors)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RiskAssessment), args.Error(1)
}

func newRiskRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	assessmentService := service.NewAssessmentAppService(
		domainService.NewRiskCalculatorService(),
		monitoring.NewMetricsWith(prometheus.NewRegistry()),
		logger.NewNoopLogger(),
		service.WithClock(func() time.Time {
			return time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
		}),
	)

	handler := NewRiskHandler(assessmentService, logger.NewNoopLogger())
	router := gin.New()
	router.POST("/subjects/:subject_id/risk", handler.AssessRisk)
	return router
}

func assessRequest(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}

	req, _ := http.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRiskHandler_AssessRisk(t *testing.T) {
	router := newRiskRouter()

	t.Run("Scores the documented example", func(t *testing.T) {
		body := `{"overdue_payments": 50, "loan_defaults": 20, "compliance_violations": 10, "regulatory_flags": 5}`
		rr := assessRequest(router, "/subjects/client-123/risk", body)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.AssessmentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, "client-123", resp.SubjectID)
		assert.Equal(t, 23.5, resp.RiskScore)
		assert.Equal(t, "LOW", resp.RiskLevel)
		assert.Equal(t, "2026-08-25T12:00:00Z", resp.Timestamp)
		assert.Equal(t, map[string]float64{
			"overdue_payments":      50,
			"loan_defaults":         20,
			"compliance_violations": 10,
			"regulatory_flags":      5,
		}, resp.Details)

		_, err := uuid.Parse(resp.AssessmentID)
		assert.NoError(t, err, "assessment IDs should be UUIDs")
	})

	t.Run("Empty body defaults all factors to zero", func(t *testing.T) {
		rr := assessRequest(router, "/subjects/client-123/risk", "")

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.AssessmentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

		assert.Equal(t, 0.0, resp.RiskScore)
		assert.Equal(t, "MINIMAL", resp.RiskLevel)
		assert.Equal(t, map[string]float64{
			"overdue_payments":      0,
			"loan_defaults":         0,
			"compliance_violations": 0,
			"regulatory_flags":      0,
		}, resp.Details)
	})

	t.Run("JSON null body behaves like an empty body", func(t *testing.T) {
		rr := assessRequest(router, "/subjects/client-123/risk", "null")

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.AssessmentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 0.0, resp.RiskScore)
	})

	t.Run("Unknown body keys are ignored", func(t *testing.T) {
		body := `{"overdue_payments": 100, "notes": "escalate", "history": {"flag": true}}`
		rr := assessRequest(router, "/subjects/client-123/risk", body)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp dto.AssessmentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 30.0, resp.RiskScore)
		assert.Equal(t, "LOW", resp.RiskLevel)
	})
}

func TestRiskHandler_AssessRisk_InvalidBody(t *testing.T) {
	router := newRiskRouter()

	cases := map[string]string{
		"malformed JSON":       `{not json`,
		"non-numeric factor":   `{"overdue_payments": "high"}`,
		"array instead of map": `[1, 2, 3]`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := assessRequest(router, "/subjects/client-123/risk", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())
		})
	}
}

func TestRiskHandler_AssessRisk_BlankSubject(t *testing.T) {
	router := newRiskRouter()

	rr := assessRequest(router, "/subjects/%20/risk", `{"overdue_payments": 50}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid subject_id"}`, rr.Body.String())
}

func TestRiskHandler_AssessRisk_ServiceFault(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockAssessmentAppService)
	mockService.On("Assess", mock.Anything, "client-500", mock.Anything).
		Return(nil, stderrors.New("ledger store unavailable")).Once()

	handler := NewRiskHandler(mockService, logger.NewNoopLogger())
	router := gin.New()
	router.POST("/subjects/:subject_id/risk", handler.AssessRisk)

	rr := assessRequest(router, "/subjects/client-500/risk", `{}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "ledger store unavailable")

	mockService.AssertExpectations(t)
}

func TestHealthHandler_Probes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHealthHandler()
	router := gin.New()
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadinessCheck)
	router.GET("/live", handler.LivenessCheck)

	cases := []struct {
		path string
		body string
	}{
		{"/health", `{"status":"healthy","service":"MFO-Shield-Risk-API"}`},
		{"/ready", `{"status":"ready"}`},
		{"/live", `{"status":"alive"}`},
	}

	for _, tc := range cases {
		req, _ := http.NewRequest(http.MethodGet, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, tc.body, rr.Body.String())
	}
}
