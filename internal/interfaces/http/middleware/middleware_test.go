package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/turtacn/mfo-shield/internal/config"
	"github.com/turtacn/mfo-shield/internal/infrastructure/monitoring"
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/logger"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seenInContext string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		seenInContext, _ = c.Request.Context().Value(constants.ContextKeyRequestID).(string)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	echoed := rr.Header().Get(RequestIDHeader)
	require.NotEmpty(t, echoed)
	_, err := uuid.Parse(echoed)
	assert.NoError(t, err, "generated request IDs should be UUIDs")
	assert.Equal(t, echoed, seenInContext, "handler should see the same ID that is echoed")
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-chosen-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "client-chosen-id", rr.Header().Get(RequestIDHeader))
}

func TestRecovery_ConvertsPanicToGenericError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery(logger.NewNoopLogger()))
	router.GET("/boom", func(c *gin.Context) {
		panic("secret connection string")
	})

	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "secret connection string")
}

func newIdempotencyRouter(cfg *config.IdempotencyConfig, metrics *monitoring.Metrics) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := cache.New(cfg.TTL, 2*cfg.TTL)
	router := gin.New()
	router.Use(Idempotency(store, cfg, metrics, logger.NewNoopLogger()))
	router.POST("/submit", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "accepted"})
	})
	router.POST("/other", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "accepted"})
	})
	router.GET("/lookup", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func postWithKey(router *gin.Engine, path string, key string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestIdempotency_RejectsReplayedKey(t *testing.T) {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	cfg := &config.IdempotencyConfig{Enabled: true, TTL: time.Minute}
	router := newIdempotencyRouter(cfg, metrics)

	first := postWithKey(router, "/submit", "order-42")
	assert.Equal(t, http.StatusOK, first.Code)

	replay := postWithKey(router, "/submit", "order-42")
	assert.Equal(t, http.StatusConflict, replay.Code)
	assert.JSONEq(t, `{"error":"Duplicate request"}`, replay.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.IdempotencyReplays))

	fresh := postWithKey(router, "/submit", "order-43")
	assert.Equal(t, http.StatusOK, fresh.Code)
}

func TestIdempotency_ScopesKeysByPath(t *testing.T) {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	cfg := &config.IdempotencyConfig{Enabled: true, TTL: time.Minute}
	router := newIdempotencyRouter(cfg, metrics)

	assert.Equal(t, http.StatusOK, postWithKey(router, "/submit", "order-42").Code)
	assert.Equal(t, http.StatusOK, postWithKey(router, "/other", "order-42").Code)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.IdempotencyReplays))
}

func TestIdempotency_PassesThroughWithoutKey(t *testing.T) {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	cfg := &config.IdempotencyConfig{Enabled: true, TTL: time.Minute}
	router := newIdempotencyRouter(cfg, metrics)

	assert.Equal(t, http.StatusOK, postWithKey(router, "/submit", "").Code)
	assert.Equal(t, http.StatusOK, postWithKey(router, "/submit", "").Code)
}

func TestIdempotency_DisabledPassesThrough(t *testing.T) {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	cfg := &config.IdempotencyConfig{Enabled: false, TTL: time.Minute}
	router := newIdempotencyRouter(cfg, metrics)

	assert.Equal(t, http.StatusOK, postWithKey(router, "/submit", "order-42").Code)
	assert.Equal(t, http.StatusOK, postWithKey(router, "/submit", "order-42").Code)
}

func TestIdempotency_IgnoresNonMutatingMethods(t *testing.T) {
	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	cfg := &config.IdempotencyConfig{Enabled: true, TTL: time.Minute}
	router := newIdempotencyRouter(cfg, metrics)

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/lookup", nil)
		req.Header.Set(IdempotencyKeyHeader, "order-42")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestObservability_RecordsRouteMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	router := gin.New()
	router.Use(Observability(otel.Tracer("test"), metrics))
	router.GET("/subjects/:subject_id/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/subjects/abc/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	count := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/subjects/:subject_id/ping", "200"))
	assert.Equal(t, 1.0, count, "counter should use the route template as the path label")
}

func TestObservability_LabelsUnmatchedRoutesAsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	metrics := monitoring.NewMetricsWith(prometheus.NewRegistry())
	router := gin.New()
	router.Use(Observability(otel.Tracer("test"), metrics))

	req, _ := http.NewRequest(http.MethodGet, "/no/such/route", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	count := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "not_found", "404"))
	assert.Equal(t, 1.0, count)
}

func TestRequestLogger_DoesNotAlterResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestLogger(logger.NewNoopLogger()))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/bad", func(c *gin.Context) { c.String(http.StatusBadRequest, "bad") })
	router.GET("/fault", func(c *gin.Context) { c.String(http.StatusInternalServerError, "fault") })

	for path, want := range map[string]int{"/ok": 200, "/bad": 400, "/fault": 500} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, want, rr.Code)
	}
}
