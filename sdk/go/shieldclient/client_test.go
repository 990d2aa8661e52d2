package shieldclient_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/mfo-shield/sdk/go/shieldclient"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "MFO-Shield-Risk-API",
		})
	})
	mux.HandleFunc("/subjects/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var factors map[string]float64
		if err := json.NewDecoder(r.Body).Decode(&factors); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid request body"})
			return
		}

		if r.URL.Path == "/subjects/blocked/risk" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid subject_id"})
			return
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"assessment_id": "7f9c24e5-45b6-4aa5-9bfa-8f0c40e1c6bb",
			"subject_id":    "client-123",
			"risk_score":    23.5,
			"risk_level":    "LOW",
			"timestamp":     "2026-08-25T12:00:00Z",
			"details":       factors,
		})
	})

	return httptest.NewServer(mux)
}

func TestClient_Health(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()

	client := shieldclient.New(server.URL)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "MFO-Shield-Risk-API", health.Service)
}

func TestClient_AssessRisk(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()

	client := shieldclient.New(server.URL)

	assessment, err := client.AssessRisk(context.Background(), "client-123", shieldclient.RiskFactors{
		"overdue_payments": 50,
		"loan_defaults":    20,
	})
	require.NoError(t, err)

	assert.Equal(t, "client-123", assessment.SubjectID)
	assert.Equal(t, 23.5, assessment.RiskScore)
	assert.Equal(t, "LOW", assessment.RiskLevel)
	assert.Equal(t, 50.0, assessment.Details["overdue_payments"])
}

func TestClient_AssessRisk_NilFactors(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()

	client := shieldclient.New(server.URL)

	_, err := client.AssessRisk(context.Background(), "client-123", nil)
	assert.NoError(t, err, "a nil factors map should send an empty JSON object")
}

func TestClient_AssessRisk_APIError(t *testing.T) {
	server := newAPIServer(t)
	defer server.Close()

	client := shieldclient.New(server.URL)

	_, err := client.AssessRisk(context.Background(), "blocked", shieldclient.RiskFactors{})
	require.Error(t, err)

	var apiErr *shieldclient.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid subject_id", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "Invalid subject_id")
}

func TestClient_AssessRisk_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream gateway exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client := shieldclient.New(server.URL)

	_, err := client.AssessRisk(context.Background(), "client-123", nil)
	require.Error(t, err)

	var apiErr *shieldclient.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestClient_ConnectionError(t *testing.T) {
	client := shieldclient.New("http://127.0.0.1:1")

	_, err := client.Health(context.Background())
	assert.Error(t, err)

	var apiErr *shieldclient.APIError
	assert.False(t, stderrors.As(err, &apiErr), "transport errors should not masquerade as API errors")
}
