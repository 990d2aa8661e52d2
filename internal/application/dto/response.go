package dto

import (
	"github.com/turtacn/mfo-shield/pkg/constants"
	"github.com/turtacn/mfo-shield/pkg/errors"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusResponse is the body of the readiness and liveness probes.
type StatusResponse struct {
	Status string `json:"status"`
}

// NewHealthResponse reports the service as healthy.
func NewHealthResponse() *HealthResponse {
	return &HealthResponse{
		Status:  "healthy",
		Service: constants.ServiceName,
	}
}

// NewReadyResponse reports the service as ready to accept traffic.
func NewReadyResponse() *StatusResponse {
	return &StatusResponse{Status: "ready"}
}

// NewLiveResponse reports the service process as alive.
func NewLiveResponse() *StatusResponse {
	return &StatusResponse{Status: "alive"}
}

// RenderError resolves any error to its HTTP status and wire body.
// Non-application errors collapse to the generic 500 body so internal
// detail never reaches the caller.
func RenderError(err error) (int, *errors.ErrorResponse) {
	return errors.HTTPStatusFor(err), errors.ToGenericErrorResponse(err)
}
