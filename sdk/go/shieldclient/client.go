// Package shieldclient provides a typed Go client for the MFO Shield Risk API.
package shieldclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// APIError is an error response decoded from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mfo-shield: %s (status %d)", e.Message, e.StatusCode)
}

// RiskFactors maps factor names to their raw values. Factors the service
// does not know are ignored server-side.
type RiskFactors map[string]float64

// Assessment is the parsed body of a successful risk assessment.
type Assessment struct {
	AssessmentID string             `json:"assessment_id"`
	SubjectID    string             `json:"subject_id"`
	RiskScore    float64            `json:"risk_score"`
	RiskLevel    string             `json:"risk_level"`
	Timestamp    string             `json:"timestamp"`
	Details      map[string]float64 `json:"details"`
}

// Health is the parsed body of the health endpoint.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// Client is a thread-safe client for the MFO Shield Risk API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health fetches the service health document.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}

	var out Health
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssessRisk submits the factor values for one subject and returns the
// completed assessment. A nil factors map assesses with all factors at zero.
func (c *Client) AssessRisk(ctx context.Context, subjectID string, factors RiskFactors) (*Assessment, error) {
	if factors == nil {
		factors = RiskFactors{}
	}

	body, err := json.Marshal(factors)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/subjects/%s/risk", c.baseURL, url.PathEscape(subjectID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out Assessment
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads the single-field error body the service emits.
// Bodies that do not match fall back to the HTTP status text.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
