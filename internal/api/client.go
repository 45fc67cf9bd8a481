// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Haven quote backend.
//
// The client wraps every backend endpoint the widget exercises: identity
// submission, plan recommendation, freeform Q&A, auth, and flight lookup.
// Requests never retry automatically; the conversation layer surfaces each
// failure to the user, who decides whether to try again.
//
// SECURITY: Request logging records method, path, status, and duration only.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Configuration constants for the backend API.
const (
	// DefaultBaseURL points at a local backend instance.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout is the default timeout for API requests. Recommendation
	// generation runs an LLM pass per plan, so this is generous.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// PERFORMANCE: Shared HTTP client with connection pooling for all
// backend requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// Error variables for common backend errors.
var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user has not consented to the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates no record exists for the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the backend rejected the submission.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRateLimited indicates too many requests were made.
	ErrRateLimited = errors.New("rate limited")

	// ErrServer indicates a backend-side failure.
	ErrServer = errors.New("server error")
)

// APIError represents a structured error from the backend, carrying the
// HTTP status and the "detail" message from the error envelope. It
// unwraps to the sentinel matching its status, so callers can use
// errors.Is for the category and errors.As for the detail.
type APIError struct {
	Status int
	Detail string

	sentinel error
}

// NewAPIError builds an APIError for the given status and detail.
func NewAPIError(status int, detail string) *APIError {
	return &APIError{
		Status:   status,
		Detail:   detail,
		sentinel: sentinelForStatus(status),
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}

// Unwrap exposes the status-category sentinel.
func (e *APIError) Unwrap() error {
	return e.sentinel
}

// sentinelForStatus maps an HTTP status to its error category.
func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrInvalidInput
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		if status >= 500 {
			return ErrServer
		}
		return nil
	}
}

// Client is a client for the Haven quote backend.
type Client struct {
	baseURL    string
	token      string
	sessionID  string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient creates a backend client for the given base URL. An empty URL
// falls back to the default local backend.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		timeout:    DefaultTimeout,
	}
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient = &http.Client{
		Transport: sharedHTTPClient.Transport,
		Timeout:   timeout,
	}
	return c
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// SetSession tags subsequent requests with an X-Session-ID header so
// backend logs can be correlated to one widget session.
func (c *Client) SetSession(id string) {
	c.sessionID = id
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// logRequest logs an API request without exposing sensitive data.
// SECURITY: No headers (may contain auth), no body (NRIC, documents).
func logRequest(req *http.Request) {
	log.Printf("API Request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs an API response with duration.
// SECURITY: Only status code and duration, never the body.
func logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API Response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}

// readResponse reads the response body with a size limit.
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// do performs a single request and decodes the JSON reply into out.
// Requests are never retried here.
func (c *Client) do(ctx context.Context, method, path string, reqBody, out interface{}) error {
	var bodyReader io.Reader
	if reqBody != nil {
		bodyBytes, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "haven-tui/0.1.0")
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logRequest(req)
	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	// SECURITY: Clear Authorization header after the request to keep it
	// out of any downstream logging.
	req.Header.Del("Authorization")

	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	logResponse(resp, duration)

	body, err := readResponse(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return handleErrorResponse(resp.StatusCode, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// handleErrorResponse converts HTTP error responses to Go errors, pulling
// the human-readable message out of the backend's {"detail": ...} envelope.
func handleErrorResponse(statusCode int, body []byte) error {
	var envelope errorDetail
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != "" {
		return NewAPIError(statusCode, envelope.Detail)
	}

	// Unparseable error body: keep the category, drop the noise.
	if sentinel := sentinelForStatus(statusCode); sentinel != nil {
		return fmt.Errorf("%w: status %d", sentinel, statusCode)
	}
	return &APIError{Status: statusCode, Detail: strings.TrimSpace(string(body))}
}

// =============================================================================
// IDENTITY AND TRIP DATA
// =============================================================================

// SubmitTripInput sends an identity submission (NRIC, booking document, or
// manual entry) and returns the resolved trip record.
func (c *Client) SubmitTripInput(ctx context.Context, input TripInput) (*TripRecord, error) {
	var record TripRecord
	if err := c.do(ctx, http.MethodPost, "/user/input_data", input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// FlightSummary fetches the booking snapshot linked to an NRIC. Country
// fields come back as full names, not codes.
func (c *Client) FlightSummary(ctx context.Context, nric string) (*FlightSummary, error) {
	var summary FlightSummary
	path := "/flights/summary/" + url.PathEscape(nric)
	if err := c.do(ctx, http.MethodGet, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// =============================================================================
// RECOMMENDATIONS AND Q&A
// =============================================================================

// RecommendPlans requests ranked insurance plans for the given trip record.
func (c *Client) RecommendPlans(ctx context.Context, record TripRecord) (*RecommendResponse, error) {
	var resp RecommendResponse
	if err := c.do(ctx, http.MethodPost, "/chat/recommend_plans", record, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ask sends a freeform insurance question with optional trip context and
// returns the specialist answer as markdown.
func (c *Client) Ask(ctx context.Context, question, tripContext string) (*AnswerResponse, error) {
	req := questionRequest{Question: question, Context: tripContext}
	var resp AnswerResponse
	if err := c.do(ctx, http.MethodPost, "/chat/ask", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// =============================================================================
// AUTH
// =============================================================================

// Login authenticates with email and password. Bad credentials come back
// as Success=false with a message, not as an error.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := loginRequest{Email: email, Password: password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.Success && resp.Token != "" {
		c.SetToken(resp.Token)
	}
	return &resp, nil
}

// TrackingStatus reports whether the user consented to activity tracking.
func (c *Client) TrackingStatus(ctx context.Context, userID string) (*TrackingStatus, error) {
	var status TrackingStatus
	path := "/auth/tracking-status/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// RecentActivity fetches the proactive greeting for a tracking-enabled
// user. Returns ErrForbidden when tracking is disabled.
func (c *Client) RecentActivity(ctx context.Context, userID string) (*Activity, error) {
	var activity Activity
	path := "/auth/recent-activity/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}
