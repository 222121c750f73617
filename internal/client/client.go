// Package client talks to the CostCorrect analysis service.
// It packages the plan file and parameters into a multipart request and
// translates transport and HTTP failures into typed errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/intake"
)

// Failure causes. The user sees one message; the cause is for diagnostics.
const (
	CauseTransport = "transport"
	CauseRemote    = "remote"
	CauseMalformed = "malformed"
)

// Error is an analysis failure with a user-facing message and a cause.
type Error struct {
	Cause   string
	Status  int // HTTP status for remote rejections, 0 otherwise
	Message string
}

func (e *Error) Error() string { return e.Message }

// Params are the analysis options sent with every upload.
type Params struct {
	Floors         int
	EstimatePrices bool
}

// DefaultParams are the free-tier values: one floor, no pricing.
func DefaultParams() Params {
	return Params{Floors: 1, EstimatePrices: false}
}

// Client is an HTTP client for the analysis service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a Client for the service at baseURL.
// token may be empty; the service then resolves the caller as free tier.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Analyse uploads the plan file with the given parameters and returns the
// parsed Bill of Quantities. This is the only suspending operation in the
// whole workflow; everything around it is synchronous.
func (c *Client) Analyse(ctx context.Context, file *intake.File, params Params) (*boq.Result, error) {
	body, contentType, err := c.buildUploadBody(file, params)
	if err != nil {
		return nil, &Error{Cause: CauseTransport, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", body)
	if err != nil {
		return nil, &Error{Cause: CauseTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", contentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Cause: CauseTransport, Message: "Could not reach the analysis service"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Cause: CauseTransport, Message: "Could not reach the analysis service"}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, data)
	}

	result, err := boq.Decode(data)
	if err != nil {
		return nil, &Error{Cause: CauseMalformed, Message: "Something went wrong"}
	}
	return result, nil
}

// FetchTier resolves the caller's subscription tier via GET /api/me.
// Any failure resolves to "free": the service is the authority and an
// unreachable service must never unlock paid features.
func (c *Client) FetchTier(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/me", nil)
	if err != nil {
		return "free"
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "free"
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "free"
	}

	var payload struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Tier == "" {
		return "free"
	}
	return payload.Tier
}

// buildUploadBody assembles the multipart form: the binary file plus the
// stringified floors and estimate_prices fields.
func (c *Client) buildUploadBody(file *intake.File, params Params) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("building upload: %w", err)
	}
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", file.Name, err)
	}
	defer f.Close()
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", file.Name, err)
	}

	if err := w.WriteField("floors", strconv.Itoa(params.Floors)); err != nil {
		return nil, "", fmt.Errorf("building upload: %w", err)
	}
	if err := w.WriteField("estimate_prices", strconv.FormatBool(params.EstimatePrices)); err != nil {
		return nil, "", fmt.Errorf("building upload: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("building upload: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// remoteError derives the user-facing message for a non-2xx response:
// the server's detail string when present, otherwise a templated message
// carrying the status code.
func remoteError(status int, body []byte) *Error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &Error{Cause: CauseRemote, Status: status, Message: payload.Detail}
	}
	return &Error{Cause: CauseRemote, Status: status, Message: fmt.Sprintf("Upload failed (%d)", status)}
}
