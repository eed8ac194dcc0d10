// Package apiclient posts finished assessment payloads to the external
// evaluation service. Transport failures are returned as errors scoped to a
// single submission so that a batch can continue past them.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Response describes the service's reply. A non-2xx status is an application
// response, not a transport error; callers must branch on it.
type Response struct {
	StatusCode int
	Body       string
}

// OK reports whether the service accepted the payload.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Error represents a transport failure while contacting the service.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("api error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the POST behavior.
type Options struct {
	Timeout time.Duration
	Headers map[string]string
}

// DefaultOptions returns sensible defaults for submissions.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// PostJSON serializes payload as JSON and posts it to apiURL. It returns the
// service's response regardless of status code; only transport-level
// problems (bad URL, connection failure, timeout) produce an error.
func PostJSON(ctx context.Context, apiURL string, payload any, opts *Options) (*Response, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(apiURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: apiURL, Message: "invalid URL", Cause: err}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{URL: apiURL, Message: "failed to encode payload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{URL: apiURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: opts.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: apiURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: apiURL, Message: "failed to read response body", Cause: err}
	}

	return &Response{StatusCode: resp.StatusCode, Body: string(respBody)}, nil
}
