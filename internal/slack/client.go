package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the Slack Web API endpoint.
	DefaultBaseURL = "https://slack.com/api"

	defaultTimeout   = 60 * time.Second
	maxResponseBytes = 10 << 20 // prevent unbounded reads from API responses
)

// Client dispatches authenticated calls against the Slack Web API. It holds
// only the immutable credential pair and transport configuration, so one
// Client may be used from any number of goroutines; it may equally be
// constructed fresh per call.
type Client struct {
	creds   Credentials
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the transport timeout. Ignored when WithHTTPClient is
// also supplied.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.http != nil {
			c.http.Timeout = d
		}
	}
}

// NewClient creates a client for the given credentials. The credentials are
// not validated here; an invalid or missing token surfaces on the first
// call.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		creds:   creds,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// enveloped is satisfied by every response type through its embedded
// Envelope, letting the dispatcher check the ok flag after a single decode.
type enveloped interface {
	envelope() *Envelope
}

// call issues one JSON POST to the named Web API method and decodes the
// response into T. There is no internal retry: every failure is returned
// immediately as an *APIError whose Retryable flag advises the caller.
//
// The decision procedure is two-phase because Slack returns HTTP 200 for
// most application errors: a 429 transport status fails first without
// inspecting the body; everything else is judged by the envelope's ok flag.
func call[T any, P interface {
	*T
	enveloped
}](ctx context.Context, c *Client, method string, params any) (*T, error) {
	auth, err := c.creds.Resolve()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("slack: marshal %s request: %w", method, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, body)
	if err != nil {
		return nil, fmt.Errorf("slack: create %s request: %w", method, err)
	}
	req.Header.Set("Authorization", auth.Authorization)
	req.Header.Set("Content-Type", auth.ContentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	// Rate limiting is the only application condition Slack signals at the
	// transport layer. Fail from the status and Retry-After header alone.
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &APIError{
			Kind:       KindRateLimit,
			Code:       "ratelimited",
			Message:    fmt.Sprintf("%s rate limited", method),
			Retryable:  true,
			RetryAfter: retryAfterSeconds(resp),
			HTTPStatus: http.StatusTooManyRequests,
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyTransport(err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &APIError{
			Kind:       KindGeneric,
			Message:    fmt.Sprintf("decode %s response: %v", method, err),
			HTTPStatus: resp.StatusCode,
		}
	}

	env := P(&out).envelope()
	if !env.OK {
		apiErr := Classify(env.Error, "")
		if apiErr.HTTPStatus == 0 && resp.StatusCode != http.StatusOK {
			apiErr.HTTPStatus = resp.StatusCode
		}
		return nil, apiErr
	}
	return &out, nil
}

// retryAfterSeconds parses the Retry-After header, defaulting to 60.
func retryAfterSeconds(resp *http.Response) int {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return secs
		}
	}
	return defaultRetryAfter
}
