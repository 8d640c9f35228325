package slack

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingCredentials is returned when neither a bot token nor a user
// token is supplied for a call.
var ErrMissingCredentials = errors.New("slack: no bot or user token provided")

// Kind is the stable classification of an API failure. The set is closed:
// callers can switch over it without worrying about new variants appearing
// for known remote error codes.
type Kind string

// Error kinds.
const (
	KindAuth       Kind = "authentication"
	KindPermission Kind = "permission"
	KindNotFound   Kind = "not_found"
	KindRateLimit  Kind = "rate_limit"
	KindGeneric    Kind = "generic"
	KindTransport  Kind = "transport"
)

// APIError is the normalized failure representation for every Slack call.
// It is constructed once at the point of failure and never mutated.
type APIError struct {
	Kind       Kind
	Code       string // remote error code, empty for transport failures
	Message    string
	Retryable  bool
	RetryAfter int // seconds; only meaningful for KindRateLimit
	HTTPStatus int // 0 when the failure happened before a status was received
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" && e.Message != "" {
		return fmt.Sprintf("slack: %s (%s)", e.Message, e.Code)
	}
	if e.Code != "" {
		return fmt.Sprintf("slack: %s", e.Code)
	}
	return fmt.Sprintf("slack: %s", e.Message)
}

// defaultRetryAfter is used when a rate-limited response carries no
// Retry-After header.
const defaultRetryAfter = 60

// Remote error codes grouped by classification. The Slack Web API signals
// application errors through the envelope's error field with HTTP 200, so
// the HTTP status recorded here is the canonical one for the family, not
// what the wire carried.
var (
	authCodes = map[string]bool{
		"invalid_auth":     true,
		"not_authed":       true,
		"account_inactive": true,
		"token_revoked":    true,
		"token_expired":    true,
	}
	permissionCodes = map[string]bool{
		"missing_scope":          true,
		"not_allowed_token_type": true,
		"ekm_access_denied":      true,
		"restricted_action":      true,
	}
	notFoundCodes = map[string]bool{
		"channel_not_found": true,
		"user_not_found":    true,
		"file_not_found":    true,
		"message_not_found": true,
	}
)

// Classify maps a remote error code into an APIError. It is total over all
// inputs: unknown codes fall through to KindGeneric rather than failing.
func Classify(code, message string) *APIError {
	if message == "" {
		message = code
	}
	switch {
	case authCodes[code]:
		return &APIError{Kind: KindAuth, Code: code, Message: message, HTTPStatus: http.StatusUnauthorized}
	case permissionCodes[code]:
		return &APIError{Kind: KindPermission, Code: code, Message: message, HTTPStatus: http.StatusForbidden}
	case notFoundCodes[code]:
		return &APIError{Kind: KindNotFound, Code: code, Message: message, HTTPStatus: http.StatusNotFound}
	case code == "ratelimited":
		return &APIError{
			Kind:       KindRateLimit,
			Code:       code,
			Message:    message,
			Retryable:  true,
			RetryAfter: defaultRetryAfter,
			HTTPStatus: http.StatusTooManyRequests,
		}
	default:
		return &APIError{Kind: KindGeneric, Code: code, Message: message}
	}
}

// classifyTransport wraps a failure from the HTTP round trip (dial error,
// timeout, connection reset, context cancellation) as a transport error.
// Everything http.Client.Do surfaces is a transport-level condition, so
// the result is always retryable regardless of message content.
func classifyTransport(err error) *APIError {
	return &APIError{
		Kind:      KindTransport,
		Message:   err.Error(),
		Retryable: true,
	}
}
