package slack

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		code       string
		wantKind   Kind
		wantStatus int
		wantRetry  bool
	}{
		{"invalid_auth", KindAuth, http.StatusUnauthorized, false},
		{"not_authed", KindAuth, http.StatusUnauthorized, false},
		{"account_inactive", KindAuth, http.StatusUnauthorized, false},
		{"token_revoked", KindAuth, http.StatusUnauthorized, false},
		{"token_expired", KindAuth, http.StatusUnauthorized, false},
		{"missing_scope", KindPermission, http.StatusForbidden, false},
		{"not_allowed_token_type", KindPermission, http.StatusForbidden, false},
		{"ekm_access_denied", KindPermission, http.StatusForbidden, false},
		{"restricted_action", KindPermission, http.StatusForbidden, false},
		{"channel_not_found", KindNotFound, http.StatusNotFound, false},
		{"user_not_found", KindNotFound, http.StatusNotFound, false},
		{"file_not_found", KindNotFound, http.StatusNotFound, false},
		{"message_not_found", KindNotFound, http.StatusNotFound, false},
		{"ratelimited", KindRateLimit, http.StatusTooManyRequests, true},
		{"some_future_error", KindGeneric, 0, false},
		{"", KindGeneric, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := Classify(tt.code, "message text")
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, tt.wantStatus)
			}
			if got.Retryable != tt.wantRetry {
				t.Errorf("Retryable = %v, want %v", got.Retryable, tt.wantRetry)
			}
			if got.Code != tt.code {
				t.Errorf("Code = %q, want %q", got.Code, tt.code)
			}
		})
	}
}

func TestClassifyRateLimitDefaultRetryAfter(t *testing.T) {
	got := Classify("ratelimited", "slow down")
	if got.RetryAfter != 60 {
		t.Errorf("RetryAfter = %d, want 60", got.RetryAfter)
	}
	if !got.Retryable {
		t.Error("Retryable = false, want true")
	}
}

func TestClassifyIgnoresMessageText(t *testing.T) {
	// Kind is determined by the code alone, never by message content.
	got := Classify("invalid_auth", "ratelimited timeout network")
	if got.Kind != KindAuth {
		t.Errorf("Kind = %q, want %q", got.Kind, KindAuth)
	}
	if got.Retryable {
		t.Error("Retryable = true, want false")
	}
}

func TestClassifyEmptyMessageFallsBackToCode(t *testing.T) {
	got := Classify("channel_not_found", "")
	if got.Message != "channel_not_found" {
		t.Errorf("Message = %q, want %q", got.Message, "channel_not_found")
	}
}

func TestClassifyTransport(t *testing.T) {
	for _, err := range []error{
		errors.New("dial tcp: connection refused"),
		errors.New("read: connection reset by peer"),
		context.Canceled,
		context.DeadlineExceeded,
		errors.New("something entirely unexpected"),
	} {
		got := classifyTransport(err)
		if got.Kind != KindTransport {
			t.Errorf("classifyTransport(%v).Kind = %q, want %q", err, got.Kind, KindTransport)
		}
		if !got.Retryable {
			t.Errorf("classifyTransport(%v).Retryable = false, want true", err)
		}
		if got.Code != "" {
			t.Errorf("classifyTransport(%v).Code = %q, want empty", err, got.Code)
		}
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"code and message", &APIError{Code: "channel_not_found", Message: "no such channel"}, "slack: no such channel (channel_not_found)"},
		{"code only", &APIError{Code: "internal_error"}, "slack: internal_error"},
		{"message only", &APIError{Message: "connection reset"}, "slack: connection reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
