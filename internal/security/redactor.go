// Package security provides secret redaction for log output so Slack
// tokens never appear in cleartext anywhere the server writes.
package security

import (
	"regexp"
	"strings"
	"sync"
)

// RedactPlaceholder is the replacement string for redacted secrets.
const RedactPlaceholder = "***REDACTED***"

// Redactor replaces secret values in strings with a redaction placeholder.
// It matches both known token shapes (Slack xox* families, bearer headers)
// and literal values registered at runtime (the configured tokens).
// All methods are safe for concurrent use.
type Redactor struct {
	mu       sync.RWMutex
	patterns []*regexp.Regexp
	literals []string
}

// NewRedactor creates a Redactor pre-loaded with the default Slack token
// patterns.
func NewRedactor() *Redactor {
	return &Redactor{patterns: DefaultPatterns()}
}

// DefaultPatterns returns compiled patterns for the token formats this
// server handles.
func DefaultPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		// Slack token families: bot (xoxb), user (xoxp), app (xoxa),
		// legacy workspace (xoxs/xoxo), refresh (xoxe).
		regexp.MustCompile(`xox[abeops]-[a-zA-Z0-9-]+`),
		// Anything already formatted as a bearer header value.
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._-]+`),
	}
}

// AddLiteral registers a literal secret value to be redacted on sight.
// Empty strings are ignored.
func (r *Redactor) AddLiteral(secret string) {
	if secret == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.literals = append(r.literals, secret)
}

// Redact replaces all known secret patterns and literal values in s with
// RedactPlaceholder.
func (r *Redactor) Redact(s string) string {
	if s == "" {
		return s
	}

	r.mu.RLock()
	patterns := r.patterns
	literals := r.literals
	r.mu.RUnlock()

	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactPlaceholder)
	}
	for _, lit := range literals {
		if strings.Contains(s, lit) {
			s = strings.ReplaceAll(s, lit, RedactPlaceholder)
		}
	}
	return s
}
