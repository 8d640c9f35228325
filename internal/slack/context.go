package slack

import "context"

type credentialsKey struct{}

// WithCredentials returns a context carrying request-scoped credentials.
// Serving layers use this to let an HTTP caller supply its own tokens
// instead of the process-wide configuration.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext returns request-scoped credentials, if any.
func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok && (creds.BotToken != "" || creds.UserToken != "")
}
