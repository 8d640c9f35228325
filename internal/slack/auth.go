package slack

import "context"

// Credentials is the per-call token pair. At least one token must be set;
// when both are present the bot token wins. The pair is immutable for the
// lifetime of a Client and is never persisted or logged in cleartext.
type Credentials struct {
	BotToken  string
	UserToken string
}

// ResolvedAuth is the header material for one authenticated call.
type ResolvedAuth struct {
	Authorization string
	ContentType   string
}

// Resolve selects the token to use and builds the request headers. It does
// not validate the token against Slack; an invalid token is only discovered
// by the first dispatched call. Returns ErrMissingCredentials when both
// tokens are empty.
func (c Credentials) Resolve() (ResolvedAuth, error) {
	token := c.BotToken
	if token == "" {
		token = c.UserToken
	}
	if token == "" {
		return ResolvedAuth{}, ErrMissingCredentials
	}
	return ResolvedAuth{
		Authorization: "Bearer " + token,
		ContentType:   "application/json; charset=utf-8",
	}, nil
}

// AuthTestResponse is the response of auth.test, identifying the workspace
// and identity behind the supplied token.
type AuthTestResponse struct {
	Envelope
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
	BotID  string `json:"bot_id,omitempty"`
}

// AuthTest checks the supplied credentials against Slack and returns the
// authenticated identity.
func (c *Client) AuthTest(ctx context.Context) (*AuthTestResponse, error) {
	return call[AuthTestResponse](ctx, c, "auth.test", nil)
}
