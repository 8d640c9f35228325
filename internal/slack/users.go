package slack

import "context"

type usersListResponse struct {
	Envelope
	Members []User `json:"members"`
}

// ListUsers lists workspace members.
func (c *Client) ListUsers(ctx context.Context, cursor string, limit int, includeLocale bool) (Page[User], error) {
	params := struct {
		Cursor        string `json:"cursor,omitempty"`
		Limit         int    `json:"limit,omitempty"`
		IncludeLocale bool   `json:"include_locale,omitempty"`
	}{cursor, limit, includeLocale}
	resp, err := call[usersListResponse](ctx, c, "users.list", params)
	if err != nil {
		return Page[User]{}, err
	}
	return pageFromMeta(resp.Members, resp.ResponseMetadata), nil
}

type userInfoResponse struct {
	Envelope
	User User `json:"user"`
}

// GetUserInfo fetches a single user by ID.
func (c *Client) GetUserInfo(ctx context.Context, userID string) (*User, error) {
	params := struct {
		User string `json:"user"`
	}{userID}
	resp, err := call[userInfoResponse](ctx, c, "users.info", params)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// LookupUserByEmail finds a user by their registered email address.
func (c *Client) LookupUserByEmail(ctx context.Context, email string) (*User, error) {
	params := struct {
		Email string `json:"email"`
	}{email}
	resp, err := call[userInfoResponse](ctx, c, "users.lookupByEmail", params)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

type presenceResponse struct {
	Envelope
	Presence
}

// GetUserPresence fetches a user's presence state.
func (c *Client) GetUserPresence(ctx context.Context, userID string) (*Presence, error) {
	params := struct {
		User string `json:"user"`
	}{userID}
	resp, err := call[presenceResponse](ctx, c, "users.getPresence", params)
	if err != nil {
		return nil, err
	}
	return &resp.Presence, nil
}

// SetUserPresence sets the calling user's presence to "auto" or "away".
func (c *Client) SetUserPresence(ctx context.Context, presence string) error {
	params := struct {
		Presence string `json:"presence"`
	}{presence}
	_, err := call[Envelope](ctx, c, "users.setPresence", params)
	return err
}

type profileResponse struct {
	Envelope
	Profile UserProfile `json:"profile"`
}

// GetUserProfile fetches a user's profile. An empty userID returns the
// calling user's own profile.
func (c *Client) GetUserProfile(ctx context.Context, userID string, includeLabels bool) (*UserProfile, error) {
	params := struct {
		User          string `json:"user,omitempty"`
		IncludeLabels bool   `json:"include_labels,omitempty"`
	}{userID, includeLabels}
	resp, err := call[profileResponse](ctx, c, "users.profile.get", params)
	if err != nil {
		return nil, err
	}
	return &resp.Profile, nil
}

// SetUserProfile updates fields of the calling user's profile. Only fields
// set in the profile are sent; empty fields are omitted, so an empty string
// cannot be used to clear a field through this call.
func (c *Client) SetUserProfile(ctx context.Context, profile UserProfile) (*UserProfile, error) {
	params := struct {
		Profile UserProfile `json:"profile"`
	}{profile}
	resp, err := call[profileResponse](ctx, c, "users.profile.set", params)
	if err != nil {
		return nil, err
	}
	return &resp.Profile, nil
}
