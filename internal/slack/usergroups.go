package slack

import "context"

type userGroupResponse struct {
	Envelope
	UserGroup UserGroup `json:"usergroup"`
}

// CreateUserGroupRequest are the parameters for usergroups.create.
type CreateUserGroupRequest struct {
	Name        string `json:"name"`
	Handle      string `json:"handle,omitempty"`
	Description string `json:"description,omitempty"`
	Channels    string `json:"channels,omitempty"` // comma-separated default channel IDs
}

// CreateUserGroup creates a user group.
func (c *Client) CreateUserGroup(ctx context.Context, req CreateUserGroupRequest) (*UserGroup, error) {
	resp, err := call[userGroupResponse](ctx, c, "usergroups.create", req)
	if err != nil {
		return nil, err
	}
	return &resp.UserGroup, nil
}

// UpdateUserGroupRequest are the parameters for usergroups.update. Empty
// fields are omitted and left unchanged remotely.
type UpdateUserGroupRequest struct {
	UserGroup   string `json:"usergroup"`
	Name        string `json:"name,omitempty"`
	Handle      string `json:"handle,omitempty"`
	Description string `json:"description,omitempty"`
	Channels    string `json:"channels,omitempty"`
}

// UpdateUserGroup updates a user group's metadata.
func (c *Client) UpdateUserGroup(ctx context.Context, req UpdateUserGroupRequest) (*UserGroup, error) {
	resp, err := call[userGroupResponse](ctx, c, "usergroups.update", req)
	if err != nil {
		return nil, err
	}
	return &resp.UserGroup, nil
}

type userGroupIDParams struct {
	UserGroup string `json:"usergroup"`
}

// EnableUserGroup re-enables a disabled user group.
func (c *Client) EnableUserGroup(ctx context.Context, userGroupID string) (*UserGroup, error) {
	resp, err := call[userGroupResponse](ctx, c, "usergroups.enable", userGroupIDParams{userGroupID})
	if err != nil {
		return nil, err
	}
	return &resp.UserGroup, nil
}

// DisableUserGroup disables a user group.
func (c *Client) DisableUserGroup(ctx context.Context, userGroupID string) (*UserGroup, error) {
	resp, err := call[userGroupResponse](ctx, c, "usergroups.disable", userGroupIDParams{userGroupID})
	if err != nil {
		return nil, err
	}
	return &resp.UserGroup, nil
}

type userGroupsListResponse struct {
	Envelope
	UserGroups []UserGroup `json:"usergroups"`
}

// ListUserGroups lists the workspace's user groups. Unpaginated.
func (c *Client) ListUserGroups(ctx context.Context, includeDisabled, includeCount, includeUsers bool) ([]UserGroup, error) {
	params := struct {
		IncludeDisabled bool `json:"include_disabled,omitempty"`
		IncludeCount    bool `json:"include_count,omitempty"`
		IncludeUsers    bool `json:"include_users,omitempty"`
	}{includeDisabled, includeCount, includeUsers}
	resp, err := call[userGroupsListResponse](ctx, c, "usergroups.list", params)
	if err != nil {
		return nil, err
	}
	return resp.UserGroups, nil
}

type userGroupUsersResponse struct {
	Envelope
	Users []string `json:"users"`
}

// ListUserGroupMembers lists the user IDs in a user group.
func (c *Client) ListUserGroupMembers(ctx context.Context, userGroupID string, includeDisabled bool) ([]string, error) {
	params := struct {
		UserGroup       string `json:"usergroup"`
		IncludeDisabled bool   `json:"include_disabled,omitempty"`
	}{userGroupID, includeDisabled}
	resp, err := call[userGroupUsersResponse](ctx, c, "usergroups.users.list", params)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateUserGroupMembers replaces the entire member list of a user group
// with the given comma-separated user IDs.
func (c *Client) UpdateUserGroupMembers(ctx context.Context, userGroupID, userIDs string) (*UserGroup, error) {
	params := struct {
		UserGroup string `json:"usergroup"`
		Users     string `json:"users"`
	}{userGroupID, userIDs}
	resp, err := call[userGroupResponse](ctx, c, "usergroups.users.update", params)
	if err != nil {
		return nil, err
	}
	return &resp.UserGroup, nil
}
