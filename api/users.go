package api

import (
	"context"
	"net/http"
)

// UsersClient manages workspace user groups.
type UsersClient struct {
	client *Client
}

// UserGroup is a named set of workspace members used for rule access grants.
type UserGroup struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// ListGroups returns the workspace's user groups.
func (u *UsersClient) ListGroups(ctx context.Context) ([]UserGroup, error) {
	var out []UserGroup
	err := u.client.do(ctx, http.MethodGet, "api/v1/admin/users/groups", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGroup creates a user group and returns it with its server-assigned id.
func (u *UsersClient) CreateGroup(ctx context.Context, name string) (*UserGroup, error) {
	var out UserGroup
	body := map[string]any{"name": name}
	err := u.client.do(ctx, http.MethodPost, "api/v1/admin/users/groups", nil, body, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
