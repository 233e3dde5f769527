package api

import (
	"context"
	"net/http"
	"net/url"
)

// ValuesClient manages workspace-level dynamic values.
type ValuesClient struct {
	client *Client
}

// DynamicValueItem is one stored dynamic value. Type is one of "boolean",
// "number", "string", "date", "list", "object".
type DynamicValueItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// List returns every dynamic value in the workspace.
func (v *ValuesClient) List(ctx context.Context) ([]DynamicValueItem, error) {
	var out []DynamicValueItem
	err := v.client.do(ctx, http.MethodGet, "api/v1/values", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update upserts dynamic values by name. Types are inferred server-side from
// the given values.
func (v *ValuesClient) Update(ctx context.Context, values map[string]any) error {
	return v.client.do(ctx, http.MethodPost, "api/v1/values", nil, values, nil)
}

// Delete removes a dynamic value by id.
func (v *ValuesClient) Delete(ctx context.Context, id string) error {
	query := url.Values{"id": {id}}
	return v.client.do(ctx, http.MethodDelete, "api/v1/values", query, nil, nil)
}
