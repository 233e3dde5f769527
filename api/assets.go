package api

import (
	"context"
	"net/http"
	"net/url"
)

// AssetsClient manages workspace assets: rules, folders, and usage.
type AssetsClient struct {
	client *Client
}

// RuleSummary is one entry of the workspace rule list.
type RuleSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	FolderID    string `json:"tag"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Published   bool   `json:"published"`
}

// Folder is a workspace folder for organizing rules.
type Folder struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Usage is the workspace's plan and current billing-period consumption.
type Usage struct {
	Plan                string `json:"plan"`
	MonthlyPeriodStart  string `json:"monthly_period_start"`
	MonthlyRequestCount int    `json:"monthly_requests_count"`
	MonthlyRequestLimit int    `json:"monthly_requests_limit"`
}

// ListRules returns every rule in the workspace, optionally filtered to one
// folder by id. Pass "" for all folders.
func (a *AssetsClient) ListRules(ctx context.Context, folderID ...string) ([]RuleSummary, error) {
	var query url.Values
	if len(folderID) > 0 && folderID[0] != "" {
		query = url.Values{"folder": {folderID[0]}}
	}
	var out []RuleSummary
	err := a.client.do(ctx, http.MethodGet, "api/v1/admin/rules", query, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportRule fetches a rule's complete wire form by id.
func (a *AssetsClient) ExportRule(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	query := url.Values{"id": {id}}
	err := a.client.do(ctx, http.MethodGet, "api/v1/admin/rules/export", query, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImportRule upserts a rule from its wire form, optionally publishing the
// imported version.
func (a *AssetsClient) ImportRule(ctx context.Context, rule map[string]any, publish bool) error {
	body := map[string]any{"rule": rule}
	if publish {
		body["publish"] = true
	}
	return a.client.do(ctx, http.MethodPost, "api/v1/admin/rules/import", nil, body, nil)
}

// DeleteRule removes a rule from the workspace by id.
func (a *AssetsClient) DeleteRule(ctx context.Context, id string) error {
	body := map[string]any{"id": id}
	return a.client.do(ctx, http.MethodPost, "api/v1/admin/rules/delete", nil, body, nil)
}

// ListFolders returns the workspace's folders.
func (a *AssetsClient) ListFolders(ctx context.Context) ([]Folder, error) {
	var out []Folder
	err := a.client.do(ctx, http.MethodGet, "api/v1/admin/folders", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertFolder creates a folder, or updates it when an id is set. Returns
// the stored folder including its server-assigned id.
func (a *AssetsClient) UpsertFolder(ctx context.Context, folder Folder) (*Folder, error) {
	var out Folder
	err := a.client.do(ctx, http.MethodPost, "api/v1/admin/folders", nil, folder, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFolder removes a folder by id. Rules in the folder are not deleted.
func (a *AssetsClient) DeleteFolder(ctx context.Context, id string) error {
	body := map[string]any{"id": id}
	return a.client.do(ctx, http.MethodDelete, "api/v1/admin/folders", nil, body, nil)
}

// GetUsage returns the workspace's plan and consumption for the current
// billing period.
func (a *AssetsClient) GetUsage(ctx context.Context) (*Usage, error) {
	var out Usage
	err := a.client.do(ctx, http.MethodGet, "api/v1/admin/usage", nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
