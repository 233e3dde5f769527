package api

import (
	"context"
	"net/http"
	"net/url"
)

// FlowsClient executes published flows.
type FlowsClient struct {
	client *Client
}

// Execute runs the flow identified by slug against the request payload and
// returns the flow's output.
func (f *FlowsClient) Execute(ctx context.Context, slug string, request map[string]any) (map[string]any, error) {
	var out map[string]any
	err := f.client.do(ctx, http.MethodPost, "api/v1/flows/"+url.PathEscape(slug), nil, request, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
