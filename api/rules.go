package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RulesClient solves published rules.
type RulesClient struct {
	client *Client
}

// Solve evaluates the rule identified by slug against a single request
// payload and returns the response payload.
func (r *RulesClient) Solve(ctx context.Context, slug string, request map[string]any) (map[string]any, error) {
	var out map[string]any
	err := r.client.do(ctx, http.MethodPost, "api/v1/solve/"+url.PathEscape(slug), nil, request, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkSolve evaluates the rule against each request payload in order and
// returns one response per request.
func (r *RulesClient) BulkSolve(ctx context.Context, slug string, requests []map[string]any) ([]map[string]any, error) {
	var out []map[string]any
	err := r.client.do(ctx, http.MethodPost, "api/v1/bulk-solve/"+url.PathEscape(slug), nil, requests, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParallelSolveInput is one named entry of a parallel solve: which rule or
// flow to run (exactly one of the two) and the payload to run it against.
type ParallelSolveInput struct {
	// Rule is the slug of the rule to solve.
	Rule string

	// Flow is the slug of the flow to execute.
	Flow string

	// Payload is the request payload.
	Payload map[string]any
}

// MarshalJSON flattens the payload and tags it with the target: the wire form
// is the payload object with a "$rule" or "$flow" key added.
func (in ParallelSolveInput) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(in.Payload)+1)
	for k, v := range in.Payload {
		m[k] = v
	}
	if in.Rule != "" {
		m["$rule"] = in.Rule
	}
	if in.Flow != "" {
		m["$flow"] = in.Flow
	}
	return json.Marshal(m)
}

// ParallelSolve evaluates several rules or flows concurrently on the server.
// Results are keyed by the same names as the request entries.
func (r *RulesClient) ParallelSolve(ctx context.Context, request map[string]ParallelSolveInput) (map[string]map[string]any, error) {
	var out map[string]map[string]any
	err := r.client.do(ctx, http.MethodPost, "api/v1/parallel-solve", nil, request, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
