package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/solve/health-plan", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(25), req["age"])

		json.NewEncoder(w).Encode(map[string]any{"recommended_plan": "HSA"})
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	resp, err := client.Rules.Solve(t.Context(), "health-plan", map[string]any{"age": 25})
	require.NoError(t, err)
	assert.Equal(t, "HSA", resp["recommended_plan"])
}

func TestBulkSolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/bulk-solve/health-plan", r.URL.Path)

		var reqs []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqs))
		require.Len(t, reqs, 2)

		json.NewEncoder(w).Encode([]map[string]any{
			{"recommended_plan": "HSA"},
			{"recommended_plan": "PPO"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	resp, err := client.Rules.BulkSolve(t.Context(), "health-plan", []map[string]any{
		{"age": 25}, {"age": 70},
	})
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "PPO", resp[1]["recommended_plan"])
}

func TestParallelSolveInputMarshal(t *testing.T) {
	t.Run("rule entries flatten payload and tag the slug", func(t *testing.T) {
		data, err := json.Marshal(ParallelSolveInput{
			Rule:    "health-plan",
			Payload: map[string]any{"age": 25},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"$rule": "health-plan", "age": 25}`, string(data))
	})

	t.Run("flow entries use the flow tag", func(t *testing.T) {
		data, err := json.Marshal(ParallelSolveInput{
			Flow:    "onboarding",
			Payload: map[string]any{"email": "a@b.test"},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"$flow": "onboarding", "email": "a@b.test"}`, string(data))
	})
}

func TestParallelSolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/parallel-solve", r.URL.Path)

		var req map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "health-plan", req["eligibility"]["$rule"])
		assert.Equal(t, "risk-score", req["risk"]["$rule"])

		json.NewEncoder(w).Encode(map[string]map[string]any{
			"eligibility": {"recommended_plan": "HSA"},
			"risk":        {"score": 0.3},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	resp, err := client.Rules.ParallelSolve(t.Context(), map[string]ParallelSolveInput{
		"eligibility": {Rule: "health-plan", Payload: map[string]any{"age": 25}},
		"risk":        {Rule: "risk-score", Payload: map[string]any{"age": 25}},
	})
	require.NoError(t, err)
	assert.Equal(t, "HSA", resp["eligibility"]["recommended_plan"])
}

func TestFlowExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/flows/onboarding", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"status": "done"})
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	resp, err := client.Flows.Execute(t.Context(), "onboarding", map[string]any{"email": "a@b.test"})
	require.NoError(t, err)
	assert.Equal(t, "done", resp["status"])
}
