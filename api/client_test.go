package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "400 maps to BadRequestError",
			status: http.StatusBadRequest,
			body:   `{"error": "unknown field"}`,
			check: func(t *testing.T, err error) {
				var bad *BadRequestError
				require.ErrorAs(t, err, &bad)
				assert.Equal(t, 400, bad.StatusCode)
				assert.Equal(t, map[string]any{"error": "unknown field"}, bad.Body)
			},
		},
		{
			name:   "500 maps to InternalServerError",
			status: http.StatusInternalServerError,
			body:   `{"error": "boom"}`,
			check: func(t *testing.T, err error) {
				var internal *InternalServerError
				require.ErrorAs(t, err, &internal)
				assert.Equal(t, 500, internal.StatusCode)
			},
		},
		{
			name:   "other statuses map to APIError",
			status: http.StatusTeapot,
			body:   `{"error": "teapot"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, 418, apiErr.StatusCode)
			},
		},
		{
			name:   "non-JSON error body kept as raw string",
			status: http.StatusBadGateway,
			body:   `<html>gateway error</html>`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, `<html>gateway error</html>`, apiErr.Body)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL, "test-key")
			_, err := client.Rules.Solve(t.Context(), "any", map[string]any{})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestBadRequestErrorIsAlsoAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	_, err := client.Rules.Solve(t.Context(), "any", nil)
	var bad *BadRequestError
	assert.True(t, errors.As(err, &bad), "embedding keeps the concrete type reachable")
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL+"///", "secret-key")
	_, err := client.Rules.Solve(t.Context(), "slug", map[string]any{"a": 1})
	require.NoError(t, err)

	assert.Equal(t, "secret-key", got.Get("x-api-key"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	client := New("https://example.test/workspace///", "k")
	assert.Equal(t, "https://example.test/workspace", client.BaseURL())
}
