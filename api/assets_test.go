package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/rules", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		if folder := r.URL.Query().Get("folder"); folder != "" {
			assert.Equal(t, "folder-1", folder)
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": "r-1", "name": "Pricing", "slug": "pricing123", "tag": "folder-1"},
			})
			return
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "r-1", "name": "Pricing", "slug": "pricing123"},
			{"id": "r-2", "name": "Eligibility", "slug": "elig456", "published": true},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, "k")

	rules, err := client.Assets.ListRules(t.Context())
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "pricing123", rules[0].Slug)
	assert.True(t, rules[1].Published)

	filtered, err := client.Assets.ListRules(t.Context(), "folder-1")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "folder-1", filtered[0].FolderID)
}

func TestExportImportDeleteRule(t *testing.T) {
	var deleted, imported map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/admin/rules/export":
			assert.Equal(t, "r-1", r.URL.Query().Get("id"))
			json.NewEncoder(w).Encode(map[string]any{"id": "r-1", "name": "Pricing"})
		case "/api/v1/admin/rules/import":
			json.NewDecoder(r.Body).Decode(&imported)
			w.WriteHeader(http.StatusOK)
		case "/api/v1/admin/rules/delete":
			json.NewDecoder(r.Body).Decode(&deleted)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	ctx := t.Context()

	rule, err := client.Assets.ExportRule(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Pricing", rule["name"])

	require.NoError(t, client.Assets.ImportRule(ctx, rule, true))
	assert.Equal(t, true, imported["publish"])
	assert.Equal(t, "r-1", imported["rule"].(map[string]any)["id"])

	require.NoError(t, client.Assets.DeleteRule(ctx, "r-1"))
	assert.Equal(t, "r-1", deleted["id"])
}

func TestFoldersAndUsage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/admin/folders":
			if r.Method == http.MethodPost {
				var folder Folder
				json.NewDecoder(r.Body).Decode(&folder)
				folder.ID = "folder-new"
				json.NewEncoder(w).Encode(folder)
				return
			}
			json.NewEncoder(w).Encode([]Folder{{ID: "folder-1", Name: "Pricing"}})
		case "/api/v1/admin/usage":
			json.NewEncoder(w).Encode(Usage{Plan: "team", MonthlyRequestCount: 1200, MonthlyRequestLimit: 100000})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	ctx := t.Context()

	folders, err := client.Assets.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Pricing", folders[0].Name)

	created, err := client.Assets.UpsertFolder(ctx, Folder{Name: "Underwriting"})
	require.NoError(t, err)
	assert.Equal(t, "folder-new", created.ID)

	usage, err := client.Assets.GetUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "team", usage.Plan)
	assert.Equal(t, 1200, usage.MonthlyRequestCount)
}

func TestValuesClient(t *testing.T) {
	var updated map[string]any
	var deletedID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/values", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]DynamicValueItem{{ID: "dv-1", Name: "minimum_age", Type: "number"}})
		case http.MethodPost:
			json.NewDecoder(r.Body).Decode(&updated)
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			deletedID = r.URL.Query().Get("id")
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, "k")
	ctx := t.Context()

	items, err := client.Values.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "minimum_age", items[0].Name)

	require.NoError(t, client.Values.Update(ctx, map[string]any{"minimum_age": 21}))
	assert.Equal(t, float64(21), updated["minimum_age"])

	require.NoError(t, client.Values.Delete(ctx, "dv-1"))
	assert.Equal(t, "dv-1", deletedID)
}

func TestUsersClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/users/groups", r.URL.Path)
		if r.Method == http.MethodPost {
			var group UserGroup
			json.NewDecoder(r.Body).Decode(&group)
			group.ID = "group-new"
			json.NewEncoder(w).Encode(group)
			return
		}
		json.NewEncoder(w).Encode([]UserGroup{{ID: "group-1", Name: "underwriting"}})
	}))
	defer srv.Close()

	client := New(srv.URL, "k")

	groups, err := client.Users.ListGroups(t.Context())
	require.NoError(t, err)
	require.Len(t, groups, 1)

	created, err := client.Users.CreateGroup(t.Context(), "claims")
	require.NoError(t, err)
	assert.Equal(t, "group-new", created.ID)
	assert.Equal(t, "claims", created.Name)
}
