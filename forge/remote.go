package forge

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rulesmith/forge/api"
)

// Remote operations. All of them require a workspace client attached via
// SetWorkspace or FromWorkspace and fail with a CONFIGURATION error otherwise.

func (r *Rule) requireWorkspace() (*api.Client, error) {
	if r.workspace == nil {
		return nil, NewConfigurationError("no workspace attached; call SetWorkspace first")
	}
	return r.workspace, nil
}

// FromWorkspace fetches a rule by id and reconstructs it with the client
// attached, ready for local edits and a later Update.
func FromWorkspace(ctx context.Context, client *api.Client, id string) (*Rule, error) {
	raw, err := client.Assets.ExportRule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("exporting rule %s: %w", id, err)
	}
	r, err := FromMap(raw)
	if err != nil {
		return nil, err
	}
	r.workspace = client
	return r, nil
}

// Update imports the rule into the workspace without publishing.
func (r *Rule) Update(ctx context.Context) error {
	ws, err := r.requireWorkspace()
	if err != nil {
		return err
	}
	if err := ws.Assets.ImportRule(ctx, r.ToDict(), false); err != nil {
		return fmt.Errorf("updating rule %s: %w", r.id, err)
	}
	return nil
}

// Publish imports the rule and publishes the imported version.
func (r *Rule) Publish(ctx context.Context) error {
	ws, err := r.requireWorkspace()
	if err != nil {
		return err
	}
	if err := ws.Assets.ImportRule(ctx, r.ToDict(), true); err != nil {
		return fmt.Errorf("publishing rule %s: %w", r.id, err)
	}
	r.published = true
	return nil
}

// SetFolder assigns the rule to the workspace folder with the given name,
// optionally creating it. The assignment is local until the next Update.
func (r *Rule) SetFolder(ctx context.Context, name string, createIfMissing bool) error {
	ws, err := r.requireWorkspace()
	if err != nil {
		return err
	}
	folders, err := ws.Assets.ListFolders(ctx)
	if err != nil {
		return fmt.Errorf("listing folders: %w", err)
	}
	for _, f := range folders {
		if f.Name == name {
			r.folderID = f.ID
			return nil
		}
	}
	if !createIfMissing {
		return NewInvalidArgumentError(fmt.Sprintf("folder %q does not exist", name))
	}
	folder, err := ws.Assets.UpsertFolder(ctx, api.Folder{Name: name})
	if err != nil {
		return fmt.Errorf("creating folder %q: %w", name, err)
	}
	r.folderID = folder.ID
	return nil
}

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// SetAlias replaces the generated slug with a custom one. The alias must be
// at least 3 characters of letters, digits and hyphens, and must not collide
// with any existing rule slug in the workspace.
func (r *Rule) SetAlias(ctx context.Context, alias string) error {
	ws, err := r.requireWorkspace()
	if err != nil {
		return err
	}
	if len(alias) < 3 {
		return NewInvalidArgumentError("alias must be at least 3 characters")
	}
	if strings.ContainsAny(alias, "/\\ ") {
		return NewInvalidArgumentError("alias must not contain slashes or spaces")
	}
	if !aliasPattern.MatchString(alias) {
		return NewInvalidArgumentError("alias may only contain letters, digits and hyphens")
	}
	rules, err := ws.Assets.ListRules(ctx)
	if err != nil {
		return fmt.Errorf("listing rules: %w", err)
	}
	for _, rule := range rules {
		if rule.Slug == alias && rule.ID != r.id {
			return NewInvalidArgumentError(fmt.Sprintf("alias %q is already in use", alias))
		}
	}
	r.slug = alias
	return nil
}

// AddAccessGroup grants a user group access to the rule, optionally creating
// the group. The grant is local until the next Update.
func (r *Rule) AddAccessGroup(ctx context.Context, name string, createIfMissing bool) error {
	ws, err := r.requireWorkspace()
	if err != nil {
		return err
	}
	groups, err := ws.Users.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("listing user groups: %w", err)
	}
	found := false
	for _, g := range groups {
		if g.Name == name {
			found = true
			break
		}
	}
	if !found {
		if !createIfMissing {
			return NewInvalidArgumentError(fmt.Sprintf("user group %q does not exist", name))
		}
		if _, err := ws.Users.CreateGroup(ctx, name); err != nil {
			return fmt.Errorf("creating user group %q: %w", name, err)
		}
	}
	for _, g := range r.accessGroups {
		if g == name {
			return nil
		}
	}
	r.accessGroups = append(r.accessGroups, name)
	return nil
}

// EditorURL returns the web editor link for the rule in its workspace.
func (r *Rule) EditorURL() (string, error) {
	ws, err := r.requireWorkspace()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/dashboard/%s", ws.BaseURL(), r.id), nil
}
