package forge

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/rulesmith/forge/api"
)

// updatedByName is recorded in the wire metadata of every rule this builder
// touches, so workspace history shows which tool made the change.
const updatedByName = "Forge SDK"

// Rule is the aggregate the whole package revolves around: typed request and
// response schemas, an ordered decision table, a test suite, and workspace
// metadata. Field sets and conditions preserve insertion order; the remote
// engine evaluates conditions top to bottom, first match wins.
//
// A Rule is not safe for concurrent mutation.
type Rule struct {
	workspace *api.Client

	id          string
	name        string
	description string
	slug        string
	folderID    string

	createdAt string
	updatedAt string
	updatedBy string

	requestFields  *fieldSet
	responseFields *fieldSet
	conditions     []*conditionRow
	testSuite      []*RuleTest

	settings     map[string]any
	form         map[string]any
	groups       map[string]any
	history      []any
	accessGroups []string
	testRequest  map[string]any

	published   bool
	publishedAt any

	// Published snapshots are produced by the server at publish time. The
	// builder carries them through round-trips untouched.
	publishedConditions     []any
	publishedRequestSchema  []any
	publishedResponseSchema []any
	publishedGroups         map[string]any
}

// NewRule creates an empty rule with a fresh uuid, a random 10-character
// slug, and timestamps set to now.
func NewRule() *Rule {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Rule{
		id:              uuid.NewString(),
		name:            "Untitled Rule",
		slug:            randomID(10),
		createdAt:       now,
		updatedAt:       now,
		updatedBy:       updatedByName,
		requestFields:   newFieldSet(),
		responseFields:  newFieldSet(),
		settings:        map[string]any{},
		form:            map[string]any{},
		groups:          map[string]any{},
		history:         []any{},
		accessGroups:    []string{},
		testRequest:     map[string]any{},
		publishedGroups: map[string]any{},
	}
}

// ID returns the rule's uuid.
func (r *Rule) ID() string { return r.id }

// Name returns the rule's display name.
func (r *Rule) Name() string { return r.name }

// Description returns the rule's description.
func (r *Rule) Description() string { return r.description }

// Slug returns the rule's solve endpoint identifier.
func (r *Rule) Slug() string { return r.slug }

// FolderID returns the workspace folder the rule belongs to, or "".
func (r *Rule) FolderID() string { return r.folderID }

// Published reports whether the rule has a published version.
func (r *Rule) Published() bool { return r.published }

// SetName sets the display name.
func (r *Rule) SetName(name string) *Rule {
	r.name = name
	return r
}

// SetDescription sets the description.
func (r *Rule) SetDescription(description string) *Rule {
	r.description = description
	return r
}

// SetFolderID assigns the rule to a workspace folder by id without a lookup.
func (r *Rule) SetFolderID(id string) *Rule {
	r.folderID = id
	return r
}

// SetWorkspace attaches the API client used by remote operations.
func (r *Rule) SetWorkspace(client *api.Client) *Rule {
	r.workspace = client
	return r
}

// Workspace returns the attached API client, or nil.
func (r *Rule) Workspace() *api.Client { return r.workspace }

// Request schema builders. Re-adding an existing key replaces the field in place.

// AddBooleanField adds a boolean field to the request schema.
func (r *Rule) AddBooleanField(key, description string, defaultValue bool) *BooleanField {
	f := newBooleanField(key, description, defaultValue)
	r.requestFields.add(f)
	return f
}

// AddNumberField adds a numeric field to the request schema.
func (r *Rule) AddNumberField(key, description string, defaultValue float64) *NumberField {
	f := newNumberField(key, description, defaultValue)
	r.requestFields.add(f)
	return f
}

// AddStringField adds a string field to the request schema.
func (r *Rule) AddStringField(key, description string, defaultValue string) *StringField {
	f := newStringField(key, description, defaultValue)
	r.requestFields.add(f)
	return f
}

// AddDateField adds a date field to the request schema. Dates have no
// builder-side default; the serialized defaultValue is null.
func (r *Rule) AddDateField(key, description string) *DateField {
	f := newDateField(key, description, nil)
	r.requestFields.add(f)
	return f
}

// AddListField adds a list field to the request schema.
func (r *Rule) AddListField(key, description string, defaultValue []any) *ListField {
	if defaultValue == nil {
		defaultValue = []any{}
	}
	f := newListField(key, description, defaultValue)
	r.requestFields.add(f)
	return f
}

// Response schema builders.

// AddBooleanResponse adds a boolean field to the response schema.
func (r *Rule) AddBooleanResponse(key, description string, defaultValue bool) *BooleanField {
	f := newBooleanField(key, description, defaultValue)
	r.responseFields.add(f)
	return f
}

// AddNumberResponse adds a numeric field to the response schema.
func (r *Rule) AddNumberResponse(key, description string, defaultValue float64) *NumberField {
	f := newNumberField(key, description, defaultValue)
	r.responseFields.add(f)
	return f
}

// AddStringResponse adds a string field to the response schema.
func (r *Rule) AddStringResponse(key, description string, defaultValue string) *StringField {
	f := newStringField(key, description, defaultValue)
	r.responseFields.add(f)
	return f
}

// AddDateResponse adds a date field to the response schema.
func (r *Rule) AddDateResponse(key, description string) *DateField {
	f := newDateField(key, description, nil)
	r.responseFields.add(f)
	return f
}

// AddListResponse adds a list field to the response schema.
func (r *Rule) AddListResponse(key, description string, defaultValue []any) *ListField {
	if defaultValue == nil {
		defaultValue = []any{}
	}
	f := newListField(key, description, defaultValue)
	r.responseFields.add(f)
	return f
}

// GetField returns a request field by key.
func (r *Rule) GetField(key string) (Field, error) {
	f, ok := r.requestFields.get(key)
	if !ok {
		return nil, NewFieldNotDefinedError(key, "request")
	}
	return f, nil
}

// GetResponseField returns a response field by key.
func (r *Rule) GetResponseField(key string) (Field, error) {
	f, ok := r.responseFields.get(key)
	if !ok {
		return nil, NewFieldNotDefinedError(key, "response")
	}
	return f, nil
}

// GetBooleanField returns a request field by key, requiring boolean kind.
func (r *Rule) GetBooleanField(key string) (*BooleanField, error) {
	f, err := r.GetField(key)
	if err != nil {
		return nil, err
	}
	bf, ok := f.(*BooleanField)
	if !ok {
		return nil, NewTypeMismatchError(fmt.Sprintf("field %q is %s, not boolean", key, f.Kind()))
	}
	return bf, nil
}

// GetNumberField returns a request field by key, requiring number kind.
func (r *Rule) GetNumberField(key string) (*NumberField, error) {
	f, err := r.GetField(key)
	if err != nil {
		return nil, err
	}
	nf, ok := f.(*NumberField)
	if !ok {
		return nil, NewTypeMismatchError(fmt.Sprintf("field %q is %s, not number", key, f.Kind()))
	}
	return nf, nil
}

// GetStringField returns a request field by key, requiring string kind.
func (r *Rule) GetStringField(key string) (*StringField, error) {
	f, err := r.GetField(key)
	if err != nil {
		return nil, err
	}
	sf, ok := f.(*StringField)
	if !ok {
		return nil, NewTypeMismatchError(fmt.Sprintf("field %q is %s, not string", key, f.Kind()))
	}
	return sf, nil
}

// GetDateField returns a request field by key, requiring date kind.
func (r *Rule) GetDateField(key string) (*DateField, error) {
	f, err := r.GetField(key)
	if err != nil {
		return nil, err
	}
	df, ok := f.(*DateField)
	if !ok {
		return nil, NewTypeMismatchError(fmt.Sprintf("field %q is %s, not date", key, f.Kind()))
	}
	return df, nil
}

// GetListField returns a request field by key, requiring list kind.
func (r *Rule) GetListField(key string) (*ListField, error) {
	f, err := r.GetField(key)
	if err != nil {
		return nil, err
	}
	lf, ok := f.(*ListField)
	if !ok {
		return nil, NewTypeMismatchError(fmt.Sprintf("field %q is %s, not list", key, f.Kind()))
	}
	return lf, nil
}

// When starts a new condition: an unbound handle holding the given checks,
// appended to the decision table when Then finalizes it.
func (r *Rule) When(checks Checks) (*Condition, error) {
	c := &Condition{
		rule:     r,
		id:       randomID(21),
		staged:   make(map[string]Check),
		settings: defaultConditionSettings(),
	}
	return c.When(checks)
}

// Any starts a new OR-semantics condition: the row matches when any one of
// its checks matches.
func (r *Rule) Any(checks Checks) (*Condition, error) {
	c := &Condition{
		rule:     r,
		id:       randomID(21),
		staged:   make(map[string]Check),
		settings: defaultConditionSettings(),
	}
	c.settings.Or = true
	return c.When(checks)
}

// GetCondition returns a bound handle on the row at the given position in
// evaluation order.
func (r *Rule) GetCondition(index int) (*Condition, error) {
	if index < 0 || index >= len(r.conditions) {
		return nil, NewInvalidArgumentError(fmt.Sprintf(
			"condition index %d out of range (%d conditions)", index, len(r.conditions)))
	}
	row := r.conditions[index]
	return &Condition{rule: r, id: row.id, row: row}, nil
}

// ConditionCount returns the number of rows in the decision table.
func (r *Rule) ConditionCount() int { return len(r.conditions) }

// Conditions returns the decision table in wire form, in evaluation order.
func (r *Rule) Conditions() []map[string]any {
	out := make([]map[string]any, len(r.conditions))
	for i, row := range r.conditions {
		out[i] = row.wire()
	}
	return out
}

// FindConditions returns bound handles for every row matching all given
// checks: the row must have the field, with the exact operator name, and
// stringwise-equal arguments. A *DynamicValue anywhere in a check's arguments
// makes that check's argument comparison a wildcard.
func (r *Rule) FindConditions(checks Checks) []*Condition {
	var out []*Condition
	for _, row := range r.conditions {
		if rowMatches(row, checks) {
			out = append(out, &Condition{rule: r, id: row.id, row: row})
		}
	}
	return out
}

func rowMatches(row *conditionRow, checks Checks) bool {
	for field, check := range checks {
		rec, ok := row.request[field]
		if !ok || rec.op != check.Op {
			return false
		}
		if hasDynamicArg(check.Args) {
			continue
		}
		if len(rec.args) != len(check.Args) {
			return false
		}
		for i := range rec.args {
			if argString(rec.args[i]) != argString(toWire(check.Args[i])) {
				return false
			}
		}
	}
	return true
}

func hasDynamicArg(args []any) bool {
	for _, a := range args {
		switch v := a.(type) {
		case *DynamicValue:
			return true
		case map[string]any:
			if isDynamicRef(v) {
				return true
			}
		}
	}
	return false
}

// argString stringifies an argument for comparison. Numeric widths collapse
// ("5" for both int 5 and float64 5), so checks survive a JSON round-trip.
func argString(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Engine settings toggles. All default to the server's own defaults when unset.

// EnableContinuousTesting runs the test suite on every publish.
func (r *Rule) EnableContinuousTesting(enabled bool) *Rule {
	r.settings["testing"] = enabled
	return r
}

// EnableSchemaValidation makes the engine reject requests that do not match
// the request schema.
func (r *Rule) EnableSchemaValidation(enabled bool) *Rule {
	r.settings["schemaValidation"] = enabled
	return r
}

// RequireAllProperties makes schema validation require every request field.
func (r *Rule) RequireAllProperties(enabled bool) *Rule {
	r.settings["allProperties"] = enabled
	return r
}

// LockSchema prevents schema edits in the web editor.
func (r *Rule) LockSchema(locked bool) *Rule {
	r.settings["lockSchema"] = locked
	return r
}

// Test suite management.

// AddTest appends a test fixture to the suite.
func (r *Rule) AddTest(t *RuleTest) *Rule {
	r.testSuite = append(r.testSuite, t)
	return r
}

// RemoveTest removes a test by id and returns it.
func (r *Rule) RemoveTest(id string) (*RuleTest, error) {
	for i, t := range r.testSuite {
		if t.id == id {
			r.testSuite = append(r.testSuite[:i], r.testSuite[i+1:]...)
			return t, nil
		}
	}
	return nil, NewInvalidArgumentError(fmt.Sprintf("no test with id %q", id))
}

// FindTestByID returns the test with the given id.
func (r *Rule) FindTestByID(id string) (*RuleTest, bool) {
	for _, t := range r.testSuite {
		if t.id == id {
			return t, true
		}
	}
	return nil, false
}

// FindTestByName returns the first test with the given name.
func (r *Rule) FindTestByName(name string) (*RuleTest, bool) {
	for _, t := range r.testSuite {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}

// Tests returns the test suite in order.
func (r *Rule) Tests() []*RuleTest { return r.testSuite }

// RemoveAccessGroup removes an access group from the rule locally. Unlike
// AddAccessGroup this needs no workspace: removing a grant the workspace
// doesn't know about is a no-op either way.
func (r *Rule) RemoveAccessGroup(name string) *Rule {
	out := r.accessGroups[:0]
	for _, g := range r.accessGroups {
		if g != name {
			out = append(out, g)
		}
	}
	r.accessGroups = out
	return r
}

// AccessGroups returns the access group names granted on the rule.
func (r *Rule) AccessGroups() []string { return r.accessGroups }
