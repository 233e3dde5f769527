package forge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rulesmith/forge/api"
)

// Wire markers for dynamic value references.
const (
	dynamicValueTag  = "$rb"
	dynamicValueKind = "globalValue"
)

// DynamicValue references a workspace-level value resolved by the engine at
// evaluation time. It can stand in for a literal argument of the same type
// anywhere in a condition.
type DynamicValue struct {
	ID   string
	Name string
	Type ValueType
}

// Ref returns the wire reference form: {"id": ..., "$rb": "globalValue", "name": ...}.
func (v *DynamicValue) Ref() map[string]any {
	return map[string]any{
		"id":            v.ID,
		dynamicValueTag: dynamicValueKind,
		"name":          v.Name,
	}
}

func (v *DynamicValue) String() string {
	return fmt.Sprintf("<DynamicValue %s (%s)>", v.Name, v.Type)
}

// isDynamicRef reports whether a decoded wire value is a dynamic value
// reference ({"$rb": "globalValue", ...}).
func isDynamicRef(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return m[dynamicValueTag] == dynamicValueKind
}

// DynamicValues resolves named workspace values against an attached api.Client
// and caches the results by name. The zero value is unusable; construct with
// NewDynamicValues. Safe for concurrent use.
type DynamicValues struct {
	mu        sync.Mutex
	workspace *api.Client
	cache     map[string]*DynamicValue
}

// NewDynamicValues creates a resolver bound to the given workspace client.
func NewDynamicValues(workspace *api.Client) *DynamicValues {
	return &DynamicValues{
		workspace: workspace,
		cache:     make(map[string]*DynamicValue),
	}
}

// Get resolves a dynamic value by name, consulting the cache first and the
// workspace on a miss. Returns a CONFIGURATION error when no workspace is
// attached and a DYNAMIC_VALUE_NOT_FOUND error when the name is unknown.
func (d *DynamicValues) Get(ctx context.Context, name string) (*DynamicValue, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.workspace == nil {
		return nil, NewConfigurationError("no workspace attached; dynamic values require an api.Client")
	}
	if v, ok := d.cache[name]; ok {
		return v, nil
	}

	items, err := d.workspace.Values.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dynamic values: %w", err)
	}
	for _, item := range items {
		if item.Name != name {
			continue
		}
		t := ValueType(item.Type)
		if !t.Valid() {
			return nil, NewSerializationError(
				fmt.Sprintf("dynamic value %q has unknown type %q", name, item.Type))
		}
		v := &DynamicValue{ID: item.ID, Name: item.Name, Type: t}
		d.cache[name] = v
		return v, nil
	}
	return nil, NewDynamicValueNotFoundError(name)
}

// Set upserts workspace values by name and invalidates the local cache, since
// the server may have created new IDs or changed types.
func (d *DynamicValues) Set(ctx context.Context, values map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.workspace == nil {
		return NewConfigurationError("no workspace attached; dynamic values require an api.Client")
	}
	if err := d.workspace.Values.Update(ctx, values); err != nil {
		return fmt.Errorf("updating dynamic values: %w", err)
	}
	d.cache = make(map[string]*DynamicValue)
	return nil
}

// ClearCache empties the name cache. Subsequent Get calls hit the workspace.
func (d *DynamicValues) ClearCache() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cache = make(map[string]*DynamicValue)
}

// toWire converts a builder-level value to its wire representation: dynamic
// values become reference objects, and lists and maps are converted
// recursively. Literals pass through unchanged.
func toWire(v any) any {
	switch x := v.(type) {
	case *DynamicValue:
		return x.Ref()
	case DynamicValue:
		return x.Ref()
	case time.Time:
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = toWire(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = toWire(e)
		}
		return out
	}
	return v
}
