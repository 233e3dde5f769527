package forge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName derives the serialized field name: an explicit override wins,
// otherwise underscores become spaces and each word is title-cased.
func displayName(f Field) string {
	if f.DisplayName() != "" {
		return f.DisplayName()
	}
	return titleCaser.String(strings.ReplaceAll(f.Key(), "_", " "))
}

func schemaEntries(s *fieldSet) []any {
	out := make([]any, 0, s.len())
	for _, f := range s.fields() {
		out = append(out, map[string]any{
			"key":          f.Key(),
			"name":         displayName(f),
			"type":         string(f.Kind()),
			"description":  f.Description(),
			"defaultValue": toWire(f.Default()),
			"show":         true,
		})
	}
	return out
}

// samplePayload builds the sample request/response from field defaults.
// Dotted keys nest: "account.balance" becomes {"account": {"balance": ...}}.
func samplePayload(s *fieldSet) map[string]any {
	out := map[string]any{}
	for _, f := range s.fields() {
		parts := strings.Split(f.Key(), ".")
		cur := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := cur[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				cur[p] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = toWire(f.Default())
	}
	return out
}

// ToDict returns the complete wire form of the rule.
func (r *Rule) ToDict() map[string]any {
	conditions := make([]any, len(r.conditions))
	for i, row := range r.conditions {
		conditions[i] = row.wire()
	}
	tests := make([]any, len(r.testSuite))
	for i, t := range r.testSuite {
		tests[i] = t.ToDict()
	}
	accessGroups := make([]any, len(r.accessGroups))
	for i, g := range r.accessGroups {
		accessGroups[i] = g
	}

	var tag any
	if r.folderID != "" {
		tag = r.folderID
	}

	return map[string]any{
		"id":          r.id,
		"name":        r.name,
		"description": r.description,
		"tag":         tag,
		"slug":        r.slug,
		"createdAt":   r.createdAt,
		"updatedAt":   r.updatedAt,
		"updatedBy":   r.updatedBy,
		"published":   r.published,
		"publishedAt": r.publishedAt,

		"sampleRequest":  samplePayload(r.requestFields),
		"sampleResponse": samplePayload(r.responseFields),
		"testRequest":    r.testRequest,

		"requestSchema":  schemaEntries(r.requestFields),
		"responseSchema": schemaEntries(r.responseFields),

		"conditions":    conditions,
		"no_conditions": len(r.conditions),

		"form":         r.form,
		"history":      r.history,
		"settings":     r.settings,
		"groups":       r.groups,
		"testSuite":    tests,
		"accessGroups": accessGroups,

		"publishedConditions":     emptyIfNilSlice(r.publishedConditions),
		"publishedRequestSchema":  emptyIfNilSlice(r.publishedRequestSchema),
		"publishedResponseSchema": emptyIfNilSlice(r.publishedResponseSchema),
		"publishedGroups":         r.publishedGroups,
	}
}

// ToJSON returns the wire form as 2-space-indented JSON, the same bytes
// Export writes to disk.
func (r *Rule) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.ToDict(), "", "  ")
	if err != nil {
		return nil, NewSerializationError(fmt.Sprintf("encoding rule: %v", err))
	}
	return data, nil
}

func emptyIfNilSlice(s []any) []any {
	if s == nil {
		return []any{}
	}
	return s
}

// FromJSON reconstructs a rule from wire JSON. Returns a SERIALIZATION error
// on malformed JSON or schema entries missing key or type.
func FromJSON(data []byte) (*Rule, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, NewSerializationError(fmt.Sprintf("decoding rule: %v", err))
	}
	return FromMap(m)
}

// FromMap reconstructs a rule from an already-decoded wire map, e.g. an
// export endpoint response.
func FromMap(m map[string]any) (*Rule, error) {
	r := NewRule()

	setString(&r.id, m["id"])
	setString(&r.name, m["name"])
	setString(&r.description, m["description"])
	setString(&r.slug, m["slug"])
	setString(&r.folderID, m["tag"])
	setString(&r.createdAt, m["createdAt"])
	setString(&r.updatedAt, m["updatedAt"])
	setString(&r.updatedBy, m["updatedBy"])

	if v, ok := m["published"].(bool); ok {
		r.published = v
	}
	if v, ok := m["publishedAt"]; ok {
		r.publishedAt = v
	}
	if v, ok := m["testRequest"].(map[string]any); ok {
		r.testRequest = v
	}
	if v, ok := m["form"].(map[string]any); ok {
		r.form = v
	}
	if v, ok := m["settings"].(map[string]any); ok {
		r.settings = v
	}
	if v, ok := m["groups"].(map[string]any); ok {
		r.groups = v
	}
	if v, ok := m["history"].([]any); ok {
		r.history = v
	}
	if v, ok := m["accessGroups"]; ok {
		if groups, err := cast.ToStringSliceE(v); err == nil {
			r.accessGroups = groups
		}
	}
	if v, ok := m["publishedConditions"].([]any); ok {
		r.publishedConditions = v
	}
	if v, ok := m["publishedRequestSchema"].([]any); ok {
		r.publishedRequestSchema = v
	}
	if v, ok := m["publishedResponseSchema"].([]any); ok {
		r.publishedResponseSchema = v
	}
	if v, ok := m["publishedGroups"].(map[string]any); ok {
		r.publishedGroups = v
	}

	if err := loadSchema(r.requestFields, m["requestSchema"], "requestSchema"); err != nil {
		return nil, err
	}
	if err := loadSchema(r.responseFields, m["responseSchema"], "responseSchema"); err != nil {
		return nil, err
	}
	if err := loadConditions(r, m["conditions"]); err != nil {
		return nil, err
	}
	if err := loadTestSuite(r, m["testSuite"]); err != nil {
		return nil, err
	}
	return r, nil
}

func setString(dst *string, v any) {
	if s, ok := v.(string); ok && s != "" {
		*dst = s
	}
}

func loadSchema(set *fieldSet, raw any, where string) error {
	entries, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nil
		}
		return NewSerializationError(fmt.Sprintf("%s is not a list", where))
	}
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return NewSerializationError(fmt.Sprintf("%s[%d] is not an object", where, i))
		}
		key, ok := entry["key"].(string)
		if !ok || key == "" {
			return NewSerializationError(fmt.Sprintf("%s[%d] is missing a key", where, i))
		}
		typ, ok := entry["type"].(string)
		if !ok {
			return NewSerializationError(fmt.Sprintf("%s entry %q is missing a type", where, key))
		}
		description := cast.ToString(entry["description"])
		def := entry["defaultValue"]

		var f Field
		switch ValueType(typ) {
		case TypeBoolean:
			f = newBooleanField(key, description, def)
		case TypeNumber:
			f = newNumberField(key, description, def)
		case TypeString:
			f = newStringField(key, description, def)
		case TypeDate:
			f = newDateField(key, description, def)
		case TypeList:
			f = newListField(key, description, def)
		default:
			return NewSerializationError(fmt.Sprintf("%s entry %q has unknown type %q", where, key, typ))
		}
		if name, ok := entry["name"].(string); ok && name != "" {
			setFieldDisplayName(f, name)
		}
		set.add(f)
	}
	return nil
}

func setFieldDisplayName(f Field, name string) {
	switch x := f.(type) {
	case *BooleanField:
		x.displayName = name
	case *NumberField:
		x.displayName = name
	case *StringField:
		x.displayName = name
	case *DateField:
		x.displayName = name
	case *ListField:
		x.displayName = name
	}
}

func loadConditions(r *Rule, raw any) error {
	entries, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nil
		}
		return NewSerializationError("conditions is not a list")
	}
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return NewSerializationError(fmt.Sprintf("conditions[%d] is not an object", i))
		}
		row := &conditionRow{
			id:       randomID(21),
			request:  map[string]checkRecord{},
			response: map[string]any{},
			settings: defaultConditionSettings(),
		}
		if req, ok := entry["request"].(map[string]any); ok {
			for field, cell := range req {
				cm, ok := cell.(map[string]any)
				if !ok {
					return NewSerializationError(fmt.Sprintf(
						"conditions[%d] request cell %q is not an object", i, field))
				}
				args, _ := cm["args"].([]any)
				row.request[field] = checkRecord{op: cast.ToString(cm["op"]), args: args}
			}
		}
		if resp, ok := entry["response"].(map[string]any); ok {
			for field, cell := range resp {
				cm, ok := cell.(map[string]any)
				if !ok {
					return NewSerializationError(fmt.Sprintf(
						"conditions[%d] response cell %q is not an object", i, field))
				}
				row.response[field] = cm["value"]
			}
		}
		if settings, ok := entry["settings"].(map[string]any); ok {
			if v, ok := settings["enabled"].(bool); ok {
				row.settings.Enabled = v
			}
			if v, ok := settings["groupId"].(string); ok {
				row.settings.GroupID = v
			}
			row.settings.Priority = cast.ToInt(settings["priority"])
			if v, ok := settings["schedule"].([]any); ok {
				row.settings.Schedule = v
			}
			if v, ok := settings["or"].(bool); ok {
				row.settings.Or = v
			}
		}
		r.conditions = append(r.conditions, row)
	}
	return nil
}

func loadTestSuite(r *Rule, raw any) error {
	entries, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return nil
		}
		return NewSerializationError("testSuite is not a list")
	}
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return NewSerializationError(fmt.Sprintf("testSuite[%d] is not an object", i))
		}
		r.testSuite = append(r.testSuite, testFromMap(entry))
	}
	return nil
}
