package forge

// Field is the common surface of every schema field kind. Concrete types
// (BooleanField, NumberField, StringField, DateField, ListField) add the
// typed operator builder methods.
type Field interface {
	// Key is the wire name of the field ("age", "account.balance").
	Key() string

	// Kind is the field's value type.
	Kind() ValueType

	// Description is the human-readable schema description.
	Description() string

	// Default is the value used in sample payloads and by the engine when the
	// field is absent from a request.
	Default() any

	// DisplayName is the explicit display name, or "" when the serialized
	// name should be derived from the key.
	DisplayName() string

	// Operators is the kind's operator catalog, keyed by builder name
	// ("greater_than_or_equal", "matches_regex", ...).
	Operators() map[string]*OperatorDef
}

// baseField carries the state shared by all field kinds.
type baseField struct {
	key          string
	description  string
	defaultValue any
	displayName  string
}

func (f *baseField) Key() string         { return f.key }
func (f *baseField) Description() string { return f.description }
func (f *baseField) Default() any        { return f.defaultValue }
func (f *baseField) DisplayName() string { return f.displayName }

// fieldSet is an insertion-ordered collection of fields keyed by name.
// Re-adding an existing key replaces the field but keeps its original
// position, so serialization order is stable across schema edits.
type fieldSet struct {
	order []string
	byKey map[string]Field
}

func newFieldSet() *fieldSet {
	return &fieldSet{byKey: make(map[string]Field)}
}

func (s *fieldSet) add(f Field) {
	if _, ok := s.byKey[f.Key()]; !ok {
		s.order = append(s.order, f.Key())
	}
	s.byKey[f.Key()] = f
}

func (s *fieldSet) get(key string) (Field, bool) {
	f, ok := s.byKey[key]
	return f, ok
}

func (s *fieldSet) has(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

// fields returns the fields in insertion order.
func (s *fieldSet) fields() []Field {
	out := make([]Field, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}
	return out
}

func (s *fieldSet) len() int { return len(s.order) }
