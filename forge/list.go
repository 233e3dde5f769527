package forge

// listOperators is the catalog shared by every ListField. Element-level
// operators use generic arguments since list element types are not declared
// in the schema.
var listOperators = map[string]*OperatorDef{
	"any": {
		Name:          "any",
		Description:   "Matches any value, including missing",
		SkipTypecheck: true,
	},
	"contains": {
		Name: "contains",
		Args: []OperatorArg{{Name: "value", Type: TypeGeneric}},
	},
	"does_not_contain": {
		Name: "does not contain",
		Args: []OperatorArg{{Name: "value", Type: TypeGeneric}},
	},
	"is_empty":     {Name: "is empty"},
	"is_not_empty": {Name: "is not empty"},
	"is_of_length": {
		Name: "is of length",
		Args: []OperatorArg{{Name: "length", Type: TypeNumber}},
	},
	"is_not_of_length": {
		Name: "is not of length",
		Args: []OperatorArg{{Name: "length", Type: TypeNumber}},
	},
	"is_longer_than": {
		Name: "is longer than",
		Args: []OperatorArg{{Name: "length", Type: TypeNumber}},
	},
	"is_shorter_than": {
		Name: "is shorter than",
		Args: []OperatorArg{{Name: "length", Type: TypeNumber}},
	},
	"contains_all_of": {
		Name: "contains all of",
		Args: []OperatorArg{{Name: "values", Type: TypeList}},
	},
	"contains_any_of": {
		Name: "contains any of",
		Args: []OperatorArg{{Name: "values", Type: TypeList}},
	},
	"contains_none_of": {
		Name: "contains none of",
		Args: []OperatorArg{{Name: "values", Type: TypeList}},
	},
	"equals": {
		Name: "is equal to",
		Args: []OperatorArg{{Name: "value", Type: TypeList}},
	},
	"does_not_equal": {
		Name: "is not equal to",
		Args: []OperatorArg{{Name: "value", Type: TypeList}},
	},
	"contains_duplicates":         {Name: "contains duplicates"},
	"does_not_contain_duplicates": {Name: "does not contain duplicates"},
	"has_unique_elements":         {Name: "has unique elements"},
	"contains_object_with_key_value": {
		Name: "contains object with key & value",
		Args: []OperatorArg{
			{Name: "key", Type: TypeString, Validate: nonEmptyString("key")},
			{Name: "value", Type: TypeGeneric},
		},
	},
	"is_sublist_of": {
		Name: "is a sublist of",
		Args: []OperatorArg{{Name: "value", Type: TypeList}},
	},
	"is_superlist_of": {
		Name: "is a superlist of",
		Args: []OperatorArg{{Name: "value", Type: TypeList}},
	},
}

// ListField is a list request or response field.
type ListField struct {
	baseField
}

func newListField(key, description string, defaultValue any) *ListField {
	return &ListField{baseField{key: key, description: description, defaultValue: defaultValue}}
}

func (f *ListField) Kind() ValueType                    { return TypeList }
func (f *ListField) Operators() map[string]*OperatorDef { return listOperators }

// SetDisplayName overrides the serialized display name derived from the key.
func (f *ListField) SetDisplayName(name string) *ListField {
	f.displayName = name
	return f
}

// Contains matches lists that contain value as an element.
func (f *ListField) Contains(value any) (Check, error) {
	return buildCheck(listOperators, "contains", value)
}

// NotContains matches lists that do not contain value.
func (f *ListField) NotContains(value any) (Check, error) {
	return buildCheck(listOperators, "does_not_contain", value)
}

// IsEmpty matches the empty list.
func (f *ListField) IsEmpty() Check { return mustCheck(listOperators, "is_empty") }

// IsNotEmpty matches any non-empty list.
func (f *ListField) IsNotEmpty() Check { return mustCheck(listOperators, "is_not_empty") }

// IsOfLength matches lists with exactly the given length.
func (f *ListField) IsOfLength(length any) (Check, error) {
	return buildCheck(listOperators, "is_of_length", length)
}

// IsNotOfLength matches lists whose length differs from the given length.
func (f *ListField) IsNotOfLength(length any) (Check, error) {
	return buildCheck(listOperators, "is_not_of_length", length)
}

// IsLongerThan matches lists longer than the given length.
func (f *ListField) IsLongerThan(length any) (Check, error) {
	return buildCheck(listOperators, "is_longer_than", length)
}

// IsShorterThan matches lists shorter than the given length.
func (f *ListField) IsShorterThan(length any) (Check, error) {
	return buildCheck(listOperators, "is_shorter_than", length)
}

// ContainsAllOf matches lists containing every element of values.
func (f *ListField) ContainsAllOf(values any) (Check, error) {
	return buildCheck(listOperators, "contains_all_of", values)
}

// ContainsAnyOf matches lists containing at least one element of values.
func (f *ListField) ContainsAnyOf(values any) (Check, error) {
	return buildCheck(listOperators, "contains_any_of", values)
}

// ContainsNoneOf matches lists containing no element of values.
func (f *ListField) ContainsNoneOf(values any) (Check, error) {
	return buildCheck(listOperators, "contains_none_of", values)
}

// Equals matches lists equal to value element-wise.
func (f *ListField) Equals(value any) (Check, error) {
	return buildCheck(listOperators, "equals", value)
}

// NotEquals matches lists that differ from value.
func (f *ListField) NotEquals(value any) (Check, error) {
	return buildCheck(listOperators, "does_not_equal", value)
}

// ContainsDuplicates matches lists with at least one repeated element.
func (f *ListField) ContainsDuplicates() Check {
	return mustCheck(listOperators, "contains_duplicates")
}

// NotContainsDuplicates matches lists with no repeated elements.
func (f *ListField) NotContainsDuplicates() Check {
	return mustCheck(listOperators, "does_not_contain_duplicates")
}

// HasUniqueElements matches lists whose elements are all distinct.
func (f *ListField) HasUniqueElements() Check {
	return mustCheck(listOperators, "has_unique_elements")
}

// ContainsObjectWithKeyValue matches lists of objects where some object has
// the given key set to the given value.
func (f *ListField) ContainsObjectWithKeyValue(key, value any) (Check, error) {
	return buildCheck(listOperators, "contains_object_with_key_value", key, value)
}

// IsSublistOf matches lists fully contained in value.
func (f *ListField) IsSublistOf(value any) (Check, error) {
	return buildCheck(listOperators, "is_sublist_of", value)
}

// IsSuperlistOf matches lists that fully contain value.
func (f *ListField) IsSuperlistOf(value any) (Check, error) {
	return buildCheck(listOperators, "is_superlist_of", value)
}

// Any matches any value, including a missing one.
func (f *ListField) Any() Check { return mustCheck(listOperators, "any") }
