package forge

// booleanOperators is the catalog shared by every BooleanField.
var booleanOperators = map[string]*OperatorDef{
	"any": {
		Name:          "any",
		Description:   "Matches any value, including missing",
		SkipTypecheck: true,
	},
	"is_true": {
		Name:        "is true",
		Description: "Value is true",
	},
	"is_false": {
		Name:        "is false",
		Description: "Value is false",
	},
}

// BooleanField is a boolean request or response field.
type BooleanField struct {
	baseField
}

func newBooleanField(key, description string, defaultValue any) *BooleanField {
	return &BooleanField{baseField{key: key, description: description, defaultValue: defaultValue}}
}

func (f *BooleanField) Kind() ValueType                    { return TypeBoolean }
func (f *BooleanField) Operators() map[string]*OperatorDef { return booleanOperators }

// SetDisplayName overrides the serialized display name derived from the key.
func (f *BooleanField) SetDisplayName(name string) *BooleanField {
	f.displayName = name
	return f
}

// Equals matches when the field equals value. Serialized as the zero-argument
// "is true" or "is false" operator; the comparand is folded into the operator
// name rather than carried as an argument.
func (f *BooleanField) Equals(value bool) Check {
	if value {
		return mustCheck(booleanOperators, "is_true")
	}
	return mustCheck(booleanOperators, "is_false")
}

// IsTrue matches when the field is true.
func (f *BooleanField) IsTrue() Check {
	return mustCheck(booleanOperators, "is_true")
}

// IsFalse matches when the field is false.
func (f *BooleanField) IsFalse() Check {
	return mustCheck(booleanOperators, "is_false")
}

// Any matches any value, including a missing one.
func (f *BooleanField) Any() Check {
	return mustCheck(booleanOperators, "any")
}
