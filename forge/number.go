package forge

// numberOperators is the catalog shared by every NumberField.
var numberOperators = map[string]*OperatorDef{
	"any": {
		Name:          "any",
		Description:   "Matches any value, including missing",
		SkipTypecheck: true,
	},
	"equals": {
		Name: "equals",
		Args: []OperatorArg{{Name: "value", Type: TypeNumber}},
	},
	"does_not_equal": {
		Name: "does not equal",
		Args: []OperatorArg{{Name: "value", Type: TypeNumber}},
	},
	"greater_than": {
		Name: "greater than",
		Args: []OperatorArg{{Name: "bound", Type: TypeNumber}},
	},
	"less_than": {
		Name: "less than",
		Args: []OperatorArg{{Name: "bound", Type: TypeNumber}},
	},
	"greater_than_or_equal": {
		Name: "greater than or equal to",
		Args: []OperatorArg{{Name: "bound", Type: TypeNumber}},
	},
	"less_than_or_equal": {
		Name: "less than or equal to",
		Args: []OperatorArg{{Name: "bound", Type: TypeNumber}},
	},
	"between": {
		Name: "between",
		Args: []OperatorArg{
			{Name: "start", Type: TypeNumber},
			{Name: "end", Type: TypeNumber},
		},
		Description: "Value is between start and end, inclusive",
		Validate:    orderedBounds,
	},
	"not_between": {
		Name: "not between",
		Args: []OperatorArg{
			{Name: "start", Type: TypeNumber},
			{Name: "end", Type: TypeNumber},
		},
		Validate: orderedBounds,
	},
	"is_even":     {Name: "is even"},
	"is_odd":      {Name: "is odd"},
	"is_positive": {Name: "is positive"},
	"is_negative": {Name: "is negative"},
	"is_zero":     {Name: "is zero"},
	"is_not_zero": {Name: "is not zero"},
	"is_multiple_of": {
		Name: "is a multiple of",
		Args: []OperatorArg{{Name: "multiple", Type: TypeNumber}},
	},
	"is_not_multiple_of": {
		Name: "is not a multiple of",
		Args: []OperatorArg{{Name: "multiple", Type: TypeNumber}},
	},
	"is_power_of": {
		Name: "is a power of",
		Args: []OperatorArg{{Name: "base", Type: TypeNumber, Validate: positiveNumber("base")}},
	},
}

// NumberField is a numeric request or response field. Arguments accept any
// integer or float width, or a *DynamicValue of number type.
type NumberField struct {
	baseField
}

func newNumberField(key, description string, defaultValue any) *NumberField {
	return &NumberField{baseField{key: key, description: description, defaultValue: defaultValue}}
}

func (f *NumberField) Kind() ValueType                    { return TypeNumber }
func (f *NumberField) Operators() map[string]*OperatorDef { return numberOperators }

// SetDisplayName overrides the serialized display name derived from the key.
func (f *NumberField) SetDisplayName(name string) *NumberField {
	f.displayName = name
	return f
}

// Equals matches when the field equals value.
func (f *NumberField) Equals(value any) (Check, error) {
	return buildCheck(numberOperators, "equals", value)
}

// NotEquals matches when the field does not equal value.
func (f *NumberField) NotEquals(value any) (Check, error) {
	return buildCheck(numberOperators, "does_not_equal", value)
}

// GreaterThan matches when the field is strictly greater than bound.
func (f *NumberField) GreaterThan(bound any) (Check, error) {
	return buildCheck(numberOperators, "greater_than", bound)
}

// LessThan matches when the field is strictly less than bound.
func (f *NumberField) LessThan(bound any) (Check, error) {
	return buildCheck(numberOperators, "less_than", bound)
}

// GreaterThanOrEqual matches when the field is at least bound.
func (f *NumberField) GreaterThanOrEqual(bound any) (Check, error) {
	return buildCheck(numberOperators, "greater_than_or_equal", bound)
}

// LessThanOrEqual matches when the field is at most bound.
func (f *NumberField) LessThanOrEqual(bound any) (Check, error) {
	return buildCheck(numberOperators, "less_than_or_equal", bound)
}

// Between matches when the field is within [start, end]. Fails with an
// INVALID_ARGUMENT error when start is not below end.
func (f *NumberField) Between(start, end any) (Check, error) {
	return buildCheck(numberOperators, "between", start, end)
}

// NotBetween matches when the field is outside [start, end].
func (f *NumberField) NotBetween(start, end any) (Check, error) {
	return buildCheck(numberOperators, "not_between", start, end)
}

// IsEven matches even integers.
func (f *NumberField) IsEven() Check { return mustCheck(numberOperators, "is_even") }

// IsOdd matches odd integers.
func (f *NumberField) IsOdd() Check { return mustCheck(numberOperators, "is_odd") }

// IsPositive matches values greater than zero.
func (f *NumberField) IsPositive() Check { return mustCheck(numberOperators, "is_positive") }

// IsNegative matches values less than zero.
func (f *NumberField) IsNegative() Check { return mustCheck(numberOperators, "is_negative") }

// IsZero matches zero.
func (f *NumberField) IsZero() Check { return mustCheck(numberOperators, "is_zero") }

// IsNotZero matches any non-zero value.
func (f *NumberField) IsNotZero() Check { return mustCheck(numberOperators, "is_not_zero") }

// IsMultipleOf matches multiples of the given value.
func (f *NumberField) IsMultipleOf(multiple any) (Check, error) {
	return buildCheck(numberOperators, "is_multiple_of", multiple)
}

// IsNotMultipleOf matches values that are not multiples of the given value.
func (f *NumberField) IsNotMultipleOf(multiple any) (Check, error) {
	return buildCheck(numberOperators, "is_not_multiple_of", multiple)
}

// IsPowerOf matches powers of base. Fails with an INVALID_ARGUMENT error when
// base is not positive.
func (f *NumberField) IsPowerOf(base any) (Check, error) {
	return buildCheck(numberOperators, "is_power_of", base)
}

// Any matches any value, including a missing one.
func (f *NumberField) Any() Check { return mustCheck(numberOperators, "any") }
