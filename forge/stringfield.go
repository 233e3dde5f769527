package forge

// stringOperators is the catalog shared by every StringField.
var stringOperators = map[string]*OperatorDef{
	"any": {
		Name:          "any",
		Description:   "Matches any value, including missing",
		SkipTypecheck: true,
	},
	"contains": {
		Name: "contains",
		Args: []OperatorArg{{Name: "value", Type: TypeString, Validate: nonEmptyString("value")}},
	},
	"does_not_contain": {
		Name: "does not contain",
		Args: []OperatorArg{{Name: "value", Type: TypeString, Validate: nonEmptyString("value")}},
	},
	"equals": {
		Name: "equals",
		Args: []OperatorArg{{Name: "value", Type: TypeString}},
	},
	"does_not_equal": {
		Name: "does not equal",
		Args: []OperatorArg{{Name: "value", Type: TypeString}},
	},
	"is_empty":     {Name: "is empty"},
	"is_not_empty": {Name: "is not empty"},
	"starts_with": {
		Name: "starts with",
		Args: []OperatorArg{{Name: "prefix", Type: TypeString, Validate: nonEmptyString("prefix")}},
	},
	"ends_with": {
		Name: "ends with",
		Args: []OperatorArg{{Name: "suffix", Type: TypeString, Validate: nonEmptyString("suffix")}},
	},
	"is_included_in": {
		Name: "is included in",
		Args: []OperatorArg{{Name: "values", Type: TypeList, Validate: nonEmptyList("values")}},
	},
	"is_not_included_in": {
		Name: "is not included in",
		Args: []OperatorArg{{Name: "values", Type: TypeList, Validate: nonEmptyList("values")}},
	},
	"contains_any_of": {
		Name: "contains any of",
		Args: []OperatorArg{{Name: "values", Type: TypeList, Validate: nonEmptyList("values")}},
	},
	"does_not_contain_any_of": {
		Name: "does not contain any of",
		Args: []OperatorArg{{Name: "values", Type: TypeList, Validate: nonEmptyList("values")}},
	},
	"matches_regex": {
		Name: "matches RegEx",
		Args: []OperatorArg{{Name: "pattern", Type: TypeString, Validate: nonEmptyString("pattern")}},
	},
	"does_not_match_regex": {
		Name: "does not match RegEx",
		Args: []OperatorArg{{Name: "pattern", Type: TypeString, Validate: nonEmptyString("pattern")}},
	},
	"is_email":                         {Name: "is a valid email address"},
	"is_not_email":                     {Name: "is not a valid email address"},
	"is_url":                           {Name: "is a valid URL"},
	"is_not_url":                       {Name: "is not a valid URL"},
	"is_ip":                            {Name: "is a valid IP address"},
	"is_not_ip":                        {Name: "is not a valid IP address"},
	"is_uppercase":                     {Name: "is uppercase"},
	"is_lowercase":                     {Name: "is lowercase"},
	"is_numeric":                       {Name: "is numeric"},
	"contains_only_digits":             {Name: "contains only digits"},
	"contains_only_letters":            {Name: "contains only letters"},
	"contains_only_digits_and_letters": {Name: "contains only digits and letters"},
}

// StringField is a string request or response field.
type StringField struct {
	baseField
}

func newStringField(key, description string, defaultValue any) *StringField {
	return &StringField{baseField{key: key, description: description, defaultValue: defaultValue}}
}

func (f *StringField) Kind() ValueType                    { return TypeString }
func (f *StringField) Operators() map[string]*OperatorDef { return stringOperators }

// SetDisplayName overrides the serialized display name derived from the key.
func (f *StringField) SetDisplayName(name string) *StringField {
	f.displayName = name
	return f
}

// Contains matches when the field contains value as a substring. The value
// must be non-empty.
func (f *StringField) Contains(value any) (Check, error) {
	return buildCheck(stringOperators, "contains", value)
}

// NotContains matches when the field does not contain value as a substring.
func (f *StringField) NotContains(value any) (Check, error) {
	return buildCheck(stringOperators, "does_not_contain", value)
}

// Equals matches when the field equals value exactly.
func (f *StringField) Equals(value any) (Check, error) {
	return buildCheck(stringOperators, "equals", value)
}

// NotEquals matches when the field differs from value.
func (f *StringField) NotEquals(value any) (Check, error) {
	return buildCheck(stringOperators, "does_not_equal", value)
}

// IsEmpty matches the empty string.
func (f *StringField) IsEmpty() Check { return mustCheck(stringOperators, "is_empty") }

// IsNotEmpty matches any non-empty string.
func (f *StringField) IsNotEmpty() Check { return mustCheck(stringOperators, "is_not_empty") }

// StartsWith matches when the field begins with the non-empty prefix.
func (f *StringField) StartsWith(prefix any) (Check, error) {
	return buildCheck(stringOperators, "starts_with", prefix)
}

// EndsWith matches when the field ends with the non-empty suffix.
func (f *StringField) EndsWith(suffix any) (Check, error) {
	return buildCheck(stringOperators, "ends_with", suffix)
}

// IsIncludedIn matches when the field equals one of the given non-empty list
// of values.
func (f *StringField) IsIncludedIn(values any) (Check, error) {
	return buildCheck(stringOperators, "is_included_in", values)
}

// IsNotIncludedIn matches when the field equals none of the given non-empty
// list of values.
func (f *StringField) IsNotIncludedIn(values any) (Check, error) {
	return buildCheck(stringOperators, "is_not_included_in", values)
}

// ContainsAnyOf matches when the field contains at least one of the given
// non-empty list of substrings.
func (f *StringField) ContainsAnyOf(values any) (Check, error) {
	return buildCheck(stringOperators, "contains_any_of", values)
}

// NotContainsAnyOf matches when the field contains none of the given
// non-empty list of substrings.
func (f *StringField) NotContainsAnyOf(values any) (Check, error) {
	return buildCheck(stringOperators, "does_not_contain_any_of", values)
}

// MatchesRegex matches the field against a non-empty regular expression.
func (f *StringField) MatchesRegex(pattern any) (Check, error) {
	return buildCheck(stringOperators, "matches_regex", pattern)
}

// NotMatchesRegex matches when the field does not match the pattern.
func (f *StringField) NotMatchesRegex(pattern any) (Check, error) {
	return buildCheck(stringOperators, "does_not_match_regex", pattern)
}

// IsEmail matches syntactically valid email addresses.
func (f *StringField) IsEmail() Check { return mustCheck(stringOperators, "is_email") }

// IsNotEmail matches values that are not valid email addresses.
func (f *StringField) IsNotEmail() Check { return mustCheck(stringOperators, "is_not_email") }

// IsURL matches syntactically valid URLs.
func (f *StringField) IsURL() Check { return mustCheck(stringOperators, "is_url") }

// IsNotURL matches values that are not valid URLs.
func (f *StringField) IsNotURL() Check { return mustCheck(stringOperators, "is_not_url") }

// IsIPAddress matches valid IPv4 or IPv6 addresses.
func (f *StringField) IsIPAddress() Check { return mustCheck(stringOperators, "is_ip") }

// IsNotIPAddress matches values that are not valid IP addresses.
func (f *StringField) IsNotIPAddress() Check { return mustCheck(stringOperators, "is_not_ip") }

// IsUppercase matches all-uppercase values.
func (f *StringField) IsUppercase() Check { return mustCheck(stringOperators, "is_uppercase") }

// IsLowercase matches all-lowercase values.
func (f *StringField) IsLowercase() Check { return mustCheck(stringOperators, "is_lowercase") }

// IsNumeric matches values parseable as numbers.
func (f *StringField) IsNumeric() Check { return mustCheck(stringOperators, "is_numeric") }

// ContainsOnlyDigits matches values made of digits only.
func (f *StringField) ContainsOnlyDigits() Check {
	return mustCheck(stringOperators, "contains_only_digits")
}

// ContainsOnlyLetters matches values made of letters only.
func (f *StringField) ContainsOnlyLetters() Check {
	return mustCheck(stringOperators, "contains_only_letters")
}

// ContainsOnlyDigitsAndLetters matches values made of digits and letters only.
func (f *StringField) ContainsOnlyDigitsAndLetters() Check {
	return mustCheck(stringOperators, "contains_only_digits_and_letters")
}

// Any matches any value, including a missing one.
func (f *StringField) Any() Check { return mustCheck(stringOperators, "any") }
