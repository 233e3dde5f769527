package forge

import "fmt"

// Argument is one validated operator argument: either a literal captured at
// build time or a reference to a dynamic value resolved at evaluation time.
// Exactly one of the two is set.
type Argument struct {
	expected ValueType
	literal  any
	ref      *DynamicValue
}

// NewArgument validates value against the expected type and wraps it. A
// *DynamicValue becomes a reference argument when its declared type matches
// (generic matches everything); any other value becomes a literal argument
// when its native Go type matches. Returns a TYPE_MISMATCH error otherwise.
func NewArgument(value any, expected ValueType) (Argument, error) {
	if dv, ok := value.(*DynamicValue); ok {
		if expected != TypeGeneric && dv.Type != expected {
			return Argument{}, NewTypeMismatchError(fmt.Sprintf(
				"dynamic value %q is %s, expected %s", dv.Name, dv.Type, expected))
		}
		return Argument{expected: expected, ref: dv}, nil
	}
	if !literalMatches(value, expected) {
		return Argument{}, NewTypeMismatchError(fmt.Sprintf(
			"expected %s, got %s (%v)", expected, describeType(value), value))
	}
	return Argument{expected: expected, literal: value}, nil
}

// IsReference reports whether the argument is a dynamic value reference.
func (a Argument) IsReference() bool {
	return a.ref != nil
}

// Value returns the underlying literal, or the *DynamicValue for references.
func (a Argument) Value() any {
	if a.ref != nil {
		return a.ref
	}
	return a.literal
}

// Wire returns the serialized form: the literal unchanged (lists and maps
// converted recursively) or the reference object for dynamic values.
func (a Argument) Wire() any {
	if a.ref != nil {
		return a.ref.Ref()
	}
	return toWire(a.literal)
}
