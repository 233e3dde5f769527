package forge

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// OperatorArg declares one ordered argument of an operator: its display name,
// expected type, and an optional validator applied to literal values. Dynamic
// value references skip the validator since their concrete value is only
// known to the engine.
type OperatorArg struct {
	Name        string
	Type        ValueType
	Description string
	Validate    func(any) error
}

// OperatorDef is one entry of a field kind's operator catalog. Name is the
// display name serialized to the wire ("greater than or equal to", "matches
// RegEx", ...). Validate, when set, checks constraints across arguments and
// runs only when every argument is a literal.
type OperatorDef struct {
	Name          string
	Args          []OperatorArg
	Description   string
	Validate      func(args []any) error
	SkipTypecheck bool
}

// Check is a normalized (operator, arguments) pair produced by a field's
// builder methods and consumed by Condition.When. Args holds the caller's
// values; dynamic value references are converted at serialization time.
type Check struct {
	Op   string
	Args []any
}

// buildCheck resolves an operator by catalog key, validates the supplied
// arguments against its declaration, and returns the normalized check.
func buildCheck(ops map[string]*OperatorDef, key string, args ...any) (Check, error) {
	def, ok := ops[key]
	if !ok {
		return Check{}, NewInvalidArgumentError(fmt.Sprintf("unknown operator %q", key))
	}
	if args == nil {
		args = []any{}
	}
	if len(args) != len(def.Args) {
		return Check{}, NewInvalidArgumentError(fmt.Sprintf(
			"operator %q takes %d argument(s), got %d", def.Name, len(def.Args), len(args)))
	}
	if def.SkipTypecheck {
		return Check{Op: def.Name, Args: args}, nil
	}

	allLiteral := true
	for i, v := range args {
		arg, err := NewArgument(v, def.Args[i].Type)
		if err != nil {
			return Check{}, err
		}
		if arg.IsReference() {
			allLiteral = false
			continue
		}
		if def.Args[i].Validate != nil {
			if err := def.Args[i].Validate(v); err != nil {
				return Check{}, err
			}
		}
	}
	if allLiteral && def.Validate != nil {
		if err := def.Validate(args); err != nil {
			return Check{}, err
		}
	}
	return Check{Op: def.Name, Args: args}, nil
}

// mustCheck is for operators that take no arguments and cannot fail.
func mustCheck(ops map[string]*OperatorDef, key string) Check {
	c, err := buildCheck(ops, key)
	if err != nil {
		panic(err) // catalog bug, not caller error
	}
	return c
}

// BuildCheck constructs a check against a field's catalog by operator key
// ("greater_than_or_equal", "matches_regex", ...). It applies the same
// validation as the field's typed builder methods and exists for callers that
// assemble conditions dynamically, such as loading rule definitions from
// configuration files.
func BuildCheck(f Field, operatorKey string, args ...any) (Check, error) {
	return buildCheck(f.Operators(), operatorKey, args...)
}

// Shared argument validators.

func nonEmptyString(name string) func(any) error {
	return func(v any) error {
		if s, ok := v.(string); ok && s == "" {
			return NewInvalidArgumentError(fmt.Sprintf("%s must not be empty", name))
		}
		return nil
	}
}

func nonEmptyList(name string) func(any) error {
	return func(v any) error {
		rv := reflect.ValueOf(v)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 0 {
			return NewInvalidArgumentError(fmt.Sprintf("%s must not be empty", name))
		}
		return nil
	}
}

func positiveNumber(name string) func(any) error {
	return func(v any) error {
		// Validators run after NewArgument's type check, so a conversion
		// failure here means a non-number argument slot and is not ours to
		// reject.
		n, err := cast.ToFloat64E(v)
		if err != nil {
			return nil
		}
		if n <= 0 {
			return NewInvalidArgumentError(fmt.Sprintf("%s must be greater than 0", name))
		}
		return nil
	}
}

// orderedBounds rejects ranges where the start is not strictly below the end.
// Non-numeric bounds (date ranges) pass through; type checking happened in
// NewArgument before this runs.
func orderedBounds(args []any) error {
	start, err1 := cast.ToFloat64E(args[0])
	end, err2 := cast.ToFloat64E(args[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	if start >= end {
		return NewInvalidArgumentError(fmt.Sprintf(
			"start value (%v) must be less than end value (%v)", args[0], args[1]))
	}
	return nil
}
