package forge

import (
	"fmt"
	"reflect"
	"time"
)

// ValueType identifies the kind of a schema field, an operator argument, or a
// dynamic value. The wire format uses these exact strings.
type ValueType string

const (
	TypeBoolean ValueType = "boolean"
	TypeNumber  ValueType = "number"
	TypeString  ValueType = "string"
	TypeDate    ValueType = "date"
	TypeList    ValueType = "list"
	TypeObject  ValueType = "object"

	// TypeGeneric accepts any value. Used by operators whose argument type
	// depends on the data, e.g. list "contains".
	TypeGeneric ValueType = "generic"
)

// Valid reports whether t is one of the known value types.
func (t ValueType) Valid() bool {
	switch t {
	case TypeBoolean, TypeNumber, TypeString, TypeDate, TypeList, TypeObject, TypeGeneric:
		return true
	}
	return false
}

// Checks maps request field names to the check each must satisfy. Passed to
// Rule.When, Rule.Any, Condition.When and Rule.FindConditions.
type Checks map[string]Check

// Values maps response field names to the value each takes when a condition
// matches. Passed to Condition.Then.
type Values map[string]any

// literalMatches reports whether a native Go value is acceptable as a literal
// of the given type. Number accepts every integer and float width; date
// accepts time.Time or a string representation; list and object accept any
// slice/array or map respectively.
func literalMatches(v any, t ValueType) bool {
	switch t {
	case TypeGeneric:
		return true
	case TypeBoolean:
		_, ok := v.(bool)
		return ok
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeDate:
		switch v.(type) {
		case time.Time, string:
			return true
		}
		return false
	case TypeNumber:
		switch v.(type) {
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64,
			float32, float64:
			return true
		}
		return false
	case TypeList:
		if v == nil {
			return false
		}
		k := reflect.TypeOf(v).Kind()
		return k == reflect.Slice || k == reflect.Array
	case TypeObject:
		if v == nil {
			return false
		}
		return reflect.TypeOf(v).Kind() == reflect.Map
	}
	return false
}

// describeType names a value's type for error messages.
func describeType(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case time.Time:
		return "date"
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return "number"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
