package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArgumentLiterals(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected ValueType
		wantErr  bool
	}{
		{"bool matches boolean", true, TypeBoolean, false},
		{"string rejected for boolean", "true", TypeBoolean, true},
		{"int matches number", 42, TypeNumber, false},
		{"float matches number", 42.5, TypeNumber, false},
		{"bool rejected for number", true, TypeNumber, true},
		{"string matches string", "x", TypeString, false},
		{"string matches date", "2024-01-01", TypeDate, false},
		{"number rejected for date", 20240101, TypeDate, true},
		{"slice matches list", []string{"a"}, TypeList, false},
		{"string rejected for list", "a,b", TypeList, true},
		{"map matches object", map[string]any{"a": 1}, TypeObject, false},
		{"anything matches generic", struct{}{}, TypeGeneric, false},
		{"nil rejected for list", nil, TypeList, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arg, err := NewArgument(tt.value, tt.expected)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsTypeMismatch(err))
				return
			}
			require.NoError(t, err)
			assert.False(t, arg.IsReference())
			assert.Equal(t, tt.value, arg.Value())
		})
	}
}

func TestNewArgumentReferences(t *testing.T) {
	dv := &DynamicValue{ID: "dv-1", Name: "minimum_age", Type: TypeNumber}

	t.Run("matching type accepted", func(t *testing.T) {
		arg, err := NewArgument(dv, TypeNumber)
		require.NoError(t, err)
		assert.True(t, arg.IsReference())
		assert.Same(t, dv, arg.Value())
	})

	t.Run("generic accepts any reference type", func(t *testing.T) {
		_, err := NewArgument(dv, TypeGeneric)
		assert.NoError(t, err)
	})

	t.Run("mismatched type names the value", func(t *testing.T) {
		_, err := NewArgument(dv, TypeString)
		require.Error(t, err)
		assert.True(t, IsTypeMismatch(err))
		assert.Contains(t, err.Error(), "minimum_age")
	})
}

func TestArgumentWire(t *testing.T) {
	t.Run("literal passes through", func(t *testing.T) {
		arg, err := NewArgument(42, TypeNumber)
		require.NoError(t, err)
		assert.Equal(t, 42, arg.Wire())
	})

	t.Run("reference serializes to tagged object", func(t *testing.T) {
		dv := &DynamicValue{ID: "dv-1", Name: "minimum_age", Type: TypeNumber}
		arg, err := NewArgument(dv, TypeNumber)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"id":   "dv-1",
			"$rb":  "globalValue",
			"name": "minimum_age",
		}, arg.Wire())
	})

	t.Run("references nested in lists serialize recursively", func(t *testing.T) {
		dv := &DynamicValue{ID: "dv-2", Name: "blocked", Type: TypeString}
		arg, err := NewArgument([]any{"literal", dv}, TypeList)
		require.NoError(t, err)
		wire, ok := arg.Wire().([]any)
		require.True(t, ok)
		assert.Equal(t, "literal", wire[0])
		assert.Equal(t, "globalValue", wire[1].(map[string]any)["$rb"])
	})
}
