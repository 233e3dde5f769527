package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/rulesmith/forge/forge"
)

// RuleDefinition is the YAML source format consumed by `forge build`. It is
// a declarative mirror of the builder API: fields, decision-table rows, and
// test fixtures.
type RuleDefinition struct {
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	Request     []FieldDefinition     `yaml:"request"`
	Response    []FieldDefinition     `yaml:"response"`
	Conditions  []ConditionDefinition `yaml:"conditions"`
	Tests       []TestDefinition      `yaml:"tests"`
}

// FieldDefinition declares one schema field.
type FieldDefinition struct {
	Key         string `yaml:"key"`
	Type        string `yaml:"type"`
	Name        string `yaml:"name"` // optional display name
	Description string `yaml:"description"`
	Default     any    `yaml:"default"`
}

// CheckDefinition is one request cell: an operator key from the field kind's
// catalog ("between", "greater_than_or_equal") plus its arguments.
type CheckDefinition struct {
	Op   string `yaml:"op"`
	Args []any  `yaml:"args"`
}

// ConditionDefinition declares one decision-table row.
type ConditionDefinition struct {
	When     map[string]CheckDefinition `yaml:"when"`
	Then     map[string]any             `yaml:"then"`
	Priority int                        `yaml:"priority"`
	Group    string                     `yaml:"group"`
	Or       bool                       `yaml:"or"`
	Disabled bool                       `yaml:"disabled"`
}

// TestDefinition declares one test fixture.
type TestDefinition struct {
	Name     string         `yaml:"name"`
	Request  map[string]any `yaml:"request"`
	Response map[string]any `yaml:"response"`
	Critical bool           `yaml:"critical"`
}

// LoadDefinition reads and decodes a YAML rule definition.
func LoadDefinition(path string) (*RuleDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}
	var def RuleDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decoding definition: %w", err)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("definition has no name")
	}
	return &def, nil
}

// BuildRule turns a definition into a rule, running the same validation as
// the builder API: unknown fields, unknown operators and bad arguments all
// fail with the builder's typed errors.
func BuildRule(def *RuleDefinition) (*forge.Rule, error) {
	rule := forge.NewRule()
	rule.SetName(def.Name)
	rule.SetDescription(def.Description)

	if err := addFields(rule, def.Request, true); err != nil {
		return nil, err
	}
	if err := addFields(rule, def.Response, false); err != nil {
		return nil, err
	}

	for i, cd := range def.Conditions {
		checks := forge.Checks{}
		for fieldKey, check := range cd.When {
			f, err := rule.GetField(fieldKey)
			if err != nil {
				return nil, fmt.Errorf("conditions[%d]: %w", i, err)
			}
			c, err := forge.BuildCheck(f, check.Op, check.Args...)
			if err != nil {
				return nil, fmt.Errorf("conditions[%d] %s: %w", i, fieldKey, err)
			}
			checks[fieldKey] = c
		}

		var cond *forge.Condition
		var err error
		if cd.Or {
			cond, err = rule.Any(checks)
		} else {
			cond, err = rule.When(checks)
		}
		if err != nil {
			return nil, fmt.Errorf("conditions[%d]: %w", i, err)
		}
		cond.SetPriority(cd.Priority)
		if cd.Group != "" {
			cond.SetGroup(cd.Group)
		}
		if cd.Disabled {
			cond.Disable()
		}
		if _, err := cond.Then(forge.Values(cd.Then)); err != nil {
			return nil, fmt.Errorf("conditions[%d]: %w", i, err)
		}
	}

	for _, td := range def.Tests {
		t := forge.NewRuleTest().Expect(td.Request, td.Response).MarkCritical(td.Critical)
		if td.Name != "" {
			t.SetName(td.Name)
		}
		rule.AddTest(t)
	}
	return rule, nil
}

func addFields(rule *forge.Rule, defs []FieldDefinition, request bool) error {
	for _, fd := range defs {
		if fd.Key == "" {
			return fmt.Errorf("field with no key")
		}
		var f forge.Field
		switch forge.ValueType(fd.Type) {
		case forge.TypeBoolean:
			if request {
				f = rule.AddBooleanField(fd.Key, fd.Description, cast.ToBool(fd.Default))
			} else {
				f = rule.AddBooleanResponse(fd.Key, fd.Description, cast.ToBool(fd.Default))
			}
		case forge.TypeNumber:
			if request {
				f = rule.AddNumberField(fd.Key, fd.Description, cast.ToFloat64(fd.Default))
			} else {
				f = rule.AddNumberResponse(fd.Key, fd.Description, cast.ToFloat64(fd.Default))
			}
		case forge.TypeString:
			if request {
				f = rule.AddStringField(fd.Key, fd.Description, cast.ToString(fd.Default))
			} else {
				f = rule.AddStringResponse(fd.Key, fd.Description, cast.ToString(fd.Default))
			}
		case forge.TypeDate:
			if request {
				f = rule.AddDateField(fd.Key, fd.Description)
			} else {
				f = rule.AddDateResponse(fd.Key, fd.Description)
			}
		case forge.TypeList:
			def, _ := fd.Default.([]any)
			if request {
				f = rule.AddListField(fd.Key, fd.Description, def)
			} else {
				f = rule.AddListResponse(fd.Key, fd.Description, def)
			}
		default:
			return fmt.Errorf("field %q has unknown type %q", fd.Key, fd.Type)
		}
		if fd.Name != "" {
			setDisplayName(f, fd.Name)
		}
	}
	return nil
}

func setDisplayName(f forge.Field, name string) {
	switch x := f.(type) {
	case *forge.BooleanField:
		x.SetDisplayName(name)
	case *forge.NumberField:
		x.SetDisplayName(name)
	case *forge.StringField:
		x.SetDisplayName(name)
	case *forge.DateField:
		x.SetDisplayName(name)
	case *forge.ListField:
		x.SetDisplayName(name)
	}
}
