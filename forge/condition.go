package forge

// ConditionSettings control how the engine treats one decision-table row.
type ConditionSettings struct {
	// Enabled rows participate in evaluation. Defaults to true.
	Enabled bool

	// GroupID places the row in a condition group. Serialized as null when empty.
	GroupID string

	// Priority orders rows within a group.
	Priority int

	// Schedule holds engine-defined activation windows. The builder preserves
	// entries verbatim and never interprets them.
	Schedule []any

	// Or marks the row as OR-semantics: any one check matching satisfies the
	// row, instead of all of them.
	Or bool
}

func defaultConditionSettings() ConditionSettings {
	return ConditionSettings{Enabled: true}
}

func (s ConditionSettings) wire() map[string]any {
	var groupID any
	if s.GroupID != "" {
		groupID = s.GroupID
	}
	schedule := s.Schedule
	if schedule == nil {
		schedule = []any{}
	}
	m := map[string]any{
		"enabled":  s.Enabled,
		"groupId":  groupID,
		"priority": s.Priority,
		"schedule": schedule,
	}
	if s.Or {
		m["or"] = true
	}
	return m
}

// checkRecord is one serialized request cell: operator display name plus
// wire-form arguments.
type checkRecord struct {
	op   string
	args []any
}

// conditionRow is the stored form of one decision-table row. Rows live in the
// rule's ordered slice; handles (*Condition) point at them by identity.
type conditionRow struct {
	id       string
	request  map[string]checkRecord
	response map[string]any
	settings ConditionSettings
}

func (r *conditionRow) wire() map[string]any {
	request := make(map[string]any, len(r.request))
	for field, rec := range r.request {
		args := rec.args
		if args == nil {
			args = []any{}
		}
		request[field] = map[string]any{"op": rec.op, "args": args}
	}
	response := make(map[string]any, len(r.response))
	for field, value := range r.response {
		response[field] = map[string]any{"value": value}
	}
	return map[string]any{
		"request":  request,
		"response": response,
		"settings": r.settings.wire(),
	}
}

// Condition is a handle on one decision-table row. A fresh handle (from
// Rule.When or Rule.Any) is unbound: checks and settings are staged locally
// and the row is only appended to the rule when Then finalizes it. Handles
// returned by GetCondition and FindConditions are bound and write through to
// the stored row immediately.
//
// The handle's ID is assigned at creation and never changes, so it stays
// valid across insertions, deletions and reordering of other rows.
type Condition struct {
	rule     *Rule
	id       string
	row      *conditionRow
	staged   map[string]Check
	settings ConditionSettings
}

// ID returns the condition's stable identifier.
func (c *Condition) ID() string { return c.id }

// bound reports whether the condition has been finalized into the rule.
func (c *Condition) bound() bool { return c.row != nil }

// When sets the request cells of the condition. Every referenced field must
// exist in the rule's request schema; on any unknown field the condition is
// left unmodified and a FIELD_NOT_DEFINED error is returned. On a bound
// condition the stored row is rewritten in place.
func (c *Condition) When(checks Checks) (*Condition, error) {
	for field := range checks {
		if !c.rule.requestFields.has(field) {
			return nil, NewFieldNotDefinedError(field, "request")
		}
	}
	if c.bound() {
		for field, check := range checks {
			c.row.request[field] = newCheckRecord(check)
		}
		return c, nil
	}
	for field, check := range checks {
		c.staged[field] = check
	}
	return c, nil
}

// Then sets the response cells. Every referenced field must exist in the
// response schema and every value must match its field's type; on failure
// nothing is mutated. An unbound condition is finalized and appended to the
// rule, preserving insertion order. The rule is returned for chaining.
func (c *Condition) Then(values Values) (*Rule, error) {
	wired := make(map[string]any, len(values))
	for field, value := range values {
		f, ok := c.rule.responseFields.get(field)
		if !ok {
			return nil, NewFieldNotDefinedError(field, "response")
		}
		arg, err := NewArgument(value, f.Kind())
		if err != nil {
			return nil, err
		}
		wired[field] = arg.Wire()
	}

	if c.bound() {
		for field, value := range wired {
			c.row.response[field] = value
		}
		return c.rule, nil
	}

	row := &conditionRow{
		id:       c.id,
		request:  make(map[string]checkRecord, len(c.staged)),
		response: wired,
		settings: c.settings,
	}
	for field, check := range c.staged {
		row.request[field] = newCheckRecord(check)
	}
	c.rule.conditions = append(c.rule.conditions, row)
	c.row = row
	c.staged = nil
	return c.rule, nil
}

// SetPriority sets the row's priority within its group.
func (c *Condition) SetPriority(priority int) *Condition {
	if c.bound() {
		c.row.settings.Priority = priority
	} else {
		c.settings.Priority = priority
	}
	return c
}

// SetGroup places the row in the given condition group.
func (c *Condition) SetGroup(groupID string) *Condition {
	if c.bound() {
		c.row.settings.GroupID = groupID
	} else {
		c.settings.GroupID = groupID
	}
	return c
}

// Enable includes the row in evaluation.
func (c *Condition) Enable() *Condition {
	if c.bound() {
		c.row.settings.Enabled = true
	} else {
		c.settings.Enabled = true
	}
	return c
}

// Disable excludes the row from evaluation without deleting it.
func (c *Condition) Disable() *Condition {
	if c.bound() {
		c.row.settings.Enabled = false
	} else {
		c.settings.Enabled = false
	}
	return c
}

// Settings returns a copy of the row's current settings.
func (c *Condition) Settings() ConditionSettings {
	if c.bound() {
		return c.row.settings
	}
	return c.settings
}

// Delete removes the row from the rule. The row is located by identity, not
// by position, so the handle stays valid regardless of other mutations.
// Deleting an unbound or already-deleted condition is an error.
func (c *Condition) Delete() error {
	if !c.bound() {
		return NewInvalidArgumentError("condition is not part of the rule")
	}
	for i, row := range c.rule.conditions {
		if row == c.row {
			c.rule.conditions = append(c.rule.conditions[:i], c.rule.conditions[i+1:]...)
			c.row = nil
			return nil
		}
	}
	return NewInvalidArgumentError("condition is not part of the rule")
}

func newCheckRecord(check Check) checkRecord {
	args := make([]any, len(check.Args))
	for i, a := range check.Args {
		args[i] = toWire(a)
	}
	return checkRecord{op: check.Op, args: args}
}
