package forge

// RuleTest is one fixture in a rule's test suite: a request payload and the
// response expected for it. The execution fields (lastExecuted, testState,
// error, success) are populated by the server when the suite runs; the
// builder carries them through round-trips but never computes them.
type RuleTest struct {
	id       string
	name     string
	request  map[string]any
	response map[string]any
	critical bool

	lastExecuted any
	testState    any
	execError    any
	success      any
}

// NewRuleTest creates an empty fixture with a fresh 21-character id.
func NewRuleTest() *RuleTest {
	return &RuleTest{
		id:       randomID(21),
		name:     "Untitled Test",
		request:  map[string]any{},
		response: map[string]any{},
	}
}

// ID returns the test's stable identifier.
func (t *RuleTest) ID() string { return t.id }

// Name returns the test's display name.
func (t *RuleTest) Name() string { return t.name }

// Request returns the test's request payload.
func (t *RuleTest) Request() map[string]any { return t.request }

// Response returns the test's expected response.
func (t *RuleTest) Response() map[string]any { return t.response }

// Critical reports whether a failure of this test blocks publishing.
func (t *RuleTest) Critical() bool { return t.critical }

// SetName sets the test's display name.
func (t *RuleTest) SetName(name string) *RuleTest {
	t.name = name
	return t
}

// Expect sets the request payload and the response expected for it.
func (t *RuleTest) Expect(request, response map[string]any) *RuleTest {
	t.request = request
	t.response = response
	return t
}

// MarkCritical sets whether a failure of this test blocks publishing.
func (t *RuleTest) MarkCritical(critical bool) *RuleTest {
	t.critical = critical
	return t
}

// ToDict returns the test's wire form.
func (t *RuleTest) ToDict() map[string]any {
	return map[string]any{
		"id":           t.id,
		"name":         t.name,
		"request":      t.request,
		"response":     t.response,
		"critical":     t.critical,
		"lastExecuted": t.lastExecuted,
		"testState":    t.testState,
		"error":        t.execError,
		"success":      t.success,
	}
}

func testFromMap(m map[string]any) *RuleTest {
	t := NewRuleTest()
	setString(&t.id, m["id"])
	setString(&t.name, m["name"])
	if v, ok := m["request"].(map[string]any); ok {
		t.request = v
	}
	if v, ok := m["response"].(map[string]any); ok {
		t.response = v
	}
	if v, ok := m["critical"].(bool); ok {
		t.critical = v
	}
	t.lastExecuted = m["lastExecuted"]
	t.testState = m["testState"]
	t.execError = m["error"]
	t.success = m["success"]
	return t
}
