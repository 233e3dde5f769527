package ruleschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulesmith/forge/forge"
)

func exportedRule(t *testing.T) []byte {
	t.Helper()
	r := forge.NewRule()
	r.SetName("Health Insurance Account Selector")
	age := r.AddNumberField("age", "Age of applicant", 0)
	r.AddStringResponse("recommended_plan", "Recommended plan", "")

	check, err := age.Between(18, 35)
	require.NoError(t, err)
	cond, err := r.When(forge.Checks{"age": check})
	require.NoError(t, err)
	_, err = cond.Then(forge.Values{"recommended_plan": "HSA"})
	require.NoError(t, err)

	r.AddTest(forge.NewRuleTest().
		Expect(map[string]any{"age": 25}, map[string]any{"recommended_plan": "HSA"}))

	data, err := r.ToJSON()
	require.NoError(t, err)
	return data
}

func TestValidateAcceptsBuilderOutput(t *testing.T) {
	assert.NoError(t, Validate(exportedRule(t)))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{"name": `},
		{"missing required fields", `{"name": "x"}`},
		{"empty id", `{"id": ""}`},
		{"schema entry with bad type", `{
			"id": "r", "name": "n", "description": "", "tag": null, "slug": "s",
			"createdAt": "", "updatedAt": "", "updatedBy": "", "published": false,
			"publishedAt": null, "sampleRequest": {}, "sampleResponse": {},
			"testRequest": {},
			"requestSchema": [{"key": "age", "name": "Age", "type": "float",
				"description": "", "defaultValue": 0, "show": true}],
			"responseSchema": [], "conditions": [], "no_conditions": 0,
			"form": {}, "history": [], "settings": {}, "groups": {},
			"testSuite": [], "accessGroups": []
		}`},
		{"condition without op", `{
			"id": "r", "name": "n", "description": "", "tag": null, "slug": "s",
			"createdAt": "", "updatedAt": "", "updatedBy": "", "published": false,
			"publishedAt": null, "sampleRequest": {}, "sampleResponse": {},
			"testRequest": {}, "requestSchema": [], "responseSchema": [],
			"conditions": [{"request": {"age": {"args": []}}, "response": {},
				"settings": {"enabled": true, "groupId": null, "priority": 0, "schedule": []}}],
			"no_conditions": 1, "form": {}, "history": [], "settings": {},
			"groups": {}, "testSuite": [], "accessGroups": []
		}`},
		{"negative condition count", `{
			"id": "r", "name": "n", "description": "", "tag": null, "slug": "s",
			"createdAt": "", "updatedAt": "", "updatedBy": "", "published": false,
			"publishedAt": null, "sampleRequest": {}, "sampleResponse": {},
			"testRequest": {}, "requestSchema": [], "responseSchema": [],
			"conditions": [], "no_conditions": -1, "form": {}, "history": [],
			"settings": {}, "groups": {}, "testSuite": [], "accessGroups": []
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.data))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}
