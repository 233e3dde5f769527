package forge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildHealthInsuranceRule(t *testing.T) *Rule {
	t.Helper()
	r := NewRule()
	r.SetName("Health Insurance Account Selector")
	r.SetDescription("Selects an account type from applicant demographics")

	age := r.AddNumberField("age", "Age of the applicant", 0)
	income := r.AddNumberField("annual_income", "Annual income in USD", 0)
	dependents := r.AddBooleanField("has_dependents", "Any dependents", false)
	r.AddStringResponse("recommended_plan", "Recommended account type", "")

	young, err := age.Between(18, 35)
	require.NoError(t, err)
	modest, err := income.LessThan(60000)
	require.NoError(t, err)
	cond, err := r.When(Checks{"age": young, "annual_income": modest})
	require.NoError(t, err)
	_, err = cond.Then(Values{"recommended_plan": "HSA"})
	require.NoError(t, err)

	family := dependents.Equals(true)
	cond, err = r.When(Checks{"has_dependents": family})
	require.NoError(t, err)
	_, err = cond.Then(Values{"recommended_plan": "PPO"})
	require.NoError(t, err)

	r.AddTest(NewRuleTest().SetName("young saver").
		Expect(map[string]any{"age": 25, "annual_income": 40000, "has_dependents": false},
			map[string]any{"recommended_plan": "HSA"}).
		MarkCritical(true))
	return r
}

func TestDisplayNameDerivation(t *testing.T) {
	r := NewRule()
	r.AddStringField("recommended_plan", "", "")
	r.AddNumberField("age", "", 0)
	f := r.AddNumberField("apr", "", 0)
	f.SetDisplayName("APR")

	schema := r.ToDict()["requestSchema"].([]any)
	assert.Equal(t, "Recommended Plan", schema[0].(map[string]any)["name"])
	assert.Equal(t, "Age", schema[1].(map[string]any)["name"])
	assert.Equal(t, "APR", schema[2].(map[string]any)["name"], "explicit name wins")
}

func TestDottedKeysNestInSamplePayloads(t *testing.T) {
	r := NewRule()
	r.AddNumberField("account.balance", "", 250)
	r.AddStringField("account.owner.name", "", "unknown")
	r.AddBooleanField("active", "", true)

	sample := r.ToDict()["sampleRequest"].(map[string]any)
	account := sample["account"].(map[string]any)
	assert.Equal(t, float64(250), account["balance"])
	assert.Equal(t, "unknown", account["owner"].(map[string]any)["name"])
	assert.Equal(t, true, sample["active"])

	schema := r.ToDict()["requestSchema"].([]any)
	assert.Equal(t, "account.balance", schema[0].(map[string]any)["key"],
		"schema entries keep the flat dotted key")
}

func TestRoundTrip(t *testing.T) {
	r := buildHealthInsuranceRule(t)
	data, err := r.ToJSON()
	require.NoError(t, err)

	loaded, err := FromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, r.ID(), loaded.ID())
	assert.Equal(t, r.Name(), loaded.Name())
	assert.Equal(t, r.Slug(), loaded.Slug())
	assert.Equal(t, r.Description(), loaded.Description())

	t.Run("schema order preserved", func(t *testing.T) {
		want := []string{"age", "annual_income", "has_dependents"}
		schema := loaded.ToDict()["requestSchema"].([]any)
		require.Len(t, schema, len(want))
		for i, key := range want {
			assert.Equal(t, key, schema[i].(map[string]any)["key"])
		}
	})

	t.Run("condition order and content preserved", func(t *testing.T) {
		require.Equal(t, 2, loaded.ConditionCount())
		first := loaded.Conditions()[0]["request"].(map[string]any)
		assert.Equal(t, "between", first["age"].(map[string]any)["op"])
		second := loaded.Conditions()[1]["request"].(map[string]any)
		assert.Equal(t, "is true", second["has_dependents"].(map[string]any)["op"])
	})

	t.Run("test suite preserved", func(t *testing.T) {
		require.Len(t, loaded.Tests(), 1)
		lt := loaded.Tests()[0]
		assert.Equal(t, "young saver", lt.Name())
		assert.True(t, lt.Critical())
	})

	t.Run("second round trip is stable", func(t *testing.T) {
		again, err := loaded.ToJSON()
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(again))
	})
}

func TestFromJSONErrors(t *testing.T) {
	t.Run("malformed JSON", func(t *testing.T) {
		_, err := FromJSON([]byte(`{"name": `))
		require.Error(t, err)
		assert.True(t, IsSerialization(err))
	})

	t.Run("schema entry missing key", func(t *testing.T) {
		_, err := FromJSON([]byte(`{"requestSchema": [{"type": "number"}]}`))
		require.Error(t, err)
		assert.True(t, IsSerialization(err))
	})

	t.Run("schema entry missing type", func(t *testing.T) {
		_, err := FromJSON([]byte(`{"requestSchema": [{"key": "age"}]}`))
		require.Error(t, err)
		assert.True(t, IsSerialization(err))
	})

	t.Run("schema entry with unknown type", func(t *testing.T) {
		_, err := FromJSON([]byte(`{"requestSchema": [{"key": "age", "type": "float"}]}`))
		require.Error(t, err)
		assert.True(t, IsSerialization(err))
	})

	t.Run("condition cell that is not an object", func(t *testing.T) {
		_, err := FromJSON([]byte(`{"conditions": [{"request": {"age": 5}}]}`))
		require.Error(t, err)
		assert.True(t, IsSerialization(err))
	})
}

func TestFromMapPreservesServerFields(t *testing.T) {
	m := map[string]any{
		"id":                  "r-1",
		"name":                "Imported",
		"slug":                "imported123",
		"tag":                 "folder-9",
		"published":           true,
		"publishedAt":         "2024-06-01T00:00:00Z",
		"history":             []any{map[string]any{"event": "published"}},
		"accessGroups":        []any{"ops"},
		"publishedConditions": []any{map[string]any{"request": map[string]any{}}},
	}
	r, err := FromMap(m)
	require.NoError(t, err)
	assert.Equal(t, "folder-9", r.FolderID())
	assert.True(t, r.Published())

	d := r.ToDict()
	assert.Equal(t, "2024-06-01T00:00:00Z", d["publishedAt"])
	assert.Len(t, d["history"].([]any), 1)
	assert.Equal(t, []any{"ops"}, d["accessGroups"])
	assert.Len(t, d["publishedConditions"].([]any), 1)
}
