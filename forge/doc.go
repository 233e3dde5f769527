// Package forge is the local rule-building DSL for the hosted decision
// service. It models typed request/response fields, a fixed vocabulary of
// comparison operators per field kind, decision-table conditions, and test
// fixtures, and serializes the whole aggregate to the wire JSON format the
// remote engine consumes.
//
// Rules are evaluated remotely: conditions are an ordered list and the engine
// applies first-match-wins semantics over that order. The builder's job is to
// validate field/operator/argument compatibility at construction time and to
// preserve condition order across every mutation and serialization
// round-trip. Nothing in this package executes a rule.
//
// A minimal rule:
//
//	rule := forge.NewRule()
//	rule.SetName("Health Insurance Account Selector")
//	age := rule.AddNumberField("age", "Age of applicant", 0)
//	rule.AddStringResponse("recommended_plan", "Recommended plan", "")
//
//	check, err := age.Between(18, 35)
//	if err != nil { ... }
//	cond, err := rule.When(forge.Checks{"age": check})
//	if err != nil { ... }
//	if _, err := cond.Then(forge.Values{"recommended_plan": "HSA"}); err != nil { ... }
//
// Remote operations (Update, Publish, FromWorkspace, SetAlias, SetFolder,
// AddAccessGroup) delegate to an attached api.Client and fail with a
// configuration error when none is attached.
package forge
