// Package questions selects guided follow-up questions to surface after the
// core wizard steps, using the shared condition evaluator. A question is
// shown when its applicability conditions all hold (an empty list is always
// applicable) and at least one trigger condition fires.
package questions

import (
	"sort"

	"github.com/planwise/discovery/internal/conditions"
)

// Question is one static guided-question catalog entry.
type Question struct {
	ID            string                 `json:"id"`
	Text          string                 `json:"text"`
	Purpose       string                 `json:"purpose"`
	Priority      int                    `json:"priority"` // higher asks sooner
	Applicability []conditions.Condition `json:"applicability,omitempty"`
	Triggers      []conditions.Condition `json:"triggers"`
}

// Catalog is the static guided-question set.
var Catalog = []Question{
	{
		ID:       "security-freedom-tension",
		Text:     "Your top values pull between safety and independence. When they conflict, which one wins?",
		Purpose:  "Resolve the security/freedom tension the card sort surfaced.",
		Priority: 80,
		Triggers: []conditions.Condition{
			{Op: conditions.OpContains, Field: conditions.FactConflictFlags, Value: "security_vs_freedom"},
		},
	},
	{
		ID:       "growth-vs-safety-lean",
		Text:     "If a market drop set your plan back two years, would you ride it out or lock in what you have?",
		Purpose:  "Sharpen the security/growth tradeoff when the card sort left it ambiguous.",
		Priority: 70,
		Triggers: []conditions.Condition{
			{Op: conditions.OpContains, Field: conditions.FactConflictFlags, Value: "security_vs_growth"},
		},
	},
	{
		ID:       "retirement-lifestyle",
		Text:     "What does a normal Tuesday look like in your first year of retirement?",
		Purpose:  "Turn an approaching retirement date into concrete lifestyle spending.",
		Priority: 75,
		Triggers: []conditions.Condition{
			{Op: conditions.OpNearRetirement},
		},
	},
	{
		ID:       "federal-service-plans",
		Text:     "Are you planning to complete your federal career, or might you leave government service earlier?",
		Purpose:  "FERS outcomes hinge on separation timing.",
		Priority: 65,
		Triggers: []conditions.Condition{
			{Op: conditions.OpFederalEmployee},
		},
	},
	{
		ID:       "dependent-horizon",
		Text:     "How long do you expect the people who depend on you to need your support?",
		Purpose:  "Size insurance and education planning against a real support horizon.",
		Priority: 60,
		Triggers: []conditions.Condition{
			{Op: conditions.OpHasDependents},
		},
	},
	{
		ID:       "purpose-draft-nudge",
		Text:     "In one sentence, what is the money ultimately for?",
		Purpose:  "Prompt a first purpose-statement draft once values are sorted.",
		Priority: 50,
		Applicability: []conditions.Condition{
			{Op: conditions.OpContains, Field: conditions.FactCompletedSteps, Value: "values"},
		},
		Triggers: []conditions.Condition{
			{Op: conditions.OpEquals, Field: conditions.FactPurposeFinalized, Value: "false"},
		},
	},
	{
		ID:       "undecided-tradeoffs",
		Text:     "Several tradeoffs left you in the middle. Is that genuine balance, or do you need more information to choose?",
		Purpose:  "Distinguish considered neutrality from uncertainty.",
		Priority: 45,
		Triggers: []conditions.Condition{
			{Op: conditions.OpGreater, Field: conditions.FactNeutralTradeoffs, Number: 1},
		},
	},
	{
		ID:       "late-start-horizon",
		Text:     "Your retirement target is a long way out. Is that a deliberate choice or a placeholder?",
		Purpose:  "Check whether a distant target date is intentional.",
		Priority: 30,
		Triggers: []conditions.Condition{
			{Op: conditions.OpGreater, Field: conditions.FactYearsToRetirement, Number: 25},
		},
	},
}

// Active returns the applicable, triggered questions, highest priority first.
// Equal priorities keep catalog order.
func Active(facts conditions.Facts) []Question {
	var out []Question
	for _, q := range Catalog {
		if !conditions.All(q.Applicability, facts, conditions.EmptyAlways) {
			continue
		}
		if !conditions.Any(q.Triggers, facts, conditions.EmptyNever) {
			continue
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
