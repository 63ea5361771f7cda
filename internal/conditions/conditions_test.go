package conditions

import "testing"

func sampleFacts() Facts {
	return Facts{
		FactAge:               58,
		FactYearsToRetirement: 4,
		FactFederalEmployee:   true,
		FactDependentCount:    2,
		FactMaritalStatus:     "married",
		FactTop5Categories:    []string{"security", "control", "family"},
		FactDominantCategory:  "security",
		FactAnswerPrefix + "risk_comfort": "low",
		FactFocusRankPrefix + "retirement_income": 1,
	}
}

func TestEval(t *testing.T) {
	facts := sampleFacts()

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"equals match", Condition{Op: OpEquals, Field: FactMaritalStatus, Value: "married"}, true},
		{"equals mismatch", Condition{Op: OpEquals, Field: FactMaritalStatus, Value: "single"}, false},
		{"equals missing fact", Condition{Op: OpEquals, Field: "nonexistent", Value: "x"}, false},
		{"not_equals", Condition{Op: OpNotEquals, Field: FactMaritalStatus, Value: "single"}, true},
		{"not_equals missing fact is false", Condition{Op: OpNotEquals, Field: "nonexistent", Value: "x"}, false},
		{"contains list membership", Condition{Op: OpContains, Field: FactTop5Categories, Value: "control"}, true},
		{"contains list miss", Condition{Op: OpContains, Field: FactTop5Categories, Value: "growth"}, false},
		{"contains substring", Condition{Op: OpContains, Field: FactMaritalStatus, Value: "marr"}, true},
		{"greater_than", Condition{Op: OpGreater, Field: FactAge, Number: 50}, true},
		{"greater_than equal is false", Condition{Op: OpGreater, Field: FactAge, Number: 58}, false},
		{"less_than on rank fact", Condition{Op: OpLess, Field: FactFocusRankPrefix + "retirement_income", Number: 4}, true},
		{"near_retirement", Condition{Op: OpNearRetirement}, true},
		{"federal_employee", Condition{Op: OpFederalEmployee}, true},
		{"has_dependents", Condition{Op: OpHasDependents}, true},
		{"age_over", Condition{Op: OpAgeOver, Number: 55}, true},
		{"age_under", Condition{Op: OpAgeUnder, Number: 55}, false},
		{"answer_equals", Condition{Op: OpAnswerEquals, Field: "risk_comfort", Value: "low"}, true},
		{"answer_equals missing answer", Condition{Op: OpAnswerEquals, Field: "unasked", Value: "low"}, false},
		{"negate inverts", Condition{Op: OpFederalEmployee, Negate: true}, false},
		{"negate on missing fact", Condition{Op: OpEquals, Field: "nonexistent", Value: "x", Negate: true}, true},
		{"unknown operator is false", Condition{Op: "frobnicate"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(tt.cond, facts); got != tt.want {
				t.Errorf("Eval(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestEvalDomainPredicateEdges(t *testing.T) {
	empty := Facts{}

	for _, op := range []Op{OpNearRetirement, OpFederalEmployee, OpHasDependents, OpAgeOver, OpAgeUnder} {
		if Eval(Condition{Op: op, Number: 10}, empty) {
			t.Errorf("%s over empty facts should be false", op)
		}
	}

	later := Facts{FactYearsToRetirement: 12}
	if Eval(Condition{Op: OpNearRetirement}, later) {
		t.Error("12 years out should not count as near retirement")
	}
	boundary := Facts{FactYearsToRetirement: 5}
	if !Eval(Condition{Op: OpNearRetirement}, boundary) {
		t.Error("5 years out should count as near retirement")
	}
}

func TestAll(t *testing.T) {
	facts := sampleFacts()
	passing := Condition{Op: OpFederalEmployee}
	failing := Condition{Op: OpEquals, Field: FactMaritalStatus, Value: "single"}

	if !All([]Condition{passing, {Op: OpHasDependents}}, facts, EmptyNever) {
		t.Error("all-passing list should hold")
	}
	if All([]Condition{passing, failing}, facts, EmptyNever) {
		t.Error("one failing condition should sink All")
	}

	// Empty-list defaults differ by caller and must be preserved.
	if All(nil, facts, EmptyNever) {
		t.Error("empty list with EmptyNever should be false")
	}
	if !All(nil, facts, EmptyAlways) {
		t.Error("empty list with EmptyAlways should be true")
	}
}

func TestAny(t *testing.T) {
	facts := sampleFacts()
	passing := Condition{Op: OpFederalEmployee}
	failing := Condition{Op: OpEquals, Field: FactMaritalStatus, Value: "single"}

	if !Any([]Condition{failing, passing}, facts, EmptyNever) {
		t.Error("one passing condition should satisfy Any")
	}
	if Any([]Condition{failing, failing}, facts, EmptyNever) {
		t.Error("all-failing list should not satisfy Any")
	}
	if !Any(nil, facts, EmptyAlways) {
		t.Error("empty list with EmptyAlways should be true")
	}
}
