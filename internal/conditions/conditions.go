// Package conditions evaluates boolean applicability and trigger predicates
// against a snapshot of user facts. It is shared by the focus ranker, the
// action generator, and the guided-question subsystem. Evaluation is total:
// an unknown operator, a missing fact, or a malformed condition evaluates to
// false rather than returning an error.
package conditions

import "strings"

// Op identifies a condition operator.
type Op string

const (
	OpEquals    Op = "equals"
	OpNotEquals Op = "not_equals"
	OpContains  Op = "contains"
	OpGreater   Op = "greater_than"
	OpLess      Op = "less_than"

	// Domain-specific predicates. These read well-known fact keys directly
	// and ignore the condition's Field.
	OpNearRetirement  Op = "near_retirement"
	OpFederalEmployee Op = "federal_employee"
	OpHasDependents   Op = "has_dependents"
	OpAgeOver         Op = "age_over"
	OpAgeUnder        Op = "age_under"
	OpAnswerEquals    Op = "answer_equals"
)

// Well-known fact keys the domain predicates depend on.
const (
	FactAge                = "age"
	FactYearsToRetirement  = "years_to_retirement"
	FactFederalEmployee    = "federal_employee"
	FactDependentCount     = "dependent_count"
	FactMaritalStatus      = "marital_status"
	FactTop5Categories     = "top5_categories"
	FactDominantCategory   = "dominant_category"
	FactHighPriorityGoals  = "high_priority_goal_categories"
	FactConflictFlags      = "conflict_flags"
	FactNeutralTradeoffs   = "neutral_tradeoffs"
	FactPurposeFinalized   = "purpose_finalized" // "true" / "false"
	FactCompletedSteps     = "completed_steps"
	FactCompletionPercent  = "completion_percent"
	FactFocusRankPrefix    = "focus_rank." // + domain tag -> numeric rank
	FactAnswerPrefix       = "answer."     // + question id -> answer string
	nearRetirementMaxYears = 5
)

// Facts is a flat snapshot of user data keyed by well-known fact names.
// Values are strings, numbers (float64 or int), bools, or []string.
type Facts map[string]any

// Condition is one boolean predicate over a fact snapshot.
type Condition struct {
	Op     Op     `json:"op"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
	Number float64 `json:"number,omitempty"`
	Negate bool   `json:"negate,omitempty"`
}

// Verdict is the result an empty condition list defaults to. The default
// differs by caller: action applicability treats an empty list as never
// applicable, question applicability and domain relevance as always.
type Verdict bool

const (
	EmptyNever  Verdict = false
	EmptyAlways Verdict = true
)

// Eval evaluates a single condition. The Negate flag inverts the result
// after evaluation.
func Eval(c Condition, facts Facts) bool {
	result := evalOp(c, facts)
	if c.Negate {
		return !result
	}
	return result
}

func evalOp(c Condition, facts Facts) bool {
	switch c.Op {
	case OpEquals:
		s, ok := stringFact(facts, c.Field)
		return ok && s == c.Value
	case OpNotEquals:
		s, ok := stringFact(facts, c.Field)
		return ok && s != c.Value
	case OpContains:
		return containsFact(facts, c.Field, c.Value)
	case OpGreater:
		n, ok := numberFact(facts, c.Field)
		return ok && n > c.Number
	case OpLess:
		n, ok := numberFact(facts, c.Field)
		return ok && n < c.Number
	case OpNearRetirement:
		n, ok := numberFact(facts, FactYearsToRetirement)
		return ok && n <= nearRetirementMaxYears
	case OpFederalEmployee:
		b, ok := facts[FactFederalEmployee].(bool)
		return ok && b
	case OpHasDependents:
		n, ok := numberFact(facts, FactDependentCount)
		return ok && n > 0
	case OpAgeOver:
		n, ok := numberFact(facts, FactAge)
		return ok && n > c.Number
	case OpAgeUnder:
		n, ok := numberFact(facts, FactAge)
		return ok && n < c.Number
	case OpAnswerEquals:
		s, ok := stringFact(facts, FactAnswerPrefix+c.Field)
		return ok && s == c.Value
	default:
		// Unknown operator: evaluate false, never fail.
		return false
	}
}

// All is the AND composition: every condition must hold. An empty list
// returns the caller-chosen empty verdict.
func All(conds []Condition, facts Facts, empty Verdict) bool {
	if len(conds) == 0 {
		return bool(empty)
	}
	for _, c := range conds {
		if !Eval(c, facts) {
			return false
		}
	}
	return true
}

// Any is the OR composition: at least one condition must hold. An empty list
// returns the caller-chosen empty verdict.
func Any(conds []Condition, facts Facts, empty Verdict) bool {
	if len(conds) == 0 {
		return bool(empty)
	}
	for _, c := range conds {
		if Eval(c, facts) {
			return true
		}
	}
	return false
}

func stringFact(facts Facts, field string) (string, bool) {
	v, ok := facts[field]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func numberFact(facts Facts, field string) (float64, bool) {
	switch n := facts[field].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// containsFact implements the contains operator: list membership when the
// fact is a string slice, substring match when it is a string.
func containsFact(facts Facts, field, value string) bool {
	switch v := facts[field].(type) {
	case []string:
		for _, item := range v {
			if item == value {
				return true
			}
		}
		return false
	case string:
		return strings.Contains(v, value)
	default:
		return false
	}
}
