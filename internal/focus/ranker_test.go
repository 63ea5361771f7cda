package focus

import (
	"testing"

	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/values"
)

func intp(n int) *int { return &n }

func rank(t *testing.T, s snapshot.Snapshot) Ranking {
	t.Helper()
	return Rank(s, values.Derive(s.Values))
}

func areaFor(t *testing.T, r Ranking, d Domain) Area {
	t.Helper()
	for _, a := range r.Areas {
		if a.Domain == d {
			return a
		}
	}
	t.Fatalf("domain %s missing from ranking", d)
	return Area{}
}

func TestRankEmptyInputKeepsAllNineDomains(t *testing.T) {
	r := rank(t, snapshot.Snapshot{})

	if len(r.Areas) != 9 {
		t.Fatalf("got %d areas, want 9", len(r.Areas))
	}
	// With no signal, everything scores zero and keeps enumeration order.
	for i, a := range r.Areas {
		if a.Score != 0 {
			t.Errorf("area %s score = %d, want 0", a.Domain, a.Score)
		}
		if a.Importance != ImportanceLow {
			t.Errorf("area %s importance = %q, want low", a.Domain, a.Importance)
		}
		if a.Priority != i+1 {
			t.Errorf("area %s priority = %d, want %d", a.Domain, a.Priority, i+1)
		}
		if a.Domain != AllDomains[i] {
			t.Errorf("tied areas reordered: position %d is %s, want %s", i, a.Domain, AllDomains[i])
		}
	}
	if len(r.Top3) != 0 {
		t.Errorf("top3 should be empty with no critical/high areas, got %d", len(r.Top3))
	}
}

func TestRankNearRetirementSecurityDominant(t *testing.T) {
	s := snapshot.Snapshot{
		Context: snapshot.BasicContext{Age: intp(61), TargetRetirementAge: intp(65)},
		Values: values.Discovery{
			Top10:          []string{"security-1", "security-2", "security-3", "security-4", "security-5"},
			Top5:           []string{"security-1", "security-2", "security-3", "security-4", "security-5"},
			NonNegotiables: []string{"security-1"},
		},
	}
	r := rank(t, s)

	first := r.Areas[0]
	if first.Domain != DomainRetirementIncome {
		t.Errorf("top domain = %s, want retirement_income", first.Domain)
	}
	// Five- and ten-year retirement bonuses stack: 5 + 3 = 8.
	if first.Score != 8 {
		t.Errorf("retirement_income score = %d, want 8", first.Score)
	}
	if first.Importance != ImportanceCritical {
		t.Errorf("retirement_income importance = %q, want critical", first.Importance)
	}

	insurance := areaFor(t, r, DomainInsuranceRisk)
	if insurance.Score != 2 {
		t.Errorf("insurance_risk score = %d, want 2 from dominant security", insurance.Score)
	}
	if len(insurance.ValueConnections) == 0 {
		t.Error("insurance_risk should carry value connections from security cards")
	}

	if len(r.Top3) == 0 || r.Top3[0].Domain != DomainRetirementIncome {
		t.Errorf("top3 should lead with retirement_income, got %+v", r.Top3)
	}
}

func TestRankGoalPass(t *testing.T) {
	s := snapshot.Snapshot{
		Goals: []snapshot.FinancialGoal{
			{Title: "Pay off the mortgage", Category: snapshot.GoalDebtPayoff, Priority: snapshot.PriorityHigh, TimeHorizon: snapshot.HorizonShort},
			{Title: "Kitchen remodel", Category: snapshot.GoalHomePurchase, Priority: snapshot.PriorityLow, TimeHorizon: snapshot.HorizonShort},
		},
	}
	r := rank(t, s)

	cash := areaFor(t, r, DomainCashFlowDebt)
	// High-priority match +3, short-horizon bonus +2. The low-priority goal
	// contributes nothing.
	if cash.Score != 5 {
		t.Errorf("cash_flow_debt score = %d, want 5", cash.Score)
	}
	if cash.Importance != ImportanceHigh {
		t.Errorf("cash_flow_debt importance = %q, want high", cash.Importance)
	}
	if len(cash.GoalConnections) != 1 || cash.GoalConnections[0] != "Pay off the mortgage" {
		t.Errorf("goal connections = %v, want the high-priority goal title", cash.GoalConnections)
	}
}

func TestRankContextPass(t *testing.T) {
	s := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			MaritalStatus:     snapshot.MaritalMarried,
			Dependents:        []snapshot.Dependent{{Relationship: "child", Age: 9}},
			FederalEmployment: &snapshot.FederalEmployment{RetirementSystem: "fers"},
		},
	}
	r := rank(t, s)

	if got := areaFor(t, r, DomainBenefitsOptimization).Score; got != 4 {
		t.Errorf("benefits_optimization score = %d, want 4", got)
	}
	if got := areaFor(t, r, DomainInsuranceRisk).Score; got != 2 {
		t.Errorf("insurance_risk score = %d, want 2", got)
	}
	// Dependents +2 and married +1.
	if got := areaFor(t, r, DomainEstateLegacy).Score; got != 3 {
		t.Errorf("estate_legacy score = %d, want 3", got)
	}
}

func TestRankRiskAnnotations(t *testing.T) {
	r := rank(t, snapshot.Snapshot{})

	for _, d := range []Domain{DomainInsuranceRisk, DomainEstateLegacy, DomainCashFlowDebt} {
		if len(areaFor(t, r, d).RiskFactors) == 0 {
			t.Errorf("%s should carry a risk annotation when unscored", d)
		}
	}
	if len(areaFor(t, r, DomainRetirementIncome).RiskFactors) != 0 {
		t.Error("retirement_income should not carry risk annotations")
	}

	// Once a floor is met, the annotation disappears.
	s := snapshot.Snapshot{
		Context: snapshot.BasicContext{Dependents: []snapshot.Dependent{{Relationship: "child", Age: 4}}},
		Values: values.Discovery{
			Top10: []string{"family-1", "family-2"},
			Top5:  []string{"family-1", "family-2"},
		},
	}
	r = rank(t, s)
	if got := areaFor(t, r, DomainEstateLegacy); len(got.RiskFactors) != 0 {
		t.Errorf("estate_legacy scored %d but still carries risk annotation", got.Score)
	}
}

func TestRankRationaleDedupedAndCapped(t *testing.T) {
	s := snapshot.Snapshot{
		Goals: []snapshot.FinancialGoal{
			{Title: "g1", Category: snapshot.GoalDebtPayoff, Priority: snapshot.PriorityHigh, TimeHorizon: snapshot.HorizonShort},
			{Title: "g2", Category: snapshot.GoalDebtPayoff, Priority: snapshot.PriorityHigh, TimeHorizon: snapshot.HorizonShort},
			{Title: "g3", Category: snapshot.GoalEmergencyFund, Priority: snapshot.PriorityHigh, TimeHorizon: snapshot.HorizonShort},
		},
	}
	r := rank(t, s)

	cash := areaFor(t, r, DomainCashFlowDebt)
	if len(cash.Rationale) > 3 {
		t.Errorf("rationale has %d entries, want at most 3", len(cash.Rationale))
	}
	seen := make(map[string]bool)
	for _, reason := range cash.Rationale {
		if seen[reason] {
			t.Errorf("duplicate rationale entry %q", reason)
		}
		seen[reason] = true
	}
}

func TestTop3ExcludesModerateEvenWhenShort(t *testing.T) {
	// A single moderate-scoring signal: dominant category only.
	s := snapshot.Snapshot{
		Values: values.Discovery{
			Top10: []string{"growth-1"},
			Top5:  []string{"growth-1"},
		},
	}
	r := rank(t, s)

	for _, a := range r.Top3 {
		if a.Importance != ImportanceCritical && a.Importance != ImportanceHigh {
			t.Errorf("top3 contains %s with importance %q", a.Domain, a.Importance)
		}
	}
	if len(r.Top3) != 0 {
		t.Errorf("no area reaches high tier here; top3 should be empty, got %d", len(r.Top3))
	}
}
