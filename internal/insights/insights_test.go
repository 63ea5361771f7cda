package insights

import (
	"reflect"
	"testing"
	"time"

	"github.com/planwise/discovery/internal/conditions"
	"github.com/planwise/discovery/internal/focus"
	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/strategy"
	"github.com/planwise/discovery/internal/values"
)

func intp(n int) *int { return &n }

var fixedTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name string
		snap snapshot.Snapshot
		want int
	}{
		{"empty", snapshot.Snapshot{}, 0},
		{
			"age only",
			snapshot.Snapshot{Context: snapshot.BasicContext{Age: intp(40)}},
			10,
		},
		{
			"context and values",
			snapshot.Snapshot{
				Context: snapshot.BasicContext{
					Age:                 intp(40),
					TargetRetirementAge: intp(65),
					MaritalStatus:       snapshot.MaritalSingle,
				},
				Values: values.Discovery{
					Top5: []string{"security-1", "security-2", "growth-1", "family-1", "health-1"},
				},
			},
			35,
		},
		{
			"everything",
			snapshot.Snapshot{
				Context: snapshot.BasicContext{
					Age:                 intp(40),
					TargetRetirementAge: intp(65),
					MaritalStatus:       snapshot.MaritalMarried,
				},
				Values: values.Discovery{
					Piles:          map[string]values.Pile{"security-1": values.PileImportant},
					Top10:          []string{"security-1"},
					Top5:           []string{"security-1", "security-2", "growth-1", "family-1", "health-1"},
					NonNegotiables: []string{"security-1"},
					TradeoffResponses: []values.TradeoffResponse{
						{CategoryA: values.CategorySecurity, CategoryB: values.CategoryGrowth, Choice: values.ChoiceA, Strength: 4},
					},
				},
				Goals: []snapshot.FinancialGoal{
					{ID: "g1", Title: "Retire", Category: snapshot.GoalRetirement, Priority: snapshot.PriorityHigh, TimeHorizon: snapshot.HorizonLong, Flexibility: snapshot.FlexFlexible},
					{ID: "g2", Title: "Travel", Category: snapshot.GoalTravelLifestyle, Priority: snapshot.PriorityMedium, TimeHorizon: snapshot.HorizonMedium, Flexibility: snapshot.FlexDeferrable},
					{ID: "g3", Title: "Emergency fund", Category: snapshot.GoalEmergencyFund, Priority: snapshot.PriorityMedium, TimeHorizon: snapshot.HorizonShort, Flexibility: snapshot.FlexFlexible},
				},
				Purpose: snapshot.FinancialPurpose{
					PrimaryDriver:   "family security",
					TradeoffAnchors: []string{"time over money"},
					FinalStatement:  "Money exists to keep my family safe and my time my own.",
				},
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercent(tt.snap); got != tt.want {
				t.Errorf("CompletionPercent = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateGatesSparseInput(t *testing.T) {
	// Age alone is far below the gate: no insights, and that is a valid
	// state rather than an error.
	snap := snapshot.Snapshot{Context: snapshot.BasicContext{Age: intp(35)}}
	if got := Generate(snap, fixedTime); got != nil {
		t.Fatalf("sparse snapshot produced insights: %+v", got)
	}
}

func TestGenerateSecurityNearRetirement(t *testing.T) {
	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			Age:                 intp(62),
			TargetRetirementAge: intp(65),
		},
		Values: values.Discovery{
			Top5:           []string{"security-1", "security-2", "security-3", "security-4", "security-5"},
			NonNegotiables: []string{"security-1"},
		},
	}

	got := Generate(snap, fixedTime)
	if got == nil {
		t.Fatal("expected insights, got nil")
	}

	income := got.StrategyProfile.IncomeStrategy
	if income.Value != strategy.IncomeStabilityFocused {
		t.Errorf("income strategy = %s, want stability_focused", income.Value)
	}
	if income.Confidence != strategy.ConfidenceHigh {
		t.Errorf("income confidence = %s, want high", income.Confidence)
	}

	top := got.FocusAreas.Areas[0]
	if top.Domain != focus.DomainRetirementIncome {
		t.Errorf("top focus = %s, want retirement_income", top.Domain)
	}
	if top.Priority != 1 {
		t.Errorf("top focus priority = %d, want 1", top.Priority)
	}
	if top.Importance != focus.ImportanceCritical {
		t.Errorf("top focus importance = %s, want critical", top.Importance)
	}
}

func TestBuildFactsAlphabeticalDominant(t *testing.T) {
	// Five categories tied at one card each, no non-negotiables, identical
	// top-10 overlap: the dominant falls out alphabetically.
	snap := snapshot.Snapshot{
		Values: values.Discovery{
			Top5: []string{"control-1", "growth-1", "health-1", "purpose-1", "security-1"},
		},
	}
	derived := values.Derive(snap.Values)
	facts := BuildFacts(snap, derived, focus.Rank(snap, derived))

	if got := facts[conditions.FactDominantCategory]; got != "control" {
		t.Errorf("dominant fact = %v, want control", got)
	}
}

func TestGenerateTimingSensitivityHigh(t *testing.T) {
	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			Age:                 intp(61),
			TargetRetirementAge: intp(64),
		},
		Values: values.Discovery{
			Top5: []string{"security-1", "family-1", "health-1", "purpose-1", "growth-1"},
		},
		Goals: []snapshot.FinancialGoal{
			{
				ID:          "g1",
				Title:       "Retirement income bridge",
				Category:    snapshot.GoalRetirement,
				Priority:    snapshot.PriorityHigh,
				TimeHorizon: snapshot.HorizonShort,
				Flexibility: snapshot.FlexFixed,
			},
		},
	}

	got := Generate(snap, fixedTime)
	if got == nil {
		t.Fatal("expected insights, got nil")
	}
	if got.StrategyProfile.TimingSensitivity.Value != strategy.TimingHigh {
		t.Errorf("timing sensitivity = %s, want high", got.StrategyProfile.TimingSensitivity.Value)
	}
}

func TestGenerateFederalControlDominant(t *testing.T) {
	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			Age:                 intp(48),
			TargetRetirementAge: intp(62),
			FederalEmployment:   &snapshot.FederalEmployment{RetirementSystem: "fers", YearsOfService: 20},
		},
		Values: values.Discovery{
			Top5: []string{"control-1", "control-2", "control-3", "security-1", "growth-1"},
		},
	}

	got := Generate(snap, fixedTime)
	if got == nil {
		t.Fatal("expected insights, got nil")
	}

	complexity := got.StrategyProfile.ComplexityTolerance.Value
	if complexity != strategy.ComplexityModerate && complexity != strategy.ComplexityAdvanced {
		t.Errorf("complexity tolerance = %s, want moderate or advanced", complexity)
	}

	found := false
	for _, rec := range got.Actions.Recommendations {
		if rec.Domain == focus.DomainBenefitsOptimization {
			found = true
		}
	}
	if !found {
		t.Error("no benefits_optimization action for a federal employee")
	}
}

func TestGenerateTradeoffIndexInSummary(t *testing.T) {
	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			Age:                 intp(50),
			TargetRetirementAge: intp(65),
		},
		Values: values.Discovery{
			Top5: []string{"security-1", "growth-1", "family-1", "health-1", "purpose-1"},
			TradeoffResponses: []values.TradeoffResponse{
				{CategoryA: values.CategorySecurity, CategoryB: values.CategoryGrowth, Choice: values.ChoiceA, Strength: 5},
				{CategoryA: values.CategorySecurity, CategoryB: values.CategoryGrowth, Choice: values.ChoiceNeutral},
			},
		},
	}

	derived := values.Derive(snap.Values)
	if got := derived.TradeoffIndices["security_vs_growth"]; got != 25 {
		t.Errorf("security/growth index = %d, want 25", got)
	}

	got := Generate(snap, fixedTime)
	if got == nil {
		t.Fatal("expected insights, got nil")
	}
	if got.InputSummary.NeutralTradeoffs != 1 {
		t.Errorf("neutral tradeoffs = %d, want 1", got.InputSummary.NeutralTradeoffs)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{
			Age:                 intp(55),
			TargetRetirementAge: intp(62),
			MaritalStatus:       snapshot.MaritalMarried,
			Dependents:          []snapshot.Dependent{{Relationship: "child", Age: 12}},
		},
		Values: values.Discovery{
			Top10:          []string{"security-1", "security-2", "family-1", "family-2", "growth-1"},
			Top5:           []string{"security-1", "security-2", "family-1", "growth-1", "freedom-1"},
			NonNegotiables: []string{"family-1"},
		},
		Goals: []snapshot.FinancialGoal{
			{ID: "g1", Title: "College fund", Category: snapshot.GoalEducation, Priority: snapshot.PriorityHigh, TimeHorizon: snapshot.HorizonMedium, Flexibility: snapshot.FlexFixed},
		},
	}

	a := Generate(snap, fixedTime)
	b := Generate(snap, fixedTime)
	if a == nil || b == nil {
		t.Fatal("expected insights from a populated snapshot")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical snapshots produced different insights")
	}
}

func TestCompletedSteps(t *testing.T) {
	snap := snapshot.Snapshot{
		Context: snapshot.BasicContext{Age: intp(40), TargetRetirementAge: intp(65)},
		Values: values.Discovery{
			Top5: []string{"security-1", "security-2", "growth-1", "family-1", "health-1"},
		},
		Purpose: snapshot.FinancialPurpose{FinalStatement: "done"},
	}
	want := []string{"context", "values", "purpose"}
	if got := CompletedSteps(snap); !reflect.DeepEqual(got, want) {
		t.Errorf("CompletedSteps = %v, want %v", got, want)
	}
}
