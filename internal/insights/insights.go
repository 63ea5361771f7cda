// Package insights composes the discovery pipeline: derived value insights,
// the strategy profile, the focus ranking, and action recommendations, gated
// on how much of the snapshot the user has actually filled in.
package insights

import (
	"time"

	"github.com/planwise/discovery/internal/actions"
	"github.com/planwise/discovery/internal/conditions"
	"github.com/planwise/discovery/internal/focus"
	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/strategy"
	"github.com/planwise/discovery/internal/values"
)

// minCompletionPercent is the gate below which no insights are produced.
// Returning nil under the gate is a valid empty state, not an error.
const minCompletionPercent = 25

// InputSummary describes what the insights were computed from.
type InputSummary struct {
	CompletionPercent int      `json:"completion_percent"`
	CompletedSteps    []string `json:"completed_steps,omitempty"`
	ConflictFlags     []string `json:"conflict_flags,omitempty"`
	NeutralTradeoffs  int      `json:"neutral_tradeoffs,omitempty"`
}

// DiscoveryInsights is the full result bundle handed to the presentation
// layer. It is immutable once built.
type DiscoveryInsights struct {
	StrategyProfile strategy.Profile        `json:"strategy_profile"`
	FocusAreas      focus.Ranking           `json:"focus_areas"`
	Actions         actions.Recommendations `json:"actions"`
	InputSummary    InputSummary            `json:"input_summary"`
	GeneratedAt     time.Time               `json:"generated_at"`
}

// CompletionPercent scores how much of the snapshot has been filled in.
// Each of the four input categories is worth 25 points, split across
// presence checks within the category.
func CompletionPercent(s snapshot.Snapshot) int {
	pct := 0

	// Context: 25.
	if s.Context.Age != nil {
		pct += 10
	}
	if s.Context.TargetRetirementAge != nil {
		pct += 10
	}
	if s.Context.MaritalStatus != "" {
		pct += 5
	}

	// Values: 25.
	if len(s.Values.Piles) > 0 {
		pct += 5
	}
	if len(s.Values.Top10) > 0 {
		pct += 5
	}
	top5 := len(s.Values.Top5)
	if top5 > 5 {
		top5 = 5
	}
	pct += top5 * 2
	if len(s.Values.TradeoffResponses) > 0 {
		pct += 5
	}

	// Goals: 25.
	if len(s.Goals) > 0 {
		pct += 15
	}
	if len(s.Goals) >= 3 {
		pct += 5
	}
	if len(s.HighPriorityGoals()) > 0 {
		pct += 5
	}

	// Purpose: 25.
	if s.Purpose.PrimaryDriver != "" {
		pct += 10
	}
	if len(s.Purpose.TradeoffAnchors) > 0 {
		pct += 5
	}
	if s.Purpose.Finalized() {
		pct += 10
	}

	return pct
}

// CompletedSteps names the wizard steps the snapshot shows as finished.
func CompletedSteps(s snapshot.Snapshot) []string {
	var steps []string
	if s.Context.Age != nil && s.Context.TargetRetirementAge != nil {
		steps = append(steps, "context")
	}
	if len(s.Values.Top5) == 5 {
		steps = append(steps, "values")
	}
	if len(s.Goals) > 0 {
		steps = append(steps, "goals")
	}
	if s.Purpose.Finalized() {
		steps = append(steps, "purpose")
	}
	return steps
}

// BuildFacts flattens a snapshot and its derived insights into the fact
// table the condition evaluator reads. Every well-known key the action and
// question catalogs reference is populated here.
func BuildFacts(s snapshot.Snapshot, derived values.DerivedInsights, ranking focus.Ranking) conditions.Facts {
	facts := conditions.Facts{}

	if s.Context.Age != nil {
		facts[conditions.FactAge] = *s.Context.Age
	}
	if years, ok := s.Context.YearsToRetirement(); ok {
		facts[conditions.FactYearsToRetirement] = years
	}
	facts[conditions.FactFederalEmployee] = s.Context.FederalEmployment != nil
	facts[conditions.FactDependentCount] = len(s.Context.Dependents)
	facts[conditions.FactMaritalStatus] = string(s.Context.MaritalStatus)

	var top5Cats []string
	for _, c := range values.AllCategories {
		if derived.Top5Counts[c] > 0 {
			top5Cats = append(top5Cats, string(c))
		}
	}
	facts[conditions.FactTop5Categories] = top5Cats
	facts[conditions.FactDominantCategory] = string(derived.Dominant)
	facts[conditions.FactConflictFlags] = derived.ConflictFlags
	facts[conditions.FactNeutralTradeoffs] = values.NeutralResponseCount(s.Values.TradeoffResponses)

	var goalCats []string
	for _, g := range s.HighPriorityGoals() {
		goalCats = append(goalCats, string(g.Category))
	}
	facts[conditions.FactHighPriorityGoals] = goalCats

	if s.Purpose.Finalized() {
		facts[conditions.FactPurposeFinalized] = "true"
	} else {
		facts[conditions.FactPurposeFinalized] = "false"
	}
	facts[conditions.FactCompletedSteps] = CompletedSteps(s)
	facts[conditions.FactCompletionPercent] = CompletionPercent(s)

	for _, a := range ranking.Areas {
		facts[conditions.FactFocusRankPrefix+string(a.Domain)] = a.Priority
	}
	return facts
}

// Generate runs the full pipeline over one consistent snapshot. It returns
// nil when the snapshot is too sparse to score; callers treat nil as "keep
// going through the wizard", not as a failure. generatedAt is stamped into
// the result so repeated calls over the same snapshot stay byte-identical.
func Generate(s snapshot.Snapshot, generatedAt time.Time) *DiscoveryInsights {
	completion := CompletionPercent(s)
	if completion < minCompletionPercent {
		return nil
	}

	derived := values.Derive(s.Values)
	profile := strategy.BuildProfile(s, derived)
	ranking := focus.Rank(s, derived)
	facts := BuildFacts(s, derived, ranking)
	recs := actions.Generate(s, derived, ranking, facts, generatedAt)

	return &DiscoveryInsights{
		StrategyProfile: profile,
		FocusAreas:      ranking,
		Actions:         recs,
		InputSummary: InputSummary{
			CompletionPercent: completion,
			CompletedSteps:    CompletedSteps(s),
			ConflictFlags:     derived.ConflictFlags,
			NeutralTradeoffs:  values.NeutralResponseCount(s.Values.TradeoffResponses),
		},
		GeneratedAt: generatedAt,
	}
}

// QuestionFacts builds the fact table for question triggering without
// running the full pipeline gate: guided questions are useful even on
// snapshots too sparse to score.
func QuestionFacts(s snapshot.Snapshot) conditions.Facts {
	derived := values.Derive(s.Values)
	ranking := focus.Rank(s, derived)
	return BuildFacts(s, derived, ranking)
}
