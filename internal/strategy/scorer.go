// Package strategy classifies the user's planning posture along five
// independent behavioral dimensions. Each scorer is a pure function that
// accumulates a signed score from weighted factors, keeps a rationale
// fragment per factor, and maps the net score to a closed enum through
// fixed thresholds. The threshold constants are behavioral contracts and
// must not be re-derived.
package strategy

import (
	"fmt"
	"strings"

	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/values"
)

// scorecard accumulates weighted factors and their rationales.
type scorecard struct {
	score   int
	reasons []string
}

func (s *scorecard) add(points int, reason string) {
	s.score += points
	s.reasons = append(s.reasons, reason)
}

func (s *scorecard) rationale() string {
	if len(s.reasons) == 0 {
		return "Not enough data to weigh this dimension yet."
	}
	return strings.Join(s.reasons, "; ")
}

// confidenceByMagnitude tiers confidence on the absolute net score.
func confidenceByMagnitude(score int) Confidence {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 5:
		return ConfidenceHigh
	case abs >= 3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// confidenceByFactorCount tiers confidence on how many factors contributed.
func confidenceByFactorCount(n int) Confidence {
	switch {
	case n >= 3:
		return ConfidenceHigh
	case n >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// BuildProfile runs all five dimension scorers over one snapshot and its
// derived value insights, then generates the profile summary.
func BuildProfile(s snapshot.Snapshot, derived values.DerivedInsights) Profile {
	p := Profile{
		IncomeStrategy:      ScoreIncomeStrategy(s, derived),
		TimingSensitivity:   ScoreTimingSensitivity(s),
		PlanningFlexibility: ScorePlanningFlexibility(s, derived),
		ComplexityTolerance: ScoreComplexityTolerance(s, derived),
		GuidanceLevel:       ScoreGuidanceLevel(s, derived),
	}
	p.Summary = summarize(p)
	return p
}

// ScoreIncomeStrategy weighs value categories, retirement proximity, and the
// security/growth tradeoff lean. Positive scores pull toward growth, negative
// toward stability. Net >= +3 is growth-focused, <= -3 stability-focused.
func ScoreIncomeStrategy(s snapshot.Snapshot, derived values.DerivedInsights) Dimension[IncomeStrategy] {
	var card scorecard

	switch derived.Dominant {
	case values.CategorySecurity:
		card.add(-3, "security is your dominant value")
	case values.CategoryGrowth:
		card.add(3, "growth is your dominant value")
	case values.CategoryFreedom:
		card.add(2, "freedom is your dominant value")
	}
	switch derived.Secondary {
	case values.CategorySecurity:
		card.add(-1, "security is your secondary value")
	case values.CategoryGrowth:
		card.add(1, "growth is your secondary value")
	case values.CategoryFreedom:
		card.add(1, "freedom is your secondary value")
	}

	if years, ok := s.Context.YearsToRetirement(); ok {
		switch {
		case years <= 5:
			card.add(-3, "retirement is 5 years away or less")
		case years <= 10:
			card.add(-1, "retirement is within 10 years")
		case years > 20:
			card.add(2, "retirement is more than 20 years out")
		}
	}

	if idx, ok := derived.TradeoffIndices["security_vs_growth"]; ok {
		switch {
		case idx >= 60:
			card.add(2, "your tradeoff answers lean toward growth over security")
		case idx <= 40:
			card.add(-2, "your tradeoff answers lean toward security over growth")
		}
	}

	value := IncomeBalanced
	switch {
	case card.score >= 3:
		value = IncomeGrowthFocused
	case card.score <= -3:
		value = IncomeStabilityFocused
	}

	return Dimension[IncomeStrategy]{
		Value:      value,
		Confidence: confidenceByMagnitude(card.score),
		Rationale:  card.rationale(),
	}
}

// ScoreTimingSensitivity weighs short-horizon goals, retirement proximity,
// and goal flexibility. Net >= 5 is high, >= 2 medium, else low.
func ScoreTimingSensitivity(s snapshot.Snapshot) Dimension[TimingSensitivity] {
	var card scorecard

	short, fixed, deferrable := 0, 0, 0
	for _, g := range s.Goals {
		if g.TimeHorizon == snapshot.HorizonShort {
			short++
		}
		switch g.Flexibility {
		case snapshot.FlexFixed:
			fixed++
		case snapshot.FlexDeferrable:
			deferrable++
		}
	}

	if short > 0 {
		card.add(2*short, fmt.Sprintf("%d of your goals need funding in the short term", short))
	}
	if years, ok := s.Context.YearsToRetirement(); ok {
		switch {
		case years <= 5:
			card.add(3, "retirement is close")
		case years <= 10:
			card.add(1, "retirement is approaching")
		}
	}
	if fixed > 0 {
		card.add(fixed, fmt.Sprintf("%d goals have fixed timing", fixed))
	}
	if deferrable > 0 {
		card.add(-deferrable, fmt.Sprintf("%d goals can be deferred if needed", deferrable))
	}

	value := TimingLow
	switch {
	case card.score >= 5:
		value = TimingHigh
	case card.score >= 2:
		value = TimingMedium
	}

	return Dimension[TimingSensitivity]{
		Value:      value,
		Confidence: confidenceByMagnitude(card.score),
		Rationale:  card.rationale(),
	}
}

// ScorePlanningFlexibility weighs the goal-flexibility distribution, control
// and freedom values, and non-negotiable count. Net >= 2 is high, <= -2 low.
func ScorePlanningFlexibility(s snapshot.Snapshot, derived values.DerivedInsights) Dimension[PlanningFlexibility] {
	var card scorecard

	adjustable, fixed := 0, 0
	for _, g := range s.Goals {
		switch g.Flexibility {
		case snapshot.FlexFlexible, snapshot.FlexDeferrable:
			adjustable++
		case snapshot.FlexFixed:
			fixed++
		}
	}
	if adjustable > 0 {
		card.add(adjustable, fmt.Sprintf("%d goals leave room to adjust", adjustable))
	}
	if fixed > 0 {
		card.add(-fixed, fmt.Sprintf("%d goals are locked in", fixed))
	}

	if derived.Top5Counts[values.CategoryControl] > 0 {
		card.add(-2, "control ranks among your top values")
	}
	if derived.Top5Counts[values.CategoryFreedom] > 0 {
		card.add(2, "freedom ranks among your top values")
	}
	if nonNegTotal(derived) >= 3 {
		card.add(-1, "you hold three or more values as non-negotiable")
	}

	value := FlexibilityModerate
	switch {
	case card.score >= 2:
		value = FlexibilityHigh
	case card.score <= -2:
		value = FlexibilityLow
	}

	return Dimension[PlanningFlexibility]{
		Value:      value,
		Confidence: confidenceByFactorCount(len(card.reasons)),
		Rationale:  card.rationale(),
	}
}

// ScoreComplexityTolerance weighs control orientation, federal benefit
// familiarity, and security/growth values. Net >= 2 is advanced, <= -1 simple.
func ScoreComplexityTolerance(s snapshot.Snapshot, derived values.DerivedInsights) Dimension[ComplexityTolerance] {
	var card scorecard

	if derived.Top5Counts[values.CategoryControl] > 0 {
		card.add(2, "you value controlling the details yourself")
	}
	if s.Context.FederalEmployment != nil {
		card.add(1, "you already navigate a federal benefits system")
	}
	if derived.Top5Counts[values.CategorySecurity] > 0 {
		card.add(-1, "you prefer arrangements that feel safe and settled")
	}
	if derived.Top5Counts[values.CategoryGrowth] >= 2 {
		card.add(1, "growth shows up repeatedly in your top values")
	}

	value := ComplexityModerate
	switch {
	case card.score >= 2:
		value = ComplexityAdvanced
	case card.score <= -1:
		value = ComplexitySimple
	}

	return Dimension[ComplexityTolerance]{
		Value:      value,
		Confidence: confidenceByFactorCount(len(card.reasons)),
		Rationale:  card.rationale(),
	}
}

// ScoreGuidanceLevel weighs self-direction signals against uncertainty
// signals. Net >= 2 wants high guidance, <= -2 low.
func ScoreGuidanceLevel(s snapshot.Snapshot, derived values.DerivedInsights) Dimension[GuidanceLevel] {
	var card scorecard

	if derived.Top5Counts[values.CategoryControl] > 0 {
		card.add(-2, "you prefer to drive decisions yourself")
	}
	if nonNegTotal(derived) >= 2 {
		card.add(-1, "you already know what you will not compromise on")
	}
	if len(s.HighPriorityGoals()) >= 3 {
		card.add(-1, "you have a clear set of high-priority goals")
	}
	if derived.Top5Counts[values.CategorySecurity] > 0 {
		card.add(1, "security-minded planners often want a second set of eyes")
	}
	if !s.Purpose.Finalized() {
		card.add(1, "your purpose statement is still taking shape")
	}
	if values.NeutralResponseCount(s.Values.TradeoffResponses) >= 2 {
		card.add(1, "several tradeoff questions left you undecided")
	}

	value := GuidanceModerate
	switch {
	case card.score >= 2:
		value = GuidanceHigh
	case card.score <= -2:
		value = GuidanceLow
	}

	return Dimension[GuidanceLevel]{
		Value:      value,
		Confidence: confidenceByFactorCount(len(card.reasons)),
		Rationale:  card.rationale(),
	}
}

func nonNegTotal(derived values.DerivedInsights) int {
	total := 0
	for _, n := range derived.NonNegCounts {
		total += n
	}
	return total
}
