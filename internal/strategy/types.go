package strategy

// Confidence is how strongly the input data supports a classified value.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Dimension is one classified behavioral axis: a value from a closed enum,
// a confidence tier, and the human-readable rationale behind it.
type Dimension[T ~string] struct {
	Value      T          `json:"value"`
	Confidence Confidence `json:"confidence"`
	Rationale  string     `json:"rationale"`
}

// IncomeStrategy is the user's orientation between dependable income and
// growth potential.
type IncomeStrategy string

const (
	IncomeStabilityFocused IncomeStrategy = "stability_focused"
	IncomeBalanced         IncomeStrategy = "balanced"
	IncomeGrowthFocused    IncomeStrategy = "growth_focused"
)

// TimingSensitivity is how much the plan depends on hitting specific dates.
type TimingSensitivity string

const (
	TimingLow    TimingSensitivity = "low"
	TimingMedium TimingSensitivity = "medium"
	TimingHigh   TimingSensitivity = "high"
)

// PlanningFlexibility is how much room the user has to adjust course.
type PlanningFlexibility string

const (
	FlexibilityLow      PlanningFlexibility = "low"
	FlexibilityModerate PlanningFlexibility = "moderate"
	FlexibilityHigh     PlanningFlexibility = "high"
)

// ComplexityTolerance is how sophisticated a plan the user can work with.
type ComplexityTolerance string

const (
	ComplexitySimple   ComplexityTolerance = "simple"
	ComplexityModerate ComplexityTolerance = "moderate"
	ComplexityAdvanced ComplexityTolerance = "advanced"
)

// GuidanceLevel is how much professional hand-holding the user wants.
type GuidanceLevel string

const (
	GuidanceLow      GuidanceLevel = "low"
	GuidanceModerate GuidanceLevel = "moderate"
	GuidanceHigh     GuidanceLevel = "high"
)

// Profile bundles the five classified dimensions with a generated
// natural-language summary.
type Profile struct {
	IncomeStrategy      Dimension[IncomeStrategy]      `json:"income_strategy"`
	TimingSensitivity   Dimension[TimingSensitivity]   `json:"timing_sensitivity"`
	PlanningFlexibility Dimension[PlanningFlexibility] `json:"planning_flexibility"`
	ComplexityTolerance Dimension[ComplexityTolerance] `json:"complexity_tolerance"`
	GuidanceLevel       Dimension[GuidanceLevel]       `json:"guidance_level"`
	Summary             string                         `json:"summary"`
}
