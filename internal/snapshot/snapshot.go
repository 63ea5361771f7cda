// Package snapshot defines the read-only data contracts supplied by the
// upstream wizard and storage layers. The insight pipeline consumes one
// consistent Snapshot per invocation and never mutates it.
package snapshot

import "github.com/planwise/discovery/internal/values"

// MaritalStatus is the user's self-reported marital status.
type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "single"
	MaritalMarried   MaritalStatus = "married"
	MaritalPartnered MaritalStatus = "partnered"
	MaritalDivorced  MaritalStatus = "divorced"
	MaritalWidowed   MaritalStatus = "widowed"
)

// Dependent is one person who relies on the user financially.
type Dependent struct {
	Relationship string `json:"relationship" yaml:"relationship"`
	Age          int    `json:"age" yaml:"age"`
}

// FederalEmployment describes a federal career, when present.
type FederalEmployment struct {
	RetirementSystem string `json:"retirement_system" yaml:"retirement_system"` // "fers", "csrs"
	YearsOfService   int    `json:"years_of_service" yaml:"years_of_service"`
}

// BasicContext is the life-context snapshot. Pointer fields are optional:
// nil means the user has not answered yet. Years-to-retirement is derived,
// never stored.
type BasicContext struct {
	Age                 *int               `json:"age,omitempty" yaml:"age,omitempty"`
	TargetRetirementAge *int               `json:"target_retirement_age,omitempty" yaml:"target_retirement_age,omitempty"`
	MaritalStatus       MaritalStatus      `json:"marital_status,omitempty" yaml:"marital_status,omitempty"`
	Dependents          []Dependent        `json:"dependents,omitempty" yaml:"dependents,omitempty"`
	FederalEmployment   *FederalEmployment `json:"federal_employment,omitempty" yaml:"federal_employment,omitempty"`
}

// YearsToRetirement derives the remaining working years. ok is false when
// either age or the retirement target is unanswered.
func (c BasicContext) YearsToRetirement() (int, bool) {
	if c.Age == nil || c.TargetRetirementAge == nil {
		return 0, false
	}
	years := *c.TargetRetirementAge - *c.Age
	if years < 0 {
		years = 0
	}
	return years, true
}

// GoalCategory is the subject area of a financial goal.
type GoalCategory string

const (
	GoalRetirement      GoalCategory = "retirement"
	GoalInvestment      GoalCategory = "investment"
	GoalEducation       GoalCategory = "education"
	GoalHomePurchase    GoalCategory = "home_purchase"
	GoalTravelLifestyle GoalCategory = "travel_lifestyle"
	GoalDebtPayoff      GoalCategory = "debt_payoff"
	GoalBusiness        GoalCategory = "business"
	GoalCharitable      GoalCategory = "charitable_giving"
	GoalFamilySupport   GoalCategory = "family_support"
	GoalHealthcare      GoalCategory = "healthcare"
	GoalEmergencyFund   GoalCategory = "emergency_fund"
)

// GoalPriority ranks how much a goal matters to the user.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "high"
	PriorityMedium GoalPriority = "medium"
	PriorityLow    GoalPriority = "low"
)

// TimeHorizon is when a goal needs funding.
type TimeHorizon string

const (
	HorizonShort   TimeHorizon = "short"
	HorizonMedium  TimeHorizon = "medium"
	HorizonLong    TimeHorizon = "long"
	HorizonOngoing TimeHorizon = "ongoing"
)

// Flexibility is how negotiable a goal's timing and amount are.
type Flexibility string

const (
	FlexFixed      Flexibility = "fixed"
	FlexFlexible   Flexibility = "flexible"
	FlexDeferrable Flexibility = "deferrable"
)

// FinancialGoal is one goal captured by the goals step of the wizard.
type FinancialGoal struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Category    GoalCategory `json:"category" yaml:"category"`
	Priority    GoalPriority `json:"priority" yaml:"priority"`
	TimeHorizon TimeHorizon  `json:"time_horizon" yaml:"time_horizon"`
	Flexibility Flexibility  `json:"flexibility" yaml:"flexibility"`
}

// FinancialPurpose captures the user's purpose statement work.
type FinancialPurpose struct {
	PrimaryDriver   string   `json:"primary_driver,omitempty" yaml:"primary_driver,omitempty"`
	TradeoffAnchors []string `json:"tradeoff_anchors,omitempty" yaml:"tradeoff_anchors,omitempty"`
	FinalStatement  string   `json:"final_statement,omitempty" yaml:"final_statement,omitempty"`
}

// Finalized reports whether the user has committed to a purpose statement.
func (p FinancialPurpose) Finalized() bool {
	return p.FinalStatement != ""
}

// Snapshot is one consistent point-in-time view of everything the user has
// entered. Callers must not hand the pipeline a snapshot with parts taken
// from different moments.
type Snapshot struct {
	Context BasicContext     `json:"context" yaml:"context"`
	Values  values.Discovery `json:"values" yaml:"values"`
	Goals   []FinancialGoal  `json:"goals,omitempty" yaml:"goals,omitempty"`
	Purpose FinancialPurpose `json:"purpose" yaml:"purpose"`
}

// HighPriorityGoals filters the snapshot's goals to those marked high priority.
func (s Snapshot) HighPriorityGoals() []FinancialGoal {
	var out []FinancialGoal
	for _, g := range s.Goals {
		if g.Priority == PriorityHigh {
			out = append(out, g)
		}
	}
	return out
}
