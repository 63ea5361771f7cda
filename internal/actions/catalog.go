package actions

import (
	"github.com/planwise/discovery/internal/conditions"
	"github.com/planwise/discovery/internal/focus"
)

// rankAtMost builds the minimum-focus-rank condition every template carries:
// the template's domain must rank within the first n focus areas.
func rankAtMost(d focus.Domain, n int) conditions.Condition {
	return conditions.Condition{
		Op:     conditions.OpLess,
		Field:  conditions.FactFocusRankPrefix + string(d),
		Number: float64(n + 1),
	}
}

// Catalog is the static action-template catalog. Declaration order is the
// explicit final tie-break when urgency and focus rank are equal, so new
// templates belong at the end of their domain group.
var Catalog = []Template{
	{
		ID:             "retirement-income-plan",
		Domain:         focus.DomainRetirementIncome,
		Title:          "Map your retirement income floor",
		Description:    "Work out which expenses must be covered by dependable income and which sources will cover them.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyNearTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainRetirementIncome, 3)},
		Outcome:        "A written income plan matching dependable sources to essential expenses.",
		Rationale:      "Retirement income ranks near the top of your plan, and {value} is what you said matters most.",
	},
	{
		ID:             "retirement-date-check",
		Domain:         focus.DomainRetirementIncome,
		Title:          "Pressure-test your retirement date",
		Description:    "Check whether your target date holds up against spending, savings, and income assumptions.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceEither,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainRetirementIncome, 5),
			{Op: conditions.OpNearRetirement},
		},
		Outcome:      "Confidence the date is realistic, or an early warning that it is not.",
		Rationale:    "You are close enough to retirement that the date deserves a hard look before committing to {goal}.",
		Dependencies: []string{"retirement-income-plan"},
	},
	{
		ID:             "portfolio-alignment-review",
		Domain:         focus.DomainInvestmentStrategy,
		Title:          "Align your portfolio with your strategy",
		Description:    "Compare how your money is actually invested against the income orientation your values point to.",
		Type:           TypeReview,
		Guidance:       GuidanceEither,
		DefaultUrgency: UrgencyNearTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainInvestmentStrategy, 3)},
		Outcome:        "A portfolio that matches your stated posture instead of its own history.",
		Rationale:      "Investment strategy is a top focus area for you, anchored by {value}.",
	},
	{
		ID:             "growth-allocation-review",
		Domain:         focus.DomainInvestmentStrategy,
		Title:          "Revisit your growth allocation",
		Description:    "Check that your growth-oriented holdings carry an appropriate share of the portfolio.",
		Type:           TypeReview,
		Guidance:       GuidanceSelfService,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainInvestmentStrategy, 5),
			{Op: conditions.OpContains, Field: conditions.FactTop5Categories, Value: "growth"},
		},
		Outcome:   "An allocation that reflects how much growth you actually want.",
		Rationale: "Growth sits in your top values, so the allocation should earn that weighting toward {goal}.",
	},
	{
		ID:             "tax-position-review",
		Domain:         focus.DomainTaxOptimization,
		Title:          "Review your tax position",
		Description:    "Look at account types, deductions, and withholding for planning opportunities.",
		Type:           TypeReview,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainTaxOptimization, 3)},
		Outcome:        "A shortlist of tax moves worth making this year.",
		Rationale:      "Tax planning ranked high for you, and every dollar saved serves {value}.",
	},
	{
		ID:             "retirement-tax-window",
		Domain:         focus.DomainTaxOptimization,
		Title:          "Plan the low-tax years around retirement",
		Description:    "Evaluate Roth conversions and withdrawal sequencing for the window between retirement and required distributions.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainTaxOptimization, 5),
			{Op: conditions.OpNearRetirement},
		},
		Outcome:      "A year-by-year plan for the most tax-sensitive stretch of retirement.",
		Rationale:    "The years right after retirement are a one-time tax opportunity on the way to {goal}.",
		Dependencies: []string{"tax-position-review"},
	},
	{
		ID:             "coverage-gap-review",
		Domain:         focus.DomainInsuranceRisk,
		Title:          "Find the gaps in your coverage",
		Description:    "Inventory life, disability, and liability coverage against what your household actually needs.",
		Type:           TypeReview,
		Guidance:       GuidanceEither,
		DefaultUrgency: UrgencyNearTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainInsuranceRisk, 3)},
		Outcome:        "A clear picture of covered, under-covered, and unnecessary policies.",
		Rationale:      "Protection ranked high in your plan; a gap here would put {value} at risk.",
	},
	{
		ID:             "dependent-protection-check",
		Domain:         focus.DomainInsuranceRisk,
		Title:          "Stress-test your family's safety net",
		Description:    "Confirm the people who rely on you would be financially secure if your income stopped.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyNearTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainInsuranceRisk, 6),
			{Op: conditions.OpHasDependents},
		},
		Outcome:   "Certainty that dependents stay secure in the worst case.",
		Rationale: "People depend on you, and {value} only holds if they are protected.",
	},
	{
		ID:             "estate-basics-setup",
		Domain:         focus.DomainEstateLegacy,
		Title:          "Put the estate basics in place",
		Description:    "Get wills, powers of attorney, and healthcare directives written or refreshed.",
		Type:           TypeSetup,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainEstateLegacy, 4)},
		Outcome:        "Signed documents that keep decisions in the right hands.",
		Rationale:      "Estate planning surfaced as a priority, and it is how {value} outlasts you.",
	},
	{
		ID:             "beneficiary-alignment",
		Domain:         focus.DomainEstateLegacy,
		Title:          "Align beneficiaries and account titling",
		Description:    "Check every account's beneficiary designations against your current wishes and marriage.",
		Type:           TypeReview,
		Guidance:       GuidanceSelfService,
		DefaultUrgency: UrgencyNearTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainEstateLegacy, 6),
			{Op: conditions.OpEquals, Field: conditions.FactMaritalStatus, Value: "married"},
		},
		Outcome:   "Beneficiary designations that match your actual intentions.",
		Rationale: "Outdated designations override wills; for a married household this check is quick and high-stakes.",
	},
	{
		ID:             "spending-plan-refresh",
		Domain:         focus.DomainCashFlowDebt,
		Title:          "Build a spending plan you will keep",
		Description:    "Map income against commitments so every goal has a funding line.",
		Type:           TypeSetup,
		Guidance:       GuidanceSelfService,
		DefaultUrgency: UrgencyNearTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainCashFlowDebt, 3)},
		Outcome:        "A monthly plan that funds goals before it funds drift.",
		Rationale:      "Cash flow ranked high for you; it is the engine behind {goal}.",
	},
	{
		ID:             "debt-paydown-plan",
		Domain:         focus.DomainCashFlowDebt,
		Title:          "Sequence your debt paydown",
		Description:    "Order balances by cost and payoff date so the debt goal has a schedule, not just an intention.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceSelfService,
		DefaultUrgency: UrgencyNearTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainCashFlowDebt, 6),
			{Op: conditions.OpContains, Field: conditions.FactHighPriorityGoals, Value: "debt_payoff"},
		},
		Outcome:   "A payoff schedule with a visible finish line.",
		Rationale: "You called debt payoff a high priority, and a schedule is what turns {goal} into a date.",
	},
	{
		ID:             "federal-benefits-review",
		Domain:         focus.DomainBenefitsOptimization,
		Title:          "Review your federal benefits end to end",
		Description:    "Walk through TSP allocation and contributions, FERS/CSRS projections, and insurance elections.",
		Type:           TypeReview,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyNearTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainBenefitsOptimization, 6),
			{Op: conditions.OpFederalEmployee},
		},
		Outcome:   "Every federal benefit working as hard as it can.",
		Rationale: "Your federal benefits are a major asset, and optimizing them directly serves {value}.",
	},
	{
		ID:             "federal-retirement-elections",
		Domain:         focus.DomainBenefitsOptimization,
		Title:          "Prepare your federal retirement elections",
		Description:    "Decide survivor benefit, FEHB continuation, and TSP withdrawal elections before the paperwork is due.",
		Type:           TypeDecision,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyNearTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainBenefitsOptimization, 6),
			{Op: conditions.OpFederalEmployee},
			{Op: conditions.OpNearRetirement},
		},
		Outcome:      "Elections decided calmly, ahead of their deadlines.",
		Rationale:    "Several federal elections are irrevocable at separation, so deciding early protects {goal}.",
		Dependencies: []string{"federal-benefits-review"},
	},
	{
		ID:             "business-succession-outline",
		Domain:         focus.DomainBusinessCareer,
		Title:          "Outline what comes next for your work",
		Description:    "Sketch the transition, succession, or wind-down path for your business or career chapter.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceEither,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainBusinessCareer, 3)},
		Outcome:        "A direction for the work side of the plan.",
		Rationale:      "Your work and business shape the rest of the plan, and {value} points at what the next chapter is for.",
	},
	{
		ID:             "business-goal-funding",
		Domain:         focus.DomainBusinessCareer,
		Title:          "Fund the business goal deliberately",
		Description:    "Decide how much capital the venture gets, from where, and what is off limits.",
		Type:           TypeDecision,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainBusinessCareer, 5),
			{Op: conditions.OpContains, Field: conditions.FactHighPriorityGoals, Value: "business"},
		},
		Outcome:   "A funding boundary that protects the rest of the plan.",
		Rationale: "You marked a business goal high priority; ring-fencing its funding keeps it from competing with {goal}.",
	},
	{
		ID:             "healthcare-cost-projection",
		Domain:         focus.DomainHealthcareLTC,
		Title:          "Project your healthcare costs",
		Description:    "Estimate premiums, out-of-pocket costs, and coverage transitions through retirement.",
		Type:           TypeAnalysis,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions:     []conditions.Condition{rankAtMost(focus.DomainHealthcareLTC, 3)},
		Outcome:        "A realistic healthcare line in the retirement budget.",
		Rationale:      "Healthcare ranked high in your plan, and an unbudgeted cost here threatens {value}.",
	},
	{
		ID:             "ltc-strategy-decision",
		Domain:         focus.DomainHealthcareLTC,
		Title:          "Decide your long-term care strategy",
		Description:    "Choose between insuring, self-funding, or a hybrid approach for long-term care risk.",
		Type:           TypeDecision,
		Guidance:       GuidanceProfessional,
		DefaultUrgency: UrgencyMediumTerm,
		Conditions: []conditions.Condition{
			rankAtMost(focus.DomainHealthcareLTC, 5),
			{Op: conditions.OpNearRetirement},
		},
		Outcome:      "A funded answer to the plan's largest unpriced risk.",
		Rationale:    "Approaching retirement is the right time to price long-term care, while options are still open.",
		Dependencies: []string{"healthcare-cost-projection"},
	},
}

// catalogOrder resolves a template id to its declaration position, the
// explicit final sort key.
var catalogOrder = func() map[string]int {
	idx := make(map[string]int, len(Catalog))
	for i, tmpl := range Catalog {
		idx[tmpl.ID] = i
	}
	return idx
}()
