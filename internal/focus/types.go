package focus

// Domain is one of the nine fixed financial-planning subject areas.
type Domain string

const (
	DomainRetirementIncome    Domain = "retirement_income"
	DomainInvestmentStrategy  Domain = "investment_strategy"
	DomainTaxOptimization     Domain = "tax_optimization"
	DomainInsuranceRisk       Domain = "insurance_risk"
	DomainEstateLegacy        Domain = "estate_legacy"
	DomainCashFlowDebt        Domain = "cash_flow_debt"
	DomainBenefitsOptimization Domain = "benefits_optimization"
	DomainBusinessCareer      Domain = "business_career"
	DomainHealthcareLTC       Domain = "healthcare_ltc"
)

// AllDomains lists every planning domain in enumeration order. The order is
// the stable-sort tie-break for equally scored domains, so it is part of the
// ranking contract.
var AllDomains = []Domain{
	DomainRetirementIncome,
	DomainInvestmentStrategy,
	DomainTaxOptimization,
	DomainInsuranceRisk,
	DomainEstateLegacy,
	DomainCashFlowDebt,
	DomainBenefitsOptimization,
	DomainBusinessCareer,
	DomainHealthcareLTC,
}

// Title returns the display name for a domain.
func (d Domain) Title() string {
	switch d {
	case DomainRetirementIncome:
		return "Retirement Income"
	case DomainInvestmentStrategy:
		return "Investment Strategy"
	case DomainTaxOptimization:
		return "Tax Optimization"
	case DomainInsuranceRisk:
		return "Insurance & Risk"
	case DomainEstateLegacy:
		return "Estate & Legacy"
	case DomainCashFlowDebt:
		return "Cash Flow & Debt"
	case DomainBenefitsOptimization:
		return "Benefits Optimization"
	case DomainBusinessCareer:
		return "Business & Career"
	case DomainHealthcareLTC:
		return "Healthcare & Long-Term Care"
	default:
		return string(d)
	}
}

// Importance is the tier a domain's score maps into.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceModerate Importance = "moderate"
	ImportanceLow      Importance = "low"
)

// Area is one ranked, scored planning domain with its supporting evidence.
type Area struct {
	Domain          Domain     `json:"domain"`
	Priority        int        `json:"priority"` // 1-based rank
	Score           int        `json:"score"`
	Importance      Importance `json:"importance"`
	Rationale       []string   `json:"rationale,omitempty"`
	ValueConnections []string  `json:"value_connections,omitempty"`
	GoalConnections  []string  `json:"goal_connections,omitempty"`
	RiskFactors      []string  `json:"risk_factors,omitempty"`
}

// Ranking is the full ordered set of all nine areas plus the top-3 subset.
// Areas always has exactly nine entries, one per domain, even at score zero.
type Ranking struct {
	Areas []Area `json:"areas"`
	Top3  []Area `json:"top3"`
}

// RankOf returns the 1-based rank of the given domain, or 0 if the ranking
// is empty.
func (r Ranking) RankOf(d Domain) int {
	for _, a := range r.Areas {
		if a.Domain == d {
			return a.Priority
		}
	}
	return 0
}
