// Package focus scores and ranks the nine planning domains from value,
// goal, and life-context signals. Scoring passes are additive folds over an
// immutable score table; each pass returns a new table, which keeps the
// passes independently testable.
package focus

import (
	"fmt"
	"sort"

	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/values"
)

// Importance tier thresholds and the risk-annotation floors. These constants
// are behavioral contracts for existing fixtures.
const (
	criticalThreshold = 8
	highThreshold     = 5
	moderateThreshold = 2

	insuranceRiskFloor = 3
	estateLegacyFloor  = 3
	cashFlowFloor      = 2
)

// table is one immutable accumulation state. Passes copy-on-write.
type table struct {
	scores     map[Domain]int
	reasons    map[Domain][]string
	valueConns map[Domain][]string
	goalConns  map[Domain][]string
	risks      map[Domain][]string
}

func newTable() table {
	t := table{
		scores:     make(map[Domain]int, len(AllDomains)),
		reasons:    make(map[Domain][]string),
		valueConns: make(map[Domain][]string),
		goalConns:  make(map[Domain][]string),
		risks:      make(map[Domain][]string),
	}
	for _, d := range AllDomains {
		t.scores[d] = 0
	}
	return t
}

func (t table) clone() table {
	next := table{
		scores:     make(map[Domain]int, len(t.scores)),
		reasons:    make(map[Domain][]string, len(t.reasons)),
		valueConns: make(map[Domain][]string, len(t.valueConns)),
		goalConns:  make(map[Domain][]string, len(t.goalConns)),
		risks:      make(map[Domain][]string, len(t.risks)),
	}
	for d, s := range t.scores {
		next.scores[d] = s
	}
	for d, r := range t.reasons {
		next.reasons[d] = append([]string{}, r...)
	}
	for d, v := range t.valueConns {
		next.valueConns[d] = append([]string{}, v...)
	}
	for d, g := range t.goalConns {
		next.goalConns[d] = append([]string{}, g...)
	}
	for d, r := range t.risks {
		next.risks[d] = append([]string{}, r...)
	}
	return next
}

func (t *table) add(d Domain, points int, reason string) {
	t.scores[d] += points
	t.reasons[d] = append(t.reasons[d], reason)
}

// domainsForCategory maps a value category to the planning domains it
// energizes. Exhaustive over all nine categories.
func domainsForCategory(c values.Category) []Domain {
	switch c {
	case values.CategorySecurity:
		return []Domain{DomainInsuranceRisk, DomainCashFlowDebt}
	case values.CategoryFreedom:
		return []Domain{DomainRetirementIncome, DomainInvestmentStrategy}
	case values.CategoryGrowth:
		return []Domain{DomainInvestmentStrategy, DomainBusinessCareer}
	case values.CategoryControl:
		return []Domain{DomainTaxOptimization, DomainInvestmentStrategy}
	case values.CategoryFamily:
		return []Domain{DomainEstateLegacy, DomainInsuranceRisk}
	case values.CategoryHealth:
		return []Domain{DomainHealthcareLTC, DomainInsuranceRisk}
	case values.CategoryContribution:
		return []Domain{DomainEstateLegacy, DomainTaxOptimization}
	case values.CategoryPurpose:
		return []Domain{DomainRetirementIncome, DomainBusinessCareer}
	case values.CategoryQualityOfLife:
		return []Domain{DomainRetirementIncome, DomainCashFlowDebt}
	default:
		return nil
	}
}

// domainsForGoal maps a goal category to the planning domains it implicates.
// Exhaustive over all goal categories.
func domainsForGoal(c snapshot.GoalCategory) []Domain {
	switch c {
	case snapshot.GoalRetirement:
		return []Domain{DomainRetirementIncome, DomainTaxOptimization}
	case snapshot.GoalInvestment:
		return []Domain{DomainInvestmentStrategy}
	case snapshot.GoalEducation:
		return []Domain{DomainInvestmentStrategy, DomainCashFlowDebt}
	case snapshot.GoalHomePurchase:
		return []Domain{DomainCashFlowDebt}
	case snapshot.GoalTravelLifestyle:
		return []Domain{DomainCashFlowDebt, DomainRetirementIncome}
	case snapshot.GoalDebtPayoff:
		return []Domain{DomainCashFlowDebt}
	case snapshot.GoalBusiness:
		return []Domain{DomainBusinessCareer, DomainTaxOptimization}
	case snapshot.GoalCharitable:
		return []Domain{DomainEstateLegacy, DomainTaxOptimization}
	case snapshot.GoalFamilySupport:
		return []Domain{DomainInsuranceRisk, DomainEstateLegacy}
	case snapshot.GoalHealthcare:
		return []Domain{DomainHealthcareLTC, DomainInsuranceRisk}
	case snapshot.GoalEmergencyFund:
		return []Domain{DomainCashFlowDebt, DomainInsuranceRisk}
	default:
		return nil
	}
}

// applyValuePass scores +2 per domain matched by the dominant and secondary
// value categories, attaching the user's matching card titles as display
// connections.
func applyValuePass(t table, s snapshot.Snapshot, derived values.DerivedInsights) table {
	next := t.clone()
	for _, cat := range []values.Category{derived.Dominant, derived.Secondary} {
		if cat == "" {
			continue
		}
		titles := topValueTitles(s.Values.Top5, cat)
		for _, d := range domainsForCategory(cat) {
			next.add(d, 2, fmt.Sprintf("connected to your %s values", cat))
			next.valueConns[d] = append(next.valueConns[d], titles...)
		}
	}
	return next
}

// topValueTitles returns the titles of the user's top-5 cards in the
// given category.
func topValueTitles(top5 []string, cat values.Category) []string {
	var titles []string
	for _, id := range top5 {
		if card, ok := values.CardByID(id); ok && card.Category == cat {
			titles = append(titles, card.Title)
		}
	}
	return titles
}

// applyGoalPass scores +3 per domain matched by each high-priority goal,
// plus +2 when the goal's horizon is short, attaching goal titles as
// connections.
func applyGoalPass(t table, s snapshot.Snapshot) table {
	next := t.clone()
	for _, g := range s.HighPriorityGoals() {
		for _, d := range domainsForGoal(g.Category) {
			next.add(d, 3, fmt.Sprintf("driven by your high-priority %s goal", g.Category))
			if g.TimeHorizon == snapshot.HorizonShort {
				next.add(d, 2, "that goal needs funding soon")
			}
			if g.Title != "" {
				next.goalConns[d] = append(next.goalConns[d], g.Title)
			}
		}
	}
	return next
}

// applyContextPass scores from life context. The five-year and ten-year
// retirement bonuses stack, so a horizon inside five years scores both.
func applyContextPass(t table, ctx snapshot.BasicContext) table {
	next := t.clone()

	if years, ok := ctx.YearsToRetirement(); ok {
		if years <= 5 {
			next.add(DomainRetirementIncome, 5, "retirement is five years away or less")
			next.add(DomainHealthcareLTC, 3, "healthcare decisions arrive with retirement")
			next.add(DomainTaxOptimization, 2, "the years around retirement are tax-sensitive")
		}
		if years <= 10 {
			next.add(DomainRetirementIncome, 3, "retirement is inside the ten-year window")
		}
	}
	if ctx.FederalEmployment != nil {
		next.add(DomainBenefitsOptimization, 4, "your federal benefits deserve a close look")
	}
	if len(ctx.Dependents) > 0 {
		next.add(DomainInsuranceRisk, 2, "people depend on your income")
		next.add(DomainEstateLegacy, 2, "dependents make estate planning matter now")
	}
	if ctx.MaritalStatus == snapshot.MaritalMarried {
		next.add(DomainEstateLegacy, 1, "married couples benefit from coordinated estate plans")
	}
	return next
}

// applyRiskPass appends non-scoring risk annotations to foundational domains
// whose score stayed below their floor, so unscored risk still surfaces.
func applyRiskPass(t table) table {
	next := t.clone()
	if next.scores[DomainInsuranceRisk] < insuranceRiskFloor {
		next.risks[DomainInsuranceRisk] = append(next.risks[DomainInsuranceRisk],
			"no strong signal here, but uncovered risk can undo the rest of the plan")
	}
	if next.scores[DomainEstateLegacy] < estateLegacyFloor {
		next.risks[DomainEstateLegacy] = append(next.risks[DomainEstateLegacy],
			"basic estate documents are worth having even when legacy is not a focus")
	}
	if next.scores[DomainCashFlowDebt] < cashFlowFloor {
		next.risks[DomainCashFlowDebt] = append(next.risks[DomainCashFlowDebt],
			"cash flow is the foundation every other domain builds on")
	}
	return next
}

func importanceFor(score int) Importance {
	switch {
	case score >= criticalThreshold:
		return ImportanceCritical
	case score >= highThreshold:
		return ImportanceHigh
	case score >= moderateThreshold:
		return ImportanceModerate
	default:
		return ImportanceLow
	}
}

// dedupeCap returns the first n distinct entries, preserving order.
func dedupeCap(items []string, n int) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}

// Rank runs all scoring passes and produces the full nine-domain ranking.
// The sort is stable: equally scored domains keep enumeration order.
func Rank(s snapshot.Snapshot, derived values.DerivedInsights) Ranking {
	t := newTable()
	t = applyValuePass(t, s, derived)
	t = applyGoalPass(t, s)
	t = applyContextPass(t, s.Context)
	t = applyRiskPass(t)

	areas := make([]Area, 0, len(AllDomains))
	for _, d := range AllDomains {
		areas = append(areas, Area{
			Domain:           d,
			Score:            t.scores[d],
			Importance:       importanceFor(t.scores[d]),
			Rationale:        dedupeCap(t.reasons[d], 3),
			ValueConnections: dedupeCap(t.valueConns[d], 3),
			GoalConnections:  dedupeCap(t.goalConns[d], 3),
			RiskFactors:      t.risks[d],
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Score > areas[j].Score
	})
	for i := range areas {
		areas[i].Priority = i + 1
	}

	var top3 []Area
	for _, a := range areas {
		if a.Importance != ImportanceCritical && a.Importance != ImportanceHigh {
			break
		}
		top3 = append(top3, a)
		if len(top3) == 3 {
			break
		}
	}

	return Ranking{Areas: areas, Top3: top3}
}
