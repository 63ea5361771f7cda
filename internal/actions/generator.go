// Package actions matches the static template catalog against the user's
// facts and turns matches into personalized, prioritized recommendations.
package actions

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/planwise/discovery/internal/conditions"
	"github.com/planwise/discovery/internal/focus"
	"github.com/planwise/discovery/internal/snapshot"
	"github.com/planwise/discovery/internal/values"
)

const (
	maxRecommendations = 7
	maxTopActions      = 5
)

// urgentNearRetirement lists the domains whose recommendations escalate one
// urgency tier when the user is near retirement.
var urgentNearRetirement = map[focus.Domain]bool{
	focus.DomainRetirementIncome: true,
	focus.DomainHealthcareLTC:    true,
	focus.DomainTaxOptimization:  true,
}

// Generate evaluates the catalog against the fact snapshot and produces the
// capped, sorted recommendation bundle. generatedAt is passed in so the
// output is fully determined by its inputs.
func Generate(s snapshot.Snapshot, derived values.DerivedInsights, ranking focus.Ranking, facts conditions.Facts, generatedAt time.Time) Recommendations {
	topValue := topValueTitle(s, derived)
	topGoal := topGoalTitle(s)
	nearRetirement := conditions.Eval(conditions.Condition{Op: conditions.OpNearRetirement}, facts)

	var recs []Recommendation
	for _, tmpl := range Catalog {
		// Empty condition lists never fire for action templates.
		if !conditions.All(tmpl.Conditions, facts, conditions.EmptyNever) {
			continue
		}
		recs = append(recs, instantiate(tmpl, s, derived, topValue, topGoal, nearRetirement))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Urgency.TierIndex() != recs[j].Urgency.TierIndex() {
			return recs[i].Urgency.TierIndex() < recs[j].Urgency.TierIndex()
		}
		ri, rj := ranking.RankOf(recs[i].Domain), ranking.RankOf(recs[j].Domain)
		if ri != rj {
			return ri < rj
		}
		return catalogOrder[recs[i].TemplateID] < catalogOrder[recs[j].TemplateID]
	})

	recs = orderDependencies(recs)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}

	var top []Recommendation
	for _, r := range recs {
		if r.Urgency != UrgencyImmediate && r.Urgency != UrgencyNearTerm {
			continue
		}
		top = append(top, r)
		if len(top) == maxTopActions {
			break
		}
	}

	return Recommendations{
		Recommendations: recs,
		TopActions:      top,
		GeneratedAt:     generatedAt,
	}
}

func instantiate(tmpl Template, s snapshot.Snapshot, derived values.DerivedInsights, topValue, topGoal string, nearRetirement bool) Recommendation {
	urgency := tmpl.DefaultUrgency
	if nearRetirement && urgentNearRetirement[tmpl.Domain] {
		urgency = escalate(urgency)
	}

	return Recommendation{
		TemplateID:       tmpl.ID,
		Domain:           tmpl.Domain,
		Title:            tmpl.Title,
		Description:      tmpl.Description,
		Type:             tmpl.Type,
		Guidance:         tmpl.Guidance,
		Urgency:          urgency,
		Rationale:        substitute(tmpl.Rationale, topValue, topGoal),
		Outcome:          tmpl.Outcome,
		ValueConnections: valueConnections(s, derived),
		GoalConnections:  goalConnections(s),
	}
}

// escalate moves urgency one tier toward immediate along the
// medium_term -> near_term -> immediate chain, capped at immediate.
// Ongoing actions stay ongoing.
func escalate(u Urgency) Urgency {
	switch u {
	case UrgencyMediumTerm:
		return UrgencyNearTerm
	case UrgencyNearTerm, UrgencyImmediate:
		return UrgencyImmediate
	default:
		return u
	}
}

// placeholderPattern matches any {word} token in a rationale template.
var placeholderPattern = regexp.MustCompile(`\{[a-z_]+\}`)

// substitute resolves the closed placeholder set: {value} becomes the user's
// top value title and {goal} their top goal title. Unknown placeholders are
// removed rather than left literal.
func substitute(text, topValue, topGoal string) string {
	out := placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		switch token {
		case "{value}":
			return topValue
		case "{goal}":
			return topGoal
		default:
			return ""
		}
	})
	// Collapse doubled spaces left behind by removed placeholders.
	return strings.Join(strings.Fields(out), " ")
}

// topValueTitle is the title of the user's highest-ranked value card:
// the first top-5 card in the dominant category, falling back to the first
// top-5 card, then to a generic phrase.
func topValueTitle(s snapshot.Snapshot, derived values.DerivedInsights) string {
	for _, id := range s.Values.Top5 {
		if card, ok := values.CardByID(id); ok && card.Category == derived.Dominant {
			return card.Title
		}
	}
	for _, id := range s.Values.Top5 {
		if card, ok := values.CardByID(id); ok {
			return card.Title
		}
	}
	return "what matters most to you"
}

// topGoalTitle is the title of the first high-priority goal, with a generic
// fallback when none exists.
func topGoalTitle(s snapshot.Snapshot) string {
	for _, g := range s.HighPriorityGoals() {
		if g.Title != "" {
			return g.Title
		}
	}
	return "your top goal"
}

func valueConnections(s snapshot.Snapshot, derived values.DerivedInsights) []string {
	var out []string
	for _, id := range s.Values.Top5 {
		if card, ok := values.CardByID(id); ok && (card.Category == derived.Dominant || card.Category == derived.Secondary) {
			out = append(out, card.Title)
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func goalConnections(s snapshot.Snapshot) []string {
	var out []string
	for _, g := range s.HighPriorityGoals() {
		if g.Title != "" {
			out = append(out, g.Title)
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// orderDependencies nudges a recommendation's dependency ahead of it when
// both made the list and share an urgency tier. Moves never cross tiers:
// the non-decreasing urgency ordering of the output is a contract.
func orderDependencies(recs []Recommendation) []Recommendation {
	deps := make(map[string][]string, len(Catalog))
	for _, tmpl := range Catalog {
		deps[tmpl.ID] = tmpl.Dependencies
	}

	out := append([]Recommendation{}, recs...)
	for pass := 0; pass < len(out); pass++ {
		moved := false
		pos := make(map[string]int, len(out))
		for i, r := range out {
			pos[r.TemplateID] = i
		}
	scan:
		for i := 0; i < len(out); i++ {
			for _, dep := range deps[out[i].TemplateID] {
				j, present := pos[dep]
				if !present || j < i || out[j].Urgency != out[i].Urgency {
					continue
				}
				// Move the dependency to just before the dependent.
				d := out[j]
				copy(out[i+1:j+1], out[i:j])
				out[i] = d
				moved = true
				break scan
			}
		}
		if !moved {
			break
		}
	}
	return out
}
