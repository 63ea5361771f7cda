package strategy

import "strings"

// summarize concatenates one phrase per dimension in fixed order: income
// strategy, timing, flexibility, complexity, guidance. Each fragment is
// normalized to end with sentence punctuation before joining.
func summarize(p Profile) string {
	fragments := []string{
		incomePhrase(p.IncomeStrategy.Value),
		timingPhrase(p.TimingSensitivity.Value),
		flexibilityPhrase(p.PlanningFlexibility.Value),
		complexityPhrase(p.ComplexityTolerance.Value),
		guidancePhrase(p.GuidanceLevel.Value),
	}
	return joinSentences(fragments)
}

// joinSentences trims each fragment, ensures it ends in terminal punctuation,
// and joins with single spaces. Empty fragments are dropped.
func joinSentences(fragments []string) string {
	var out []string
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if !strings.HasSuffix(f, ".") && !strings.HasSuffix(f, "!") && !strings.HasSuffix(f, "?") {
			f += "."
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

func incomePhrase(v IncomeStrategy) string {
	switch v {
	case IncomeStabilityFocused:
		return "You lean toward dependable income you can count on, even if that means slower growth"
	case IncomeGrowthFocused:
		return "You are comfortable trading some predictability for long-term growth"
	default:
		return "You want a balance of dependable income and room for growth"
	}
}

func timingPhrase(v TimingSensitivity) string {
	switch v {
	case TimingHigh:
		return "Your plan has firm dates that leave little slack, so sequencing matters"
	case TimingMedium:
		return "A few of your milestones are time-sensitive and worth planning around"
	default:
		return "Your timeline has breathing room"
	}
}

func flexibilityPhrase(v PlanningFlexibility) string {
	switch v {
	case FlexibilityHigh:
		return "You have real flexibility to adjust course as life changes"
	case FlexibilityLow:
		return "Your commitments leave limited room to change course, so the plan should be resilient up front"
	default:
		return "You can adapt in places, though some commitments are set"
	}
}

func complexityPhrase(v ComplexityTolerance) string {
	switch v {
	case ComplexityAdvanced:
		return "You are comfortable with sophisticated strategies and want to understand the machinery"
	case ComplexitySimple:
		return "You will be best served by a plan that stays simple and clear"
	default:
		return "A moderately detailed plan suits you, with complexity only where it earns its keep"
	}
}

func guidancePhrase(v GuidanceLevel) string {
	switch v {
	case GuidanceHigh:
		return "Regular professional guidance will help you move forward with confidence"
	case GuidanceLow:
		return "You are well positioned to self-direct, checking in with a professional as needed"
	default:
		return "Occasional professional check-ins should be enough to keep things on track"
	}
}
