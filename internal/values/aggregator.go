package values

import "math"

// CountCategories tallies how many of the given cards fall in each category.
// The result is zero-filled over all nine categories. Ids that do not resolve
// against the catalog are skipped without error.
func CountCategories(cardIDs []string) CategoryCount {
	counts := NewCategoryCount()
	for _, id := range cardIDs {
		card, ok := cardIndex[id]
		if !ok {
			continue
		}
		counts[card.Category]++
	}
	return counts
}

// FindDominantCategories resolves the user's first- and second-ranked value
// categories from the top-5 counts. Ties are broken in strict precedence:
// higher non-negotiable count, then higher top-10 count, then alphabetical
// tag order. If every top-5 count is zero there is no dominant category
// (insufficient data, not an error); the secondary is resolved the same way
// over the remaining categories.
func FindDominantCategories(top5, nonNeg, top10 CategoryCount) (dominant, secondary Category) {
	dominant = pickTopCategory(top5, nonNeg, top10, "")
	if dominant == "" {
		return "", ""
	}
	secondary = pickTopCategory(top5, nonNeg, top10, dominant)
	return dominant, secondary
}

// pickTopCategory returns the best-ranked category excluding exclude, or ""
// if every candidate count is zero. AllCategories is in alphabetical order,
// so a strict > comparison realizes the alphabetical tie-break.
func pickTopCategory(top5, nonNeg, top10 CategoryCount, exclude Category) Category {
	var best Category
	for _, c := range AllCategories {
		if c == exclude || top5[c] == 0 {
			continue
		}
		if best == "" || outranks(c, best, top5, nonNeg, top10) {
			best = c
		}
	}
	return best
}

// outranks reports whether category a strictly beats category b under the
// three-step tie-break ordering.
func outranks(a, b Category, top5, nonNeg, top10 CategoryCount) bool {
	if top5[a] != top5[b] {
		return top5[a] > top5[b]
	}
	if nonNeg[a] != nonNeg[b] {
		return nonNeg[a] > nonNeg[b]
	}
	return top10[a] > top10[b]
}

// tensionPair is one entry in the fixed catalog of category tensions.
type tensionPair struct {
	a, b Category
	flag string
}

// tensionPairs is the fixed conflict catalog. Flag strings are stable output
// identifiers consumed by the UI layer.
var tensionPairs = []tensionPair{
	{CategorySecurity, CategoryFreedom, "security_vs_freedom"},
	{CategoryControl, CategoryFreedom, "control_vs_freedom"},
	{CategoryFamily, CategoryFreedom, "family_vs_freedom"},
	{CategorySecurity, CategoryGrowth, "security_vs_growth"},
	{CategoryQualityOfLife, CategorySecurity, "quality_of_life_vs_security"},
}

// DetectConflictFlags checks the tension-pair catalog against the user's
// selections. A flag fires when both sides of a pair appear in the top-5 set,
// or when the dominant category is one side and the other side appears among
// the non-negotiables. Each flag is emitted at most once.
func DetectConflictFlags(top5IDs, nonNegIDs []string, dominant Category) []string {
	top5 := categorySet(top5IDs)
	nonNeg := categorySet(nonNegIDs)

	var flags []string
	seen := make(map[string]bool)
	for _, p := range tensionPairs {
		fires := (top5[p.a] && top5[p.b]) ||
			(dominant == p.a && nonNeg[p.b]) ||
			(dominant == p.b && nonNeg[p.a])
		if fires && !seen[p.flag] {
			seen[p.flag] = true
			flags = append(flags, p.flag)
		}
	}
	return flags
}

func categorySet(cardIDs []string) map[Category]bool {
	set := make(map[Category]bool)
	for _, id := range cardIDs {
		if card, ok := cardIndex[id]; ok {
			set[card.Category] = true
		}
	}
	return set
}

// TradeoffIndex summarizes the user's revealed preference between two
// categories as a 0-100 score: 0 is fully toward a, 100 fully toward b,
// 50 balanced. ok is false when no responses reference the unordered pair;
// an absent index is distinct from a balanced zero-signal of 50.
func TradeoffIndex(responses []TradeoffResponse, a, b Category) (index int, ok bool) {
	var sum, n int
	for _, r := range responses {
		forward := r.CategoryA == a && r.CategoryB == b
		reversed := r.CategoryA == b && r.CategoryB == a
		if !forward && !reversed {
			continue
		}
		pts := responsePoints(r)
		if reversed {
			pts = 100 - pts
		}
		sum += pts
		n++
	}
	if n == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(n))), true
}

// responsePoints maps a single response to its contribution in the response's
// own stored orientation: 0/25/50 toward its category A by strength tier,
// mirrored toward B, and 50 for neutral.
func responsePoints(r TradeoffResponse) int {
	if r.Choice == ChoiceNeutral {
		return 50
	}
	var pts int
	switch {
	case r.Strength >= 4:
		pts = 0
	case r.Strength >= 2:
		pts = 25
	default:
		pts = 50
	}
	if r.Choice == ChoiceB {
		pts = 100 - pts
	}
	return pts
}

// NeutralResponseCount counts answered tradeoffs where the user declined to
// lean either way. The guidance-level scorer reads this as a signal.
func NeutralResponseCount(responses []TradeoffResponse) int {
	n := 0
	for _, r := range responses {
		if r.Choice == ChoiceNeutral {
			n++
		}
	}
	return n
}

// Derive recomputes the full DerivedInsights from a discovery snapshot. The
// result is built whole on every call; nothing is carried over between calls.
func Derive(d Discovery) DerivedInsights {
	top5 := CountCategories(d.Top5)
	nonNeg := CountCategories(d.NonNegotiables)
	top10 := CountCategories(d.Top10)

	dominant, secondary := FindDominantCategories(top5, nonNeg, top10)

	indices := make(map[string]int)
	for _, p := range tensionPairs {
		if idx, ok := TradeoffIndex(d.TradeoffResponses, p.a, p.b); ok {
			indices[p.flag] = idx
		}
	}
	if len(indices) == 0 {
		indices = nil
	}

	return DerivedInsights{
		ImportantCounts: CountCategories(d.ImportantIDs()),
		Top10Counts:     top10,
		Top5Counts:      top5,
		NonNegCounts:    nonNeg,
		Dominant:        dominant,
		Secondary:       secondary,
		ConflictFlags:   DetectConflictFlags(d.Top5, d.NonNegotiables, dominant),
		TradeoffIndices: indices,
	}
}
