package values

// Category is one of the nine fixed life-priority tags a value card belongs to.
type Category string

const (
	CategoryContribution  Category = "contribution"
	CategoryControl       Category = "control"
	CategoryFamily        Category = "family"
	CategoryFreedom       Category = "freedom"
	CategoryGrowth        Category = "growth"
	CategoryHealth        Category = "health"
	CategoryPurpose       Category = "purpose"
	CategoryQualityOfLife Category = "quality_of_life"
	CategorySecurity      Category = "security"
)

// AllCategories lists every category in alphabetical tag order. Alphabetical
// order is the final tie-break when resolving dominant categories, so the
// slice order is load-bearing.
var AllCategories = []Category{
	CategoryContribution,
	CategoryControl,
	CategoryFamily,
	CategoryFreedom,
	CategoryGrowth,
	CategoryHealth,
	CategoryPurpose,
	CategoryQualityOfLife,
	CategorySecurity,
}

// Pile is the user's coarse classification of a value card during sorting.
type Pile string

const (
	PileImportant    Pile = "important"
	PileUnsure       Pile = "unsure"
	PileNotImportant Pile = "not_important"
)

// Card is a single entry in the static value-card catalog. The catalog is
// reference data and is never mutated at runtime.
type Card struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// TradeoffChoice is the direction of a forced-choice tradeoff answer.
type TradeoffChoice string

const (
	ChoiceA       TradeoffChoice = "a"
	ChoiceB       TradeoffChoice = "b"
	ChoiceNeutral TradeoffChoice = "neutral"
)

// TradeoffResponse is one answered forced-choice question between two
// categories. Multiple responses may reference the same pair in either order.
type TradeoffResponse struct {
	CategoryA Category       `json:"category_a"`
	CategoryB Category       `json:"category_b"`
	Choice    TradeoffChoice `json:"choice"`
	Strength  int            `json:"strength"` // 1-5
}

// CategoryCount maps every category to an occurrence count. Counts are always
// zero-filled over all nine categories.
type CategoryCount map[Category]int

// NewCategoryCount returns a count table with every category present at zero.
func NewCategoryCount() CategoryCount {
	counts := make(CategoryCount, len(AllCategories))
	for _, c := range AllCategories {
		counts[c] = 0
	}
	return counts
}

// Discovery is the snapshot of the user's value-sorting work consumed by the
// aggregator: pile assignments plus the ordered narrowing stages. Each stage
// is a subset of the previous one (top5 within top10 within important); that
// containment is an input contract from the upstream wizard, not enforced here.
type Discovery struct {
	Piles             map[string]Pile    `json:"piles" yaml:"piles"`
	Top10             []string           `json:"top10" yaml:"top10"`
	Top5              []string           `json:"top5" yaml:"top5"`
	NonNegotiables    []string           `json:"non_negotiables" yaml:"non_negotiables"`
	TradeoffResponses []TradeoffResponse `json:"tradeoff_responses" yaml:"tradeoff_responses"`
}

// ImportantIDs returns the ids of every card the user placed in the
// important pile.
func (d Discovery) ImportantIDs() []string {
	var ids []string
	for id, pile := range d.Piles {
		if pile == PileImportant {
			ids = append(ids, id)
		}
	}
	return ids
}

// DerivedInsights is the aggregator's output: per-stage counts, the resolved
// dominant/secondary categories, conflict flags, and named tradeoff axes.
// It is recomputed whole from the current Discovery, never patched.
type DerivedInsights struct {
	ImportantCounts CategoryCount  `json:"important_counts"`
	Top10Counts     CategoryCount  `json:"top10_counts"`
	Top5Counts      CategoryCount  `json:"top5_counts"`
	NonNegCounts    CategoryCount  `json:"non_negotiable_counts"`
	Dominant        Category       `json:"dominant_category,omitempty"`
	Secondary       Category       `json:"secondary_category,omitempty"`
	ConflictFlags   []string       `json:"conflict_flags,omitempty"`
	TradeoffIndices map[string]int `json:"tradeoff_indices,omitempty"`
}
