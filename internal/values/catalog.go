package values

// Catalog is the static value-card deck presented during sorting. Five cards
// per category, forty-five total. Card ids are stable and referenced by stored
// pile assignments, so existing ids must never be renumbered.
var Catalog = []Card{
	// Contribution
	{ID: "contribution-1", Category: CategoryContribution, Title: "Giving Back", Description: "Donating time or money to causes that matter to you."},
	{ID: "contribution-2", Category: CategoryContribution, Title: "Mentoring Others", Description: "Helping the next generation learn from your experience."},
	{ID: "contribution-3", Category: CategoryContribution, Title: "Community Involvement", Description: "Playing an active role in your local community."},
	{ID: "contribution-4", Category: CategoryContribution, Title: "Charitable Legacy", Description: "Leaving resources behind for causes you believe in."},
	{ID: "contribution-5", Category: CategoryContribution, Title: "Making a Difference", Description: "Knowing your work improves other people's lives."},

	// Control
	{ID: "control-1", Category: CategoryControl, Title: "Managing My Own Money", Description: "Making your own investment and spending decisions."},
	{ID: "control-2", Category: CategoryControl, Title: "Understanding the Details", Description: "Knowing exactly how your plan works and why."},
	{ID: "control-3", Category: CategoryControl, Title: "Being Self-Reliant", Description: "Not depending on anyone else for your financial wellbeing."},
	{ID: "control-4", Category: CategoryControl, Title: "Having a Plan", Description: "Following a clear, written roadmap for your finances."},
	{ID: "control-5", Category: CategoryControl, Title: "Staying Informed", Description: "Keeping up with markets, taxes, and benefit rules yourself."},

	// Family
	{ID: "family-1", Category: CategoryFamily, Title: "Providing for Family", Description: "Making sure the people who depend on you are taken care of."},
	{ID: "family-2", Category: CategoryFamily, Title: "Children's Education", Description: "Funding education for children or grandchildren."},
	{ID: "family-3", Category: CategoryFamily, Title: "Leaving an Inheritance", Description: "Passing wealth to the next generation."},
	{ID: "family-4", Category: CategoryFamily, Title: "Caring for Parents", Description: "Being able to support aging parents if they need it."},
	{ID: "family-5", Category: CategoryFamily, Title: "Time with Loved Ones", Description: "Structuring work and money around family time."},

	// Freedom
	{ID: "freedom-1", Category: CategoryFreedom, Title: "Financial Independence", Description: "Having enough that work becomes a choice."},
	{ID: "freedom-2", Category: CategoryFreedom, Title: "Flexibility to Change Course", Description: "Being able to change jobs, homes, or plans without money stopping you."},
	{ID: "freedom-3", Category: CategoryFreedom, Title: "Travel and Adventure", Description: "Freedom to go where you want, when you want."},
	{ID: "freedom-4", Category: CategoryFreedom, Title: "Retiring on My Terms", Description: "Choosing when and how you stop working."},
	{ID: "freedom-5", Category: CategoryFreedom, Title: "No Debt Holding Me Back", Description: "Being free of payments that limit your options."},

	// Growth
	{ID: "growth-1", Category: CategoryGrowth, Title: "Building Wealth", Description: "Growing your net worth over time."},
	{ID: "growth-2", Category: CategoryGrowth, Title: "Investment Opportunity", Description: "Putting money to work in things that can appreciate."},
	{ID: "growth-3", Category: CategoryGrowth, Title: "Career Advancement", Description: "Increasing your earning power and responsibilities."},
	{ID: "growth-4", Category: CategoryGrowth, Title: "Learning New Skills", Description: "Investing in your own development."},
	{ID: "growth-5", Category: CategoryGrowth, Title: "Starting Something New", Description: "Building a business or project of your own."},

	// Health
	{ID: "health-1", Category: CategoryHealth, Title: "Staying Healthy", Description: "Having the resources to take care of your body and mind."},
	{ID: "health-2", Category: CategoryHealth, Title: "Quality Healthcare", Description: "Access to good doctors and coverage when you need it."},
	{ID: "health-3", Category: CategoryHealth, Title: "Aging Well", Description: "Planning for care needs later in life."},
	{ID: "health-4", Category: CategoryHealth, Title: "Low Stress", Description: "A financial life that doesn't keep you up at night."},
	{ID: "health-5", Category: CategoryHealth, Title: "Active Lifestyle", Description: "Affording the activities that keep you moving."},

	// Purpose
	{ID: "purpose-1", Category: CategoryPurpose, Title: "Meaningful Work", Description: "Spending your time on work that matters to you."},
	{ID: "purpose-2", Category: CategoryPurpose, Title: "Living My Values", Description: "Aligning how you spend money with what you believe."},
	{ID: "purpose-3", Category: CategoryPurpose, Title: "A Clear Direction", Description: "Knowing what your money is ultimately for."},
	{ID: "purpose-4", Category: CategoryPurpose, Title: "Faith and Principles", Description: "Honoring spiritual or ethical commitments in your plans."},
	{ID: "purpose-5", Category: CategoryPurpose, Title: "Personal Fulfillment", Description: "A life that feels worthwhile, not just comfortable."},

	// Quality of life
	{ID: "quality_of_life-1", Category: CategoryQualityOfLife, Title: "Comfortable Lifestyle", Description: "Enjoying day-to-day life without constant penny-pinching."},
	{ID: "quality_of_life-2", Category: CategoryQualityOfLife, Title: "Enjoying Today", Description: "Balancing saving for later with living well now."},
	{ID: "quality_of_life-3", Category: CategoryQualityOfLife, Title: "A Home I Love", Description: "Living somewhere that suits how you want to live."},
	{ID: "quality_of_life-4", Category: CategoryQualityOfLife, Title: "Experiences over Things", Description: "Spending on memories rather than possessions."},
	{ID: "quality_of_life-5", Category: CategoryQualityOfLife, Title: "Hobbies and Passions", Description: "Room in the budget for what you love doing."},

	// Security
	{ID: "security-1", Category: CategorySecurity, Title: "Financial Safety Net", Description: "Reserves that carry you through emergencies."},
	{ID: "security-2", Category: CategorySecurity, Title: "Guaranteed Income", Description: "Income you can count on regardless of markets."},
	{ID: "security-3", Category: CategorySecurity, Title: "Protecting What I Have", Description: "Insurance and safeguards against major losses."},
	{ID: "security-4", Category: CategorySecurity, Title: "Predictable Future", Description: "Knowing your plan works even in bad scenarios."},
	{ID: "security-5", Category: CategorySecurity, Title: "Never Running Out", Description: "Confidence your money lasts as long as you do."},
}

// cardIndex resolves card ids to catalog entries.
var cardIndex = func() map[string]Card {
	idx := make(map[string]Card, len(Catalog))
	for _, c := range Catalog {
		idx[c.ID] = c
	}
	return idx
}()

// CardByID looks up a catalog card. ok is false for unknown ids.
func CardByID(id string) (Card, bool) {
	c, ok := cardIndex[id]
	return c, ok
}

// TitlesFor returns the catalog titles for the given card ids, skipping any
// that do not resolve.
func TitlesFor(cardIDs []string) []string {
	var titles []string
	for _, id := range cardIDs {
		if c, ok := cardIndex[id]; ok {
			titles = append(titles, c.Title)
		}
	}
	return titles
}
