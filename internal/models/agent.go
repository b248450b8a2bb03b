package models

// Agent categories form a fixed set; CategoryAll is synthetic and only used
// for filtering, never stored.
const (
	CategoryAll          = "all"
	CategoryResearch     = "research"
	CategoryCoding       = "coding"
	CategoryData         = "data"
	CategoryContent      = "content"
	CategoryProductivity = "productivity"
)

// Categories returns the storable category set, without CategoryAll.
func Categories() []string {
	return []string{
		CategoryResearch,
		CategoryCoding,
		CategoryData,
		CategoryContent,
		CategoryProductivity,
	}
}

// Pricing model tags.
const (
	PricingFree         = "free"
	PricingPerCall      = "per_call"
	PricingSubscription = "subscription"
)

// Agent is the catalog record as read from the store. The aggregate rating
// fields are owned by the store and recomputed out-of-band; rating_avg is
// nil until the first review lands.
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Author       string   `json:"author"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        *float64 `json:"price"`
	PricingModel *string  `json:"pricing_model"`
	URL          *string  `json:"url"`
	RatingAvg    *float64 `json:"rating_avg"`
	RatingCount  *int     `json:"rating_count"`
	TestScore    *float64 `json:"test_score,omitempty"`
}

// RankedAgent is an Agent plus its 1-based position in the global ranking.
// Rating mirrors RatingAvg under the display name the catalog uses.
// Derived on every load, never persisted.
type RankedAgent struct {
	Agent
	Rank   int      `json:"rank"`
	Rating *float64 `json:"rating,omitempty"`
}
