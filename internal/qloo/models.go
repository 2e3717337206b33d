// README: Raw provider record shapes; every nested field is optional.
package qloo

// Tag is one candidate from the tag-search endpoint, relevance-ranked by the provider.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NamedRef is a nested record carrying only a display name (cuisine, dish, keyword).
type NamedRef struct {
	Name string `json:"name"`
}

// ImageRef is one entry of an entity's images array.
type ImageRef struct {
	URL string `json:"url"`
}

// PriceRange is the structured price object some entities carry.
type PriceRange struct {
	From     float64 `json:"from"`
	To       float64 `json:"to"`
	Currency string  `json:"currency"`
}

// Properties holds the nested entity attributes. Provider responses are partial
// and heterogeneous, so everything is a pointer or slice and may be absent.
type Properties struct {
	Address         *string     `json:"address,omitempty"`
	Phone           *string     `json:"phone,omitempty"`
	Website         *string     `json:"website,omitempty"`
	Description     *string     `json:"description,omitempty"`
	BusinessRating  *float64    `json:"business_rating,omitempty"`
	PriceRange      *PriceRange `json:"price_range,omitempty"`
	Images          []ImageRef  `json:"images,omitempty"`
	Cuisine         *NamedRef   `json:"cuisine,omitempty"`
	SpecialtyDishes []NamedRef  `json:"specialty_dishes,omitempty"`
	Keywords        []NamedRef  `json:"keywords,omitempty"`
}

// Entity is one provider-returned place record.
type Entity struct {
	EntityID   string      `json:"entity_id"`
	Name       string      `json:"name"`
	Properties *Properties `json:"properties,omitempty"`
	Tags       []NamedRef  `json:"tags,omitempty"`
}

// Operator selects how multiple tag filters combine in an insights query.
type Operator string

const (
	OperatorUnion        Operator = "union"
	OperatorIntersection Operator = "intersection"
)

// InsightsQuery describes one insights request. Constructed fresh per call, never persisted.
type InsightsQuery struct {
	Location  string
	TagFilter []string
	Operator  Operator
	Limit     int
}
