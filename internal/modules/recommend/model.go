// README: Recommendation records produced by the fetch pipeline.
package recommend

import (
	"foodiebot/internal/qloo"
)

// Placeholder values applied when the provider omits a field.
const (
	placeholderPrice       = "$$"
	placeholderDescription = "Great dining experience"
	placeholderName        = "Unknown Restaurant"
)

// Recommendation is the stable output shape one provider entity normalizes into.
// Provider responses are partial, so everything past id/name is optional.
// Instances are created fresh per fetch and attached to a single chat turn.
type Recommendation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	CuisineType *string  `json:"cuisine_type,omitempty"`
	PriceRange  string   `json:"price_range"`
	Description string   `json:"description"`
}

// Query describes one recommendation fetch. Constructed fresh per request.
type Query struct {
	Location string
	Tags     []string
	Operator qloo.Operator
	Limit    int
}
