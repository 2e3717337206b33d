// README: Queries the insights capability and normalizes entities into recommendations.
package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/qloo"
)

// insightsCache is the caching seam for fetched entity lists. *Cache
// satisfies it.
type insightsCache interface {
	Get(ctx context.Context, q Query) ([]qloo.Entity, bool)
	Put(ctx context.Context, q Query, entities []qloo.Entity)
}

// Fetcher turns a Query into normalized recommendations. Every successfully
// parsed entity also feeds the keyword memory, which is how future intent
// detection self-improves.
type Fetcher struct {
	provider qloo.Client
	memory   *KeywordMemory
	cache    insightsCache
}

// NewFetcher creates a Fetcher. cache may be nil to disable caching.
func NewFetcher(provider qloo.Client, memory *KeywordMemory, cache *Cache) *Fetcher {
	f := &Fetcher{provider: provider, memory: memory}
	if cache != nil {
		f.cache = cache
	}
	return f
}

// Fetch returns at most q.Limit recommendations. It never returns an error:
// a fluent reply must still be deliverable when the provider is unavailable,
// so any failure degrades to an empty result.
func (f *Fetcher) Fetch(ctx context.Context, q Query) []Recommendation {
	if f.cache != nil {
		if entities, ok := f.cache.Get(ctx, q); ok {
			return f.assemble(entities)
		}
	}

	entities, err := f.provider.Insights(ctx, qloo.InsightsQuery{
		Location:  q.Location,
		TagFilter: q.Tags,
		Operator:  q.Operator,
		Limit:     q.Limit,
	})
	if err != nil {
		logx.Warn().Err(err).Str("location", q.Location).Msg("insights fetch failed, returning no recommendations")
		return nil
	}

	if q.Limit > 0 && len(entities) > q.Limit {
		entities = entities[:q.Limit]
	}

	recs := f.assemble(entities)
	if f.cache != nil && len(entities) > 0 {
		f.cache.Put(ctx, q, entities)
	}
	return recs
}

// assemble normalizes the entities and folds their descriptive terms into
// the keyword memory. Cache hits pass through here too, so a restarted
// process re-learns terms from cached entities.
func (f *Fetcher) assemble(entities []qloo.Entity) []Recommendation {
	recs := make([]Recommendation, 0, len(entities))
	for _, e := range entities {
		recs = append(recs, normalize(e))
		f.remember(e)
	}
	return recs
}

// normalize maps one provider entity onto the fixed record shape. Nested keys
// may be missing anywhere, so every access guards for presence.
func normalize(e qloo.Entity) Recommendation {
	rec := Recommendation{
		ID:          e.EntityID,
		Name:        e.Name,
		PriceRange:  placeholderPrice,
		Description: placeholderDescription,
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Name == "" {
		rec.Name = placeholderName
	}

	p := e.Properties
	if p == nil {
		return rec
	}

	rec.Address = p.Address
	rec.Phone = p.Phone
	rec.Website = p.Website
	rec.Rating = p.BusinessRating
	if p.Description != nil && *p.Description != "" {
		rec.Description = *p.Description
	}
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		rec.ImageURL = &p.Images[0].URL
	}
	if p.Cuisine != nil && p.Cuisine.Name != "" {
		rec.CuisineType = &p.Cuisine.Name
	}
	if p.PriceRange != nil {
		formatted := fmt.Sprintf("%g-%g %s", p.PriceRange.From, p.PriceRange.To, p.PriceRange.Currency)
		rec.PriceRange = formatted
	}
	return rec
}

// remember folds the entity's descriptive terms into the keyword memory.
func (f *Fetcher) remember(e qloo.Entity) {
	var terms []string
	if p := e.Properties; p != nil {
		for _, d := range p.SpecialtyDishes {
			terms = append(terms, d.Name)
		}
		for _, k := range p.Keywords {
			terms = append(terms, k.Name)
		}
	}
	for _, t := range e.Tags {
		terms = append(terms, t.Name)
	}
	if len(terms) > 0 {
		f.memory.Remember(terms...)
	}
}
