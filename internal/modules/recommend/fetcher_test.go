// README: Fetcher normalization and degradation tests.
package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"foodiebot/internal/qloo"
)

func fullEntity() qloo.Entity {
	addr := "12 Rue Cler, Paris"
	phone := "+33-1-2345"
	site := "https://lebistro.example"
	desc := "Classic neighbourhood bistro"
	rating := 4.6
	return qloo.Entity{
		EntityID: "e-full",
		Name:     "Le Bistro",
		Properties: &qloo.Properties{
			Address:         &addr,
			Phone:           &phone,
			Website:         &site,
			Description:     &desc,
			BusinessRating:  &rating,
			PriceRange:      &qloo.PriceRange{From: 20, To: 45, Currency: "EUR"},
			Images:          []qloo.ImageRef{{URL: "https://img.example/1.jpg"}, {URL: "https://img.example/2.jpg"}},
			Cuisine:         &qloo.NamedRef{Name: "French"},
			SpecialtyDishes: []qloo.NamedRef{{Name: "Duck Confit"}},
			Keywords:        []qloo.NamedRef{{Name: "cozy"}},
		},
		Tags: []qloo.NamedRef{{Name: "Bistro"}},
	}
}

func TestFetchNormalizesFullEntity(t *testing.T) {
	provider := &fakeProvider{entities: []qloo.Entity{fullEntity()}}
	f := NewFetcher(provider, NewKeywordMemory(), nil)

	recs := f.Fetch(context.Background(), Query{Location: "Paris", Operator: qloo.OperatorUnion, Limit: 5})
	if len(recs) != 1 {
		t.Fatalf("got %d recs", len(recs))
	}
	r := recs[0]
	if r.ID != "e-full" || r.Name != "Le Bistro" {
		t.Errorf("id/name = %q/%q", r.ID, r.Name)
	}
	if r.ImageURL == nil || *r.ImageURL != "https://img.example/1.jpg" {
		t.Errorf("image_url must be the first images entry, got %v", r.ImageURL)
	}
	if r.Rating == nil || *r.Rating != 4.6 {
		t.Errorf("rating = %v", r.Rating)
	}
	if r.Address == nil || *r.Address != "12 Rue Cler, Paris" {
		t.Errorf("address = %v", r.Address)
	}
	if r.Phone == nil || *r.Phone != "+33-1-2345" {
		t.Errorf("phone = %v", r.Phone)
	}
	if r.Website == nil || *r.Website != "https://lebistro.example" {
		t.Errorf("website = %v", r.Website)
	}
	if r.CuisineType == nil || *r.CuisineType != "French" {
		t.Errorf("cuisine_type = %v", r.CuisineType)
	}
	if r.PriceRange != "20-45 EUR" {
		t.Errorf("price_range = %q, want %q", r.PriceRange, "20-45 EUR")
	}
	if r.Description != "Classic neighbourhood bistro" {
		t.Errorf("description = %q", r.Description)
	}
}

func TestFetchNormalizesMinimalEntity(t *testing.T) {
	provider := &fakeProvider{entities: []qloo.Entity{{EntityID: "e-min", Name: "Nameless Noodles"}}}
	f := NewFetcher(provider, NewKeywordMemory(), nil)

	recs := f.Fetch(context.Background(), Query{Location: "Lima", Operator: qloo.OperatorUnion, Limit: 5})
	if len(recs) != 1 {
		t.Fatalf("got %d recs", len(recs))
	}
	r := recs[0]
	if r.ImageURL != nil || r.Rating != nil || r.Address != nil || r.Phone != nil || r.Website != nil || r.CuisineType != nil {
		t.Errorf("optional fields must be absent: %+v", r)
	}
	if r.PriceRange != "$$" {
		t.Errorf("price_range = %q, want the fixed placeholder", r.PriceRange)
	}
	if r.Description != "Great dining experience" {
		t.Errorf("description = %q, want the fixed placeholder", r.Description)
	}
}

func TestFetchGeneratesIDWhenAbsent(t *testing.T) {
	provider := &fakeProvider{entities: []qloo.Entity{{Name: "No ID Diner"}, {Name: ""}}}
	f := NewFetcher(provider, NewKeywordMemory(), nil)

	recs := f.Fetch(context.Background(), Query{Location: "x", Limit: 5})
	if len(recs) != 2 {
		t.Fatalf("got %d recs", len(recs))
	}
	if recs[0].ID == "" || recs[1].ID == "" {
		t.Error("missing upstream ids must be generated")
	}
	if recs[0].ID == recs[1].ID {
		t.Error("generated ids must be distinct")
	}
	if recs[1].Name != "Unknown Restaurant" {
		t.Errorf("missing name default = %q", recs[1].Name)
	}
}

func TestFetchNeverErrors(t *testing.T) {
	f := NewFetcher(&fakeProvider{insightsErr: errors.New("timeout")}, NewKeywordMemory(), nil)
	if recs := f.Fetch(context.Background(), Query{Location: "x", Limit: 5}); recs != nil {
		t.Errorf("recs = %+v, want nil on provider failure", recs)
	}
}

func TestFetchBoundsResultsByLimit(t *testing.T) {
	entities := make([]qloo.Entity, 8)
	for i := range entities {
		entities[i] = qloo.Entity{EntityID: "e", Name: "N"}
	}
	f := NewFetcher(&fakeProvider{entities: entities}, NewKeywordMemory(), nil)

	if recs := f.Fetch(context.Background(), Query{Location: "x", Limit: 3}); len(recs) != 3 {
		t.Errorf("got %d recs, want 3", len(recs))
	}
}

// stubCache is an in-process insightsCache double.
type stubCache struct {
	entities []qloo.Entity
	hit      bool
	puts     int
}

func (c *stubCache) Get(_ context.Context, _ Query) ([]qloo.Entity, bool) {
	if !c.hit {
		return nil, false
	}
	return c.entities, true
}

func (c *stubCache) Put(_ context.Context, _ Query, entities []qloo.Entity) {
	c.entities = entities
	c.hit = true
	c.puts++
}

func TestFetchServedFromCacheFeedsMemory(t *testing.T) {
	memory := NewKeywordMemory()
	provider := &fakeProvider{insightsErr: errors.New("down")}
	f := &Fetcher{
		provider: provider,
		memory:   memory,
		cache:    &stubCache{entities: []qloo.Entity{fullEntity()}, hit: true},
	}

	recs := f.Fetch(context.Background(), Query{Location: "Paris", Limit: 5})
	if len(recs) != 1 || recs[0].Name != "Le Bistro" {
		t.Fatalf("cached entities not served: %+v", recs)
	}
	if provider.insightsCalls != 0 {
		t.Errorf("provider consulted %d times on a cache hit", provider.insightsCalls)
	}
	want := []string{"bistro", "cozy", "duck confit"}
	if got := memory.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("memory after cache hit = %v, want %v", got, want)
	}
}

func TestFetchStoresEntitiesInCache(t *testing.T) {
	cache := &stubCache{}
	f := &Fetcher{
		provider: &fakeProvider{entities: []qloo.Entity{fullEntity()}},
		memory:   NewKeywordMemory(),
		cache:    cache,
	}

	f.Fetch(context.Background(), Query{Location: "Paris", Limit: 5})
	if cache.puts != 1 {
		t.Fatalf("cache writes = %d, want 1", cache.puts)
	}
	if len(cache.entities) != 1 || cache.entities[0].EntityID != "e-full" {
		t.Errorf("cached value must be the raw entities, got %+v", cache.entities)
	}

	// A later fetch in a fresh process still rebuilds its memory.
	fresh := NewKeywordMemory()
	f2 := &Fetcher{provider: &fakeProvider{insightsErr: errors.New("down")}, memory: fresh, cache: cache}
	f2.Fetch(context.Background(), Query{Location: "Paris", Limit: 5})
	if fresh.Len() == 0 {
		t.Error("cache-served fetch left the keyword memory empty")
	}
}

func TestFetchFoldsTermsIntoMemory(t *testing.T) {
	memory := NewKeywordMemory()
	f := NewFetcher(&fakeProvider{entities: []qloo.Entity{fullEntity()}}, memory, nil)

	f.Fetch(context.Background(), Query{Location: "Paris", Limit: 5})

	want := []string{"bistro", "cozy", "duck confit"}
	if got := memory.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("memory = %v, want %v", got, want)
	}
}
