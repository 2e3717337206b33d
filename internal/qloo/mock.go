// README: Mock provider used when no API key is configured.
package qloo

import (
	"context"
	"fmt"
	"strings"
)

// MockClient serves a fixed catalogue so the assistant stays demonstrable
// without provider credentials. It implements Client.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var mockTags = []Tag{
	{ID: "urn:tag:genre:place:restaurant:italian", Name: "Italian"},
	{ID: "urn:tag:genre:place:restaurant:japanese", Name: "Japanese"},
	{ID: "urn:tag:genre:place:restaurant:american", Name: "American"},
	{ID: "urn:tag:genre:place:restaurant:indian", Name: "Indian"},
	{ID: "urn:tag:genre:place:restaurant:french", Name: "French"},
}

// SearchTags matches the fixed tag list by substring; an unmatched query
// returns every tag so downstream behaviour stays exercisable.
func (m *MockClient) SearchTags(_ context.Context, query string, limit int) ([]Tag, error) {
	q := strings.ToLower(query)
	var matched []Tag
	for _, t := range mockTags {
		if strings.Contains(q, strings.ToLower(t.Name)) {
			matched = append(matched, t)
		}
	}
	if matched == nil {
		matched = mockTags
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MockClient) Insights(_ context.Context, q InsightsQuery) ([]Entity, error) {
	entities := mockEntities(q.Location)
	if len(entities) > q.Limit {
		entities = entities[:q.Limit]
	}
	return entities, nil
}

func (m *MockClient) EntityDetails(_ context.Context, entityID string) (map[string]any, error) {
	for _, e := range mockEntities("your area") {
		if e.EntityID == entityID {
			return map[string]any{"entity_id": e.EntityID, "name": e.Name, "properties": e.Properties}, nil
		}
	}
	return nil, fmt.Errorf("mock entity %q not found", entityID)
}

func mockEntities(location string) []Entity {
	return []Entity{
		{
			EntityID: "mock-1",
			Name:     fmt.Sprintf("Bella Vista Restaurant (%s)", location),
			Properties: &Properties{
				Address:         strPtr(fmt.Sprintf("123 Main St, %s", location)),
				Phone:           strPtr("+1-555-0123"),
				Website:         strPtr("https://bellavista.com"),
				Description:     strPtr("Authentic Italian cuisine with fresh ingredients"),
				BusinessRating:  floatPtr(4.5),
				Images:          []ImageRef{{URL: "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg"}},
				Cuisine:         &NamedRef{Name: "Italian"},
				SpecialtyDishes: []NamedRef{{Name: "Margherita Pizza"}, {Name: "Osso Buco"}},
				Keywords:        []NamedRef{{Name: "pasta"}, {Name: "romantic"}},
			},
			Tags: []NamedRef{{Name: "Italian"}, {Name: "Trattoria"}},
		},
		{
			EntityID: "mock-2",
			Name:     fmt.Sprintf("Sakura Sushi (%s)", location),
			Properties: &Properties{
				Address:         strPtr(fmt.Sprintf("456 Oak Ave, %s", location)),
				Phone:           strPtr("+1-555-0456"),
				Website:         strPtr("https://sakurasushi.com"),
				Description:     strPtr("Fresh sushi and traditional Japanese dishes"),
				BusinessRating:  floatPtr(4.7),
				PriceRange:      &PriceRange{From: 30, To: 60, Currency: "USD"},
				Images:          []ImageRef{{URL: "https://images.pexels.com/photos/357756/pexels-photo-357756.jpeg"}},
				Cuisine:         &NamedRef{Name: "Japanese"},
				SpecialtyDishes: []NamedRef{{Name: "Omakase"}, {Name: "Dragon Roll"}},
				Keywords:        []NamedRef{{Name: "sushi"}, {Name: "sake"}},
			},
			Tags: []NamedRef{{Name: "Japanese"}, {Name: "Sushi Bar"}},
		},
		{
			EntityID: "mock-3",
			Name:     fmt.Sprintf("The Local Bistro (%s)", location),
			Properties: &Properties{
				Address:         strPtr(fmt.Sprintf("789 Pine St, %s", location)),
				Phone:           strPtr("+1-555-0789"),
				Website:         strPtr("https://localbistro.com"),
				Description:     strPtr("Farm-to-table American cuisine with local ingredients"),
				BusinessRating:  floatPtr(4.3),
				Images:          []ImageRef{{URL: "https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg"}},
				Cuisine:         &NamedRef{Name: "American"},
				SpecialtyDishes: []NamedRef{{Name: "Smash Burger"}},
				Keywords:        []NamedRef{{Name: "brunch"}, {Name: "craft beer"}},
			},
			Tags: []NamedRef{{Name: "American"}, {Name: "Bistro"}},
		},
		{
			EntityID: "mock-4",
			Name:     fmt.Sprintf("Spice Garden (%s)", location),
			Properties: &Properties{
				Address:         strPtr(fmt.Sprintf("321 Elm St, %s", location)),
				Phone:           strPtr("+1-555-0321"),
				Website:         strPtr("https://spicegarden.com"),
				Description:     strPtr("Authentic Indian spices and traditional recipes"),
				BusinessRating:  floatPtr(4.6),
				Images:          []ImageRef{{URL: "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"}},
				Cuisine:         &NamedRef{Name: "Indian"},
				SpecialtyDishes: []NamedRef{{Name: "Butter Chicken"}, {Name: "Biryani"}},
				Keywords:        []NamedRef{{Name: "spicy"}, {Name: "vegetarian"}},
			},
			Tags: []NamedRef{{Name: "Indian"}, {Name: "Curry House"}},
		},
		{
			EntityID: "mock-5",
			Name:     fmt.Sprintf("Café Parisien (%s)", location),
			Properties: &Properties{
				Address:         strPtr(fmt.Sprintf("654 Maple Ave, %s", location)),
				Phone:           strPtr("+1-555-0654"),
				Website:         strPtr("https://cafeparisien.com"),
				Description:     strPtr("Classic French café with pastries and coffee"),
				BusinessRating:  floatPtr(4.4),
				PriceRange:      &PriceRange{From: 25, To: 80, Currency: "USD"},
				Images:          []ImageRef{{URL: "https://images.pexels.com/photos/1307698/pexels-photo-1307698.jpeg"}},
				Cuisine:         &NamedRef{Name: "French"},
				SpecialtyDishes: []NamedRef{{Name: "Croissant"}, {Name: "Coq au Vin"}},
				Keywords:        []NamedRef{{Name: "pastries"}, {Name: "espresso"}},
			},
			Tags: []NamedRef{{Name: "French"}, {Name: "Café"}},
		},
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
