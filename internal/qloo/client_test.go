// README: Provider client tests against a stub HTTP server.
package qloo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "test-key", 2*time.Second), srv
}

func TestSearchTagsRequestShape(t *testing.T) {
	var gotQuery url.Values
	var gotKey string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotKey = r.Header.Get("X-Api-Key")
		_, _ = w.Write([]byte(`{"results":{"tags":[{"id":"urn:tag:cuisine:thai","name":"Thai"},{"id":"urn:tag:flavor:spicy","name":"Spicy"}]}}`))
	})

	tags, err := client.SearchTags(context.Background(), "spicy, Thai", 5)
	if err != nil {
		t.Fatalf("SearchTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}
	if tags[0].ID != "urn:tag:cuisine:thai" || tags[1].ID != "urn:tag:flavor:spicy" {
		t.Errorf("tag order not preserved: %+v", tags)
	}
	if gotKey != "test-key" {
		t.Errorf("X-Api-Key = %q", gotKey)
	}
	if gotQuery.Get("filter.query") != "spicy, Thai" {
		t.Errorf("filter.query = %q", gotQuery.Get("filter.query"))
	}
	if gotQuery.Get("feature.typo_tolerance") != "true" {
		t.Errorf("typo tolerance flag missing: %v", gotQuery)
	}
	if gotQuery.Get("take") != "5" {
		t.Errorf("take = %q", gotQuery.Get("take"))
	}
}

func TestInsightsRequestShape(t *testing.T) {
	// Assertions on the raw query matter: a decoded url.Values view cannot
	// tell a single-encoded tag URN from a double-encoded one.
	var gotRaw string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"results":{"entities":[{"entity_id":"e1","name":"A"}]}}`))
	})

	entities, err := client.Insights(context.Background(), InsightsQuery{
		Location:  "Chicago",
		TagFilter: []string{"urn%3Atag%3Acuisine%3Athai", "urn%3Atag%3Aflavor%3Aspicy"},
		Operator:  OperatorIntersection,
		Limit:     5,
	})
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(entities) != 1 || entities[0].EntityID != "e1" {
		t.Fatalf("unexpected entities: %+v", entities)
	}
	if !strings.Contains(gotRaw, "filter.type=urn%3Aentity%3Aplace") {
		t.Errorf("filter.type missing or mangled in %q", gotRaw)
	}
	if !strings.Contains(gotRaw, "filter.location.query=Chicago") {
		t.Errorf("filter.location.query missing in %q", gotRaw)
	}
	if !strings.Contains(gotRaw, "filter.tags=urn%3Atag%3Acuisine%3Athai,urn%3Atag%3Aflavor%3Aspicy") {
		t.Errorf("tag URNs must reach the wire single-encoded, got %q", gotRaw)
	}
	if strings.Contains(gotRaw, "%253A") {
		t.Errorf("tag URNs double-encoded on the wire: %q", gotRaw)
	}
	if !strings.Contains(gotRaw, "operator.filter.tags=intersection") {
		t.Errorf("operator.filter.tags missing in %q", gotRaw)
	}
}

func TestInsightsOmitsTagParamsWhenUntagged(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"results":{"entities":[]}}`))
	})

	if _, err := client.Insights(context.Background(), InsightsQuery{Location: "Paris", Operator: OperatorUnion, Limit: 3}); err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if gotQuery.Has("filter.tags") || gotQuery.Has("operator.filter.tags") {
		t.Errorf("untagged query should omit tag params, got %v", gotQuery)
	}
}

func TestClientErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusForbidden)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results":`))
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, tc.handler)
			if _, err := client.SearchTags(context.Background(), "thai", 5); err == nil {
				t.Error("SearchTags: expected error")
			}
			if _, err := client.Insights(context.Background(), InsightsQuery{Location: "x", Limit: 1}); err == nil {
				t.Error("Insights: expected error")
			}
			if _, err := client.EntityDetails(context.Background(), "e1"); err == nil {
				t.Error("EntityDetails: expected error")
			}
		})
	}
}

func TestEntityDetailsPassThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/insights/e42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"entity_id":"e42","name":"Le Bistro","custom":{"deep":true}}`))
	})

	details, err := client.EntityDetails(context.Background(), "e42")
	if err != nil {
		t.Fatalf("EntityDetails: %v", err)
	}
	if details["name"] != "Le Bistro" {
		t.Errorf("name = %v", details["name"])
	}
	if _, ok := details["custom"]; !ok {
		t.Error("provider-defined fields must pass through untouched")
	}
}

func TestMockClientServesWithoutCredentials(t *testing.T) {
	mock := NewMockClient()

	tags, err := mock.SearchTags(context.Background(), "italian dinner", 5)
	if err != nil {
		t.Fatalf("SearchTags: %v", err)
	}
	if len(tags) != 1 || tags[0].Name != "Italian" {
		t.Errorf("expected the Italian tag, got %+v", tags)
	}

	entities, err := mock.Insights(context.Background(), InsightsQuery{Location: "Lisbon", Limit: 3})
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(entities) != 3 {
		t.Fatalf("limit not applied, got %d entities", len(entities))
	}
	if entities[0].Name != "Bella Vista Restaurant (Lisbon)" {
		t.Errorf("location not folded into mock data: %q", entities[0].Name)
	}

	if _, err := mock.EntityDetails(context.Background(), "mock-2"); err != nil {
		t.Errorf("EntityDetails(mock-2): %v", err)
	}
	if _, err := mock.EntityDetails(context.Background(), "nope"); err == nil {
		t.Error("EntityDetails: expected error for unknown id")
	}
}
