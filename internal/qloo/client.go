// README: HTTP client for the Qloo insights provider.
package qloo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const entityTypePlace = "urn:entity:place"

// Client is the narrow capability surface the recommendation pipeline consumes.
// All three operations may fail (timeout, non-2xx, malformed body); callers
// treat failure as "no data" and never surface provider errors to the end user.
type Client interface {
	SearchTags(ctx context.Context, query string, limit int) ([]Tag, error)
	Insights(ctx context.Context, q InsightsQuery) ([]Entity, error)
	EntityDetails(ctx context.Context, entityID string) (map[string]any, error)
}

// HTTPClient talks to the real provider API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a provider client with the given API key and base URL.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type tagSearchResponse struct {
	Results struct {
		Tags []Tag `json:"tags"`
	} `json:"results"`
}

// SearchTags queries the tag-search endpoint with typo tolerance enabled and
// returns the provider's relevance-ranked candidates.
func (c *HTTPClient) SearchTags(ctx context.Context, query string, limit int) ([]Tag, error) {
	params := url.Values{}
	params.Set("filter.query", query)
	params.Set("feature.typo_tolerance", "true")
	params.Set("take", strconv.Itoa(limit))

	var out tagSearchResponse
	if err := c.get(ctx, "/tags", params.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Results.Tags, nil
}

type insightsResponse struct {
	Results struct {
		Entities []Entity `json:"entities"`
	} `json:"results"`
}

// Insights queries ranked place entities for a location plus tag filter.
// Tag IDs in q.TagFilter must already be encoded (see recommend.EncodeTagID).
func (c *HTTPClient) Insights(ctx context.Context, q InsightsQuery) ([]Entity, error) {
	params := url.Values{}
	params.Set("filter.type", entityTypePlace)
	params.Set("filter.location.query", q.Location)
	params.Set("take", strconv.Itoa(q.Limit))

	query := params.Encode()
	if len(q.TagFilter) > 0 {
		// Tag IDs are already percent-encoded; url.Values would escape the
		// % a second time, so they are spliced into the query verbatim.
		query += "&filter.tags=" + strings.Join(q.TagFilter, ",") +
			"&operator.filter.tags=" + string(q.Operator)
	}

	var out insightsResponse
	if err := c.get(ctx, "/insights", query, &out); err != nil {
		return nil, err
	}
	return out.Results.Entities, nil
}

// EntityDetails fetches the raw record for one entity. The shape is
// provider-defined, so it is passed through as a generic map.
func (c *HTTPClient) EntityDetails(ctx context.Context, entityID string) (map[string]any, error) {
	var out map[string]any
	if err := c.get(ctx, "/insights/"+url.PathEscape(entityID), "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) get(ctx context.Context, path, rawQuery string, out any) error {
	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}
