// README: Maps extracted keywords to encoded provider tag IDs.
package recommend

import (
	"context"
	"strings"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/qloo"
)

// TagResolver maps a keyword string to provider-native tag identifiers via the
// fuzzy tag-search capability.
type TagResolver struct {
	provider qloo.Client
}

func NewTagResolver(provider qloo.Client) *TagResolver {
	return &TagResolver{provider: provider}
}

// Resolve queries the tag search with the raw keyword string (not tokenized)
// and keeps at most maxTags of the top-ranked results in provider order, each
// encoded for use in a query string. A failed or empty search returns an empty
// slice; callers fall back to an untagged, location-only query.
func (r *TagResolver) Resolve(ctx context.Context, keywords string, maxTags int) []string {
	tags, err := r.provider.SearchTags(ctx, keywords, maxTags)
	if err != nil {
		logx.Warn().Err(err).Str("keywords", keywords).Msg("tag search failed")
		return nil
	}
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	encoded := make([]string, 0, len(tags))
	for _, t := range tags {
		if t.ID == "" {
			continue
		}
		encoded = append(encoded, EncodeTagID(t.ID))
	}
	return encoded
}

// EncodeTagID encodes a tag URN for the insights query string. The downstream
// endpoint requires exactly ":" -> "%3A" and " " -> "_".
func EncodeTagID(id string) string {
	id = strings.ReplaceAll(id, ":", "%3A")
	return strings.ReplaceAll(id, " ", "_")
}
