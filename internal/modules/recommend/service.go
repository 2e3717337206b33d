// README: Recommendation pipeline: extract -> gate -> resolve -> fetch.
package recommend

import (
	"context"
	"strings"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/ai"
	"foodiebot/internal/config"
	"foodiebot/internal/qloo"
)

// Service runs the recommendation pipeline for one user turn. Every stage
// absorbs its own failures, so Recommend never errors; the worst case is an
// empty slice.
type Service struct {
	extractor *KeywordExtractor
	gate      IntentClassifier
	resolver  *TagResolver
	fetcher   *Fetcher
	maxTags   int
	maxPlaces int
}

// NewService wires the pipeline stages. cache may be nil to disable the
// insights cache.
func NewService(gen ai.Generator, provider qloo.Client, memory *KeywordMemory, cache *Cache, cfg config.RecommendConfig) *Service {
	return &Service{
		extractor: NewKeywordExtractor(gen),
		gate:      NewHeuristicGate(memory),
		resolver:  NewTagResolver(provider),
		fetcher:   NewFetcher(provider, memory, cache),
		maxTags:   cfg.MaxTags,
		maxPlaces: cfg.MaxPlaces,
	}
}

// Recommend turns a free-text message into a ranked restaurant list for the
// given location. It returns nil when the message does not warrant a fetch.
func (s *Service) Recommend(ctx context.Context, message, location string) []Recommendation {
	extracted := s.extractor.Extract(ctx, message)

	if !s.gate.ShouldRecommend(message, extracted) {
		logx.Debug().Str("message", message).Msg("no recommendation intent detected")
		return nil
	}

	var tags []string
	if len(extracted) > 0 {
		tags = s.resolver.Resolve(ctx, strings.Join(extracted, ", "), s.maxTags)
	}

	recs := s.fetcher.Fetch(ctx, Query{
		Location: location,
		Tags:     tags,
		Operator: qloo.OperatorUnion,
		Limit:    s.maxPlaces,
	})
	logx.Info().Int("count", len(recs)).Int("tags", len(tags)).Str("location", location).Msg("recommendation fetch complete")
	return recs
}
