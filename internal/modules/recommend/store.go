// README: Redis-backed cache for normalized insights results.
package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/qloo"
)

const insightsKeyPrefix = "qloo:entities:%s"

// Cache memoizes provider entity lists per query. The upstream insights
// endpoint routinely takes 15-20s, so repeated queries within the TTL are
// served locally. Entries hold the raw entities rather than normalized
// records; normalization and the keyword-memory fold run on every read.
// Cache failures are treated as misses; the pipeline never depends on Redis
// being up.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, q Query) ([]qloo.Entity, bool) {
	val, err := c.redis.Get(ctx, cacheKey(q)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logx.Debug().Err(err).Msg("insights cache read failed")
		return nil, false
	}

	var entities []qloo.Entity
	if err := json.Unmarshal([]byte(val), &entities); err != nil {
		logx.Debug().Err(err).Msg("insights cache entry malformed")
		return nil, false
	}
	return entities, true
}

func (c *Cache) Put(ctx context.Context, q Query, entities []qloo.Entity) {
	payload, err := json.Marshal(entities)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(q), payload, c.ttl).Err(); err != nil {
		logx.Debug().Err(err).Msg("insights cache write failed")
	}
}

func cacheKey(q Query) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%s",
		strings.ToLower(q.Location), q.Operator, q.Limit, strings.Join(q.Tags, ","))))
	return fmt.Sprintf(insightsKeyPrefix, hex.EncodeToString(sum[:16]))
}
