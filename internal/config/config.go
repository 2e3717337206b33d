// README: Config loader; all settings come from environment variables (.env for local runs).
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTPConfig holds settings for the API server.
type HTTPConfig struct {
	Addr        string `envconfig:"FOODIEBOT_HTTP_ADDR" default:":8000"`
	CORSOrigin  string `envconfig:"FOODIEBOT_CORS_ORIGIN" default:"http://localhost:5173"`
	Environment string `envconfig:"FOODIEBOT_ENV" default:"development"`
}

// GeminiConfig holds settings for the language-model provider.
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY" required:"true"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT" default:"15s"`
}

// QlooConfig holds settings for the recommendation provider.
// An empty APIKey switches the service to the built-in mock catalogue.
type QlooConfig struct {
	APIKey  string        `envconfig:"QLOO_API_KEY"`
	BaseURL string        `envconfig:"QLOO_BASE_URL" default:"https://hackathon.api.qloo.com/v2"`
	// The insights endpoint is slow (15-20s observed), so the default is generous.
	Timeout time.Duration `envconfig:"QLOO_TIMEOUT" default:"30s"`
}

// RedisConfig holds settings for the insights cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `envconfig:"FOODIEBOT_REDIS_ADDR"`
	CacheTTL time.Duration `envconfig:"FOODIEBOT_CACHE_TTL" default:"15m"`
}

// RecommendConfig bounds the recommendation pipeline.
type RecommendConfig struct {
	MaxTags   int `envconfig:"FOODIEBOT_MAX_TAGS" default:"5"`
	MaxPlaces int `envconfig:"FOODIEBOT_MAX_PLACES" default:"5"`
}

type Config struct {
	HTTP      HTTPConfig
	Gemini    GeminiConfig
	Qloo      QlooConfig
	Redis     RedisConfig
	Recommend RecommendConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Production() bool {
	return c.HTTP.Environment == "production"
}
