// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/ai"
	"foodiebot/internal/config"
	httptransport "foodiebot/internal/http"
	"foodiebot/internal/infra"
	"foodiebot/internal/modules/chat"
	"foodiebot/internal/modules/recommend"
	"foodiebot/internal/qloo"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		// .env is optional; real deployments set variables directly.
		logx.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("config load failed")
	}
	logx.Init(cfg.Production())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, err := ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		logx.Fatal().Err(err).Msg("gemini init failed")
	}
	defer gen.Close()

	var provider qloo.Client
	if cfg.Qloo.APIKey != "" {
		provider = qloo.NewHTTPClient(cfg.Qloo.BaseURL, cfg.Qloo.APIKey, cfg.Qloo.Timeout)
	} else {
		logx.Warn().Msg("QLOO_API_KEY not set, serving mock restaurant data")
		provider = qloo.NewMockClient()
	}

	var cache *recommend.Cache
	if cfg.Redis.Addr != "" {
		cache = recommend.NewCache(infra.NewRedis(cfg.Redis.Addr), cfg.Redis.CacheTTL)
	}

	memory := recommend.NewKeywordMemory()
	fetcher := recommend.NewFetcher(provider, memory, cache)
	recommender := recommend.NewService(gen, provider, memory, cache, cfg.Recommend)

	chatStore := chat.NewStore()
	chatSvc := chat.NewService(chatStore, gen, recommender)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Chat:       chatSvc,
		Provider:   provider,
		Fetcher:    fetcher,
		CORSOrigin: cfg.HTTP.CORSOrigin,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logx.Info().Str("addr", cfg.HTTP.Addr).Msg("foodiebot api listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logx.Fatal().Err(err).Msg("server error")
	}
}
