package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toxmanager/internal/core/lottery"
	"toxmanager/internal/modkit"
	"toxmanager/internal/modkit/httpkit"
	"toxmanager/internal/platform/config"
	"toxmanager/internal/platform/logger"
	"toxmanager/internal/platform/metrics"
	phttp "toxmanager/internal/platform/net/http"
	"toxmanager/internal/platform/token"
	"toxmanager/internal/store"

	"toxmanager/internal/services/api"
)

const devSecret = "toxmanager-dev-secret-change-me"

func main() {
	// env files first so TOX_LOG_* applies to the logger
	if err := config.Load(); err != nil {
		logger.Get().Fatal().Err(err).Msg("env file")
	}
	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New().Prefix("TOX_")
	apiCfg := root.Prefix("API_")
	authCfg := root.Prefix("AUTH_")

	secret := authCfg.MayString("SECRET", "")
	if secret == "" {
		l.Warn().Msg("TOX_AUTH_SECRET not set, using the development secret")
		secret = devSecret
	}
	tokens, err := token.New(secret, authCfg.MayDuration("TTL", 8*time.Hour))
	if err != nil {
		l.Fatal().Err(err).Msg("token issuer")
	}

	src := lottery.Default
	if seed := root.Prefix("LOTTERY_").MayUint64("SEED", 0); seed != 0 {
		l.Info().Uint64("seed", seed).Msg("lottery seeded, draws are reproducible")
		src = lottery.Locked(lottery.NewSeeded(seed))
	}

	deps := modkit.Deps{
		Log:     l,
		Cfg:     root,
		Store:   store.Seed(),
		Lottery: src,
		Metrics: metrics.New(),
		Tokens:  tokens,
		Auth:    httpkit.NewPortFunc(tokens.UserOf),
	}

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Deps:           deps,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
