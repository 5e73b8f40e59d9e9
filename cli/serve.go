package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"loan-calculator/config"
	httpLayer "loan-calculator/http"
	"loan-calculator/logging"
	"loan-calculator/repository"
	"loan-calculator/service"
)

func newServeCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Pretty, os.Stdout)
			if err != nil {
				return err
			}
			ctx := logger.WithContext(cmd.Context())

			cache, closeCache, err := buildCache(cmd, cfg.Cache, logger)
			if err != nil {
				return err
			}
			defer closeCache()

			loanService := service.NewLoanService(cache, cfg.Cache.TTL)

			var limiter *httpLayer.RateLimiter
			if cfg.RateLimit.Capacity > 0 {
				limiter = httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
				defer limiter.Stop()
			}

			router := httpLayer.NewRouter(httpLayer.Dependencies{
				Loans:       loanService,
				RateLimiter: limiter,
				Logger:      logger,
			})

			api := httpLayer.NewWebAPI(logger, httpLayer.ServerConfig{
				Addr:            cfg.Server.Addr(),
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				IdleTimeout:     cfg.Server.IdleTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			}, router)

			return api.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (yaml, toml or json); LOAN_* environment variables override it")
	return cmd
}

func buildCache(
	cmd *cobra.Command,
	cfg config.CacheConfig,
	logger zerolog.Logger,
) (repository.CacheRepository, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.CacheNone:
		logger.Info().Msg("schedule cache disabled")
		return nil, noop, nil
	case config.CacheRedis:
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisCache.Ping(cmd.Context()); err != nil {
			if closeErr := redisCache.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close redis client")
			}
			return nil, noop, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.TTL).Msg("using redis schedule cache")
		return redisCache, func() {
			if err := redisCache.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close redis client")
			}
		}, nil
	default:
		logger.Info().
			Dur("ttl", cfg.TTL).
			Int("max_entries", cfg.MaxEntries).
			Msg("using in-memory schedule cache")
		return repository.NewMemoryCache(cfg.MaxEntries, cfg.TTL), noop, nil
	}
}

