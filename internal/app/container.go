package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"jobquery/internal/config"
	"jobquery/internal/database"
	dbpostgres "jobquery/internal/database/postgres"
	"jobquery/internal/infrastructure/cache"
	"jobquery/internal/llm"
	"jobquery/internal/repository"
	"jobquery/internal/search"
	"jobquery/internal/usecase"

	"github.com/charmbracelet/log"
)

type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Cache    *cache.Redis
	DB       database.DB
	Synonyms *usecase.SynonymResolver
	Queries  usecase.QueryUsecase
}

// NewContainer wires the service. Redis and Postgres are optional at
// runtime: an unreachable Redis bypasses the cache and an unreachable
// Postgres leaves only the in-memory synonym table.
func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Container{Config: cfg, Logger: logger}
	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)

	sources := make([]usecase.SynonymSource, 0, 2)
	if cfg.Database.Enabled() {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		db, err := dbpostgres.Connect(dbCtx, cfg.Database)
		cancel()
		if err != nil {
			logger.Warn("[DB] postgres unavailable, using in-memory synonyms only", "err", err)
		} else {
			c.DB = db
			sources = append(sources, repository.NewPostgresRoleSynonymRepository(db))
		}
	}
	sources = append(sources, cfg.Query.Synonyms.Normalized())

	gen, err := llm.NewProvider(ctx, cfg.LLM, &http.Client{Timeout: cfg.LLM.Timeout})
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	logger.Info("[LLM] provider ready", "provider", cfg.LLM.ResolvedProvider())

	c.Synonyms = usecase.NewSynonymResolver(c.Cache, sources, gen, usecase.SynonymOptions{
		TTL:   cfg.Redis.CacheTTL,
		Count: cfg.LLM.SynonymCount,
		Clean: search.CleanOptions{
			MaxLength: cfg.Query.MaxSynonymLength,
			MaxCount:  cfg.Query.MaxSynonyms,
		},
	}, logger)
	c.Queries = usecase.NewQueryUsecase(c.Synonyms, search.NewBuilder(cfg.Query.Builder), logger)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
